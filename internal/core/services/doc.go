// Package services implements the comparison logic: key enumeration,
// key selection, bin-level content comparison and the session that
// orchestrates them over two files.
//
// Services contain the core business logic and orchestrate calls to
// driven ports (adapters). They never print to the report; they return
// result values and leave rendering to the driving side.
package services
