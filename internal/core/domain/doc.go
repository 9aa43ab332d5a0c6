// Package domain defines the core entities for rootcmp.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - KeySet: a set of fully-qualified object paths
//   - Object / Histogram: handles to objects read from a file
//   - PlotComparison: the outcome of comparing one pair of objects
//   - Summary: the aggregate outcome of a whole comparison session
//   - ExitStatus: process exit codes encoding the aggregate outcome
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
