// Package render formats the comparison report for the console.
// It owns the colour styles and every verbosity-gated output format;
// core services never print.
package render
