// Package rootio implements the ObjectStore port over ROOT files,
// using go-hep's pure-Go reader (no ROOT installation required).
package rootio
