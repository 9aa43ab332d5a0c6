// Package file provides the file-based implementation of the
// ConfigStore port. User defaults are persisted to a TOML file.
package file
