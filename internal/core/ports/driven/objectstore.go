package driven

import (
	"context"

	"github.com/amecca/rootcmp/internal/core/domain"
)

// Entry describes one key of a directory listing.
type Entry struct {
	// Name is the key's base name.
	Name string

	// Class is the on-file class name, e.g. "TH1D" or "TDirectoryFile".
	Class string

	// Dir reports whether the entry is a nested directory.
	Dir bool
}

// ObjectStore provides read access to one hierarchical object file.
// Backed by go-hep's riofs for ROOT files.
type ObjectStore interface {
	// Path returns the location of the underlying file.
	Path() string

	// List returns the keys of the directory at path, in file order.
	// The empty path addresses the top-level directory. Keys stored
	// with multiple cycles appear once.
	List(ctx context.Context, path string) ([]Entry, error)

	// Get loads the object at the fully-qualified path. Histogram
	// objects satisfy domain.Histogram; anything else only
	// domain.Object. Returns domain.ErrNotFound for unknown paths.
	Get(ctx context.Context, path string) (domain.Object, error)

	// Close releases the underlying file.
	Close() error
}
