package rootio

import (
	"context"
	"fmt"
	"strings"

	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/root"

	"github.com/amecca/rootcmp/internal/core/domain"
	"github.com/amecca/rootcmp/internal/core/ports/driven"
	"github.com/amecca/rootcmp/internal/logger"

	_ "go-hep.org/x/hep/groot/riofs/plugin/xrootd" // root:// file access
)

// Ensure Store implements the port.
var _ driven.ObjectStore = (*Store)(nil)

// directory is the subset of riofs directory behaviour the store needs.
// Both *riofs.File and the directory objects read from keys satisfy it.
type directory interface {
	Keys() []riofs.Key
	Get(name string) (root.Object, error)
}

// Store reads objects from one ROOT file.
type Store struct {
	path string
	file *riofs.File
}

// Open opens a ROOT file for reading.
func Open(path string) (*Store, error) {
	f, err := riofs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Store{path: path, file: f}, nil
}

// Path returns the location of the underlying file.
func (s *Store) Path() string { return s.path }

// Close releases the underlying file.
func (s *Store) Close() error { return s.file.Close() }

// List returns the keys of the directory at path, in file order.
// Keys stored with multiple cycles appear once.
func (s *Store) List(ctx context.Context, path string) ([]driven.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := s.dirAt(path)
	if err != nil {
		return nil, err
	}

	var (
		entries []driven.Entry
		seen    = make(map[string]struct{})
	)
	for _, k := range dir.Keys() {
		name := k.Name()
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		entries = append(entries, driven.Entry{
			Name:  name,
			Class: k.ClassName(),
			Dir:   isDirectoryClass(k.ClassName()),
		})
	}
	return entries, nil
}

// Get loads the object at the fully-qualified path.
func (s *Store) Get(ctx context.Context, path string) (domain.Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, base := splitPath(path)
	parent, err := s.dirAt(dir)
	if err != nil {
		return nil, err
	}

	obj, err := parent.Get(base)
	if err != nil {
		logger.Debug("get %q from %s: %v", path, s.path, err)
		return nil, fmt.Errorf("%q: %w", path, domain.ErrNotFound)
	}
	return wrapObject(base, obj), nil
}

// dirAt resolves a slash-separated directory path, segment by segment.
// The empty path addresses the top-level directory.
func (s *Store) dirAt(path string) (directory, error) {
	var dir directory = s.file
	if path == "" {
		return dir, nil
	}
	for _, seg := range strings.Split(path, "/") {
		obj, err := dir.Get(seg)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", path, domain.ErrNotFound)
		}
		sub, ok := obj.(directory)
		if !ok {
			return nil, fmt.Errorf("%q (%s): %w", path, obj.Class(), domain.ErrNotDirectory)
		}
		dir = sub
	}
	return dir, nil
}

func splitPath(path string) (dir, base string) {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return "", path
	}
	return path[:i], path[i+1:]
}

func isDirectoryClass(class string) bool {
	return strings.HasPrefix(class, "TDirectory")
}
