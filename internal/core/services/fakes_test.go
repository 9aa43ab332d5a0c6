package services

import (
	"context"
	"fmt"

	"github.com/amecca/rootcmp/internal/core/domain"
	"github.com/amecca/rootcmp/internal/core/ports/driven"
)

// memObj is a non-histogram object.
type memObj struct {
	name  string
	class string
}

func (o *memObj) Name() string  { return o.name }
func (o *memObj) Class() string { return o.class }

// memHist is an in-memory histogram.
type memHist struct {
	name  string
	class string
	dim   int
	cells []float64
}

func (h *memHist) Name() string       { return h.name }
func (h *memHist) Class() string      { return h.class }
func (h *memHist) Dimension() int     { return h.dim }
func (h *memHist) NCells() int        { return len(h.cells) }
func (h *memHist) Cell(i int) float64 { return h.cells[i] }

func h1d(name string, cells ...float64) *memHist {
	return &memHist{name: name, class: "TH1D", dim: 1, cells: cells}
}

// memStore is an in-memory ObjectStore over a nested directory tree.
type memStore struct {
	path string
	dirs map[string][]driven.Entry
	objs map[string]domain.Object
}

var _ driven.ObjectStore = (*memStore)(nil)

func newMemStore(path string) *memStore {
	return &memStore{
		path: path,
		dirs: map[string][]driven.Entry{"": {}},
		objs: make(map[string]domain.Object),
	}
}

func (s *memStore) addDir(dir, name string) {
	s.dirs[dir] = append(s.dirs[dir], driven.Entry{Name: name, Class: "TDirectoryFile", Dir: true})
	full := name
	if dir != "" {
		full = dir + "/" + name
	}
	if _, ok := s.dirs[full]; !ok {
		s.dirs[full] = []driven.Entry{}
	}
}

func (s *memStore) addObj(dir string, obj domain.Object) {
	s.dirs[dir] = append(s.dirs[dir], driven.Entry{Name: obj.Name(), Class: obj.Class()})
	full := obj.Name()
	if dir != "" {
		full = dir + "/" + obj.Name()
	}
	s.objs[full] = obj
}

func (s *memStore) Path() string { return s.path }

func (s *memStore) List(_ context.Context, path string) ([]driven.Entry, error) {
	entries, ok := s.dirs[path]
	if !ok {
		return nil, fmt.Errorf("%q: %w", path, domain.ErrNotDirectory)
	}
	return entries, nil
}

func (s *memStore) Get(_ context.Context, path string) (domain.Object, error) {
	obj, ok := s.objs[path]
	if !ok {
		return nil, fmt.Errorf("%q: %w", path, domain.ErrNotFound)
	}
	return obj, nil
}

func (s *memStore) Close() error { return nil }
