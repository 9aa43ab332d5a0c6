package services

import (
	"context"
	"fmt"
	"path"

	"github.com/amecca/rootcmp/internal/core/domain"
	"github.com/amecca/rootcmp/internal/core/ports/driven"
	"github.com/amecca/rootcmp/internal/logger"
)

// EnumerateKeys walks the directory tree of store depth-first and returns
// the set of fully-qualified slash-separated paths to all leaf objects
// (leaf = non-folder entry). Directories contribute no path of their own.
func EnumerateKeys(ctx context.Context, store driven.ObjectStore) (domain.KeySet, error) {
	keys := make(domain.KeySet)
	if err := walkDir(ctx, store, "", keys); err != nil {
		return nil, fmt.Errorf("enumerating keys of %s: %w", store.Path(), err)
	}
	return keys, nil
}

func walkDir(ctx context.Context, store driven.ObjectStore, dir string, keys domain.KeySet) error {
	entries, err := store.List(ctx, dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		full := path.Join(dir, e.Name)
		if e.Dir {
			logger.Debug("recursing into %q", full)
			if err := walkDir(ctx, store, full, keys); err != nil {
				return err
			}
			continue
		}
		keys.Add(full)
	}
	return nil
}
