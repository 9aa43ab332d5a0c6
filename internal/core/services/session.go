package services

import (
	"context"
	"fmt"

	"github.com/amecca/rootcmp/internal/core/domain"
	"github.com/amecca/rootcmp/internal/core/ports/driven"
	"github.com/amecca/rootcmp/internal/logger"
)

// Session compares two open files. It owns no resources: the stores are
// opened and closed by the caller.
type Session struct {
	store1 driven.ObjectStore
	store2 driven.ObjectStore
}

// NewSession creates a comparison session over two object stores.
func NewSession(store1, store2 driven.ObjectStore) *Session {
	return &Session{store1: store1, store2: store2}
}

// Keys enumerates the full key sets of both files.
func (s *Session) Keys(ctx context.Context) (keys1, keys2 domain.KeySet, err error) {
	logger.Info("extracting keys from %s", s.store1.Path())
	keys1, err = EnumerateKeys(ctx, s.store1)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("extracting keys from %s", s.store2.Path())
	keys2, err = EnumerateKeys(ctx, s.store2)
	if err != nil {
		return nil, nil, err
	}
	return keys1, keys2, nil
}

// ComparePair loads the object at path from both files and compares it.
func (s *Session) ComparePair(ctx context.Context, path string, collectBins bool) (domain.PlotComparison, error) {
	o1, err := s.store1.Get(ctx, path)
	if err != nil {
		return domain.PlotComparison{}, fmt.Errorf("loading %q from %s: %w", path, s.store1.Path(), err)
	}
	o2, err := s.store2.Get(ctx, path)
	if err != nil {
		return domain.PlotComparison{}, fmt.Errorf("loading %q from %s: %w", path, s.store2.Path(), err)
	}
	return ComparePlots(path, o1, o2, collectBins), nil
}

// CompareCommon compares every common key, in lexicographic order, and
// aggregates the outcomes. Cancelling ctx stops between pairs.
func (s *Session) CompareCommon(ctx context.Context, common domain.KeySet, collectBins bool) ([]domain.PlotComparison, domain.ContentStatus, error) {
	var status domain.ContentStatus
	plots := make([]domain.PlotComparison, 0, common.Len())

	for _, path := range common.Sorted() {
		if err := ctx.Err(); err != nil {
			return plots, status, err
		}
		cmp, err := s.ComparePair(ctx, path, collectBins)
		if err != nil {
			return plots, status, err
		}
		status.Add(cmp)
		plots = append(plots, cmp)
	}
	return plots, status, nil
}
