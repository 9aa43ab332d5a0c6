package services

import (
	"fmt"
	"regexp"

	"github.com/amecca/rootcmp/internal/core/domain"
)

// SelectKeys applies the include and exclude patterns to a key set.
// Either pattern may be nil. An empty result after a non-nil pattern is
// a usage error wrapping domain.ErrNoMatch.
func SelectKeys(keys domain.KeySet, include, exclude *regexp.Regexp) (domain.KeySet, error) {
	selected := keys

	if include != nil {
		matched := make(domain.KeySet)
		for k := range selected {
			if include.MatchString(k) {
				matched.Add(k)
			}
		}
		if matched.Len() == 0 {
			return nil, fmt.Errorf("%w: no keys matching %q", domain.ErrNoMatch, include.String())
		}
		selected = matched
	}

	if exclude != nil {
		kept := make(domain.KeySet)
		for k := range selected {
			if !exclude.MatchString(k) {
				kept.Add(k)
			}
		}
		if kept.Len() == 0 {
			return nil, fmt.Errorf("%w: all keys excluded by %q", domain.ErrNoMatch, exclude.String())
		}
		selected = kept
	}

	return selected, nil
}
