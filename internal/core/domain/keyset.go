package domain

import "sort"

// KeySet is a set of fully-qualified object paths.
// Paths use '/' as the directory separator, e.g. "dir/subdir/hMass".
type KeySet map[string]struct{}

// NewKeySet builds a KeySet from a list of paths.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Add inserts a path into the set.
func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}

// Has reports whether the set contains the path.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of paths in the set.
func (s KeySet) Len() int { return len(s) }

// Union returns a new set with the paths of both sets.
func (s KeySet) Union(other KeySet) KeySet {
	out := make(KeySet, len(s)+len(other))
	for k := range s {
		out[k] = struct{}{}
	}
	for k := range other {
		out[k] = struct{}{}
	}
	return out
}

// Intersect returns a new set with the paths present in both sets.
func (s KeySet) Intersect(other KeySet) KeySet {
	out := make(KeySet)
	for k := range s {
		if other.Has(k) {
			out[k] = struct{}{}
		}
	}
	return out
}

// Diff returns a new set with the paths of s that are not in other.
func (s KeySet) Diff(other KeySet) KeySet {
	out := make(KeySet)
	for k := range s {
		if !other.Has(k) {
			out[k] = struct{}{}
		}
	}
	return out
}

// Sorted returns the paths in lexicographic order.
func (s KeySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// KeyDiff is the three-way partition of two key sets.
type KeyDiff struct {
	// Missing1 holds the keys present only in the second file.
	Missing1 KeySet

	// Missing2 holds the keys present only in the first file.
	Missing2 KeySet

	// Common holds the keys present in both files.
	Common KeySet

	// Total is the size of the union.
	Total int
}

// CompareKeySets partitions two key sets into missing-from-1,
// missing-from-2 and common subsets.
func CompareKeySets(keys1, keys2 KeySet) KeyDiff {
	return KeyDiff{
		Missing1: keys2.Diff(keys1),
		Missing2: keys1.Diff(keys2),
		Common:   keys1.Intersect(keys2),
		Total:    keys1.Union(keys2).Len(),
	}
}

// Status maps the partition to an exit status. Content differences are
// not visible at this level; see Summary.Status for the full mapping.
func (d KeyDiff) Status() ExitStatus {
	switch {
	case d.Missing1.Len() > 0 && d.Missing2.Len() > 0:
		return StatusEitherMissing
	case d.Missing2.Len() > 0:
		return StatusSecondMissing
	case d.Missing1.Len() > 0:
		return StatusFirstMissing
	default:
		return StatusIdentical
	}
}
