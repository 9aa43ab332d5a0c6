package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestKeySet_AddHas tests basic membership
func TestKeySet_AddHas(t *testing.T) {
	s := NewKeySet()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has("dir/h1"))

	s.Add("dir/h1")
	assert.True(t, s.Has("dir/h1"))
	assert.Equal(t, 1, s.Len())

	// adding twice is a no-op
	s.Add("dir/h1")
	assert.Equal(t, 1, s.Len())
}

// TestKeySet_Union tests set union
func TestKeySet_Union(t *testing.T) {
	a := NewKeySet("h1", "h2")
	b := NewKeySet("h2", "h3")

	u := a.Union(b)

	assert.Equal(t, 3, u.Len())
	assert.ElementsMatch(t, []string{"h1", "h2", "h3"}, u.Sorted())
}

// TestKeySet_Intersect tests set intersection
func TestKeySet_Intersect(t *testing.T) {
	a := NewKeySet("h1", "h2", "h3")
	b := NewKeySet("h2", "h3", "h4")

	i := a.Intersect(b)

	assert.ElementsMatch(t, []string{"h2", "h3"}, i.Sorted())
}

// TestKeySet_Diff tests set difference
func TestKeySet_Diff(t *testing.T) {
	a := NewKeySet("h1", "h2", "h3")
	b := NewKeySet("h2")

	assert.ElementsMatch(t, []string{"h1", "h3"}, a.Diff(b).Sorted())
	assert.Empty(t, b.Diff(a).Sorted())
}

// TestKeySet_Sorted tests deterministic ordering
func TestKeySet_Sorted(t *testing.T) {
	s := NewKeySet("z", "a", "m/sub")

	assert.Equal(t, []string{"a", "m/sub", "z"}, s.Sorted())
}

// TestCompareKeySets tests the three-way partition
func TestCompareKeySets(t *testing.T) {
	keys1 := NewKeySet("common", "only1")
	keys2 := NewKeySet("common", "only2a", "only2b")

	d := CompareKeySets(keys1, keys2)

	assert.ElementsMatch(t, []string{"only2a", "only2b"}, d.Missing1.Sorted())
	assert.ElementsMatch(t, []string{"only1"}, d.Missing2.Sorted())
	assert.ElementsMatch(t, []string{"common"}, d.Common.Sorted())
	assert.Equal(t, 4, d.Total)
}

// TestKeyDiff_Status tests the exit-status mapping for key differences
func TestKeyDiff_Status(t *testing.T) {
	tests := []struct {
		name  string
		keys1 KeySet
		keys2 KeySet
		want  ExitStatus
	}{
		{
			name:  "identical",
			keys1: NewKeySet("a", "b"),
			keys2: NewKeySet("a", "b"),
			want:  StatusIdentical,
		},
		{
			name:  "first missing",
			keys1: NewKeySet("a"),
			keys2: NewKeySet("a", "b"),
			want:  StatusFirstMissing,
		},
		{
			name:  "second missing",
			keys1: NewKeySet("a", "b"),
			keys2: NewKeySet("a"),
			want:  StatusSecondMissing,
		},
		{
			name:  "both missing",
			keys1: NewKeySet("a", "b"),
			keys2: NewKeySet("a", "c"),
			want:  StatusEitherMissing,
		},
		{
			name:  "both empty",
			keys1: NewKeySet(),
			keys2: NewKeySet(),
			want:  StatusIdentical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CompareKeySets(tt.keys1, tt.keys2)
			assert.Equal(t, tt.want, d.Status())
		})
	}
}
