package rootio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSplitPath tests path decomposition
func TestSplitPath(t *testing.T) {
	tests := []struct {
		path string
		dir  string
		base string
	}{
		{"hMass", "", "hMass"},
		{"muons/hPt", "muons", "hPt"},
		{"a/b/c", "a/b", "c"},
	}

	for _, tt := range tests {
		dir, base := splitPath(tt.path)
		assert.Equal(t, tt.dir, dir, tt.path)
		assert.Equal(t, tt.base, base, tt.path)
	}
}

// TestIsDirectoryClass tests folder detection by class name
func TestIsDirectoryClass(t *testing.T) {
	assert.True(t, isDirectoryClass("TDirectory"))
	assert.True(t, isDirectoryClass("TDirectoryFile"))
	assert.False(t, isDirectoryClass("TH1D"))
	assert.False(t, isDirectoryClass("TTree"))
}
