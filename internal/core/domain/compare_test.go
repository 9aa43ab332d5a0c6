package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestContentStatus_Add tests outcome counting
func TestContentStatus_Add(t *testing.T) {
	var s ContentStatus

	s.Add(PlotComparison{Outcome: OutcomeEqual})
	s.Add(PlotComparison{Outcome: OutcomeEqual})
	s.Add(PlotComparison{Outcome: OutcomeDifferent})
	s.Add(PlotComparison{Outcome: OutcomeSkipped})

	assert.Equal(t, 2, s.Equal)
	assert.Equal(t, 1, s.Different)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 3, s.Compared())
}

// TestSummary_Status tests that content differences dominate missing keys
func TestSummary_Status(t *testing.T) {
	keys := CompareKeySets(NewKeySet("a", "b"), NewKeySet("a"))

	withDiff := Summary{Keys: keys, Content: ContentStatus{Equal: 1, Different: 1}}
	assert.Equal(t, StatusContentDiffers, withDiff.Status())

	noDiff := Summary{Keys: keys, Content: ContentStatus{Equal: 1}}
	assert.Equal(t, StatusSecondMissing, noDiff.Status())

	clean := Summary{Keys: CompareKeySets(NewKeySet("a"), NewKeySet("a"))}
	assert.Equal(t, StatusIdentical, clean.Status())
}

// TestSummary_SkippedDoesNotFail tests that skipped pairs alone keep status clean
func TestSummary_SkippedDoesNotFail(t *testing.T) {
	keys := CompareKeySets(NewKeySet("tree"), NewKeySet("tree"))
	s := Summary{Keys: keys, Content: ContentStatus{Skipped: 1}}

	assert.Equal(t, StatusIdentical, s.Status())
}
