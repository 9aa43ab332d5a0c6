package domain

// PlotOutcome classifies one compared pair of objects.
type PlotOutcome int

const (
	// OutcomeEqual means every cell matched exactly.
	OutcomeEqual PlotOutcome = iota

	// OutcomeDifferent means the pair disagrees: structure or content.
	OutcomeDifferent

	// OutcomeSkipped means at least one side is not a histogram,
	// so there is nothing to compare.
	OutcomeSkipped
)

// DiffReason narrows down why a pair was classified as different or skipped.
type DiffReason int

const (
	// ReasonNone applies to equal pairs.
	ReasonNone DiffReason = iota

	// ReasonNotHistogram: one or both objects are not histograms.
	ReasonNotHistogram

	// ReasonDimension: the histograms have different dimensionality.
	ReasonDimension

	// ReasonNCells: the histograms have different cell counts.
	ReasonNCells

	// ReasonContent: at least one cell differs.
	ReasonContent
)

// CellDiff records a single cell whose contents disagree.
type CellDiff struct {
	Cell int
	C1   float64
	C2   float64
}

// PlotComparison is the outcome of comparing one pair of same-named objects.
// It carries everything the renderer needs; nothing is printed while comparing.
type PlotComparison struct {
	Name    string
	Outcome PlotOutcome
	Reason  DiffReason

	// Class1 and Class2 are the on-file class names, set when the pair
	// was skipped as non-histograms.
	Class1, Class2 string

	// Dim1 and Dim2 are set on a dimension mismatch.
	Dim1, Dim2 int

	// NCells1 and NCells2 are set once both dimensions matched.
	NCells1, NCells2 int

	// Diffs lists the differing cells. When per-bin detail was not
	// requested the scan stops at the first difference and Diffs holds
	// at most one entry.
	Diffs []CellDiff

	// Integral1 and Integral2 are the all-cell sums, computed only when
	// the contents differ.
	Integral1, Integral2 float64
}

// ContentStatus aggregates pair outcomes over a comparison session.
type ContentStatus struct {
	Equal     int
	Different int
	Skipped   int
}

// Add counts one comparison outcome.
func (s *ContentStatus) Add(c PlotComparison) {
	switch c.Outcome {
	case OutcomeEqual:
		s.Equal++
	case OutcomeDifferent:
		s.Different++
	case OutcomeSkipped:
		s.Skipped++
	}
}

// Compared returns the number of pairs that were actually comparable.
func (s ContentStatus) Compared() int { return s.Equal + s.Different }

// Summary is the aggregate result of a whole comparison session.
type Summary struct {
	Keys    KeyDiff
	Content ContentStatus
}

// Status maps the aggregate outcome to the process exit status.
// Content differences dominate, then missing keys.
func (s Summary) Status() ExitStatus {
	if s.Content.Different > 0 {
		return StatusContentDiffers
	}
	return s.Keys.Status()
}
