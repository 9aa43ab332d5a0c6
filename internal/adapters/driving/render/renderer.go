package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/amecca/rootcmp/internal/core/domain"
)

// Verbosity gates, relative to the default level 1:
//
//	>= 1  skipped (non-histogram) pairs
//	>= 2  per-plot DIFFERENT summary lines with integrals, missing paths
//	>= 3  every differing bin
//	>= 4  equal plots, common paths
//	>= 5  an OK marker per identical pair
const (
	vSkipped    = 1
	vWrongPlot  = 2
	vEveryPlot  = 2
	vEveryBin   = 3
	vGoodPlot   = 4
	vCommonList = 4
	vOKMarker   = 5
)

// Renderer writes the comparison report.
type Renderer struct {
	out       io.Writer
	styles    *Styles
	verbosity int
	nameWidth int
}

// New creates a renderer. nameWidth is the width of the plot-name
// column in per-plot summary lines.
func New(out io.Writer, styles *Styles, verbosity, nameWidth int) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{out: out, styles: styles, verbosity: verbosity, nameWidth: nameWidth}
}

// Blank writes an empty line.
func (r *Renderer) Blank() {
	fmt.Fprintln(r.out)
}

// TotalKeys reports the size of the key union.
func (r *Renderer) TotalKeys(n int) {
	fmt.Fprintf(r.out, "Total keys = %d\n", n)
}

// MatchedKeys reports the selection count after the include pattern.
func (r *Renderer) MatchedKeys(pattern string, n int) {
	fmt.Fprintf(r.out, "... of which matching regex %s = %s\n",
		pattern, r.styles.Count.Render(strconv.Itoa(n)))
}

// ExcludedKeys reports the selection count after the exclude pattern.
func (r *Renderer) ExcludedKeys(pattern string, n int) {
	fmt.Fprintf(r.out, "... of which not matching regex %s = %s\n",
		pattern, r.styles.Count.Render(strconv.Itoa(n)))
}

// Plot reports the outcome of one compared pair, applying the
// verbosity gates. Structural mismatches are never gated: the files
// claim the same key for incompatible objects.
func (r *Renderer) Plot(c domain.PlotComparison) {
	h := headerPrinter(r.out, c.Name)

	switch c.Outcome {
	case domain.OutcomeSkipped:
		if r.verbosity >= vSkipped {
			h()
			fmt.Fprintf(r.out, "\tNot histograms: h1 = %s , h2 = %s\n", c.Class1, c.Class2)
		}

	case domain.OutcomeDifferent:
		switch c.Reason {
		case domain.ReasonDimension:
			h()
			fmt.Fprintf(r.out, "\tDifferent dimensions: %d %d\n", c.Dim1, c.Dim2)
		case domain.ReasonNCells:
			h()
			fmt.Fprintf(r.out, "\tDifferent Ncells: %d %d\n", c.NCells1, c.NCells2)
		case domain.ReasonContent:
			r.contentDiff(c, h)
		}

	case domain.OutcomeEqual:
		if r.verbosity >= vGoodPlot && r.verbosity < vOKMarker {
			fmt.Fprintf(r.out, "%-*s equal     \n", r.nameWidth, c.Name)
		}
		if r.verbosity >= vOKMarker {
			h()
			fmt.Fprintln(r.out, "\tOK")
		}
	}
}

func (r *Renderer) contentDiff(c domain.PlotComparison, h func()) {
	if r.verbosity >= vEveryBin {
		h()
		w := digits(c.NCells1)
		for _, d := range c.Diffs {
			fmt.Fprintf(r.out, "\t%*d: %.3e - %.3e - diff = %+.3e\n", w, d.Cell, d.C1, d.C2, d.C2-d.C1)
		}
		return
	}

	if r.verbosity < vWrongPlot {
		return
	}
	if c.Integral1 == c.Integral2 {
		fmt.Fprintf(r.out, "%-*s DIFFERENT!  But same integral: %6.3g\n",
			r.nameWidth, c.Name, c.Integral1)
		return
	}
	fmt.Fprintf(r.out, "%-*s DIFFERENT!  Integral --> h1: %6.3g - h2: %6.3g  (%+4.3g%%)\n",
		r.nameWidth, c.Name, c.Integral1, c.Integral2, 100*(c.Integral2/c.Integral1-1))
}

// Missing reports the three-way key partition with aligned counters.
func (r *Renderer) Missing(d domain.KeyDiff) {
	n1, n2 := d.Missing1.Len(), d.Missing2.Len()
	w := digits(n1)
	if w2 := digits(n2); w2 > w {
		w = w2
	}
	wt := digits(d.Total)

	counts := func(n int) string {
		var pct float64
		if d.Total > 0 {
			pct = 100 * float64(n) / float64(d.Total)
		}
		return fmt.Sprintf("%*d/%*d (%5.1f) %%", w, n, wt, d.Total, pct)
	}

	if n1 > 0 {
		fmt.Fprintf(r.out, "%s from 1: %s\n", r.styles.Bad.Render("Missing"), counts(n1))
		r.listKeys(d.Missing1, vEveryPlot)
	}
	if n2 > 0 {
		fmt.Fprintf(r.out, "%s from 2: %s\n", r.styles.Bad.Render("Missing"), counts(n2))
		r.listKeys(d.Missing2, vEveryPlot)
	}
	if d.Common.Len() > 0 {
		fmt.Fprintf(r.out, "%s in 1, 2: %s\n", r.styles.Good.Render("Common"), counts(d.Common.Len()))
		r.listKeys(d.Common, vCommonList)
	}
}

func (r *Renderer) listKeys(keys domain.KeySet, gate int) {
	if r.verbosity < gate {
		return
	}
	for _, k := range keys.Sorted() {
		fmt.Fprintf(r.out, "\t%s\n", k)
	}
	fmt.Fprintln(r.out)
}

// ContentStatus reports the aggregate pair outcomes.
func (r *Renderer) ContentStatus(s domain.ContentStatus) {
	tot := s.Compared()
	if tot == 0 {
		fmt.Fprintf(r.out, "%s  nothing in common\n", r.styles.Warn.Render("WARN"))
		if s.Skipped > 0 {
			fmt.Fprintf(r.out, "Skipped       : %d (not histograms)\n", s.Skipped)
		}
		return
	}

	w := digits(s.Equal)
	if w2 := digits(s.Different); w2 > w {
		w = w2
	}
	wt := digits(tot)

	counts := func(n int) string {
		return fmt.Sprintf("%*d/%*d (%5.1f) %%", w, n, wt, tot, 100*float64(n)/float64(tot))
	}

	fmt.Fprintf(r.out, "%s  : %s\n", r.styles.Good.Render("Same content"), counts(s.Equal))
	if s.Different > 0 {
		fmt.Fprintf(r.out, "%s     : %s\n", r.styles.Bad.Render("Different"), counts(s.Different))
	}
	if s.Skipped > 0 {
		fmt.Fprintf(r.out, "Skipped       : %d (not histograms)\n", s.Skipped)
	}
}

// headerPrinter returns a closure that prints the '# name #' header
// the first time it is called.
func headerPrinter(out io.Writer, name string) func() {
	printed := false
	return func() {
		if !printed {
			fmt.Fprintf(out, "# %s #\n", name)
			printed = true
		}
	}
}

func digits(n int) int {
	return len(strconv.Itoa(n))
}
