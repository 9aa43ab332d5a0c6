package services

import (
	"github.com/amecca/rootcmp/internal/core/domain"
)

// ComparePlots performs the detailed comparison of two same-named objects.
//
// Structural checks come first: both objects must be histograms of the
// same dimensionality and cell count. Content is then compared cell by
// cell, exactly, with no tolerance. When collectBins is false the scan
// stops at the first differing cell; otherwise every differing cell is
// recorded.
func ComparePlots(name string, o1, o2 domain.Object, collectBins bool) domain.PlotComparison {
	res := domain.PlotComparison{Name: name}

	h1, ok1 := o1.(domain.Histogram)
	h2, ok2 := o2.(domain.Histogram)
	if !ok1 || !ok2 {
		res.Outcome = domain.OutcomeSkipped
		res.Reason = domain.ReasonNotHistogram
		res.Class1 = o1.Class()
		res.Class2 = o2.Class()
		return res
	}

	if h1.Dimension() != h2.Dimension() {
		res.Outcome = domain.OutcomeDifferent
		res.Reason = domain.ReasonDimension
		res.Dim1 = h1.Dimension()
		res.Dim2 = h2.Dimension()
		return res
	}

	res.NCells1 = h1.NCells()
	res.NCells2 = h2.NCells()
	if res.NCells1 != res.NCells2 {
		res.Outcome = domain.OutcomeDifferent
		res.Reason = domain.ReasonNCells
		return res
	}

	for i := 0; i < res.NCells1; i++ {
		c1 := h1.Cell(i)
		c2 := h2.Cell(i)
		if c1 == c2 {
			continue
		}
		res.Diffs = append(res.Diffs, domain.CellDiff{Cell: i, C1: c1, C2: c2})
		if !collectBins {
			break
		}
	}

	if len(res.Diffs) == 0 {
		res.Outcome = domain.OutcomeEqual
		return res
	}

	res.Outcome = domain.OutcomeDifferent
	res.Reason = domain.ReasonContent
	res.Integral1 = domain.Integral(h1)
	res.Integral2 = domain.Integral(h2)
	return res
}
