package rootio

import (
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/root"

	"github.com/amecca/rootcmp/internal/core/domain"
)

// The rhist.H1/H2 interfaces stop at the statistics accessors; the
// bin-level methods live on the concrete types (*H1D, *H1F, *H2D, ...).
// These local interfaces add the accessors every concrete histogram
// type provides.
type binned1 interface {
	rhist.H1
	NbinsX() int
	XBinContent(i int) float64
}

type binned2 interface {
	rhist.H2
	NbinsX() int
	NbinsY() int
	XBinContent(i int) float64
}

// wrapObject adapts a decoded ROOT object to the domain abstractions.
// TH2 must be checked before TH1: 2D histograms satisfy both interfaces.
func wrapObject(name string, obj root.Object) domain.Object {
	switch h := obj.(type) {
	case binned2:
		return &hist2{name: name, h: h}
	case binned1:
		return &hist1{name: name, h: h}
	default:
		return &object{name: name, class: obj.Class()}
	}
}

// object is a leaf that is not a histogram (TTree, TGraph, ...).
type object struct {
	name  string
	class string
}

func (o *object) Name() string  { return o.name }
func (o *object) Class() string { return o.class }

// hist1 adapts a 1-dimensional histogram. Cells follow ROOT's global
// bin numbering: nbins + 2, with cell 0 the underflow and cell n+1 the
// overflow.
type hist1 struct {
	name string
	h    binned1
}

var _ domain.Histogram = (*hist1)(nil)

func (o *hist1) Name() string       { return o.name }
func (o *hist1) Class() string      { return o.h.Class() }
func (o *hist1) Dimension() int     { return 1 }
func (o *hist1) NCells() int        { return o.h.NbinsX() + 2 }
func (o *hist1) Cell(i int) float64 { return o.h.XBinContent(i) }

// hist2 adapts a 2-dimensional histogram. The content array is flat,
// (nx+2)*(ny+2) cells, flow bins included on both axes.
type hist2 struct {
	name string
	h    binned2
}

var _ domain.Histogram = (*hist2)(nil)

func (o *hist2) Name() string   { return o.name }
func (o *hist2) Class() string  { return o.h.Class() }
func (o *hist2) Dimension() int { return 2 }

func (o *hist2) NCells() int {
	return (o.h.NbinsX() + 2) * (o.h.NbinsY() + 2)
}

func (o *hist2) Cell(i int) float64 { return o.h.XBinContent(i) }
