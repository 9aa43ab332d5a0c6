package domain

// Object is a handle to a named object read from a file.
type Object interface {
	// Name returns the object's base name (last path component).
	Name() string

	// Class returns the object's on-file class name, e.g. "TH1D".
	Class() string
}

// Histogram is a binned numeric object with a fixed cell count.
// Cells are addressed by ROOT's global bin index: a flat array that
// includes the under- and overflow bins of every axis, so a 1D
// histogram with n bins has n+2 cells and a 2D histogram with
// nx x ny bins has (nx+2)*(ny+2).
type Histogram interface {
	Object

	// Dimension returns the number of axes (1 or 2).
	Dimension() int

	// NCells returns the total cell count, under/overflow included.
	NCells() int

	// Cell returns the content of the i-th cell, 0 <= i < NCells.
	Cell(i int) float64
}

// Integral sums every cell of h, under/overflow included.
func Integral(h Histogram) float64 {
	var sum float64
	for i, n := 0, h.NCells(); i < n; i++ {
		sum += h.Cell(i)
	}
	return sum
}
