// Package convolution - result window type and sentinel errors.
package convolution

import (
	"errors"
	"math/big"
)

// Sentinel errors for decomposition and input validation.
var (
	// ErrSequenceBounds indicates the polygon's integer bounding box is
	// not fully indexable in A or B (precondition violation).
	ErrSequenceBounds = errors.New("convolution: bounding box exceeds sequence range")

	// ErrPolygonSize indicates a polygon with fewer than two vertices.
	ErrPolygonSize = errors.New("convolution: polygon needs at least two vertices")

	// ErrWindowRange indicates a signed sub-slice fell outside its parent
	// window during accumulation; this is a decomposition bug, not user
	// input.
	ErrWindowRange = errors.New("convolution: sub-window outside parent window")

	// ErrTriangleShape indicates a triangle that touches no corner of its
	// own bounding box; convex polygon callers cannot produce one.
	ErrTriangleShape = errors.New("convolution: triangle touches no bounding box corner")
)

// Window is a convolution result: Values[k−Offset] is the convolution
// value for sum-index k, or 0 when no lattice pair of the region sums to
// k. Nil Values means the region's integer bounding box is empty; Offset
// is well-defined either way.
type Window struct {
	Values []*big.Int
	Offset int
}

// newWindow returns a zero-filled window of the given size and offset.
// Every slot is an independent big.Int, ready for in-place accumulation.
func newWindow(size, offset int) Window {
	values := make([]*big.Int, size)
	for i := range values {
		values[i] = new(big.Int)
	}

	return Window{Values: values, Offset: offset}
}
