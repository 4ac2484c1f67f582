// Package convolution - the edge base case.
package convolution

import (
	"math/big"

	"github.com/katalvlaran/nrconv/geom"
)

// Edge convolves A and B over the lattice points of the closed segment
// from s to e. Lattice points on a rational line are sparse, so the
// segment is enumerated directly instead of going through the NTT. The
// prime p is accepted for interface uniformity with the dense convolvers
// and is not consulted.
//
// Complexity: O(W) exact line evaluations for W the x-extent of the
// segment's integer bounding box.
func Edge(a, b []*big.Int, s, e geom.Point, p *big.Int) (Window, error) {
	if _, err := validated(a, b, s, e); err != nil {
		return Window{}, err
	}

	return convolveEdge(a, b, s, e, p)
}

// convolveEdge is the unvalidated kernel behind Edge, shared by the
// decomposition steps.
func convolveEdge(a, b []*big.Int, s, e geom.Point, _ *big.Int) (Window, error) {
	// 1) Integer bounding box and output window of the two endpoints.
	r, err := geom.BoundingRect(s, e)
	if err != nil {
		return Window{}, err
	}
	ir := r.Round()
	size, kmin := ir.Window()
	if size == 0 {
		return Window{Offset: kmin}, nil
	}

	// 2) Vertical edge: a single column, all lattice points or none.
	if s.X.Cmp(e.X) == 0 {
		if !geom.IsInt(s.X) {
			return Window{Offset: kmin}, nil
		}
		x := geom.FloorRat(s.X)
		values := make([]*big.Int, ir.MaxY-ir.MinY+1)
		for j := range values {
			values[j] = new(big.Int).Mul(a[x], b[ir.MinY+j])
		}

		return Window{Values: values, Offset: kmin}, nil
	}

	// 3) General edge: orient left-to-right and evaluate the exact line
	//    equation at every integer x of the bounding box.
	if s.X.Cmp(e.X) > 0 {
		s, e = e, s
	}
	slope := new(big.Rat).Sub(e.Y, s.Y)
	slope.Quo(slope, new(big.Rat).Sub(e.X, s.X))

	win := newWindow(size, kmin)
	y := new(big.Rat)
	for x := ir.MinX; x <= ir.MaxX; x++ {
		// y = s.Y + (x − s.X)·slope, exactly.
		y.SetInt64(int64(x))
		y.Sub(y, s.X)
		y.Mul(y, slope)
		y.Add(y, s.Y)
		if !geom.IsInt(y) {
			continue
		}
		yi := geom.FloorRat(y)
		if yi < ir.MinY || yi > ir.MaxY {
			continue
		}
		idx := x + yi - kmin
		win.Values[idx].Add(win.Values[idx], new(big.Int).Mul(a[x], b[yi]))
	}

	return win, nil
}
