// Package convolution - the convex polygon driver.
package convolution

import (
	"math/big"

	"github.com/katalvlaran/nrconv/geom"
)

// ConvexPolygon convolves A and B over the lattice points of the closed
// convex polygon given by its boundary vertices, in either orientation.
//
// Dispatch by vertex count: 2 is an edge, 3 a triangle, 4 a diagonal
// split, and k ≥ 5 recurses on the even-indexed sub-polygon while the
// odd-vertex "ears" are spliced back in as triangles; each shared diagonal
// is subtracted once as an edge to undo its double count. Recursion depth
// is O(log k).
func ConvexPolygon(a, b []*big.Int, poly geom.Polygon, p *big.Int) (Window, error) {
	// 1) Arity first, bounds second: both are caller-visible violations.
	if len(poly) < 2 {
		return Window{}, ErrPolygonSize
	}
	if _, err := validated(a, b, poly...); err != nil {
		return Window{}, err
	}

	return convolvePolygon(a, b, poly, p)
}

// convolvePolygon is the unvalidated recursive kernel behind
// ConvexPolygon.
func convolvePolygon(a, b []*big.Int, poly geom.Polygon, p *big.Int) (Window, error) {
	k := len(poly)

	// 1) Base shapes go straight to their convolvers.
	switch k {
	case 2:
		return convolveEdge(a, b, poly[0], poly[1], p)
	case 3:
		return convolveTriangle(a, b, poly[0], poly[1], poly[2], p)
	}

	// 2) Output window of the whole polygon.
	r, err := geom.BoundingRect(poly...)
	if err != nil {
		return Window{}, err
	}
	size, kmin := r.Round().Window()
	if size == 0 {
		return Window{Offset: kmin}, nil
	}
	win := newWindow(size, kmin)

	// 3) Quadrilateral: split along the (v0, v2) diagonal.
	if k == 4 {
		steps := []step{
			{sign: signPlus, conv: convTriangle, pts: []geom.Point{poly[0], poly[1], poly[2]}},
			{sign: signPlus, conv: convTriangle, pts: []geom.Point{poly[2], poly[3], poly[0]}},
			{sign: signMinus, conv: convEdge, pts: []geom.Point{poly[0], poly[2]}},
		}
		if err = runSteps(win, a, b, p, steps); err != nil {
			return Window{}, err
		}

		return win, nil
	}

	// 4) k ≥ 5: recurse on the even-indexed sub-polygon.
	evens := make(geom.Polygon, 0, (k+1)/2)
	for i := 0; i < k; i += 2 {
		evens = append(evens, poly[i])
	}
	sub, err := convolvePolygon(a, b, evens, p)
	if err != nil {
		return Window{}, err
	}
	if err = addWindow(win, sub); err != nil {
		return Window{}, err
	}

	// 5) Splice the odd-vertex ears back in; each diagonal the ear shares
	//    with the sub-polygon is subtracted once.
	var steps []step
	for i := 0; i+2 < k; i += 2 {
		steps = append(steps,
			step{sign: signPlus, conv: convTriangle, pts: []geom.Point{poly[i], poly[i+1], poly[i+2]}},
			step{sign: signMinus, conv: convEdge, pts: []geom.Point{poly[i], poly[i+2]}},
		)
	}

	// 6) Even k leaves a final ear closing the boundary back to v0.
	if k%2 == 0 {
		steps = append(steps,
			step{sign: signPlus, conv: convTriangle, pts: []geom.Point{poly[k-2], poly[k-1], poly[0]}},
			step{sign: signMinus, conv: convEdge, pts: []geom.Point{poly[k-2], poly[0]}},
		)
	}
	if err = runSteps(win, a, b, p, steps); err != nil {
		return Window{}, err
	}

	return win, nil
}
