// Package convolution - the arbitrary triangle case.
//
// A triangle vertex "collides" when it coincides with a corner of the
// triangle's own bounding box. Because the box is tight, a triangle from a
// convex decomposition always has one, two, or three collisions, and each
// count admits a fixed inclusion–exclusion into rectangles, axis-aligned
// triangles, and edge corrections. Signs are chosen so every lattice point
// inside or on the boundary of the true triangle is counted exactly once.
package convolution

import (
	"math/big"

	"github.com/katalvlaran/nrconv/geom"
)

// Triangle convolves A and B over the lattice points of the closed
// triangle (v0, v1, v2) with arbitrary rational vertices.
func Triangle(a, b []*big.Int, v0, v1, v2 geom.Point, p *big.Int) (Window, error) {
	if _, err := validated(a, b, v0, v1, v2); err != nil {
		return Window{}, err
	}

	return convolveTriangle(a, b, v0, v1, v2, p)
}

// convolveTriangle is the unvalidated kernel behind Triangle, shared by
// the polygon driver.
func convolveTriangle(a, b []*big.Int, v0, v1, v2 geom.Point, p *big.Int) (Window, error) {
	// 1) Tight bounding box and per-vertex corner collisions.
	r, err := geom.BoundingRect(v0, v1, v2)
	if err != nil {
		return Window{}, err
	}
	var hits, free []geom.Point
	for _, v := range []geom.Point{v0, v1, v2} {
		if collides(v, r) {
			hits = append(hits, v)
		} else {
			free = append(free, v)
		}
	}

	// 2) Dispatch on the collision count.
	switch len(hits) {
	case 3:
		// Already axis-aligned.
		return convolveAxisTriangle(a, b, v0, v1, v2, p)
	case 2:
		if hits[0].X.Cmp(hits[1].X) != 0 && hits[0].Y.Cmp(hits[1].Y) != 0 {
			return triangleOppositeCorners(a, b, r, hits[0], hits[1], free[0], p)
		}

		return triangleSharedSide(a, b, hits[0], hits[1], free[0], p)
	case 1:
		return triangleSingleCorner(a, b, r, hits[0], free[0], free[1], p)
	}

	// Zero collisions cannot arise for triangles cut from a convex
	// polygon against their own tight bounding box.
	return Window{}, ErrTriangleShape
}

// collides reports whether v coincides with a corner of the bounding box.
func collides(v geom.Point, r geom.Rect) bool {
	onX := v.X.Cmp(r.MinX) == 0 || v.X.Cmp(r.MaxX) == 0
	onY := v.Y.Cmp(r.MinY) == 0 || v.Y.Cmp(r.MaxY) == 0

	return onX && onY
}

// triangleOppositeCorners handles two collisions on diagonally opposite
// bounding-box corners c0, c1 with one free vertex: the rectangle between
// the free vertex and the box corner across the diagonal, one axis
// triangle per colliding corner, and a corrective third triangle for the
// half of the box beyond the diagonal.
func triangleOppositeCorners(a, b []*big.Int, r geom.Rect, c0, c1, vFree geom.Point, p *big.Int) (Window, error) {
	// 1) Box corner on the far side of the c0–c1 diagonal from the free
	//    vertex, and the two remaining corners of the vFree–q rectangle.
	q := geom.OpposingRectVertex(vFree, c0, c1)
	cornerA := geom.Point{X: vFree.X, Y: q.Y}
	cornerB := geom.Point{X: q.X, Y: vFree.Y}
	b0 := geom.CloserPoint(c0, cornerA, cornerB)
	b1 := cornerB
	if b0.Equal(cornerB) {
		b1 = cornerA
	}

	// 2) Signed pieces; the two subtracted edges undo the double count of
	//    the rectangle sides shared with the axis triangles, and the
	//    re-added diagonal undoes the corrective triangle's boundary.
	steps := []step{
		{sign: signPlus, conv: convRectangle, pts: []geom.Point{vFree, q}},
		{sign: signPlus, conv: convAxisTriangle, pts: []geom.Point{c0, b0, vFree}},
		{sign: signMinus, conv: convEdge, pts: []geom.Point{b0, vFree}},
		{sign: signPlus, conv: convAxisTriangle, pts: []geom.Point{c1, b1, vFree}},
		{sign: signMinus, conv: convEdge, pts: []geom.Point{b1, vFree}},
		{sign: signMinus, conv: convAxisTriangle, pts: []geom.Point{c0, c1, q}},
		{sign: signPlus, conv: convEdge, pts: []geom.Point{c0, c1}},
	}

	return runTriangleSteps(a, b, r, p, steps)
}

// triangleSharedSide handles two collisions on the same bounding-box side:
// the foot of the perpendicular from the free vertex onto that side splits
// the triangle into two axis triangles sharing one edge.
func triangleSharedSide(a, b []*big.Int, c0, c1, vFree geom.Point, p *big.Int) (Window, error) {
	// 1) Foot of the perpendicular, on the vertical or horizontal side.
	var foot geom.Point
	if c0.X.Cmp(c1.X) == 0 {
		foot = geom.Point{X: c0.X, Y: vFree.Y}
	} else {
		foot = geom.Point{X: vFree.X, Y: c0.Y}
	}

	// 2) Two axis triangles; their shared leg is subtracted once.
	steps := []step{
		{sign: signPlus, conv: convAxisTriangle, pts: []geom.Point{c0, foot, vFree}},
		{sign: signPlus, conv: convAxisTriangle, pts: []geom.Point{c1, foot, vFree}},
		{sign: signMinus, conv: convEdge, pts: []geom.Point{foot, vFree}},
	}

	r, err := geom.BoundingRect(c0, c1, vFree)
	if err != nil {
		return Window{}, err
	}

	return runTriangleSteps(a, b, r, p, steps)
}

// triangleSingleCorner handles one collision: the full bounding box minus
// the three axis triangles outside the true triangle, with each cut edge
// added back to undo its double subtraction.
func triangleSingleCorner(a, b []*big.Int, r geom.Rect, c0, u, v geom.Point, p *big.Int) (Window, error) {
	// 1) Box corner diagonally opposite the colliding vertex, and the
	//    non-diagonal corners across the diagonal from each free vertex.
	q := geom.Point{
		X: new(big.Rat).Add(r.MinX, r.MaxX),
		Y: new(big.Rat).Add(r.MinY, r.MaxY),
	}
	q.X.Sub(q.X, c0.X)
	q.Y.Sub(q.Y, c0.Y)
	k0 := geom.OpposingRectVertex(v, c0, q)
	k1 := geom.OpposingRectVertex(u, c0, q)

	// 2) Box minus the three corner triangles; each shared cut edge is
	//    re-added once.
	steps := []step{
		{sign: signPlus, conv: convRectangle, pts: []geom.Point{c0, q}},
		{sign: signMinus, conv: convAxisTriangle, pts: []geom.Point{c0, k0, u}},
		{sign: signPlus, conv: convEdge, pts: []geom.Point{c0, u}},
		{sign: signMinus, conv: convAxisTriangle, pts: []geom.Point{c0, k1, v}},
		{sign: signPlus, conv: convEdge, pts: []geom.Point{c0, v}},
		{sign: signMinus, conv: convAxisTriangle, pts: []geom.Point{q, u, v}},
		{sign: signPlus, conv: convEdge, pts: []geom.Point{u, v}},
	}

	return runTriangleSteps(a, b, r, p, steps)
}

// runTriangleSteps allocates the output window of the triangle's bounding
// box and folds the decomposition into it.
func runTriangleSteps(a, b []*big.Int, r geom.Rect, p *big.Int, steps []step) (Window, error) {
	size, kmin := r.Round().Window()
	if size == 0 {
		return Window{Offset: kmin}, nil
	}

	win := newWindow(size, kmin)
	if err := runSteps(win, a, b, p, steps); err != nil {
		return Window{}, err
	}

	return win, nil
}
