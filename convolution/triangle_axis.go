// Package convolution - the axis-aligned triangle base case.
//
// An axis-aligned triangle has its right angle at the "cathetus corner":
// the vertex sharing its x with one leg and its y with the other. The
// general case splits the triangle at the bounding-box midpoint into one
// rectangle, two half-scale sub-triangles, and two edge corrections, so
// recursion depth is O(log D) in the larger side and dense work lands on
// rectangles handled by the NTT.
package convolution

import (
	"math/big"

	"github.com/katalvlaran/nrconv/geom"
)

// AxisAlignedTriangle convolves A and B over the lattice points of the
// closed axis-aligned triangle (v0, v1, v2): a triangle with one
// horizontal and one vertical leg. All three edges are included.
func AxisAlignedTriangle(a, b []*big.Int, v0, v1, v2 geom.Point, p *big.Int) (Window, error) {
	if _, err := validated(a, b, v0, v1, v2); err != nil {
		return Window{}, err
	}

	return convolveAxisTriangle(a, b, v0, v1, v2, p)
}

// convolveAxisTriangle is the unvalidated kernel behind
// AxisAlignedTriangle, shared by the decomposition steps.
func convolveAxisTriangle(a, b []*big.Int, v0, v1, v2 geom.Point, p *big.Int) (Window, error) {
	// 1) Exact bounding box of the three vertices.
	r, err := geom.BoundingRect(v0, v1, v2)
	if err != nil {
		return Window{}, err
	}

	// 2) Degenerate: a flat triangle is its own bounding-box diagonal.
	if r.MinX.Cmp(r.MaxX) == 0 || r.MinY.Cmp(r.MaxY) == 0 {
		return convolveEdge(a, b,
			geom.Point{X: r.MinX, Y: r.MinY},
			geom.Point{X: r.MaxX, Y: r.MaxY}, p)
	}

	// 3) Cathetus corner: the coordinate sums minus the two extremes leave
	//    the duplicated leg coordinates.
	xCat := new(big.Rat).Add(v0.X, v1.X)
	xCat.Add(xCat, v2.X)
	xCat.Sub(xCat, r.MinX)
	xCat.Sub(xCat, r.MaxX)
	yCat := new(big.Rat).Add(v0.Y, v1.Y)
	yCat.Add(yCat, v2.Y)
	yCat.Sub(yCat, r.MinY)
	yCat.Sub(yCat, r.MaxY)

	// 4) Tiny windows: zero or one candidate lattice point.
	ir := r.Round()
	size, kmin := ir.Window()
	if size == 0 {
		return Window{Offset: kmin}, nil
	}
	if size == 1 {
		return tinyAxisTriangle(a, b, r, ir, xCat, yCat)
	}

	// 5) Remaining corner coordinates and bounding-box midpoints.
	xNot := new(big.Rat).Add(r.MinX, r.MaxX)
	xNot.Sub(xNot, xCat)
	yNot := new(big.Rat).Add(r.MinY, r.MaxY)
	yNot.Sub(yNot, yCat)
	xMid := new(big.Rat).Add(r.MinX, r.MaxX)
	xMid.Mul(xMid, ratHalf)
	yMid := new(big.Rat).Add(r.MinY, r.MaxY)
	yMid.Mul(yMid, ratHalf)

	// 6) Midpoint split: the rectangle between the cathetus corner and the
	//    midpoint, two half-scale sub-triangles, and the two shared-leg
	//    edges that the pieces would otherwise double count.
	catCorner := geom.Point{X: xCat, Y: yCat}
	midCorner := geom.Point{X: xMid, Y: yMid}
	steps := []step{
		{sign: signPlus, conv: convRectangle, pts: []geom.Point{catCorner, midCorner}},
		{sign: signPlus, conv: convAxisTriangle, pts: []geom.Point{
			midCorner, {X: xCat, Y: yMid}, {X: xCat, Y: yNot}}},
		{sign: signMinus, conv: convEdge, pts: []geom.Point{{X: xMid, Y: yCat}, midCorner}},
		{sign: signPlus, conv: convAxisTriangle, pts: []geom.Point{
			midCorner, {X: xMid, Y: yCat}, {X: xNot, Y: yCat}}},
		{sign: signMinus, conv: convEdge, pts: []geom.Point{{X: xCat, Y: yMid}, midCorner}},
	}

	win := newWindow(size, kmin)
	if err = runSteps(win, a, b, p, steps); err != nil {
		return Window{}, err
	}

	return win, nil
}

// tinyAxisTriangle resolves a window of size one: the single candidate
// lattice point (⌈x_min⌉, ⌈y_min⌉) contributes iff it lies inside the
// triangle, by the normalized L1 distance from the cathetus corner.
func tinyAxisTriangle(a, b []*big.Int, r geom.Rect, ir geom.IntRect, xCat, yCat *big.Rat) (Window, error) {
	_, kmin := ir.Window()

	// |X − x_cat| / (x_max − x_min)
	dx := new(big.Rat).SetInt64(int64(ir.MinX))
	dx.Sub(dx, xCat)
	dx.Abs(dx)
	dx.Quo(dx, new(big.Rat).Sub(r.MaxX, r.MinX))

	// |Y − y_cat| / (y_max − y_min)
	dy := new(big.Rat).SetInt64(int64(ir.MinY))
	dy.Sub(dy, yCat)
	dy.Abs(dy)
	dy.Quo(dy, new(big.Rat).Sub(r.MaxY, r.MinY))

	if dx.Add(dx, dy).Cmp(ratOne) > 0 {
		return Window{Offset: kmin}, nil
	}

	return Window{
		Values: []*big.Int{new(big.Int).Mul(a[ir.MinX], b[ir.MinY])},
		Offset: kmin,
	}, nil
}

// Shared rational constants of the decomposition.
var (
	ratOne  = big.NewRat(1, 1)
	ratHalf = big.NewRat(1, 2)
)
