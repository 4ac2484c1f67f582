// Package geom - exact rounding, bounding rectangles, and the corner
// predicates used by the triangle decomposition.
//
// Design principles:
//   - Deterministic, side-effect free functions over immutable inputs.
//   - All comparisons in exact rational arithmetic; no floating point.
//   - No panics on user input - only sentinel errors from types.go.
package geom

import "math/big"

// FloorRat returns the largest integer ≤ r.
//
// Complexity: O(M(d)) for d-digit numerator/denominator.
func FloorRat(r *big.Rat) int {
	// big.Rat keeps the denominator positive, so Euclidean division of the
	// numerator rounds toward -∞, which is exactly floor.
	q := new(big.Int).Div(r.Num(), r.Denom())

	return int(q.Int64())
}

// CeilRat returns the smallest integer ≥ r, via ceil(x) = -floor(-x).
func CeilRat(r *big.Rat) int {
	q := new(big.Int).Neg(r.Num())
	q.Div(q, r.Denom())
	q.Neg(q)

	return int(q.Int64())
}

// IsInt reports whether r is an integer, i.e. ceil(r) == r.
func IsInt(r *big.Rat) bool {
	return r.IsInt()
}

// BoundingRect returns the exact axis-aligned bounding rectangle of the
// given vertices. At least one vertex is required.
//
// Complexity: O(n) comparisons.
func BoundingRect(pts ...Point) (Rect, error) {
	// 1) Reject the empty list up front.
	if len(pts) == 0 {
		return Rect{}, ErrNoVertices
	}

	// 2) Seed the extrema with the first vertex.
	r := Rect{
		MinX: new(big.Rat).Set(pts[0].X),
		MinY: new(big.Rat).Set(pts[0].Y),
		MaxX: new(big.Rat).Set(pts[0].X),
		MaxY: new(big.Rat).Set(pts[0].Y),
	}

	// 3) Widen with every remaining vertex.
	for _, p := range pts[1:] {
		if p.X.Cmp(r.MinX) < 0 {
			r.MinX.Set(p.X)
		}
		if p.X.Cmp(r.MaxX) > 0 {
			r.MaxX.Set(p.X)
		}
		if p.Y.Cmp(r.MinY) < 0 {
			r.MinY.Set(p.Y)
		}
		if p.Y.Cmp(r.MaxY) > 0 {
			r.MaxY.Set(p.Y)
		}
	}

	return r, nil
}

// Round returns the integer-rounded form of the rectangle: ceil on the
// minima and floor on the maxima. The result is empty exactly when the
// exact rectangle contains no lattice point in that axis.
func (r Rect) Round() IntRect {
	return IntRect{
		MinX: CeilRat(r.MinX),
		MinY: CeilRat(r.MinY),
		MaxX: FloorRat(r.MaxX),
		MaxY: FloorRat(r.MaxY),
	}
}

// ConvolutionWindow returns the size and first sum-index k_min of the
// contiguous range of i+j values the lattice points of the given vertex
// set can produce. Size is 0 when the integer bounding rectangle is empty;
// k_min = ⌈x_min⌉ + ⌈y_min⌉ is reported either way.
func ConvolutionWindow(pts ...Point) (size, kmin int, err error) {
	r, err := BoundingRect(pts...)
	if err != nil {
		return 0, 0, err
	}
	size, kmin = r.Round().Window()

	return size, kmin, nil
}

// CloserPoint returns whichever of a, b has the smaller squared Euclidean
// distance to ref, preferring a on ties.
func CloserPoint(ref, a, b Point) Point {
	if sqDist(ref, a).Cmp(sqDist(ref, b)) <= 0 {
		return a
	}

	return b
}

// sqDist returns the exact squared Euclidean distance between two points.
func sqDist(p, q Point) *big.Rat {
	dx := new(big.Rat).Sub(p.X, q.X)
	dy := new(big.Rat).Sub(p.Y, q.Y)
	dx.Mul(dx, dx)
	dy.Mul(dy, dy)

	return dx.Add(dx, dy)
}

// OpposingRectVertex determines the opposite rectangle corner relative to a
// reference point.
//
// Given two diagonally opposite corners d0, d1 of an axis-aligned,
// non-degenerate rectangle, the remaining corners are (d1.X, d0.Y) and
// (d0.X, d1.Y). The function returns the one on the opposing side of the
// d0–d1 diagonal from ref, decided by the normalized L1 test
//
//	|a.X - ref.X| / |d1.X - d0.X|  +  |a.Y - ref.Y| / |d0.Y - d1.Y|  >  1
//
// for corner a = (d1.X, d0.Y); points on the diagonal itself resolve to
// the corner (d0.X, d1.Y).
func OpposingRectVertex(ref, d0, d1 Point) Point {
	// 1) The two non-diagonal corners.
	cornerA := Point{X: d1.X, Y: d0.Y}
	cornerB := Point{X: d0.X, Y: d1.Y}

	// 2) Rectangle side lengths (non-zero per the non-degeneracy contract).
	weightX := new(big.Rat).Sub(cornerA.X, d0.X)
	weightX.Abs(weightX)
	weightY := new(big.Rat).Sub(cornerA.Y, d1.Y)
	weightY.Abs(weightY)

	// 3) L1 offsets of ref from cornerA, normalized by the side lengths.
	partX := new(big.Rat).Sub(cornerA.X, ref.X)
	partX.Abs(partX)
	partX.Quo(partX, weightX)
	partY := new(big.Rat).Sub(cornerA.Y, ref.Y)
	partY.Abs(partY)
	partY.Quo(partY, weightY)

	// 4) ref is beyond the diagonal from cornerA ⇒ cornerA is the far one.
	if new(big.Rat).Add(partX, partY).Cmp(one) > 0 {
		return cornerA
	}

	return cornerB
}

// one is the rational constant 1, shared by the diagonal test.
var one = big.NewRat(1, 1)
