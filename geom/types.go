// Package geom - value types shared by the geometry helpers.
package geom

import (
	"errors"
	"math/big"
)

// Sentinel errors for geometry input validation.
var (
	// ErrNoVertices indicates an empty vertex list was passed where at
	// least one point is required.
	ErrNoVertices = errors.New("geom: vertex list must be non-empty")
)

// Point is an ordered pair (X, Y) of exact rational coordinates.
// Equality is componentwise; see Equal.
type Point struct {
	X, Y *big.Rat
}

// IntPoint returns the point (x, y) with integer coordinates.
func IntPoint(x, y int64) Point {
	return Point{X: big.NewRat(x, 1), Y: big.NewRat(y, 1)}
}

// RatPoint returns the point (xn/xd, yn/yd). The denominators must be
// non-zero, as with big.NewRat.
func RatPoint(xn, xd, yn, yd int64) Point {
	return Point{X: big.NewRat(xn, xd), Y: big.NewRat(yn, yd)}
}

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Polygon is an ordered sequence of vertices of a convex polygon in order
// around its boundary. Orientation is not observed. Convexity and the
// absence of three consecutive collinear vertices are caller invariants
// and are not re-checked here.
type Polygon []Point

// Rect is an exact axis-aligned bounding rectangle.
// Invariant: MinX ≤ MaxX and MinY ≤ MaxY.
type Rect struct {
	MinX, MinY, MaxX, MaxY *big.Rat
}

// IntRect is the integer-rounded form of a Rect: ceil on minima, floor on
// maxima. It is empty exactly when MinX > MaxX or MinY > MaxY.
type IntRect struct {
	MinX, MinY, MaxX, MaxY int
}

// Empty reports whether the rectangle contains no lattice point.
func (r IntRect) Empty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

// Window returns the convolution window of the rectangle: the number of
// distinct i+j sums its lattice points can produce, and the smallest such
// sum k_min = MinX + MinY. The size is 0 for an empty rectangle; k_min is
// reported either way.
func (r IntRect) Window() (size, kmin int) {
	kmin = r.MinX + r.MinY
	if r.Empty() {
		return 0, kmin
	}

	return r.MaxX + r.MaxY - kmin + 1, kmin
}
