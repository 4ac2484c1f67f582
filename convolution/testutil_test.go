// Package convolution_test provides lightweight testing helpers shared
// across *_test.go files in this package: sequence builders, window
// flattening, and a brute-force lattice-scan reference implementation the
// decomposition results are compared against.
package convolution_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nrconv/convolution"
	"github.com/katalvlaran/nrconv/geom"
	"github.com/katalvlaran/nrconv/primes"
)

// bigs converts literal int64 values into a sequence.
func bigs(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}

	return out
}

// ones returns a length-n sequence of ones.
func ones(n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = big.NewInt(1)
	}

	return out
}

// ramp returns the sequence 1, 2, …, n; distinct values catch alignment
// mistakes that all-ones inputs would mask.
func ramp(n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = big.NewInt(int64(i + 1))
	}

	return out
}

// ints flattens window values to int64 for literal comparisons.
func ints(w convolution.Window) []int64 {
	out := make([]int64, len(w.Values))
	for i, v := range w.Values {
		out[i] = v.Int64()
	}

	return out
}

// mustPrime derives the NTT prime for a and b or fails the test.
func mustPrime(t *testing.T, a, b []*big.Int) *big.Int {
	t.Helper()
	p, err := primes.NTTPrime(a, b)
	require.NoError(t, err, "prime selection must succeed")

	return p
}

// cross returns the sign of the cross product (a−o) × (b−o).
func cross(o, a, b geom.Point) int {
	lhs := new(big.Rat).Sub(a.X, o.X)
	lhs.Mul(lhs, new(big.Rat).Sub(b.Y, o.Y))
	rhs := new(big.Rat).Sub(a.Y, o.Y)
	rhs.Mul(rhs, new(big.Rat).Sub(b.X, o.X))

	return lhs.Sub(lhs, rhs).Sign()
}

// onSegment reports whether q lies on the closed segment s–e.
func onSegment(s, e, q geom.Point) bool {
	if cross(s, e, q) != 0 {
		return false
	}
	loX, hiX := s.X, e.X
	if loX.Cmp(hiX) > 0 {
		loX, hiX = hiX, loX
	}
	loY, hiY := s.Y, e.Y
	if loY.Cmp(hiY) > 0 {
		loY, hiY = hiY, loY
	}

	return q.X.Cmp(loX) >= 0 && q.X.Cmp(hiX) <= 0 &&
		q.Y.Cmp(loY) >= 0 && q.Y.Cmp(hiY) <= 0
}

// contains reports closed membership of q in the convex polygon (any
// orientation). Two-vertex polygons degenerate to segment membership.
func contains(poly geom.Polygon, q geom.Point) bool {
	if len(poly) == 2 {
		return onSegment(poly[0], poly[1], q)
	}

	pos, neg := 0, 0
	for i := range poly {
		switch cross(poly[i], poly[(i+1)%len(poly)], q) {
		case 1:
			pos++
		case -1:
			neg++
		}
	}

	// Mixed strict signs put q outside; zeros are boundary hits.
	return pos == 0 || neg == 0
}

// reference computes the restricted convolution by scanning every lattice
// pair, as the ground truth for the decomposition engines.
func reference(t *testing.T, a, b []*big.Int, poly geom.Polygon) convolution.Window {
	t.Helper()
	size, kmin, err := geom.ConvolutionWindow(poly...)
	require.NoError(t, err, "window derivation must succeed")
	if size == 0 {
		return convolution.Window{Offset: kmin}
	}

	values := make([]*big.Int, size)
	for i := range values {
		values[i] = new(big.Int)
	}
	for i := range a {
		for j := range b {
			if !contains(poly, geom.IntPoint(int64(i), int64(j))) {
				continue
			}
			idx := i + j - kmin
			if idx < 0 || idx >= size {
				continue
			}
			values[idx].Add(values[idx], new(big.Int).Mul(a[i], b[j]))
		}
	}

	return convolution.Window{Values: values, Offset: kmin}
}

// requireSameWindow compares a computed window against the reference.
func requireSameWindow(t *testing.T, want, got convolution.Window) {
	t.Helper()
	require.Equal(t, want.Offset, got.Offset, "offsets must match")
	require.Equal(t, len(want.Values), len(got.Values), "window sizes must match")
	for i := range want.Values {
		require.Zerof(t, want.Values[i].Cmp(got.Values[i]),
			"value mismatch at window index %d: want %s, got %s",
			i, want.Values[i], got.Values[i])
	}
}
