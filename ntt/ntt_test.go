package ntt_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nrconv/ntt"
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

// naive is the quadratic schoolbook convolution the transform is checked
// against.
func naive(a, b []*big.Int) []*big.Int {
	out := make([]*big.Int, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Int)
	}
	for i, x := range a {
		for j, y := range b {
			out[i+j].Add(out[i+j], new(big.Int).Mul(x, y))
		}
	}

	return out
}

// requireSameValues compares two sequences element by element.
func requireSameValues(t *testing.T, want, got []*big.Int) {
	t.Helper()
	require.Equal(t, len(want), len(got), "lengths must match")
	for i := range want {
		require.Zerof(t, want[i].Cmp(got[i]),
			"mismatch at %d: want %s, got %s", i, want[i], got[i])
	}
}

// convolve derives the prime and runs the transform.
func convolve(t *testing.T, a, b []*big.Int) []*big.Int {
	t.Helper()
	p, err := primes.NTTPrime(a, b)
	require.NoError(t, err)
	out, err := ntt.Convolve(a, b, p)
	require.NoError(t, err)

	return out
}

// TestConvolve_OnesProfile reproduces the triangular profile of two
// all-ones vectors.
func TestConvolve_OnesProfile(t *testing.T) {
	a := bigs(1, 1, 1, 1, 1, 1, 1, 1)
	got := convolve(t, a, a)
	requireSameValues(t, bigs(1, 2, 3, 4, 5, 6, 7, 8, 7, 6, 5, 4, 3, 2, 1), got)
}

// TestConvolve_MatchesNaive cross-checks assorted shapes and lengths
// against the schoolbook sum.
func TestConvolve_MatchesNaive(t *testing.T) {
	cases := []struct{ a, b []*big.Int }{
		{bigs(1), bigs(5)},
		{bigs(1, 2, 3), bigs(4, 5)},
		{bigs(14, 23, 63, 41, 12, 42, 75, 32, 21), bigs(9, 8, 7, 6, 5, 4, 3, 2, 1)},
		{bigs(1, 0, 0, 0, 7), bigs(0, 0, 2)},
	}
	for i, tc := range cases {
		got := convolve(t, tc.a, tc.b)
		requireSameValues(t, naive(tc.a, tc.b), got)
		assert.Lenf(t, got, len(tc.a)+len(tc.b)-1, "case %d length", i)
	}
}

// TestConvolve_SignedValues lifts residues back to negative integers.
func TestConvolve_SignedValues(t *testing.T) {
	a := bigs(3, -5, 2)
	b := bigs(-1, 4)
	got := convolve(t, a, b)
	requireSameValues(t, naive(a, b), got)
}

// TestConvolve_LosslessBound keeps every result strictly below the chosen
// prime (no wrap-around).
func TestConvolve_LosslessBound(t *testing.T) {
	a := bigs(75, 75, 75, 75, 75, 75, 75, 75)
	p, err := primes.NTTPrime(a, a)
	require.NoError(t, err)
	got, err := ntt.Convolve(a, a, p)
	require.NoError(t, err)
	for i, v := range got {
		assert.Negativef(t, v.Cmp(p), "C_%d must stay below p", i)
		assert.GreaterOrEqualf(t, v.Sign(), 0, "C_%d is a plain product sum", i)
	}
}

// TestConvolve_BadModulus rejects a prime whose multiplicative group
// cannot host the transform length.
func TestConvolve_BadModulus(t *testing.T) {
	a := bigs(1, 2, 3)
	// len(a)+len(b) = 6 pads to N = 8, but 19 − 1 = 18 is not a multiple
	// of 8.
	_, err := ntt.Convolve(a, a, big.NewInt(19))
	assert.ErrorIs(t, err, ntt.ErrBadModulus)
}

// TestConvolve_EmptySequence rejects empty inputs.
func TestConvolve_EmptySequence(t *testing.T) {
	_, err := ntt.Convolve(nil, bigs(1), big.NewInt(17))
	assert.ErrorIs(t, err, ntt.ErrEmptySequence)

	_, err = ntt.Convolve(bigs(1), nil, big.NewInt(17))
	assert.ErrorIs(t, err, ntt.ErrEmptySequence)
}
