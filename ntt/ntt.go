// Package ntt - iterative radix-2 transform and dense convolution.
package ntt

import (
	"math/big"

	"github.com/katalvlaran/nrconv/primes"
)

// Convolve returns the exact convolution of a and b as a vector of length
// len(a)+len(b)−1, computed by forward NTT, pointwise multiplication, and
// inverse NTT modulo p. Residues are lifted to the symmetric range
// (−p/2, p/2], so sequences with negative entries round-trip exactly; for
// inputs within the magnitude bound of primes.NTTPrime the lift is the
// identity.
//
// Preconditions: p prime with p ≡ 1 (mod N) for N the smallest power of
// two ≥ len(a)+len(b). Violations surface as ErrBadModulus or
// ErrNoRootOfUnity; empty inputs as ErrEmptySequence.
func Convolve(a, b []*big.Int, p *big.Int) ([]*big.Int, error) {
	// 1) Validate inputs.
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptySequence
	}
	outLen := len(a) + len(b) - 1
	length := primes.NextPowerOfTwo(len(a) + len(b))
	if p.Cmp(big.NewInt(3)) < 0 {
		return nil, ErrBadModulus
	}
	pm1 := new(big.Int).Sub(p, bigOne)
	if new(big.Int).Mod(pm1, big.NewInt(int64(length))).Sign() != 0 {
		return nil, ErrBadModulus
	}

	// 2) Derive a primitive N-th root of unity and its inverse.
	omega, err := rootOfUnity(length, p)
	if err != nil {
		return nil, err
	}
	omegaInv := new(big.Int).ModInverse(omega, p)

	// 3) Pad both vectors to length N, reduced into [0, p).
	fa := pad(a, length, p)
	fb := pad(b, length, p)

	// 4) Forward transforms.
	transform(fa, omega, p)
	transform(fb, omega, p)

	// 5) Pointwise product mod p.
	for i := range fa {
		fa[i].Mul(fa[i], fb[i])
		fa[i].Mod(fa[i], p)
	}

	// 6) Inverse transform and 1/N scaling.
	transform(fa, omegaInv, p)
	nInv := new(big.Int).ModInverse(big.NewInt(int64(length)), p)
	half := new(big.Int).Rsh(p, 1) // ⌊p/2⌋; residue r > half ⇒ value r−p
	for i := range fa {
		fa[i].Mul(fa[i], nInv)
		fa[i].Mod(fa[i], p)
		if fa[i].Cmp(half) > 0 {
			fa[i].Sub(fa[i], p)
		}
	}

	return fa[:outLen], nil
}

// pad returns a length-n vector of fresh residues of v modulo p.
func pad(v []*big.Int, n int, p *big.Int) []*big.Int {
	out := make([]*big.Int, n)
	for i, x := range v {
		out[i] = new(big.Int).Mod(x, p)
	}
	for i := len(v); i < n; i++ {
		out[i] = new(big.Int)
	}

	return out
}

// transform runs the in-place iterative Cooley–Tukey butterfly network on
// v using omega as the length-len(v) root. Passing the inverse root gives
// the unscaled inverse transform.
func transform(v []*big.Int, omega, p *big.Int) {
	n := len(v)

	// 1) Bit-reversal permutation.
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit
		if i < j {
			v[i], v[j] = v[j], v[i]
		}
	}

	// 2) Butterfly stages of doubling span.
	t := new(big.Int)
	for span := 2; span <= n; span <<= 1 {
		// Stage root: ω^(n/span) has exact order span.
		w := new(big.Int).Exp(omega, big.NewInt(int64(n/span)), p)
		for start := 0; start < n; start += span {
			wk := big.NewInt(1)
			for k := 0; k < span/2; k++ {
				lo, hi := v[start+k], v[start+k+span/2]
				t.Mul(wk, hi)
				t.Mod(t, p)
				hi.Sub(lo, t)
				hi.Mod(hi, p)
				lo.Add(lo, t)
				lo.Mod(lo, p)
				wk.Mul(wk, w)
				wk.Mod(wk, p)
			}
		}
	}
}

// rootOfUnity returns a primitive n-th root of unity mod p for n a power
// of two dividing p−1: candidates x^((p−1)/n) for x = 2, 3, … are accepted
// once the order is exactly n, i.e. the candidate's n/2-th power is not 1.
func rootOfUnity(n int, p *big.Int) (*big.Int, error) {
	if n == 1 {
		return big.NewInt(1), nil
	}

	exp := new(big.Int).Sub(p, bigOne)
	exp.Div(exp, big.NewInt(int64(n)))
	halfOrder := big.NewInt(int64(n / 2))

	for x := int64(2); x < maxRootWitnesses; x++ {
		w := new(big.Int).Exp(big.NewInt(x), exp, p)
		// w^n = 1 by construction; exact order n ⇔ w^(n/2) ≠ 1.
		if new(big.Int).Exp(w, halfOrder, p).Cmp(bigOne) != 0 {
			return w, nil
		}
	}

	return nil, ErrNoRootOfUnity
}

// bigOne is the integer constant 1, shared across the transform.
var bigOne = big.NewInt(1)
