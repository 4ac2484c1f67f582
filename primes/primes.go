// Package primes - deterministic search for NTT-friendly moduli.
package primes

import "math/big"

// NextPowerOfTwo returns the smallest power of two ≥ n (1 for n ≤ 1).
func NextPowerOfTwo(n int) int {
	power := 1
	for power < n {
		power <<= 1
	}

	return power
}

// PrimeWithResidue returns the smallest prime q ≥ min with
// q ≡ residue (mod base). Candidates start at residue, are
// fast-forwarded past min, and advance by base; primality is decided by
// ProbablyPrime (Baillie-PSW plus Miller-Rabin rounds). A nil min is
// treated as 0.
//
// Returns ErrInvalidResidue for an out-of-range residue class and
// ErrNoPrimeFound if the candidate budget runs out.
func PrimeWithResidue(base, residue int, min *big.Int) (*big.Int, error) {
	// 1) Residue-class sanity.
	if base < 1 || residue < 0 || residue >= base {
		return nil, ErrInvalidResidue
	}

	// 2) First candidate in the class: the residue itself.
	step := big.NewInt(int64(base))
	candidate := big.NewInt(int64(residue))

	// 3) Fast-forward past min in one division instead of a linear walk.
	if min != nil && candidate.Cmp(min) < 0 {
		gap := new(big.Int).Sub(min, candidate)
		gap.Add(gap, new(big.Int).Sub(step, bigOne)) // round the quotient up
		gap.Div(gap, step)
		candidate.Add(candidate, gap.Mul(gap, step))
	}

	// 4) Walk the residue class until the predicate accepts.
	for i := 0; i < maxCandidates; i++ {
		if candidate.ProbablyPrime(mrRounds) {
			return candidate, nil
		}
		candidate.Add(candidate, step)
	}

	return nil, ErrNoPrimeFound
}

// NTTPrime returns a prime p = m·2^k + 1 suitable for the number-theoretic
// transform of a and b: 2^k is twice the next power of two above the longer
// sequence (so p−1 is divisible by every transform length the convolvers
// derive), and p > max|a|·max|b|·2^k ≥ max|C_k|, which keeps the unsigned
// NTT result equal to the integer convolution.
//
// Returns ErrEmptySequence when either sequence is empty.
func NTTPrime(a, b []*big.Int) (*big.Int, error) {
	// 1) Both sequences must contribute a magnitude bound.
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptySequence
	}

	// 2) Transform length: twice the padded longer input.
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	length := 2 * NextPowerOfTwo(longer)

	// 3) Lower bound M = max|a|·max|b|·N + 1 on the modulus.
	bound := maxAbs(a)
	bound.Mul(bound, maxAbs(b))
	bound.Mul(bound, big.NewInt(int64(length)))
	bound.Add(bound, bigOne)

	// 4) Smallest prime ≥ M in the class 1 mod N.
	return PrimeWithResidue(length, 1, bound)
}

// maxAbs returns the largest absolute value in v as a fresh big.Int.
func maxAbs(v []*big.Int) *big.Int {
	best := v[0]
	for _, x := range v[1:] {
		if x.CmpAbs(best) > 0 {
			best = x
		}
	}

	return new(big.Int).Abs(best)
}

// bigOne is the integer constant 1, shared by the searches.
var bigOne = big.NewInt(1)
