// Package primes selects NTT-friendly prime moduli.
//
// What:
//
//   - NextPowerOfTwo: smallest power of two ≥ n.
//   - PrimeWithResidue: smallest prime q ≥ min with q ≡ r (mod base),
//     found by stepping through the residue class with a deterministic
//     primality predicate.
//   - NTTPrime: given two integer sequences, a prime p = m·2^k + 1 where
//     2^k is the transform length and p exceeds every possible convolution
//     value, so the unsigned NTT result equals the integer convolution
//     exactly (no modular wrap-around).
//
// Why:
//
//   - A radix-2 NTT of length N needs a primitive N-th root of unity mod p,
//     which exists iff N | p−1. Choosing p ≡ 1 (mod N) above the magnitude
//     bound max|a|·max|b|·N makes the transform lossless.
//
// Complexity:
//
//   - PrimeWithResidue: by Dirichlet density, O(log min) candidates in
//     expectation; each ProbablyPrime test is Õ(log³ min).
//   - NTTPrime: the magnitude scan is O(len(A)+len(B)) plus one search.
//
// Errors:
//
//   - ErrEmptySequence: NTTPrime requires both sequences non-empty.
//   - ErrInvalidResidue: base < 1 or residue outside [0, base).
//   - ErrNoPrimeFound: the candidate budget was exhausted. Unreachable for
//     the residue-1 power-of-two classes NTTPrime uses; the budget bounds
//     the failure mode for adversarial residues.
package primes
