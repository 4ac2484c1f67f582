// Package ntt implements the radix-2 number-theoretic transform over a
// prime field and the dense integer convolution built on it.
//
// What:
//
//   - Convolve: exact convolution of two integer vectors modulo a prime p
//     with p ≡ 1 (mod N), N the padded transform length. The output is the
//     advertised convolution length len(a)+len(b)−1.
//   - Forward/inverse transforms are iterative Cooley–Tukey butterflies
//     over bit-reversed order; the primitive N-th root of unity is derived
//     from a small witness x as ω = x^((p−1)/N) with an exact-order check.
//
// Why:
//
//   - A DFT over a prime field turns convolution into pointwise products
//     with no rounding. When the caller's prime exceeds every possible
//     result magnitude (see package primes), the residues are the exact
//     integer convolution values.
//
// Complexity:
//
//   - O(N log N) big.Int multiplications mod p, O(N) scratch, released on
//     return. No recursion.
//
// Errors:
//
//   - ErrEmptySequence: both inputs must be non-empty.
//   - ErrBadModulus: p < 3 or p−1 is not divisible by the transform length.
//   - ErrNoRootOfUnity: no witness of exact order N was found within the
//     scan budget (only reachable when p is not actually prime).
package ntt
