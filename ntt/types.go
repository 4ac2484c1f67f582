// Package ntt - sentinel errors and derivation constants.
package ntt

import "errors"

// Sentinel errors for transform preconditions.
var (
	// ErrEmptySequence indicates one or both input vectors are empty.
	ErrEmptySequence = errors.New("ntt: input vectors must be non-empty")

	// ErrBadModulus indicates p < 3 or (p−1) not divisible by the
	// transform length, so no primitive root of unity can exist.
	ErrBadModulus = errors.New("ntt: modulus does not support transform length")

	// ErrNoRootOfUnity indicates the witness scan found no element of
	// exact order N; for a prime modulus with N | p−1 this cannot happen.
	ErrNoRootOfUnity = errors.New("ntt: no primitive root of unity found")
)

// maxRootWitnesses bounds the scan for a root-of-unity witness. Half the
// field elements work for a true prime, so the budget is generous.
const maxRootWitnesses = 1 << 10
