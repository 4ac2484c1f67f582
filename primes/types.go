// Package primes - sentinel errors and search constants.
package primes

import "errors"

// Sentinel errors for prime selection.
var (
	// ErrEmptySequence indicates one or both input sequences are empty.
	ErrEmptySequence = errors.New("primes: input sequences must be non-empty")

	// ErrInvalidResidue indicates base < 1 or a residue outside [0, base).
	ErrInvalidResidue = errors.New("primes: residue must satisfy 0 ≤ r < base")

	// ErrNoPrimeFound indicates the search budget was exhausted before a
	// prime in the requested residue class was found.
	ErrNoPrimeFound = errors.New("primes: candidate budget exhausted")
)

const (
	// maxCandidates bounds the residue-class scan in PrimeWithResidue.
	maxCandidates = 1 << 20

	// mrRounds is the Miller-Rabin round count passed to ProbablyPrime.
	// Together with the Baillie-PSW test Go runs first, the predicate is
	// exact below 2⁶⁴ and has no known counterexample above.
	mrRounds = 20
)
