// Package nrconv computes convolutions of integer sequences restricted
// to a convex planar region.
//
// 🚀 What is nrconv?
//
//	A pure-Go library that evaluates, for two integer sequences A and B
//	and a convex polygon P with rational vertices,
//
//	    C_k = Σ { a_i·b_j : (i,j) ∈ P ∩ ℤ², i+j = k }
//
//	together with the offset of C's first element.  Only lattice points
//	inside or on the boundary of P contribute.
//
// ✨ Why choose nrconv?
//
//   - Exact        — rational vertex arithmetic, lossless NTT results
//   - Fast         — inclusion–exclusion reduces any convex region to a
//     handful of dense rectangular NTT convolutions
//   - Rock-solid   — sentinel errors, deterministic evaluation order
//   - Pure Go      — no cgo, no hidden dependencies
//
// Under the hood, everything is organized under four subpackages:
//
//	geom/        — exact rational points, bounding boxes, convolution windows
//	primes/      — NTT-friendly prime search (p = m·2^k + 1, large enough to be lossless)
//	ntt/         — radix-2 number-theoretic transform and dense convolution mod p
//	convolution/ — base-case convolvers (edge, rectangle, triangles) and the
//	               recursive convex-polygon decomposition driver
//
// Quick ASCII example:
//
//	    y ▲      ____
//	      │     /    \
//	      │    /  P   \      only the lattice points of P contribute
//	      │    \______/      to the convolution of A and B
//	      └──────────────▶ x
//
// Dive into the package docs for the decomposition rules, complexity
// bounds, and the exact numeric contract.
//
//	go get github.com/katalvlaran/nrconv
package nrconv
