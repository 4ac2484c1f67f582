// Package convolution computes convolutions of two integer sequences
// restricted to a convex planar region, by recursive inclusion–exclusion
// over a fixed set of base shapes.
//
// # What & Why
//
// Given integer sequences A, B and a convex polygon P with rational
// vertices, every operation returns the pair (values, offset) with
//
//	values[k − offset] = Σ { A[i]·B[j] : (i,j) ∈ P ∩ ℤ², i+j = k }
//
// over the polygon's convolution window. The driver reduces an arbitrary
// convex k-gon to a signed sum of convolutions over base shapes:
//
//	ConvexPolygon ─▶ Triangle ─▶ AxisAlignedTriangle ─▶ Rectangle ─▶ NTT
//	      │              │               │
//	      └──────────────┴───────────────┴─▶ Edge (sparse, direct loop)
//
// Dense work lands on axis-aligned rectangles handled by the NTT; edges
// are enumerated directly because lattice points on a rational line are
// sparse. Shared boundaries between signed pieces are corrected with edge
// convolutions so every lattice point of P is counted exactly once.
//
// # Decomposition rules
//
//	Edge          — vertical column, or integer-x scan with exact rational
//	                y membership tests.
//	Rectangle     — NTT over the A/B sub-slices of the integer AABB.
//	AxisAligned   — midpoint split: one rectangle, two half-scale
//	Triangle        sub-triangles, two edge corrections; recursion depth
//	                O(log D) in the larger AABB side.
//	Triangle      — dispatch on how many vertices coincide with corners of
//	                the AABB (3, 2 opposite, 2 on a shared side, 1); each
//	                case is a fixed signed list of rectangles, axis
//	                triangles, and edges.
//	ConvexPolygon — k=2 edge, k=3 triangle, k=4 diagonal split; k≥5
//	                recurses on the even-indexed sub-polygon and splices
//	                the odd-vertex ears back in; recursion depth O(log k).
//
// # Determinism & Exactness
//
//   - All geometry comparisons run on math/big.Rat; all sequence values,
//     primes, and results are math/big.Int.
//   - Step lists are evaluated in a fixed order; results are independent
//     of that order but deterministic for a given input.
//   - Single-threaded and purely functional: inputs are read-only, outputs
//     freshly allocated and caller-owned.
//
// # Input Requirements
//
//	Every lattice point of the polygon's integer AABB must index both
//	sequences: minima ≥ 0, x_max < len(A), y_max < len(B). The prime p
//	must come from primes.NTTPrime (or satisfy the same divisibility and
//	magnitude guarantees). Polygons need ≥ 2 vertices; convexity is a
//	caller invariant and is not re-checked.
//
// # Errors
//
//   - ErrSequenceBounds: integer AABB exceeds the sequence index range.
//   - ErrPolygonSize: fewer than two vertices.
//   - ErrWindowRange: a signed sub-slice fell outside its parent window;
//     indicates a decomposition bug, never user input.
//   - ErrTriangleShape: a triangle touches no corner of its own AABB,
//     which convex callers cannot produce.
//
// Empty regions are not errors: an empty integer AABB yields nil values
// with offset ⌈x_min⌉ + ⌈y_min⌉.
package convolution
