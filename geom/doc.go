// Package geom provides the exact-rational plane geometry underneath the
// convex-region convolution: points, polygons, bounding rectangles, and the
// two small corner-selection predicates the triangle decomposition relies on.
//
// What:
//
//   - Point/Polygon over math/big.Rat coordinates; equality is componentwise.
//   - BoundingRect: exact axis-aligned bounding rectangle of a vertex list,
//     with Round() producing the ceil-minima/floor-maxima integer form.
//   - ConvolutionWindow: size and first sum-index k_min of the contiguous
//     range of i+j values the polygon's lattice points can produce.
//   - CloserPoint: squared-distance comparison with a deterministic tie rule.
//   - OpposingRectVertex: which non-diagonal corner of an axis-aligned
//     rectangle lies across a given diagonal from a reference point.
//
// Why:
//
//   - Vertex coordinates are arbitrary rationals; lattice membership on a
//     rational line is decided by exact comparisons, never floating point.
//     A float short-circuit misclassifies points on lines with rational
//     slopes, which silently corrupts convolution values.
//
// Complexity:
//
//   - All operations are O(n) in the vertex count with O(1) extra memory;
//     individual big.Rat operations cost O(M(d)) for d-digit coordinates.
//
// Errors:
//
//   - ErrNoVertices: a bounding rectangle or window was requested for an
//     empty vertex list.
package geom
