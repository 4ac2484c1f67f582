// Package convolution - entry-point validation shared by the public
// operations.
//
// Design principles:
//   - Validate once at the public boundary; internal recursion operates on
//     sub-geometry whose bounding boxes are contained in the validated one.
//   - Deterministic, side-effect free; only sentinel errors from types.go.
package convolution

import (
	"math/big"

	"github.com/katalvlaran/nrconv/geom"
)

// checkBounds verifies that every lattice point of the integer bounding
// box indexes both sequences: minima ≥ 0, MaxX < len(a), MaxY < len(b).
// An empty box has no lattice points and passes vacuously.
func checkBounds(a, b []*big.Int, r geom.IntRect) error {
	if r.Empty() {
		return nil
	}
	if r.MinX < 0 || r.MinY < 0 || r.MaxX >= len(a) || r.MaxY >= len(b) {
		return ErrSequenceBounds
	}

	return nil
}

// validated computes the integer bounding box of pts and runs checkBounds,
// returning the box for reuse.
func validated(a, b []*big.Int, pts ...geom.Point) (geom.IntRect, error) {
	r, err := geom.BoundingRect(pts...)
	if err != nil {
		return geom.IntRect{}, err
	}
	ir := r.Round()
	if err = checkBounds(a, b, ir); err != nil {
		return geom.IntRect{}, err
	}

	return ir, nil
}
