// Package convolution - the dense rectangle base case.
package convolution

import (
	"math/big"

	"github.com/katalvlaran/nrconv/geom"
	"github.com/katalvlaran/nrconv/ntt"
)

// Rectangle convolves A and B over the lattice points of the axis-aligned
// rectangle spanned by two opposite corners c0 and c1 (in either order).
// All four edges are included. The dense work is a single NTT over the
// A/B sub-slices of the integer bounding box.
//
// Complexity: O(N log N) modular multiplications for N the padded window
// size.
func Rectangle(a, b []*big.Int, c0, c1 geom.Point, p *big.Int) (Window, error) {
	if _, err := validated(a, b, c0, c1); err != nil {
		return Window{}, err
	}

	return convolveRectangle(a, b, c0, c1, p)
}

// convolveRectangle is the unvalidated kernel behind Rectangle, shared by
// the decomposition steps.
func convolveRectangle(a, b []*big.Int, c0, c1 geom.Point, p *big.Int) (Window, error) {
	// 1) Integer bounding box of the two corners.
	r, err := geom.BoundingRect(c0, c1)
	if err != nil {
		return Window{}, err
	}
	ir := r.Round()
	size, kmin := ir.Window()
	if size == 0 {
		return Window{Offset: kmin}, nil
	}

	// 2) Dense convolution of the row and column slices. The result length
	//    (MaxX−MinX)+(MaxY−MinY)+1 matches the advertised window.
	values, err := ntt.Convolve(a[ir.MinX:ir.MaxX+1], b[ir.MinY:ir.MaxY+1], p)
	if err != nil {
		return Window{}, err
	}

	return Window{Values: values, Offset: kmin}, nil
}
