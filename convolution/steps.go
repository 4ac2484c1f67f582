// Package convolution - the step orchestrator.
//
// A decomposition is a finite, totally ordered list of (geometry,
// convolver, sign) steps. The orchestrator evaluates each step against the
// same sequences and prime and folds the signed result into a
// pre-allocated output window. Step order is irrelevant for correctness
// but fixed for determinism.
package convolution

import (
	"math/big"

	"github.com/katalvlaran/nrconv/geom"
)

// Step signs.
const (
	signPlus  = +1
	signMinus = -1
)

// convolver evaluates one base shape against the sequences, returning a
// signed sub-slice aligned to the global sum-index space.
type convolver func(a, b []*big.Int, pts []geom.Point, p *big.Int) (Window, error)

// step is one entry of a decomposition: a base geometry, the convolver
// that evaluates it, and the sign with which its result is folded in.
type step struct {
	pts  []geom.Point
	conv convolver
	sign int
}

// runSteps evaluates the steps in order into main.
func runSteps(main Window, a, b []*big.Int, p *big.Int, steps []step) error {
	for _, s := range steps {
		sub, err := s.conv(a, b, s.pts, p)
		if err != nil {
			return err
		}
		if s.sign == signMinus {
			err = subWindow(main, sub)
		} else {
			err = addWindow(main, sub)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// convEdge, convRectangle, convAxisTriangle, and convTriangle adapt the
// shape kernels to the uniform convolver signature.

func convEdge(a, b []*big.Int, pts []geom.Point, p *big.Int) (Window, error) {
	return convolveEdge(a, b, pts[0], pts[1], p)
}

func convRectangle(a, b []*big.Int, pts []geom.Point, p *big.Int) (Window, error) {
	return convolveRectangle(a, b, pts[0], pts[1], p)
}

func convAxisTriangle(a, b []*big.Int, pts []geom.Point, p *big.Int) (Window, error) {
	return convolveAxisTriangle(a, b, pts[0], pts[1], pts[2], p)
}

func convTriangle(a, b []*big.Int, pts []geom.Point, p *big.Int) (Window, error) {
	return convolveTriangle(a, b, pts[0], pts[1], pts[2], p)
}
