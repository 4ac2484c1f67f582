// Package convolution - signed accumulation of sub-windows.
package convolution

// addWindow adds sub's values into main at the alignment implied by the
// two offsets. Empty sub-windows are no-ops regardless of offset. A
// non-empty sub-window must be strictly contained in main; violations
// return ErrWindowRange.
func addWindow(main, sub Window) error {
	return accumulate(main, sub, false)
}

// subWindow subtracts sub's values from main under the same contract as
// addWindow.
func subWindow(main, sub Window) error {
	return accumulate(main, sub, true)
}

// accumulate applies sub into main with the requested sign.
func accumulate(main, sub Window, negate bool) error {
	// 1) Empty contributions carry no alignment obligation.
	if len(sub.Values) == 0 {
		return nil
	}

	// 2) Strict containment of the sub-slice in the parent window.
	start := sub.Offset - main.Offset
	if start < 0 || start+len(sub.Values) > len(main.Values) {
		return ErrWindowRange
	}

	// 3) Fold the values in place.
	for i, v := range sub.Values {
		if negate {
			main.Values[start+i].Sub(main.Values[start+i], v)
		} else {
			main.Values[start+i].Add(main.Values[start+i], v)
		}
	}

	return nil
}
