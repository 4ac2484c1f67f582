package convolution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nrconv/convolution"
)

// TestWindow_AddAndSubtractAligned folds signed sub-slices into a parent
// window at the alignment implied by the offsets.
func TestWindow_AddAndSubtractAligned(t *testing.T) {
	main := convolution.NewWindowForTest(5, 10)

	sub := convolution.Window{Values: bigs(1, 2, 3), Offset: 11}
	require.NoError(t, convolution.AddWindowForTest(main, sub))
	assert.Equal(t, []int64{0, 1, 2, 3, 0}, ints(main))

	require.NoError(t, convolution.SubWindowForTest(main, convolution.Window{
		Values: bigs(1, 1), Offset: 12,
	}))
	assert.Equal(t, []int64{0, 1, 1, 2, 0}, ints(main))
}

// TestWindow_EmptySubSliceIsNoOp ignores empty contributions regardless
// of their offset.
func TestWindow_EmptySubSliceIsNoOp(t *testing.T) {
	main := convolution.NewWindowForTest(3, 0)

	require.NoError(t, convolution.AddWindowForTest(main, convolution.Window{Offset: -100}))
	require.NoError(t, convolution.SubWindowForTest(main, convolution.Window{Offset: 100}))
	assert.Equal(t, []int64{0, 0, 0}, ints(main))
}

// TestWindow_RangeViolation rejects sub-slices escaping the parent on
// either side.
func TestWindow_RangeViolation(t *testing.T) {
	main := convolution.NewWindowForTest(4, 10)

	err := convolution.AddWindowForTest(main, convolution.Window{Values: bigs(1), Offset: 9})
	assert.ErrorIs(t, err, convolution.ErrWindowRange, "below the window start")

	err = convolution.AddWindowForTest(main, convolution.Window{Values: bigs(1, 1), Offset: 13})
	assert.ErrorIs(t, err, convolution.ErrWindowRange, "past the window end")

	err = convolution.SubWindowForTest(main, convolution.Window{Values: bigs(1, 1, 1, 1, 1), Offset: 10})
	assert.ErrorIs(t, err, convolution.ErrWindowRange, "longer than the window")
}
