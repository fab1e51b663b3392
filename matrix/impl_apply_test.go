// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestMapValues(t *testing.T) {
	t.Parallel()
	a := MustGrid(t, [][]int{{1, 2}, {3, 4}})

	sq, err := a.MapValues(func(v int) int { return v * v })
	require.NoError(t, err)
	RequireMatrixEqual(t, MustGrid(t, [][]int{{1, 4}, {9, 16}}), sq)
	RequireMatrixEqual(t, MustGrid(t, [][]int{{1, 2}, {3, 4}}), a) // source untouched
}

func TestMapIndexed(t *testing.T) {
	t.Parallel()
	a := MustNew[int](t, 2, 3)

	out, err := a.MapIndexed(func(v, row, col int) int { return v + row*10 + col })
	require.NoError(t, err)
	RequireMatrixEqual(t, MustGrid(t, [][]int{{0, 1, 2}, {10, 11, 12}}), out)
}

// TestMapIndexed_RowMajorOrder checks each element is visited once, in order.
func TestMapIndexed_RowMajorOrder(t *testing.T) {
	t.Parallel()
	a := MustNew[int](t, 2, 2)
	var order [][2]int
	_, err := a.MapIndexed(func(v, row, col int) int {
		order = append(order, [2]int{row, col})
		return v
	})
	require.NoError(t, err)
	require.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, order)
}

func TestMapWithSelf(t *testing.T) {
	t.Parallel()
	a := MustGrid(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	// Each element becomes the sum of its row in the source.
	out, err := a.MapWithSelf(func(_ int, row, _ int, src *matrix.Matrix[int]) int {
		sum := 0
		for j := 0; j < src.Cols(); j++ {
			sum += MustAt(t, src, row, j)
		}
		return sum
	})
	require.NoError(t, err)
	RequireMatrixEqual(t, MustGrid(t, [][]int{{6, 6, 6}, {15, 15, 15}}), out)
}

// TestMapWithSelfPair_BothArgsAreSource pins the documented behavior: the two
// matrix arguments are the same source matrix.
func TestMapWithSelfPair_BothArgsAreSource(t *testing.T) {
	t.Parallel()
	a := MustGrid(t, [][]int{{1, 2}, {3, 4}})

	out, err := a.MapWithSelfPair(func(v, row, col int, x, y *matrix.Matrix[int]) int {
		require.Same(t, a, x)
		require.Same(t, a, y)
		return MustAt(t, x, row, col) + MustAt(t, y, row, col) + v
	})
	require.NoError(t, err)
	RequireMatrixEqual(t, MustGrid(t, [][]int{{3, 6}, {9, 12}}), out)
}

func TestCombine(t *testing.T) {
	t.Parallel()
	a := MustGrid(t, [][]int{{1, 2}, {3, 4}})
	b := MustGrid(t, [][]int{{10, 20}, {30, 40}})

	out, err := a.Combine(b, func(x, y, row, col int) int { return y - x + row - col })
	require.NoError(t, err)
	RequireMatrixEqual(t, MustGrid(t, [][]int{{9, 17}, {28, 36}}), out)

	_, err = a.Combine(MustNew[int](t, 2, 3), func(x, y, _, _ int) int { return x })
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = a.Combine(nil, func(x, y, _, _ int) int { return x })
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = a.Combine(b, nil)
	require.ErrorIs(t, err, matrix.ErrNilFunc)
}

func TestMap_NilFuncAndNilReceiver(t *testing.T) {
	t.Parallel()
	a := MustNew[float64](t, 1, 1)

	_, err := a.MapValues(nil)
	require.ErrorIs(t, err, matrix.ErrNilFunc)
	_, err = a.MapIndexed(nil)
	require.ErrorIs(t, err, matrix.ErrNilFunc)
	_, err = a.MapWithSelf(nil)
	require.ErrorIs(t, err, matrix.ErrNilFunc)
	_, err = a.MapWithSelfPair(nil)
	require.ErrorIs(t, err, matrix.ErrNilFunc)

	var nilM *matrix.Matrix[float64]
	_, err = nilM.MapValues(func(v float64) float64 { return v })
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
