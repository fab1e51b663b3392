// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Functional element transforms. Each variant returns a fresh matrix of
//     the source shape; the source is never written.
//   - Four named variants differ only in what the callback sees:
//     MapValues (value), MapIndexed (value, row, col),
//     MapWithSelf (+ source), MapWithSelfPair (+ source twice).
//   - Combine is the binary form over two distinct matrices.
//
// Determinism:
//   - Callbacks run exactly once per element in fixed row-major order.
//
// Notes:
//   - Callbacks receive the source by pointer for read access; they must not mutate it.

package matrix

const (
	opMapValues       = "MapValues"
	opMapIndexed      = "MapIndexed"
	opMapWithSelf     = "MapWithSelf"
	opMapWithSelfPair = "MapWithSelfPair"
	opCombine         = "Combine"
)

// MapValues returns out[i,j] = f(m[i,j]).
// Errors: ErrNilMatrix, ErrNilFunc. Complexity: O(r*c).
func (m *Matrix[T]) MapValues(f func(v T) T) (*Matrix[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opMapValues, err)
	}
	if f == nil {
		return nil, matrixErrorf(opMapValues, ErrNilFunc)
	}

	return ewUnary(m, f), nil
}

// MapIndexed returns out[i,j] = f(m[i,j], i, j).
// Errors: ErrNilMatrix, ErrNilFunc. Complexity: O(r*c).
func (m *Matrix[T]) MapIndexed(f func(v T, row, col int) T) (*Matrix[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opMapIndexed, err)
	}
	if f == nil {
		return nil, matrixErrorf(opMapIndexed, ErrNilFunc)
	}

	return ewIndexed(m, f), nil
}

// MapWithSelf returns out[i,j] = f(m[i,j], i, j, m).
// The callback can read neighbouring elements of the source through src.
// Errors: ErrNilMatrix, ErrNilFunc. Complexity: O(r*c) plus whatever f reads.
func (m *Matrix[T]) MapWithSelf(f func(v T, row, col int, src *Matrix[T]) T) (*Matrix[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opMapWithSelf, err)
	}
	if f == nil {
		return nil, matrixErrorf(opMapWithSelf, ErrNilFunc)
	}

	return ewIndexed(m, func(v T, row, col int) T {
		return f(v, row, col, m)
	}), nil
}

// MapWithSelfPair returns out[i,j] = f(m[i,j], i, j, m, m).
//
// Both matrix arguments are the source matrix; this variant does not give
// access to a second, distinct matrix. Use Combine for a binary element-wise
// transform across two matrices.
// Errors: ErrNilMatrix, ErrNilFunc. Complexity: O(r*c) plus whatever f reads.
func (m *Matrix[T]) MapWithSelfPair(f func(v T, row, col int, a, b *Matrix[T]) T) (*Matrix[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opMapWithSelfPair, err)
	}
	if f == nil {
		return nil, matrixErrorf(opMapWithSelfPair, ErrNilFunc)
	}

	return ewIndexed(m, func(v T, row, col int) T {
		return f(v, row, col, m, m)
	}), nil
}

// Combine returns out[i,j] = f(m[i,j], other[i,j], i, j).
// MAIN DESCRIPTION:
//   - Binary element-wise transform across two distinct matrices of one shape.
//
// Errors:
//   - ErrNilMatrix, ErrNilFunc, ErrDimensionMismatch (checked in that order).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Combine(other *Matrix[T], f func(x, y T, row, col int) T) (*Matrix[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}
	if err := validateNotNil(other); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}
	if f == nil {
		return nil, matrixErrorf(opCombine, ErrNilFunc)
	}
	if err := validateSameShape(m, other); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}

	return ewIndexed(m, func(v T, row, col int) T {
		return f(v, other.data[row*other.c+col], row, col)
	}), nil
}
