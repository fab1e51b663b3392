// SPDX-License-Identifier: MIT
// Package matrix provides arithmetic on Matrix values: element-wise addition,
// subtraction, Hadamard product, scalar scaling/division, negation, matrix
// multiplication (same-type and mixed-type) and transpose, plus the compound
// assignment forms. All operations perform strict fail-fast validation and
// return clear errors on shape mismatches.
//
// Notes:
//   - Binary operations allocate a fresh result; operands are never mutated.
//   - Compound forms (XxxAssign) compute the fresh result first and only then
//     replace the receiver's storage, so a failed call leaves it unchanged.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMulTo     = "MulTo"
	opDiv       = "Div"
	opHadamard  = "Hadamard"
	opAddAssign = "AddAssign"
	opSubAssign = "SubAssign"
	opMulAssign = "MulAssign"
	opDivAssign = "DivAssign"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Behavior highlights:
//   - Preserves the underlying sentinel for errors.Is/errors.As.
//   - Keeps a stable "<Op>: <underlying>" shape for uniform reporting.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: Single flat loop over both buffers.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Add(b *Matrix[T]) (*Matrix[T], error) {
	if err := validateBinarySameShape(m, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return ewBinary(m, b, ewAdd[T]), nil
}

// Sub computes the element-wise difference C = A - B and returns a fresh result.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Matrix[T]) Sub(b *Matrix[T]) (*Matrix[T], error) {
	if err := validateBinarySameShape(m, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return ewBinary(m, b, ewSub[T]), nil
}

// Hadamard computes the element-wise product (A ⊙ B) with a fresh result.
// Hadamard is not matrix multiplication; use Mul for A×B.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Matrix[T]) Hadamard(b *Matrix[T]) (*Matrix[T], error) {
	if err := validateBinarySameShape(m, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return ewBinary(m, b, ewMul[T]), nil
}

// Scale returns a new matrix whose elements are m[i,j] * s.
// Integer overflow wraps as in plain Go arithmetic.
// Complexity: O(r*c).
func (m *Matrix[T]) Scale(s T) *Matrix[T] {
	if m == nil {
		return nil
	}

	return ewScale(m, s)
}

// Div returns a new matrix whose elements are m[i,j] / s.
// MAIN DESCRIPTION:
//   - Scalar division with an explicit zero-divisor precondition.
//
// Behavior highlights:
//   - s == 0 is rejected for every element type. For floating point this
//     replaces IEEE semantics (±Inf/NaN) with ErrDivisionByZero; -0.0 counts as zero.
//   - Integer division truncates toward zero, as in Go.
//
// Errors:
//   - ErrNilMatrix, ErrDivisionByZero (in that priority).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Div(s T) (*Matrix[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	if s == 0 {
		return nil, matrixErrorf(opDiv, ErrDivisionByZero)
	}

	return ewDiv(m, s), nil
}

// Neg returns the element-wise additive inverse -m.
// For unsigned element types this is modular negation.
func (m *Matrix[T]) Neg() *Matrix[T] {
	if m == nil {
		return nil
	}

	return ewUnary(m, ewNeg[T])
}

// Mul performs standard matrix multiplication C = A × B for a common element type.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Classic i→j→k triple loop; the accumulator starts at zero.
//
// Returns:
//   - New matrix of shape (A.Rows × B.Cols).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func (m *Matrix[T]) Mul(b *Matrix[T]) (*Matrix[T], error) {
	if err := validateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulKernel[T](m, b), nil
}

// MulTo multiplies matrices with possibly different element types and returns
// the product with element type V, chosen by the caller:
//
//	p, err := matrix.MulTo[float64](ints, floats)
//
// Every operand element is converted to V before it is multiplied, so V should
// be wide enough to represent both inputs (e.g. float64 for int×float64).
// The shape rule is the same as Mul: a.Cols() == b.Rows().
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*k*c).
func MulTo[V, T, U Number](a *Matrix[T], b *Matrix[U]) (*Matrix[V], error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulTo, err)
	}

	return mulKernel[V](a, b), nil
}

// mulKernel is the shared i→j→k triple loop behind Mul and MulTo.
// Assumes a.c == b.r.
func mulKernel[V, T, U Number](a *Matrix[T], b *Matrix[U]) *Matrix[V] {
	rows, inner, cols := a.r, a.c, b.c
	res := newUnchecked[V](rows, cols)
	var (
		i, j, k int
		acc     V
		rowA    int
	)
	for i = 0; i < rows; i++ {
		rowA = i * inner
		for j = 0; j < cols; j++ {
			acc = 0
			for k = 0; k < inner; k++ {
				acc += V(a.data[rowA+k]) * V(b.data[k*cols+j])
			}
			res.data[i*cols+j] = acc
		}
	}

	return res
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Defined for every shape: an r×c input yields a c×r result.
// Complexity: O(r*c).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	if m == nil {
		return nil
	}
	rows, cols := m.r, m.c
	res := newUnchecked[T](cols, rows)
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// ---------- Compound assignment ----------

// replaceWith swaps in the storage of a freshly computed same-shape result.
func (m *Matrix[T]) replaceWith(res *Matrix[T]) {
	m.data = res.data
}

// AddAssign performs m = m + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch; m is unchanged on error.
func (m *Matrix[T]) AddAssign(b *Matrix[T]) error {
	res, err := m.Add(b)
	if err != nil {
		return matrixErrorf(opAddAssign, err)
	}
	m.replaceWith(res)

	return nil
}

// SubAssign performs m = m - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch; m is unchanged on error.
func (m *Matrix[T]) SubAssign(b *Matrix[T]) error {
	res, err := m.Sub(b)
	if err != nil {
		return matrixErrorf(opSubAssign, err)
	}
	m.replaceWith(res)

	return nil
}

// MulAssign performs m = m × b.
// MAIN DESCRIPTION:
//   - In-place-looking matrix product restricted to square operands of one shape,
//     so the product always fits back into the receiver.
//
// Implementation:
//   - Stage 1: validate b non-nil, m square (ErrNonSquare), b same shape as m.
//   - Stage 2: compute the product into a fresh buffer (no aliasing with m or b).
//   - Stage 3: replace m's storage.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (matches ErrDimensionMismatch), ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (m *Matrix[T]) MulAssign(b *Matrix[T]) error {
	if err := validateNotNil(m); err != nil {
		return matrixErrorf(opMulAssign, err)
	}
	if err := validateNotNil(b); err != nil {
		return matrixErrorf(opMulAssign, err)
	}
	if err := validateSquare(m); err != nil {
		return matrixErrorf(opMulAssign, err)
	}
	if err := validateSameShape(m, b); err != nil {
		return matrixErrorf(opMulAssign, err)
	}
	m.replaceWith(mulKernel[T](m, b))

	return nil
}

// ScaleAssign performs m = m * s. No-op on a nil receiver.
func (m *Matrix[T]) ScaleAssign(s T) {
	if m == nil {
		return
	}
	m.replaceWith(ewScale(m, s))
}

// DivAssign performs m = m / s.
// Errors: ErrNilMatrix, ErrDivisionByZero; m is unchanged on error.
func (m *Matrix[T]) DivAssign(s T) error {
	res, err := m.Div(s)
	if err != nil {
		return matrixErrorf(opDivAssign, err)
	}
	m.replaceWith(res)

	return nil
}
