// SPDX-License-Identifier: MIT
// Package matrix - public factories and facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for building matrices with
//     neutral content (Zero, Identity) and shape-copying helpers.
//   - Provide the opt-in fail-fast helpers Must/MustDo.
//
// Determinism & Policy:
//   - Facades never change the loop orders of the underlying kernels.
//   - Validation is performed in the constructors; facades only compose or forward.

package matrix

import "fmt"

const (
	ctxIdentity     = "Identity"
	ctxIdentityLike = "IdentityLike"
)

// ---------- Constructors & Utilities ----------

// Zero returns a rows×cols matrix of zeros.
// It is a thin alias of New with an intention-revealing name.
// Complexity: O(r*c) zero-init.
func Zero[T Number](rows, cols int) (*Matrix[T], error) {
	return New[T](rows, cols)
}

// Identity returns the rows×cols (staircase) identity: element (i,i) is 1 for
// every i < min(rows, cols), all other elements are 0.
//
// Any shape is accepted. For square shapes this is I_n; for non-square shapes
// the ones stop at the shorter side, e.g. Identity(2,3) = [[1,0,0],[0,1,0]].
// Complexity: O(r*c) zeroing + O(min(r,c)) diagonal writes.
func Identity[T Number](rows, cols int) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}
	m := newUnchecked[T](rows, cols)
	for i := 0; i < rows && i < cols; i++ {
		m.data[i*cols+i] = 1
	}

	return m, nil
}

// ZeroLike returns a new zero matrix with the same shape as m.
// Handy to preallocate accumulators.
func ZeroLike[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf("ZeroLike", err)
	}

	return newUnchecked[T](m.r, m.c), nil
}

// IdentityLike returns I_n with n = m.Rows(); requires a square m.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxIdentityLike, err)
	}
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(ctxIdentityLike, err)
	}

	return Identity[T](m.r, m.c)
}

// ---------- Fail-fast ----------

// Must returns v, or panics when err is non-nil.
// It turns any (value, error) operation into abort-on-precondition style:
//
//	p := matrix.Must(a.Mul(b))
//
// The panic value is an error wrapping err, so a recover site can still use
// errors.Is. Reserve it for inputs whose shapes are known to be valid (tests, fixtures,
// parity runs); library callers should handle the error instead.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(fmt.Errorf("matrix: Must: %w", err))
	}

	return v
}

// MustDo panics when err is non-nil. Companion of Must for error-only calls:
//
//	matrix.MustDo(a.DivAssign(0)) // panics
func MustDo(err error) {
	if err != nil {
		panic(fmt.Errorf("matrix: MustDo: %w", err))
	}
}
