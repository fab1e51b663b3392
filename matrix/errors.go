// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations MUST return these sentinels (possibly wrapped with
// context) and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions; the opt-in Must/MustDo helpers are the only
// place a sentinel is turned into a panic.
//
// A nil *Matrix receiver is never dereferenced. Methods that return an error
// report ErrNilMatrix; error-free methods treat nil as empty: accessors return
// zero counts, producers return nil, in-place mutators do nothing.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping.
// Operations wrap with fmt.Errorf("<Op>: %w", ErrX) through matrixErrorf;
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> nil callback -> shape -> index -> value (zero divisor, range).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside [0,Rows)×[0,Cols).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add/Sub/Hadamard on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// It is a shape mismatch: errors.Is(ErrNonSquare, ErrDimensionMismatch) holds.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrDimensionMismatch)

	// ErrDivisionByZero is returned by Div/DivAssign when the scalar divisor is zero.
	// Checked for every element type, floating point included.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilFunc indicates that a nil callback was passed to a Map*/Combine operation.
	ErrNilFunc = errors.New("matrix: nil function")

	// ErrInvalidRange indicates an empty sampling interval (min >= max) for Random.
	ErrInvalidRange = errors.New("matrix: invalid range, min must be < max")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
