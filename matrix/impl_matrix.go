// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep value semantics: constructors and Clone copy, nothing aliases caller memory.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone/Assign: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"            // method tag used in error wrappers
	ctxSet      = "Set"           // method tag used in error wrappers
	ctxNew      = "New"           // ctor tag
	ctxFromGrid = "NewFromSlices" // ctor tag
	ctxFromData = "NewFromData"   // ctor tag
	ctxAssign   = "Assign"        // copy-assignment tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtNil      = "<nil>"
)

// elemErrorf wraps an error with a uniform Matrix context and callsite indices.
// Format: "Matrix.<method>(row,col): <sentinel>".
func elemErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New creates a rows×cols matrix with every element set to the zero value of T.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer (make() zero-fills deterministically).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](rows, cols int) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	return newUnchecked[T](rows, cols), nil
}

// newUnchecked allocates without validation. Callers guarantee rows,cols > 0,
// typically because the shape was read from an existing Matrix.
func newUnchecked[T Number](rows, cols int) *Matrix[T] {
	return &Matrix[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// NewFromSlices builds a matrix from a caller-supplied rows×cols grid.
// MAIN DESCRIPTION:
//   - Construct-from-grid: the shape is taken from the grid; every row must
//     have the same length.
//
// Implementation:
//   - Stage 1: reject an empty grid or an empty first row (ErrInvalidDimensions).
//   - Stage 2: reject ragged rows (ErrDimensionMismatch).
//   - Stage 3: copy row by row into the flat buffer.
//
// Behavior highlights:
//   - The caller keeps ownership of grid; later changes to it are not observed.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromSlices[T Number](grid [][]T) (*Matrix[T], error) {
	if len(grid) == 0 {
		return nil, matrixErrorf(ctxFromGrid, ErrInvalidDimensions)
	}
	rows, cols := len(grid), len(grid[0])
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxFromGrid, err)
	}
	m := newUnchecked[T](rows, cols)
	for i := 0; i < rows; i++ {
		if len(grid[i]) != cols {
			return nil, matrixErrorf(ctxFromGrid, fmt.Errorf("row %d has %d columns, want %d: %w",
				i, len(grid[i]), cols, ErrDimensionMismatch))
		}
		copy(m.data[i*cols:(i+1)*cols], grid[i])
	}

	return m, nil
}

// NewFromData builds a rows×cols matrix from a flat row-major block.
// The block is copied as a whole; len(data) must equal rows*cols.
// Complexity: O(r*c).
func NewFromData[T Number](rows, cols int, data []T) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxFromData, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctxFromData, fmt.Errorf("len(data)=%d, want %d: %w",
			len(data), rows*cols, ErrDimensionMismatch))
	}
	m := newUnchecked[T](rows, cols)
	copy(m.data, data)

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Matrix[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count. No side effects.
func (m *Matrix[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsSquare reports whether Rows() == Cols().
// A nil matrix is not square.
func (m *Matrix[T]) IsSquare() bool { return m != nil && m.r == m.c }

// indexOf computes the row-major offset or returns ErrNilMatrix / ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at zero-based coordinates.
//
// Returns:
//   - (value, nil) on success; (zero, wrapped ErrNilMatrix or ErrOutOfRange) otherwise.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, elemErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrNilMatrix / ErrOutOfRange.
// Never panics; the matrix is unchanged on error.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return elemErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Mutations of the clone never affect the original and vice versa.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{r: m.r, c: m.c, data: cp}
}

// Assign copies every element of src into m (copy assignment).
// MAIN DESCRIPTION:
//   - Deep copy between two matrices of the same fixed shape.
//
// Behavior highlights:
//   - Self-assignment (m == src) is a no-op that preserves state.
//   - Shape is never changed: a differently shaped src is rejected.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if err := validateBinarySameShape(m, src); err != nil {
		return matrixErrorf(ctxAssign, err)
	}
	if m == src {
		return nil
	}
	copy(m.data, src.data)

	return nil
}

// Fill sets every element to v. No-op on a nil receiver.
// Complexity: O(r*c).
func (m *Matrix[T]) Fill(v T) {
	if m == nil {
		return
	}
	for idx := range m.data {
		m.data[idx] = v
	}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// The walk stops early when f returns false. f must not mutate m.
// Complexity: O(r*c), no allocations.
func (m *Matrix[T]) Do(f Visitor[T]) {
	if m == nil || f == nil {
		return
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// ToSlices copies the matrix out as a freshly allocated [][]T grid.
// The result shares no memory with m.
func (m *Matrix[T]) ToSlices() [][]T {
	if m == nil {
		return nil
	}
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]T, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders rows as lines with comma-separated values, e.g. "[1, 2]\n[3, 4]\n".
// Intended for logs and debugging; not for hot paths.
func (m *Matrix[T]) String() string {
	if m == nil {
		return _fmtNil
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%v", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
