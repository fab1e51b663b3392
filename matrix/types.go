// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the element constraint and the Matrix value type.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import "golang.org/x/exp/constraints"

// Number is the set of element types a Matrix can hold: every built-in
// integer and floating-point type (and named types over them).
// Complex types are excluded; Random and ordering checks need < on T.
type Number interface {
	constraints.Integer | constraints.Float
}

// Matrix is a fixed-shape, row-major matrix of T values.
//   - r,c hold the shape; both are > 0 and never change after construction.
//   - data is a flat buffer of length r*c (offset = i*c + j), owned exclusively.
//
// The zero value is not usable; build matrices with New, Zero, Identity,
// Random, NewFromSlices or NewFromData.
//
// Complexity notes: accessors are O(1); every operation producing a matrix
// allocates exactly one new buffer of the result size.
type Matrix[T Number] struct {
	r, c int // row and column counts, fixed for the lifetime of the value
	data []T // contiguous row-major storage (len == r*c)
}

// Visitor is the read-only callback used by Do. Returning false stops the walk.
type Visitor[T Number] func(row, col int, v T) bool
