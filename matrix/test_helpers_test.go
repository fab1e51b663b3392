// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the Matrix tests.
//   • Keep property-test data integral so algebraic identities hold exactly.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/stretchr/testify/require"
)

// seeds swept by the property tests.
var seeds = []int64{1, 7, 42, 1337, 4242}

// MustGrid BUILDS a matrix from a literal grid or fails the test.
// Implementation:
//   - Stage 1: matrix.NewFromSlices(grid).
//   - Stage 2: require.NoError to abort the test early.
//
// Notes:
//   - Prefer for small exact-equality fixtures written as Go literals.
func MustGrid[T matrix.Number](t testing.TB, grid [][]T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewFromSlices(grid)
	require.NoError(t, err, "NewFromSlices")

	return m
}

// MustNew ALLOCATES an r×c zero matrix or fails the test.
func MustNew[T matrix.Number](t testing.TB, r, c int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New[T](r, c)
	require.NoError(t, err, "New(%d,%d)", r, c)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Number](t testing.TB, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RandInts RETURNS an r×c int matrix with deterministic values in [-50, 50).
// Implementation:
//   - Stage 1: rng := rand.New(rand.NewSource(seed)).
//   - Stage 2: Set(i,j, rng.Intn(100)-50) in row-major order.
//
// Behavior highlights:
//   - Integer data keeps associativity/distributivity checks exact.
//   - Independent from matrix.Random so the factory is not under test here.
func RandInts(t testing.TB, r, c int, seed int64) *matrix.Matrix[int] {
	t.Helper()
	m := MustNew[int](t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Intn(100)-50))
		}
	}

	return m
}

// RandFloats RETURNS an r×c float64 matrix with deterministic U(-1,1) values.
func RandFloats(t testing.TB, r, c int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	m := MustNew[float64](t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1)) // 0*2-1=-1 || 1*2-1=1
		}
	}

	return m
}

// RequireMatrixEqual asserts exact equality and prints both matrices on failure.
func RequireMatrixEqual[T matrix.Number](t testing.TB, want, got *matrix.Matrix[T]) {
	t.Helper()
	require.Truef(t, want.Equal(got), "matrices differ\nwant:\n%vgot:\n%v", want, got)
}
