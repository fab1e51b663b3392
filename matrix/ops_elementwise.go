// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) so the tight loops
//     behind Add/Sub/Hadamard/Scale/Neg/Combine/Map* live in one place.
//   - Keep all loops deterministic: a flat 0..n-1 walk when indices are not
//     needed, a fixed i→j walk when they are.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels); validation happens in
//     the public operations before a kernel runs.
//   - Every kernel allocates exactly one output of the input's shape; inputs
//     are never written.

package matrix

// ewBinary computes out[k] = f(a[k], b[k]) over the flat buffers.
// Assumes a and b are non-nil and share a shape.
// Time: O(r*c). Space: O(r*c).
func ewBinary[T Number](a, b *Matrix[T], f func(x, y T) T) *Matrix[T] {
	out := newUnchecked[T](a.r, a.c)
	for idx := range out.data {
		out.data[idx] = f(a.data[idx], b.data[idx])
	}

	return out
}

// ewUnary computes out[k] = f(a[k]) over the flat buffer.
// Time: O(r*c). Space: O(r*c).
func ewUnary[T Number](a *Matrix[T], f func(x T) T) *Matrix[T] {
	out := newUnchecked[T](a.r, a.c)
	for idx, v := range a.data {
		out.data[idx] = f(v)
	}

	return out
}

// ewIndexed computes out[i,j] = f(a[i,j], i, j) with a fixed i→j order.
// Time: O(r*c). Space: O(r*c).
func ewIndexed[T Number](a *Matrix[T], f func(v T, row, col int) T) *Matrix[T] {
	out := newUnchecked[T](a.r, a.c)
	var i, j, base int
	for i = 0; i < a.r; i++ {
		base = i * a.c
		for j = 0; j < a.c; j++ {
			out.data[base+j] = f(a.data[base+j], i, j)
		}
	}

	return out
}

// ewScale computes out[k] = a[k] * s.
func ewScale[T Number](a *Matrix[T], s T) *Matrix[T] {
	out := newUnchecked[T](a.r, a.c)
	for idx, v := range a.data {
		out.data[idx] = v * s
	}

	return out
}

// ewDiv computes out[k] = a[k] / s. Caller guarantees s != 0.
func ewDiv[T Number](a *Matrix[T], s T) *Matrix[T] {
	out := newUnchecked[T](a.r, a.c)
	for idx, v := range a.data {
		out.data[idx] = v / s
	}

	return out
}

// The operator closures below are shared by the public wrappers so the
// kernels stay generic over the combining function.

func ewAdd[T Number](x, y T) T { return x + y }

func ewSub[T Number](x, y T) T { return x - y }

func ewMul[T Number](x, y T) T { return x * y }

func ewNeg[T Number](x T) T { return -x }
