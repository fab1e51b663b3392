// SPDX-License-Identifier: MIT

package matrix

// Equal reports whether m and b have the same shape and every pair of
// corresponding elements compares equal under ==.
//
// Comparison is exact: there is no tolerance for floating-point types and
// NaN never equals NaN. Two nil matrices are equal; nil and non-nil are not.
// Complexity: O(r*c) worst case, stops at the first difference.
func (m *Matrix[T]) Equal(b *Matrix[T]) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for idx, v := range m.data {
		if v != b.data[idx] {
			return false
		}
	}

	return true
}

// NotEqual is the logical negation of Equal.
func (m *Matrix[T]) NotEqual(b *Matrix[T]) bool { return !m.Equal(b) }
