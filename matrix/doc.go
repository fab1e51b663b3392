// SPDX-License-Identifier: MIT

// Package matrix provides a fixed-shape, generically typed matrix value type.
//
// What & Why:
//
//	Matrix[T] stores rows×cols elements of any integer or floating-point type
//	in one row-major buffer. The shape is chosen once, at construction, and
//	never changes; every shape-sensitive operation checks compatibility at
//	entry and returns a sentinel error (ErrDimensionMismatch, ErrNonSquare)
//	instead of truncating or panicking.
//
// Surface:
//
//   - Construction: New, Zero, Identity (staircase for non-square shapes),
//     Random (uniform over [min,max)), NewFromSlices, NewFromData, Clone, Assign.
//   - Access: At, Set, Rows, Cols, Shape, Fill, Do, ToSlices, String.
//   - Arithmetic: Add, Sub, Scale, Div, Neg, Mul, MulTo (mixed element types),
//     Hadamard, Transpose, and the compound forms AddAssign, SubAssign,
//     MulAssign, ScaleAssign, DivAssign.
//   - Comparison: Equal, NotEqual (exact, no tolerance).
//   - Transforms: MapValues, MapIndexed, MapWithSelf, MapWithSelfPair, Combine.
//   - Fail-fast: Must, MustDo.
//
// Value semantics:
//
//	Constructors copy caller data and every operation returns a fresh matrix.
//	A *Matrix is not safe for concurrent mutation; the process-wide random
//	source behind Random is.
//
// Complexity:
//
//	At/Set/Rows/Cols are O(1); element-wise operations O(r*c);
//	Mul is the classic O(r*k*c) triple loop.
package matrix
