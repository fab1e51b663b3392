// Package fixmat is a small numeric toolkit built around one type: a
// fixed-shape, generically typed matrix.
//
// What is inside?
//
//	matrix/   - Matrix[T] value type: construction (identity, zero, random),
//	            bounds-checked access, element-wise and scalar arithmetic,
//	            matrix products across element types, transpose, Hadamard,
//	            and functional Map/Combine transforms.
//	examples/ - runnable walkthroughs.
//
// Why?
//
//   - Generic over every integer and float type; pick the precision you need.
//   - Errors, not panics: shape, index and division-by-zero violations come
//     back as sentinel errors you can match with errors.Is.
//   - Pure Go, no cgo, no hidden goroutines.
//
// Quick example:
//
//	a := matrix.Must(matrix.NewFromSlices([][]int{{1, 2, 3}, {4, 5, 6}}))
//	b := matrix.Must(matrix.NewFromSlices([][]float64{{7.5, 8.5}, {9.5, 10.5}, {11.5, 12.5}}))
//	p := matrix.Must(matrix.MulTo[float64](a, b)) // [[61, 67], [146.5, 161.5]]
//
//	go get github.com/katalvlaran/fixmat
package fixmat
