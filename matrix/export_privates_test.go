// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED validators, the integer-type check and the resolved
//     Options to matrix_test ONLY.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds.

// Panic message exports to avoid "magic strings" in tests.
const PanicNilSource_TestOnly = panicNilSource

// OptionsSnapshot is a stable, read-only view of the resolved Options.
type OptionsSnapshot struct {
	HasRNG    bool
	UseShared bool
}

// GatherOptionsSnapshot_TestOnly resolves opts and reports the effective policy.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{HasRNG: o.rng != nil, UseShared: o.useShared}
}

// IsIntegral_TestOnly forwards to the private integer-type check.
func IsIntegral_TestOnly[T Number]() bool { return isIntegral[T]() }

// ValidateBinarySameShape_TestOnly forwards to validateBinarySameShape.
func ValidateBinarySameShape_TestOnly[T Number](a, b *Matrix[T]) error {
	return validateBinarySameShape(a, b)
}

// ValidateMulCompatible_TestOnly forwards to validateMulCompatible.
func ValidateMulCompatible_TestOnly[T, U Number](a *Matrix[T], b *Matrix[U]) error {
	return validateMulCompatible(a, b)
}

// ValidateSquare_TestOnly forwards to validateSquare.
func ValidateSquare_TestOnly[T Number](m *Matrix[T]) error { return validateSquare(m) }

// ValidateShape_TestOnly forwards to validateShape.
func ValidateShape_TestOnly(rows, cols int) error { return validateShape(rows, cols) }

// EwBinary_TestOnly forwards to the ewBinary kernel (no validation).
func EwBinary_TestOnly[T Number](a, b *Matrix[T], f func(x, y T) T) *Matrix[T] {
	return ewBinary(a, b, f)
}

// EwIndexed_TestOnly forwards to the ewIndexed kernel.
func EwIndexed_TestOnly[T Number](a *Matrix[T], f func(v T, row, col int) T) *Matrix[T] {
	return ewIndexed(a, f)
}

// EwNeg_TestOnly exposes the negation closure used by Neg.
func EwNeg_TestOnly[T Number](x T) T { return ewNeg(x) }
