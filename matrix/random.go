// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Random factory: fill a fresh matrix with uniform draws over [min, max).
//   - Own the process-wide pseudo-random source and its lock.
//
// Determinism:
//   - The shared source is seeded from the clock at start-up; call Seed, or
//     pass WithSeed/WithSource, for reproducible output.
//   - Not cryptographically secure.

package matrix

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

const opRandom = "Random"

// shared is the process-wide generator used when no option selects another.
// *rand.Rand is not goroutine-safe, hence the mutex.
var shared = struct {
	mu  sync.Mutex
	rng *rand.Rand
}{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}

// Seed reseeds the process-wide source used by Random.
// Safe for concurrent use.
func Seed(seed int64) {
	shared.mu.Lock()
	shared.rng = rand.New(rand.NewSource(seed))
	shared.mu.Unlock()
}

// Random returns a rows×cols matrix whose elements are drawn uniformly from [min, max).
// MAIN DESCRIPTION:
//   - Floating-point T: continuous uniform over [min, max).
//   - Integer T: discrete uniform over {min, ..., max-1}.
//
// Implementation:
//   - Stage 1: validate shape (ErrInvalidDimensions) and range (ErrInvalidRange).
//   - Stage 2: resolve the generator from opts (shared source by default).
//   - Stage 3: fill in row-major order; a draw that rounds onto max is redrawn
//     (at most maxRedraws times, after which min is stored).
//
// Inputs:
//   - rows, cols: positive shape.
//   - min, max  : finite half-open interval, min < max (NaN and ±Inf are rejected).
//   - opts      : WithSeed / WithSource / WithLocalSource.
//
// Errors:
//   - ErrInvalidDimensions, ErrInvalidRange.
//
// Complexity:
//   - Time O(r*c) expected, Space O(r*c).
//
// Notes:
//   - Draws go through float64, so 64-bit integer ranges wider than 2^53
//     are sampled with float64 granularity.
func Random[T Number](rows, cols int, min, max T, opts ...Option) (*Matrix[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	if err := validateRange(min, max); err != nil {
		return nil, matrixErrorf(opRandom, err)
	}

	o := gatherOptions(opts...)
	m := newUnchecked[T](rows, cols)
	if o.rng != nil {
		fillUniform(o.rng, m.data, min, max)
		return m, nil
	}
	if !o.useShared {
		fillUniform(rand.New(rand.NewSource(time.Now().UnixNano())), m.data, min, max)
		return m, nil
	}

	shared.mu.Lock()
	fillUniform(shared.rng, m.data, min, max)
	shared.mu.Unlock()

	return m, nil
}

// maxRedraws bounds the rejection loop in fillUniform. A draw is rejected only
// when rounding lands it on max, so the bound is never reached in practice.
const maxRedraws = 64

// validateRange requires finite bounds with min < max.
func validateRange[T Number](min, max T) error {
	lo, hi := float64(min), float64(max)
	if !(min < max) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return validatorErrorf("ValidateRange", ErrInvalidRange)
	}

	return nil
}

// fillUniform writes uniform draws over [min, max) into dst.
// Bounds are finite (validateRange). When hi-lo overflows float64 the draw is
// interpolated as lo*(1-u) + hi*u, which stays finite.
func fillUniform[T Number](rng *rand.Rand, dst []T, min, max T) {
	lo, hi := float64(min), float64(max)
	span := hi - lo
	wide := math.IsInf(span, 0)
	integral := isIntegral[T]()

	var u, v float64
	var out T
	var try int
	for idx := range dst {
		out = min
		for try = 0; try < maxRedraws; try++ {
			u = rng.Float64()
			if wide {
				v = lo*(1-u) + hi*u
			} else {
				v = lo + u*span
			}
			if integral {
				v = math.Floor(v)
			}
			if v < lo || v >= hi {
				continue
			}
			if cand := T(v); cand >= min && cand < max {
				out = cand
				break
			}
		}
		dst[idx] = out
	}
}

// isIntegral reports whether T is an integer type: converting 0.5 truncates to 0.
func isIntegral[T Number]() bool {
	half := 0.5
	return T(half) == 0
}
