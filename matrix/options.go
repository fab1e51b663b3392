// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the Random factory.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective generator.
//
// Design goals:
//   - Deterministic when asked: WithSeed/WithSource make Random reproducible.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import "math/rand"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultUseSharedSource makes Random draw from the process-wide source
	// (see Seed) when no generator-selecting option is given. When false, each
	// call builds its own clock-seeded generator and never takes the shared lock.
	DefaultUseSharedSource = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilSource = "matrix: WithSource: rng must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly; the last
// generator-selecting option wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	rng       *rand.Rand // caller-owned or per-call generator; nil ⇒ see useShared
	useShared bool       // nil rng: true ⇒ shared source, false ⇒ fresh clock-seeded generator
}

// WithSeed gives this call a private generator seeded with seed, so the
// produced matrix is reproducible regardless of other Random calls.
// Complexity: O(1) (generator construction happens in gatherOptions order).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.rng = rand.New(rand.NewSource(seed))
		o.useShared = false
	}
}

// WithSource makes Random draw from a caller-owned generator.
// The generator is advanced by the call. *rand.Rand is not safe for
// concurrent use; the caller owns its synchronization.
//
// Panics with a stable message when rng is nil.
func WithSource(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicNilSource)
	}

	return func(o *Options) {
		o.rng = rng
		o.useShared = false
	}
}

// WithLocalSource makes Random draw from a fresh clock-seeded generator built
// for this call only. Output is not reproducible; use it to keep concurrent
// callers off the shared source's lock.
func WithLocalSource() Option {
	return func(o *Options) {
		o.rng = nil
		o.useShared = false
	}
}

// gatherOptions applies opts over the defaults. Nil entries are ignored.
func gatherOptions(opts ...Option) Options {
	o := Options{useShared: DefaultUseSharedSource}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
