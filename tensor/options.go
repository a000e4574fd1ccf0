// SPDX-License-Identifier: MIT

// Package tensor: functional configuration for the numeric policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package tensor

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by Dense.Equal.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles finite-only validation in constructors and Set.
	// Probability tables legitimately turn into NaN when a zero-mass table is
	// normalized, so the policy is opt-in here (unlike a linear-algebra store).
	DefaultValidateNaNInf = false
)

const panicEpsilonInvalid = "tensor: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the absolute tolerance used by Dense.Equal. Constructors
// ignore it.
// Panics with a stable message when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation on construction and Set.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
