// SPDX-License-Identifier: MIT

// Package factor: functional options.
//
// Options are resolved once at construction and carried by every factor
// derived from the receiver (Join, Evidence, Marginalize, Copy, Permute).
package factor

import (
	"math"

	"github.com/katalvlaran/pgm/tensor"
)

const (
	// DefaultEpsilon is the absolute tolerance used by Equal and Equivalent.
	DefaultEpsilon = 1e-9

	// DefaultStrictValues leaves table entries unchecked; non-negativity is a
	// caller precondition unless WithStrictValues is given.
	DefaultStrictValues = false
)

const panicEpsilonInvalid = "factor: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration.
type Options struct {
	eps    float64 // >= 0; DefaultEpsilon
	strict bool    // DefaultStrictValues
}

// WithEpsilon sets the comparison tolerance for Equal/Equivalent.
// Panics when eps is negative, NaN or ±Inf (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithStrictValues makes construction and Set reject negative, NaN and ±Inf
// entries with ErrInvalidValue. Normalize is unaffected: a zero-mass table
// still turns into NaN rather than failing.
func WithStrictValues() Option {
	return func(o *Options) { o.strict = true }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:    DefaultEpsilon,
		strict: DefaultStrictValues,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// tensorOptions maps the factor policy onto the table's numeric policy.
func (o Options) tensorOptions() []tensor.Option {
	if o.strict {
		return []tensor.Option{tensor.WithValidateNaNInf()}
	}

	return nil
}

// checkValue enforces the strict policy for a single entry.
func (o Options) checkValue(v float64) bool {
	if !o.strict {
		return true
	}

	return !(math.IsNaN(v) || math.IsInf(v, 0) || v < 0)
}
