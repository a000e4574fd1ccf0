// SPDX-License-Identifier: MIT

// Package factor - marginalization and normalization.

package factor

import (
	"fmt"
	"slices"
)

const (
	ctxMarginalize    = "Marginalize"
	ctxMarginalizeOut = "MarginalizeOut"
)

// Marginalize returns a new factor with v summed out of the domain and the
// table. The outcome space is inherited unchanged; v's entry stays in it,
// unreferenced by the new domain. Summing out the last variable yields a
// scalar factor holding the total mass.
// Errors: ErrUnknownVariable when v is not in the domain.
// Complexity: O(size).
func (f *Factor[V, O]) Marginalize(v V) (*Factor[V, O], error) {
	axis := slices.Index(f.domain, v)
	if axis < 0 {
		return nil, fmt.Errorf("Factor.%s: %v: %w", ctxMarginalize, v, ErrUnknownVariable)
	}
	table, err := f.table.SumAxis(axis)
	if err != nil {
		return nil, fmt.Errorf("Factor.%s: %w", ctxMarginalize, err)
	}
	domain := slices.Delete(slices.Clone(f.domain), axis, axis+1)

	return f.derive(domain, cloneSpace(f.outcomes), table), nil
}

// MarginalizeOut sums out each of vars in order. With no vars it returns a copy.
// Errors: ErrUnknownVariable for the first variable not (or no longer) in the domain.
func (f *Factor[V, O]) MarginalizeOut(vars ...V) (*Factor[V, O], error) {
	acc := f.Copy()
	for _, v := range vars {
		next, err := acc.Marginalize(v)
		if err != nil {
			return nil, fmt.Errorf("Factor.%s: %w", ctxMarginalizeOut, err)
		}
		acc = next
	}

	return acc, nil
}

// Normalize divides every entry by the total mass, in place, and returns f
// for chaining. A zero-mass table becomes NaN everywhere; this is not an
// error and is not guarded against.
func (f *Factor[V, O]) Normalize() *Factor[V, O] {
	f.table.Scale(1 / f.table.Sum())

	return f
}

// Normalized returns a normalized copy and leaves f untouched.
func (f *Factor[V, O]) Normalized() *Factor[V, O] {
	return f.Copy().Normalize()
}
