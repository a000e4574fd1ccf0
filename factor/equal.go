// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/pgm/tensor"
)

const ctxPermute = "Permute"

// Equal reports whether f and other have the same domain order, identical
// outcome sequences for every domain variable, and tables equal within f's
// epsilon (NaN matches NaN). Outcome-space entries outside the domain are
// not compared.
func (f *Factor[V, O]) Equal(other *Factor[V, O]) bool {
	if f == nil || other == nil {
		return f == other
	}
	if !slices.Equal(f.domain, other.domain) {
		return false
	}
	for _, v := range f.domain {
		if !slices.Equal(f.outcomes[v], other.outcomes[v]) {
			return false
		}
	}
	return f.table.Equal(other.table, tensor.WithEpsilon(f.opts.eps))
}

// Permute returns a copy of f whose domain is reordered to order; the table
// axes follow their variables, so every assignment keeps its value.
// Errors: ErrArity (length), ErrUnknownVariable, ErrDuplicateVariable.
// Complexity: O(size).
func (f *Factor[V, O]) Permute(order []V) (*Factor[V, O], error) {
	if len(order) != len(f.domain) {
		return nil, fmt.Errorf("Factor.%s: %d variables for domain of %d: %w", ctxPermute, len(order), len(f.domain), ErrArity)
	}
	perm := make([]int, len(order))
	for i, v := range order {
		axis := slices.Index(f.domain, v)
		if axis < 0 {
			return nil, fmt.Errorf("Factor.%s: %v: %w", ctxPermute, v, ErrUnknownVariable)
		}
		if slices.Contains(order[:i], v) {
			return nil, fmt.Errorf("Factor.%s: %v: %w", ctxPermute, v, ErrDuplicateVariable)
		}
		perm[i] = axis
	}
	table, err := f.table.Transpose(perm)
	if err != nil {
		return nil, fmt.Errorf("Factor.%s: %w", ctxPermute, err)
	}

	return f.derive(slices.Clone(order), cloneSpace(f.outcomes), table), nil
}

// Equivalent reports whether other describes the same function as f up to
// domain order: other is permuted into f's order and compared with Equal.
func (f *Factor[V, O]) Equivalent(other *Factor[V, O]) bool {
	if f == nil || other == nil {
		return f == other
	}
	aligned, err := other.Permute(f.domain)
	if err != nil {
		return false
	}

	return f.Equal(aligned)
}
