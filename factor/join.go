// SPDX-License-Identifier: MIT

// Package factor - Join (variable-aligned multiplication).
//
// Axes are aligned by variable identity, never by position. An axisPlan is
// built once per call and drives both operands into the union-domain axis
// order before the broadcast multiply.

package factor

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/pgm/tensor"
)

const (
	ctxJoin    = "Join"
	ctxProduct = "Product"
)

// axisPlan is the per-join axis registry.
//   - domain: receiver variables in their own order, then the other
//     operand's new variables in its relative order.
//   - selfPad / otherPad: trailing singleton axes each operand needs so that
//     both reach len(domain) axes.
//   - otherPerm: transpose of the padded other table into domain order.
//     The padded other table is ordered as other.domain followed by the
//     receiver-only variables in receiver order.
type axisPlan[V comparable] struct {
	domain    []V
	selfPad   int
	otherPad  int
	otherPerm []int
}

// planJoin builds the axis registry for self × other.
// Complexity: O(|self|·|other|) membership checks on small domains.
func planJoin[V comparable](self, other []V) axisPlan[V] {
	domain := slices.Clone(self)
	for _, v := range other {
		if !slices.Contains(self, v) {
			domain = append(domain, v)
		}
	}

	padded := slices.Clone(other)
	for _, v := range self {
		if !slices.Contains(other, v) {
			padded = append(padded, v)
		}
	}

	perm := make([]int, len(domain))
	for i, v := range domain {
		perm[i] = slices.Index(padded, v)
	}

	return axisPlan[V]{
		domain:    domain,
		selfPad:   len(domain) - len(self),
		otherPad:  len(domain) - len(other),
		otherPerm: perm,
	}
}

// Join multiplies f by other, aligning shared variables by identity.
// MAIN DESCRIPTION:
//   - Returns a factor over the union domain whose entry for every joint
//     assignment is f(assignment restricted to f) * other(assignment
//     restricted to other).
//
// Implementation:
//   - Stage 1: every shared variable must have identical outcome sequences
//     (same values, same order); else ErrIncompatibleOutcomeSpace.
//   - Stage 2: plan the union domain (f's variables first, then other's new
//     ones in other's order).
//   - Stage 3: pad each table with trailing singleton axes for the variables
//     it lacks, and transpose other's padded table into union order.
//   - Stage 4: broadcast-multiply and merge the outcome spaces.
//
// Behavior highlights:
//   - Neither operand is mutated.
//   - Values are commutative (A⋈B and B⋈A agree at every assignment); the
//     result's domain order is deterministic but depends on which side is f.
//
// Errors:
//   - ErrNilFactor, ErrIncompatibleOutcomeSpace (wrapped with the variable).
//
// Complexity:
//   - Time O(prod of union sizes), Space the same.
func (f *Factor[V, O]) Join(other *Factor[V, O]) (*Factor[V, O], error) {
	if other == nil {
		return nil, fmt.Errorf("Factor.%s: %w", ctxJoin, ErrNilFactor)
	}
	for _, v := range f.domain {
		if !slices.Contains(other.domain, v) {
			continue
		}
		if !slices.Equal(f.outcomes[v], other.outcomes[v]) {
			return nil, fmt.Errorf("Factor.%s: %v: %v vs %v: %w",
				ctxJoin, v, f.outcomes[v], other.outcomes[v], ErrIncompatibleOutcomeSpace)
		}
	}

	plan := planJoin(f.domain, other.domain)

	selfT, err := f.table.ExpandDims(plan.selfPad)
	if err != nil {
		return nil, fmt.Errorf("Factor.%s: %w", ctxJoin, err)
	}
	otherT, err := other.table.ExpandDims(plan.otherPad)
	if err != nil {
		return nil, fmt.Errorf("Factor.%s: %w", ctxJoin, err)
	}
	otherT, err = otherT.Transpose(plan.otherPerm)
	if err != nil {
		return nil, fmt.Errorf("Factor.%s: %w", ctxJoin, err)
	}
	product, err := tensor.BroadcastMul(selfT, otherT)
	if err != nil {
		return nil, fmt.Errorf("Factor.%s: %w", ctxJoin, err)
	}

	return f.derive(plan.domain, joinSpaces(plan.domain, f, other), product), nil
}

// joinSpaces builds the outcome space of f ⋈ other. A domain variable takes
// its sequence from the operand whose domain holds it (f first), so an axis
// restricted by evidence keeps its single outcome even when the other
// operand's space still lists the full sequence. Entries outside the domain
// are the union of both spaces, f winning on conflict.
func joinSpaces[V, O comparable](domain []V, f, other *Factor[V, O]) OutcomeSpace[V, O] {
	out := make(OutcomeSpace[V, O], len(f.outcomes)+len(other.outcomes))
	maps.Copy(out, other.outcomes)
	maps.Copy(out, f.outcomes)
	for _, v := range domain {
		if slices.Contains(f.domain, v) {
			out[v] = f.outcomes[v]
		} else {
			out[v] = other.outcomes[v]
		}
	}

	return out
}

// Product joins factors left to right: ((f0 ⋈ f1) ⋈ f2) ⋈ ...
// A single operand yields a copy of it.
// Errors: ErrNoFactors, ErrNilFactor, ErrIncompatibleOutcomeSpace.
func Product[V, O comparable](factors ...*Factor[V, O]) (*Factor[V, O], error) {
	if len(factors) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxProduct, ErrNoFactors)
	}
	if factors[0] == nil {
		return nil, fmt.Errorf("%s: operand 0: %w", ctxProduct, ErrNilFactor)
	}
	acc := factors[0].Copy()
	for i, g := range factors[1:] {
		next, err := acc.Join(g)
		if err != nil {
			return nil, fmt.Errorf("%s: operand %d: %w", ctxProduct, i+1, err)
		}
		acc = next
	}

	return acc, nil
}
