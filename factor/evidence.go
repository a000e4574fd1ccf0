// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"slices"
)

// Evidence returns a copy of f restricted to the observed assignments.
//
// For every variable of the domain that appears in assignments with a value
// present in its outcome sequence, the table axis is cut down to the single
// matching entry (rank is preserved; the axis keeps length 1) and the
// variable's outcome sequence becomes []O{value}.
//
// Assignments naming a variable outside the domain, or a value outside the
// variable's outcome sequence, are ignored for that variable without error.
// Evidence is a per-factor filter: apply the same assignments to every
// factor that will later be joined.
//
// The receiver is never mutated. Variables are processed in domain order.
// Panics only if the table and outcome space of f have drifted apart, which
// no exported operation can produce.
func (f *Factor[V, O]) Evidence(assignments map[V]O) *Factor[V, O] {
	table := f.table.Clone()
	outcomes := cloneSpace(f.outcomes)
	for axis, v := range f.domain {
		value, ok := assignments[v]
		if !ok {
			continue
		}
		pos := slices.Index(outcomes[v], value)
		if pos < 0 {
			continue
		}
		sliced, err := table.SliceAxis(axis, pos)
		if err != nil {
			// outcome sequence and axis length disagree: the factor is corrupt
			panic(fmt.Sprintf("factor: Evidence: %v=%v: %v", v, value, err))
		}
		table = sliced
		outcomes[v] = []O{value}
	}

	return f.derive(slices.Clone(f.domain), outcomes, table)
}

// Observe is Evidence for a single variable.
func (f *Factor[V, O]) Observe(v V, value O) *Factor[V, O] {
	return f.Evidence(map[V]O{v: value})
}
