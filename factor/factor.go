// SPDX-License-Identifier: MIT

// Package factor - Factor value type, construction and indexed access.
//
// Ownership:
//   - A Factor owns its table; no two factors ever share a *tensor.Dense.
//   - Outcome sequences are immutable values. Constructors copy them once on
//     ingress; factors derived by Join/Evidence/Marginalize then share them by
//     reference, which is safe because no code path mutates a sequence in
//     place. Copy still produces fully independent sequences.

package factor

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/pgm/tensor"
)

// ---------- error context tags ----------

const (
	ctxNew        = "New"
	ctxWithTable  = "NewWithTable"
	ctxFromTensor = "FromTensor"
	ctxGet        = "Get"
	ctxSet        = "Set"
)

// OutcomeSpace maps each variable to its ordered sequence of admissible
// values. It may hold variables that are not in a factor's domain.
type OutcomeSpace[V, O comparable] map[V][]O

// Factor is a dense non-negative table over the joint outcomes of an ordered
// domain of discrete variables. Axis i of the table belongs to domain[i] and
// has len(outcomes[domain[i]]) entries.
//
// V is the variable identifier type (string, int, ...); O is the outcome
// value type (bool, string, int, ...).
type Factor[V, O comparable] struct {
	domain   []V                // ordered variables, one per table axis
	outcomes OutcomeSpace[V, O] // superset of domain; sequences are immutable
	table    *tensor.Dense      // rank == len(domain)
	opts     Options            // carried into derived factors
}

// New creates a factor holding the uniform distribution over domain.
// MAIN DESCRIPTION:
//   - Allocates a table of shape [len(space[v]) for v in domain], fills it
//     with ones and divides by the grand total so entries sum to 1.
//
// Implementation:
//   - Stage 1: validate domain against space and copy both (see prepare).
//   - Stage 2: allocate the table filled with 1 and scale by 1/size.
//
// Behavior highlights:
//   - An empty domain yields a scalar factor holding 1.
//   - The caller's domain slice, map and sequences are never retained.
//
// Errors:
//   - ErrUnknownVariable, ErrDuplicateVariable, ErrDuplicateOutcome,
//     tensor.ErrInvalidDimensions (empty outcome sequence).
//
// Complexity:
//   - Time O(prod(sizes) + |space|·k), Space O(prod(sizes)).
func New[V, O comparable](domain []V, space OutcomeSpace[V, O], opts ...Option) (*Factor[V, O], error) {
	f, err := prepare(ctxNew, domain, space, opts)
	if err != nil {
		return nil, err
	}
	table, err := tensor.Full(1, f.shape(), f.opts.tensorOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNew, err)
	}
	table.Scale(1 / table.Sum())
	f.table = table

	return f, nil
}

// NewWithTable creates a factor over a copy of values laid out in row-major
// order: the last domain variable varies fastest, matching Do.
// Errors: as New, plus ErrTableShape and ErrInvalidValue (strict policy).
func NewWithTable[V, O comparable](domain []V, space OutcomeSpace[V, O], values []float64, opts ...Option) (*Factor[V, O], error) {
	f, err := prepare(ctxWithTable, domain, space, opts)
	if err != nil {
		return nil, err
	}
	shape := f.shape()
	if n := volume(shape); len(values) != n {
		return nil, fmt.Errorf("%s: %d values for shape %v: %w", ctxWithTable, len(values), shape, ErrTableShape)
	}
	if err = f.opts.checkValues(ctxWithTable, values); err != nil {
		return nil, err
	}
	f.table, err = tensor.NewFromSlice(values, shape, f.opts.tensorOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxWithTable, err)
	}

	return f, nil
}

// FromTensor creates a factor over a clone of t. The shape of t must equal
// the outcome-space sizes of domain.
// Errors: as New, plus ErrTableShape, ErrInvalidValue and tensor.ErrNilTensor.
func FromTensor[V, O comparable](domain []V, space OutcomeSpace[V, O], t *tensor.Dense, opts ...Option) (*Factor[V, O], error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromTensor, tensor.ErrNilTensor)
	}
	f, err := prepare(ctxFromTensor, domain, space, opts)
	if err != nil {
		return nil, err
	}
	if want := f.shape(); !slices.Equal(want, t.Shape()) {
		return nil, fmt.Errorf("%s: shape %v, want %v: %w", ctxFromTensor, t.Shape(), want, ErrTableShape)
	}
	data := t.Data()
	if err = f.opts.checkValues(ctxFromTensor, data); err != nil {
		return nil, err
	}
	f.table, err = tensor.NewFromSlice(data, t.Shape(), f.opts.tensorOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromTensor, err)
	}

	return f, nil
}

// prepare validates the construction boundary and returns a factor shell
// (no table yet) holding private copies of domain and space.
func prepare[V, O comparable](tag string, domain []V, space OutcomeSpace[V, O], opts []Option) (*Factor[V, O], error) {
	seen := make(map[V]struct{}, len(domain))
	for _, v := range domain {
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("%s: %v: %w", tag, v, ErrDuplicateVariable)
		}
		seen[v] = struct{}{}
		if _, ok := space[v]; !ok {
			return nil, fmt.Errorf("%s: %v: %w", tag, v, ErrUnknownVariable)
		}
	}

	outcomes := make(OutcomeSpace[V, O], len(space))
	for v, seq := range space {
		if err := checkUnique(seq); err != nil {
			return nil, fmt.Errorf("%s: %v: %w", tag, v, err)
		}
		outcomes[v] = slices.Clone(seq)
	}

	return &Factor[V, O]{
		domain:   slices.Clone(domain),
		outcomes: outcomes,
		opts:     gatherOptions(opts...),
	}, nil
}

func checkUnique[O comparable](seq []O) error {
	seen := make(map[O]struct{}, len(seq))
	for _, o := range seq {
		if _, dup := seen[o]; dup {
			return fmt.Errorf("%v: %w", o, ErrDuplicateOutcome)
		}
		seen[o] = struct{}{}
	}

	return nil
}

func volume(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}

	return n
}

// checkValues applies the strict policy to a whole table.
func (o Options) checkValues(tag string, values []float64) error {
	for i, v := range values {
		if !o.checkValue(v) {
			return fmt.Errorf("%s: element %d (%g): %w", tag, i, v, ErrInvalidValue)
		}
	}

	return nil
}

// derive builds an operation result. The outcome map is a fresh wrapper but
// its sequences are shared (immutable); table must already be owned.
func (f *Factor[V, O]) derive(domain []V, outcomes OutcomeSpace[V, O], table *tensor.Dense) *Factor[V, O] {
	return &Factor[V, O]{
		domain:   domain,
		outcomes: outcomes,
		table:    table,
		opts:     f.opts,
	}
}

// shape returns the axis sizes implied by the outcome space.
func (f *Factor[V, O]) shape() []int {
	shape := make([]int, len(f.domain))
	for i, v := range f.domain {
		shape[i] = len(f.outcomes[v])
	}

	return shape
}

// Domain returns a copy of the ordered variables.
func (f *Factor[V, O]) Domain() []V { return slices.Clone(f.domain) }

// Rank returns the number of variables in the domain.
func (f *Factor[V, O]) Rank() int { return len(f.domain) }

// Size returns the number of table cells (joint assignments).
func (f *Factor[V, O]) Size() int { return f.table.Size() }

// Contains reports whether v is in the domain.
func (f *Factor[V, O]) Contains(v V) bool { return slices.Contains(f.domain, v) }

// Outcomes returns a copy of v's outcome sequence and whether v is known.
func (f *Factor[V, O]) Outcomes(v V) ([]O, bool) {
	seq, ok := f.outcomes[v]
	if !ok {
		return nil, false
	}

	return slices.Clone(seq), true
}

// OutcomeSpace returns a deep copy of the outcome space, including variables
// outside the domain.
func (f *Factor[V, O]) OutcomeSpace() OutcomeSpace[V, O] {
	out := make(OutcomeSpace[V, O], len(f.outcomes))
	for v, seq := range f.outcomes {
		out[v] = slices.Clone(seq)
	}

	return out
}

// Table returns a clone of the underlying tensor.
func (f *Factor[V, O]) Table() *tensor.Dense { return f.table.Clone() }

// Sum returns the total mass of the table.
func (f *Factor[V, O]) Sum() float64 { return f.table.Sum() }

// indices translates one outcome per domain variable into axis positions by
// exact-match lookup.
func (f *Factor[V, O]) indices(tag string, outcomes []O) ([]int, error) {
	if len(outcomes) != len(f.domain) {
		return nil, fmt.Errorf("Factor.%s: %d outcomes for %d variables: %w", tag, len(outcomes), len(f.domain), ErrArity)
	}
	idx := make([]int, len(outcomes))
	for i, v := range f.domain {
		pos := slices.Index(f.outcomes[v], outcomes[i])
		if pos < 0 {
			return nil, fmt.Errorf("Factor.%s: %v=%v: %w", tag, v, outcomes[i], ErrUnknownOutcome)
		}
		idx[i] = pos
	}

	return idx, nil
}

// Get returns the entry for the joint assignment given as one outcome per
// domain variable, in domain order. For a single-variable domain the lone
// value is the whole argument list: f.Get(true).
// Errors: ErrArity, ErrUnknownOutcome.
// Complexity: O(Σ|outcomes|) for the lookups.
func (f *Factor[V, O]) Get(outcomes ...O) (float64, error) {
	idx, err := f.indices(ctxGet, outcomes)
	if err != nil {
		return 0, err
	}

	return f.table.At(idx...)
}

// Set overwrites the entry for the given joint assignment in place. No other
// cell changes.
// Errors: ErrArity, ErrUnknownOutcome, ErrInvalidValue (strict policy).
func (f *Factor[V, O]) Set(value float64, outcomes ...O) error {
	idx, err := f.indices(ctxSet, outcomes)
	if err != nil {
		return err
	}
	if !f.opts.checkValue(value) {
		return fmt.Errorf("Factor.%s: %g: %w", ctxSet, value, ErrInvalidValue)
	}

	return f.table.Set(value, idx...)
}

// Do visits every joint assignment in cartesian-product order (domain order,
// last variable fastest) with its entry. The assignment slice is reused
// between calls; copy it if retained. Stops early when fn returns false.
func (f *Factor[V, O]) Do(fn func(assignment []O, p float64) bool) {
	assignment := make([]O, len(f.domain))
	f.table.Do(func(idx []int, p float64) bool {
		for i, v := range f.domain {
			assignment[i] = f.outcomes[v][idx[i]]
		}
		return fn(assignment, p)
	})
}

// Copy returns a fully independent deep copy.
// Complexity: O(size + |space|·k).
func (f *Factor[V, O]) Copy() *Factor[V, O] {
	return &Factor[V, O]{
		domain:   slices.Clone(f.domain),
		outcomes: f.OutcomeSpace(),
		table:    f.table.Clone(),
		opts:     f.opts,
	}
}

// String renders one tab-separated row per joint assignment under a header
// of the domain variables and "Pr". Intended for debugging; see package
// render for a bordered grid.
func (f *Factor[V, O]) String() string {
	var b strings.Builder
	for _, v := range f.domain {
		fmt.Fprintf(&b, "%v\t", v)
	}
	b.WriteString("Pr\n")
	f.Do(func(assignment []O, p float64) bool {
		for _, o := range assignment {
			fmt.Fprintf(&b, "%v\t", o)
		}
		fmt.Fprintf(&b, "%g\n", p)
		return true
	})

	return b.String()
}

// cloneSpace returns a fresh map sharing s's (immutable) sequences.
func cloneSpace[V, O comparable](s OutcomeSpace[V, O]) OutcomeSpace[V, O] {
	out := maps.Clone(s)
	if out == nil {
		out = make(OutcomeSpace[V, O])
	}

	return out
}
