// SPDX-License-Identifier: MIT

// Package tensor - Dense storage (row-major, N axes) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit offset formula
//     sum_k idx[k]*strides[k], where strides[rank-1] == 1.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce an optional numeric policy (rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(n) zero-init; At/Set: O(rank); Clone: O(n); Sum: O(n).

package tensor

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew  = "NewDense"
	ctxFrom = "NewFromSlice"
	ctxAt   = "At"
	ctxSet  = "Set"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = " "
)

// denseErrorf wraps a sentinel with a uniform Dense context and the offending index.
func denseErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Dense.%s(%v): %w", method, idx, err)
}

// Dense is a concrete row-major N-dimensional array of float64 values.
//   - shape holds axis sizes; an empty shape is a rank-0 scalar with one element.
//   - strides[k] is the flat distance between neighbours along axis k.
//   - data is a flat buffer of length prod(shape).
type Dense struct {
	shape          []int     // axis sizes (> 0)
	strides        []int     // row-major strides, strides[rank-1] == 1
	data           []float64 // contiguous row-major storage
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense allocates a zero-filled tensor with the given shape.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and the configured numeric policy.
//
// Implementation:
//   - Stage 1: validate every axis size > 0; else ErrInvalidDimensions.
//   - Stage 2: compute row-major strides and allocate the flat buffer.
//
// Behavior highlights:
//   - An empty shape yields a rank-0 scalar holding a single zero.
//   - The shape slice is copied; the caller may reuse it.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(n), Space O(n) for n = prod(shape).
func NewDense(shape []int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	n, err := volume(shape)
	if err != nil {
		return nil, fmt.Errorf("%s(%v): %w", ctxNew, shape, err)
	}

	return &Dense{
		shape:          append([]int(nil), shape...),
		strides:        rowMajorStrides(shape),
		data:           make([]float64, n),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Full allocates a tensor with every element set to value.
// Complexity: O(n).
func Full(value float64, shape []int, opts ...Option) (*Dense, error) {
	t, err := NewDense(shape, opts...)
	if err != nil {
		return nil, err
	}
	if t.validateNaNInf && isNonFinite(value) {
		return nil, fmt.Errorf("Full(%g): %w", value, ErrNaNInf)
	}
	for i := range t.data {
		t.data[i] = value
	}

	return t, nil
}

// NewFromSlice builds a tensor over a copy of data laid out in row-major order.
// Returns ErrDimensionMismatch when len(data) != prod(shape), and ErrNaNInf
// for non-finite values when the finite-only policy is on.
// Complexity: O(n).
func NewFromSlice(data []float64, shape []int, opts ...Option) (*Dense, error) {
	t, err := NewDense(shape, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(t.data) {
		return nil, fmt.Errorf("%s: len %d for shape %v: %w", ctxFrom, len(data), shape, ErrDimensionMismatch)
	}
	if t.validateNaNInf {
		for i, v := range data {
			if isNonFinite(v) {
				return nil, fmt.Errorf("%s: element %d: %w", ctxFrom, i, ErrNaNInf)
			}
		}
	}
	copy(t.data, data)

	return t, nil
}

// newDenseUnchecked allocates without validation for internal kernels whose
// shapes were derived from already-valid tensors.
func newDenseUnchecked(shape []int, validateNaNInf bool) *Dense {
	n := 1
	for _, d := range shape {
		n *= d
	}

	return &Dense{
		shape:          shape,
		strides:        rowMajorStrides(shape),
		data:           make([]float64, n),
		validateNaNInf: validateNaNInf,
	}
}

// volume returns prod(shape) or ErrInvalidDimensions.
func volume(shape []int) (int, error) {
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, ErrInvalidDimensions
		}
		n *= d
	}

	return n, nil
}

// rowMajorStrides computes strides with the last axis varying fastest.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for k := len(shape) - 1; k >= 0; k-- {
		strides[k] = acc
		acc *= shape[k]
	}

	return strides
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// Rank returns the number of axes. Complexity: O(1).
func (t *Dense) Rank() int { return len(t.shape) }

// Size returns the number of elements. Complexity: O(1).
func (t *Dense) Size() int { return len(t.data) }

// Shape returns a copy of the axis sizes. Complexity: O(rank).
func (t *Dense) Shape() []int { return append([]int(nil), t.shape...) }

// Data returns a copy of the flat row-major buffer.
func (t *Dense) Data() []float64 { return append([]float64(nil), t.data...) }

// offset bounds-checks idx and computes its flat offset.
func (t *Dense) offset(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, ErrRankMismatch
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= t.shape[k] {
			return 0, ErrOutOfRange
		}
		off += i * t.strides[k]
	}

	return off, nil
}

// At returns the element at idx.
// Errors: ErrRankMismatch when len(idx) != Rank(); ErrOutOfRange on a bad index.
// Complexity: O(rank).
func (t *Dense) At(idx ...int) (float64, error) {
	off, err := t.offset(idx)
	if err != nil {
		return 0, denseErrorf(ctxAt, idx, err)
	}

	return t.data[off], nil
}

// Set stores v at idx, honoring the numeric policy.
// Errors: ErrRankMismatch, ErrOutOfRange, ErrNaNInf (policy on).
// Complexity: O(rank).
func (t *Dense) Set(v float64, idx ...int) error {
	off, err := t.offset(idx)
	if err != nil {
		return denseErrorf(ctxSet, idx, err)
	}
	if t.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, idx, ErrNaNInf)
	}
	t.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffers, same numeric policy).
// Complexity: O(n).
func (t *Dense) Clone() *Dense {
	return &Dense{
		shape:          append([]int(nil), t.shape...),
		strides:        append([]int(nil), t.strides...),
		data:           append([]float64(nil), t.data...),
		validateNaNInf: t.validateNaNInf,
	}
}

// Sum returns the grand total of all elements.
// Complexity: O(n), fixed 0..n-1 order.
func (t *Dense) Sum() float64 {
	var s float64
	for _, v := range t.data {
		s += v
	}

	return s
}

// Scale multiplies every element by alpha in place.
// Scale is a raw kernel: it does not consult the numeric policy, so a
// division by a zero total propagates NaN/Inf instead of failing.
// Complexity: O(n).
func (t *Dense) Scale(alpha float64) {
	for i := range t.data {
		t.data[i] *= alpha
	}
}

// Do visits every element in row-major order and calls f(idx, v).
// The idx slice is reused between calls; copy it if retained.
// Stops early when f returns false.
// Complexity: O(n·rank) worst case, amortized O(n).
func (t *Dense) Do(f func(idx []int, v float64) bool) {
	idx := make([]int, len(t.shape))
	for off := range t.data {
		if !f(idx, t.data[off]) {
			return
		}
		// odometer: last axis fastest
		for k := len(idx) - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < t.shape[k] {
				break
			}
			idx[k] = 0
		}
	}
}

// String renders the tensor as nested brackets, e.g. [[1 2] [3 4]].
// Intended for debugging; not for hot paths.
func (t *Dense) String() string {
	var b strings.Builder
	t.writeAxis(&b, 0, 0)

	return b.String()
}

func (t *Dense) writeAxis(b *strings.Builder, axis, base int) {
	if axis == len(t.shape) {
		b.WriteString(fmt.Sprintf("%g", t.data[base]))
		return
	}
	b.WriteString(_fmtOpen)
	for i := 0; i < t.shape[axis]; i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		t.writeAxis(b, axis+1, base+i*t.strides[axis])
	}
	b.WriteString(_fmtClose)
}
