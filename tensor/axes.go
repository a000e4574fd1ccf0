// SPDX-License-Identifier: MIT

// Package tensor - axis kernels: expand, permute, slice and reduce.
//
// Every kernel allocates a fresh *Dense; operands are never mutated and the
// result never aliases the operand's buffer. The numeric policy is inherited
// from the receiver.

package tensor

import "fmt"

const (
	ctxExpand    = "ExpandDims"
	ctxTranspose = "Transpose"
	ctxSlice     = "SliceAxis"
	ctxSumAxis   = "SumAxis"
)

// ExpandDims returns a copy with n trailing singleton axes appended.
// E.g. shape [3 5] with n=2 becomes [3 5 1 1]. Trailing size-1 axes do not
// change the row-major layout, so the data is copied verbatim.
// Errors: ErrInvalidDimensions when n < 0.
// Complexity: O(size + rank + n).
func (t *Dense) ExpandDims(n int) (*Dense, error) {
	if n < 0 {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxExpand, n, ErrInvalidDimensions)
	}
	shape := make([]int, len(t.shape), len(t.shape)+n)
	copy(shape, t.shape)
	for i := 0; i < n; i++ {
		shape = append(shape, 1)
	}
	out := newDenseUnchecked(shape, t.validateNaNInf)
	copy(out.data, t.data)

	return out, nil
}

// Transpose returns a copy whose axis i is the receiver's axis perm[i].
// MAIN DESCRIPTION:
//   - General N-axis permutation (numpy-style transpose with explicit axes).
//
// Implementation:
//   - Stage 1: validate perm is a bijection on [0, rank).
//   - Stage 2: gather source strides in output order.
//   - Stage 3: walk the output with an odometer, tracking the source offset.
//
// Errors:
//   - ErrBadPermutation.
//
// Complexity:
//   - Time O(size), Space O(size).
func (t *Dense) Transpose(perm []int) (*Dense, error) {
	rank := len(t.shape)
	if len(perm) != rank {
		return nil, fmt.Errorf("Dense.%s(%v): %w", ctxTranspose, perm, ErrBadPermutation)
	}
	seen := make([]bool, rank)
	for _, p := range perm {
		if p < 0 || p >= rank || seen[p] {
			return nil, fmt.Errorf("Dense.%s(%v): %w", ctxTranspose, perm, ErrBadPermutation)
		}
		seen[p] = true
	}

	shape := make([]int, rank)
	src := make([]int, rank)
	for i, p := range perm {
		shape[i] = t.shape[p]
		src[i] = t.strides[p]
	}
	out := newDenseUnchecked(shape, t.validateNaNInf)

	idx := make([]int, rank)
	off := 0
	for k := range out.data {
		out.data[k] = t.data[off]
		for ax := rank - 1; ax >= 0; ax-- {
			idx[ax]++
			off += src[ax]
			if idx[ax] < shape[ax] {
				break
			}
			off -= src[ax] * shape[ax]
			idx[ax] = 0
		}
	}

	return out, nil
}

// splitAt returns (outer, n, inner) such that the buffer is an
// outer × n × inner block layout around axis.
func (t *Dense) splitAt(axis int) (outer, n, inner int) {
	outer, inner = 1, 1
	for k := 0; k < axis; k++ {
		outer *= t.shape[k]
	}
	for k := axis + 1; k < len(t.shape); k++ {
		inner *= t.shape[k]
	}

	return outer, t.shape[axis], inner
}

// SliceAxis returns the length-1 slice i of axis, keeping the rank.
// E.g. shape [2 3 4] sliced on axis 1 yields shape [2 1 4].
// Errors: ErrBadAxis, ErrOutOfRange.
// Complexity: O(size / shape[axis]).
func (t *Dense) SliceAxis(axis, i int) (*Dense, error) {
	if axis < 0 || axis >= len(t.shape) {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxSlice, axis, i, ErrBadAxis)
	}
	if i < 0 || i >= t.shape[axis] {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxSlice, axis, i, ErrOutOfRange)
	}
	outer, n, inner := t.splitAt(axis)
	shape := t.Shape()
	shape[axis] = 1
	out := newDenseUnchecked(shape, t.validateNaNInf)
	for o := 0; o < outer; o++ {
		copy(out.data[o*inner:(o+1)*inner], t.data[(o*n+i)*inner:(o*n+i+1)*inner])
	}

	return out, nil
}

// SumAxis removes axis by summing over it; the result has rank-1 axes.
// Summing the only axis of a vector yields a rank-0 scalar.
// Errors: ErrBadAxis.
// Complexity: O(size).
func (t *Dense) SumAxis(axis int) (*Dense, error) {
	if axis < 0 || axis >= len(t.shape) {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxSumAxis, axis, ErrBadAxis)
	}
	outer, n, inner := t.splitAt(axis)
	shape := make([]int, 0, len(t.shape)-1)
	shape = append(shape, t.shape[:axis]...)
	shape = append(shape, t.shape[axis+1:]...)
	out := newDenseUnchecked(shape, t.validateNaNInf)

	var o, k, in, base int
	for o = 0; o < outer; o++ {
		base = o * inner
		for k = 0; k < n; k++ {
			src := (o*n + k) * inner
			for in = 0; in < inner; in++ {
				out.data[base+in] += t.data[src+in]
			}
		}
	}

	return out, nil
}
