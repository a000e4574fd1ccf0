// SPDX-License-Identifier: MIT

// Package tensor - broadcast and comparison kernels.
//
// Broadcasting follows the usual rule restricted to equal ranks: on every
// axis the two sizes must be equal or one of them must be 1, and a size-1
// axis is stretched to the other operand's size. Callers align ranks and
// axis order explicitly beforehand (see ExpandDims/Transpose).

package tensor

import (
	"fmt"
	"math"
)

const (
	ctxBroadcastMul = "BroadcastMul"
	ctxAllClose     = "AllClose"
)

// BroadcastShape returns the broadcast result shape of a and b.
// Errors: ErrRankMismatch, ErrDimensionMismatch.
// Complexity: O(rank).
func BroadcastShape(a, b []int) ([]int, error) {
	if len(a) != len(b) {
		return nil, ErrRankMismatch
	}
	out := make([]int, len(a))
	for k := range a {
		switch {
		case a[k] == b[k]:
			out[k] = a[k]
		case a[k] == 1:
			out[k] = b[k]
		case b[k] == 1:
			out[k] = a[k]
		default:
			return nil, ErrDimensionMismatch
		}
	}

	return out, nil
}

// BroadcastMul returns the element-wise product of a and b with size-1 axes
// stretched to match the other operand.
// MAIN DESCRIPTION:
//   - out[idx] = a[idx mod a.shape] * b[idx mod b.shape] for every idx in the
//     broadcast shape.
//
// Implementation:
//   - Stage 1: validate operands and compute the broadcast shape.
//   - Stage 2: use stride 0 for every size-1 axis so the offset does not advance.
//   - Stage 3: walk the output with an odometer, tracking both source offsets.
//
// Behavior highlights:
//   - Operands are not mutated; the result owns a fresh buffer.
//   - The result inherits a's numeric policy.
//
// Errors:
//   - ErrNilTensor, ErrRankMismatch, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(size(out)), Space O(size(out)).
func BroadcastMul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", ctxBroadcastMul, ErrNilTensor)
	}
	shape, err := BroadcastShape(a.shape, b.shape)
	if err != nil {
		return nil, fmt.Errorf("%s(%v,%v): %w", ctxBroadcastMul, a.shape, b.shape, err)
	}
	rank := len(shape)
	sa := broadcastStrides(a)
	sb := broadcastStrides(b)
	out := newDenseUnchecked(shape, a.validateNaNInf)

	idx := make([]int, rank)
	offA, offB := 0, 0
	for k := range out.data {
		out.data[k] = a.data[offA] * b.data[offB]
		for ax := rank - 1; ax >= 0; ax-- {
			idx[ax]++
			offA += sa[ax]
			offB += sb[ax]
			if idx[ax] < shape[ax] {
				break
			}
			offA -= sa[ax] * shape[ax]
			offB -= sb[ax] * shape[ax]
			idx[ax] = 0
		}
	}

	return out, nil
}

// broadcastStrides returns t's strides with 0 on every size-1 axis.
func broadcastStrides(t *Dense) []int {
	s := make([]int, len(t.shape))
	for k, d := range t.shape {
		if d != 1 {
			s[k] = t.strides[k]
		}
	}

	return s
}

// AllClose reports whether a and b have the same shape and every pair of
// elements satisfies |a-b| <= atol + rtol*|b|. NaN matches only NaN, so two
// tables produced by normalizing zero mass compare equal.
// Errors: ErrNilTensor, ErrNaNInf (non-finite tolerance).
// Complexity: O(n), early exit on first violation.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, fmt.Errorf("%s: %w", ctxAllClose, ErrNaNInf)
	}
	if a == nil || b == nil {
		return false, fmt.Errorf("%s: %w", ctxAllClose, ErrNilTensor)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if len(a.shape) != len(b.shape) {
		return false, nil
	}
	for k := range a.shape {
		if a.shape[k] != b.shape[k] {
			return false, nil
		}
	}
	for i, av := range a.data {
		bv := b.data[i]
		if math.IsNaN(av) || math.IsNaN(bv) {
			if math.IsNaN(av) && math.IsNaN(bv) {
				continue
			}
			return false, nil
		}
		if av == bv { // covers matching infinities
			continue
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports whether t and other match elementwise within the absolute
// tolerance resolved from opts (DefaultEpsilon unless WithEpsilon is given).
// Nil operands and shape mismatches compare unequal; NaN matches NaN.
func (t *Dense) Equal(other *Dense, opts ...Option) bool {
	o := gatherOptions(opts...)
	ok, err := AllClose(t, other, 0, o.eps)

	return err == nil && ok
}
