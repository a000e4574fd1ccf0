// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// All kernels return these sentinels (optionally wrapped with a method tag via
// %w) and tests match them with errors.Is. User-triggered conditions never
// panic; panics are reserved for nonsensical option parameters.

package tensor

import "errors"

// Every message is prefixed with "tensor: ..." for grep-ability.
var (
	// ErrInvalidDimensions is returned when an axis size is not positive.
	ErrInvalidDimensions = errors.New("tensor: dimensions must be > 0")

	// ErrOutOfRange indicates that an index is outside the bounds of its axis.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrRankMismatch indicates that the number of indices (or the rank of an
	// operand) does not equal the rank the operation expects.
	ErrRankMismatch = errors.New("tensor: rank mismatch")

	// ErrDimensionMismatch indicates incompatible axis sizes between operands,
	// e.g. BroadcastMul where neither size is 1, or a flat buffer whose length
	// differs from the product of the shape.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrBadAxis indicates an axis argument outside [0, rank).
	ErrBadAxis = errors.New("tensor: invalid axis")

	// ErrBadPermutation indicates that a permutation is not a bijection on [0, rank).
	ErrBadPermutation = errors.New("tensor: invalid axis permutation")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only numeric policy.
	ErrNaNInf = errors.New("tensor: NaN or Inf encountered")

	// ErrNilTensor indicates that a nil *Dense (receiver or argument) was used.
	ErrNilTensor = errors.New("tensor: nil tensor")
)
