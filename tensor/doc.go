// Package tensor provides a dense, row-major, N-dimensional float64 array and
// the small set of axis kernels that discrete probability tables are built on.
//
// Overview:
//
//   - Dense stores prod(shape) elements in a flat slice; axis k has stride
//     prod(shape[k+1:]), so the last axis varies fastest.
//   - Rank-0 tensors (empty shape) are legal scalars holding one element.
//   - Axis kernels never mutate their receiver and never alias its buffer:
//     ExpandDims (trailing singleton axes), Transpose (axis permutation),
//     SliceAxis (rank-preserving length-1 slice), SumAxis (reduction).
//   - BroadcastMul multiplies equal-rank operands, stretching size-1 axes.
//   - Scale is the in-place kernel; AllClose and Dense.Equal compare.
//
// Error handling (sentinel errors, matched with errors.Is):
//
//   - ErrInvalidDimensions, ErrOutOfRange, ErrRankMismatch,
//     ErrDimensionMismatch, ErrBadAxis, ErrBadPermutation, ErrNaNInf, ErrNilTensor.
//
// Numeric policy:
//
//   - WithValidateNaNInf makes constructors and Set reject NaN and ±Inf.
//     It is off by default because unnormalized tables may legitimately
//     produce NaN when their total mass is zero.
//   - WithEpsilon sets the tolerance of Dense.Equal.
//
// Thread safety:
//
//   - A Dense is a plain value with no internal locking; synchronize
//     externally before concurrent mutation.
package tensor
