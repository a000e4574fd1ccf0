// SPDX-License-Identifier: MIT
// Package factor: sentinel error set.
// Operations either fully succeed or fail before mutating the receiver.
// Errors are wrapped with the method tag at the detection site and matched by
// callers with errors.Is.

package factor

import "errors"

var (
	// ErrUnknownVariable indicates a variable that is absent from the domain
	// (Marginalize, Permute) or from the outcome space (construction).
	ErrUnknownVariable = errors.New("factor: unknown variable")

	// ErrDuplicateVariable indicates a variable listed twice in a domain.
	ErrDuplicateVariable = errors.New("factor: duplicate variable in domain")

	// ErrDuplicateOutcome indicates a repeated value inside one outcome
	// sequence; values are lookup keys and must be unique.
	ErrDuplicateOutcome = errors.New("factor: duplicate outcome value")

	// ErrUnknownOutcome is the key-not-found condition of indexed access:
	// the value is not in the variable's outcome sequence.
	ErrUnknownOutcome = errors.New("factor: unknown outcome value")

	// ErrArity indicates that the number of supplied outcomes (or variables)
	// differs from the size of the domain.
	ErrArity = errors.New("factor: wrong number of outcomes for domain")

	// ErrIncompatibleOutcomeSpace is returned by Join when a shared variable
	// has different outcome sequences in the two operands. Apply the same
	// evidence to every factor before joining.
	ErrIncompatibleOutcomeSpace = errors.New("factor: incompatible outcome spaces, set the same evidence on all factors")

	// ErrTableShape indicates a supplied table whose size or shape disagrees
	// with the outcome-space sizes of the domain.
	ErrTableShape = errors.New("factor: table shape does not match outcome space")

	// ErrInvalidValue is returned under WithStrictValues for negative, NaN
	// or ±Inf table entries.
	ErrInvalidValue = errors.New("factor: value must be finite and non-negative")

	// ErrNilFactor indicates a nil *Factor argument.
	ErrNilFactor = errors.New("factor: nil factor")

	// ErrNoFactors is returned by Product when called without operands.
	ErrNoFactors = errors.New("factor: no factors to multiply")
)
