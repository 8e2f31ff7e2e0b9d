// SPDX-License-Identifier: MIT
// Package lll: sentinel error set.
// Every reduction failure is a hard stop; no partial result is returned.
// Match with errors.Is; messages carry the "lll: ..." prefix.

package lll

import "errors"

var (
	// ErrInput indicates an unusable argument: nil threshold, empty, ragged,
	// non-square or non-integral basis.
	ErrInput = errors.New("lll: invalid input")

	// ErrArithmetic indicates a projection onto a zero vector, i.e. the
	// orthogonal set became degenerate.
	ErrArithmetic = errors.New("lll: arithmetic error")

	// ErrLinearlyDependent is returned when the basis is rank deficient.
	// Errors carrying it also match ErrArithmetic and vector.ErrZeroVector.
	ErrLinearlyDependent = errors.New("lll: basis is linearly dependent")

	// ErrNonTermination indicates the iteration cap was reached.
	ErrNonTermination = errors.New("lll: iteration limit exceeded")

	// ErrIntegrality indicates a non-integral coordinate in the final basis.
	ErrIntegrality = errors.New("lll: non-integral coordinate in result")

	// ErrOverflow indicates a result coordinate that does not fit in int64.
	// Only the int64 entry points return it.
	ErrOverflow = errors.New("lll: coordinate overflows int64")

	// ErrNotReduced is returned by the Check* verifiers.
	ErrNotReduced = errors.New("lll: basis is not reduced")
)
