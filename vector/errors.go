// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Callers match these with errors.Is; context is added with
// fmt.Errorf("tag: %w", ErrX) at the call site.

package vector

import "errors"

var (
	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrZeroVector is returned when projecting onto a vector whose squared
	// norm is zero. Reaching it means the orthogonal set is degenerate.
	ErrZeroVector = errors.New("vector: projection onto zero vector")

	// ErrNonIntegral is returned by Ints when a coordinate is not an integer.
	ErrNonIntegral = errors.New("vector: non-integral coordinate")
)
