// SPDX-License-Identifier: MIT

// Package gramschmidt builds orthogonal vector sets from a basis by classical
// Gram-Schmidt over exact rationals.
//
// Steps (for each basis vector b[i], in order):
//  1. v = b[i].
//  2. For each previously accepted orthogonal u: v = v − proj_u(v).
//  3. Zero v means b[i] depends on b[0..i-1].
//
// Two policies differ only in step 3:
//   - Orthogonalize drops zero v; the result can be shorter than the input,
//     so out[k] need not correspond to basis[k].
//   - OrthogonalizeAligned keeps a zero placeholder; len(out) == len(basis)
//     always and out[k] corresponds to basis[k]. Placeholders are skipped as
//     projection targets since a projection onto zero is undefined.
//
// Every call recomputes from scratch; nothing is cached between calls.
//
// Time complexity: O(n²·d) rational operations.
// Memory usage:    O(n·d).
package gramschmidt

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lll/vector"
)

var (
	// ErrEmptyBasis indicates a basis with no vectors.
	ErrEmptyBasis = errors.New("gramschmidt: empty basis")

	// ErrDimensionMismatch indicates basis vectors of differing lengths.
	// Errors carrying it also match vector.ErrDimensionMismatch.
	ErrDimensionMismatch = fmt.Errorf("gramschmidt: %w", vector.ErrDimensionMismatch)
)

// Orthogonalize returns the orthogonal set of basis, dropping every vector
// that reduces to zero.
func Orthogonalize(basis []vector.Vector) ([]vector.Vector, error) {
	return run(basis, false)
}

// OrthogonalizeAligned returns the orthogonal set of basis with a zero
// placeholder at each linearly dependent index.
func OrthogonalizeAligned(basis []vector.Vector) ([]vector.Vector, error) {
	return run(basis, true)
}

// Rank returns the number of linearly independent vectors in basis.
func Rank(basis []vector.Vector) (int, error) {
	out, err := Orthogonalize(basis)
	if err != nil {
		return 0, err
	}

	return len(out), nil
}

// run is the shared Gram-Schmidt loop.
func run(basis []vector.Vector, keepZero bool) ([]vector.Vector, error) {
	// Stage 1: validate shape.
	if len(basis) == 0 {
		return nil, ErrEmptyBasis
	}
	d := basis[0].Len()
	for i, b := range basis {
		if b.Len() != d {
			return nil, fmt.Errorf("Orthogonalize: vector %d has length %d, want %d: %w", i, b.Len(), d, ErrDimensionMismatch)
		}
	}

	// Stage 2: subtract projections onto every accepted vector, in order.
	out := make([]vector.Vector, 0, len(basis))
	for _, b := range basis {
		v := b
		for _, u := range out {
			if u.IsZero() {
				continue // aligned placeholder
			}
			p, err := vector.ProjectOnto(u, v)
			if err != nil {
				return nil, fmt.Errorf("Orthogonalize: %w", err)
			}
			if v, err = vector.Sub(v, p); err != nil {
				return nil, fmt.Errorf("Orthogonalize: %w", err)
			}
		}
		if !v.IsZero() || keepZero {
			out = append(out, v)
		}
	}

	return out, nil
}
