// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - The pure operations the Gram-Schmidt and LLL layers are built from.
//   - No operation mutates its operands; each returns fresh storage.
//
// Determinism:
//   - Exact rational arithmetic only; results are independent of evaluation order.

package vector

import (
	"fmt"
	"math/big"
)

// sameLen validates operand lengths for binary operations.
func sameLen(tag string, a, b Vector) error {
	if len(a.c) != len(b.c) {
		return fmt.Errorf("%s: %d vs %d: %w", tag, len(a.c), len(b.c), ErrDimensionMismatch)
	}

	return nil
}

// InnerProduct returns Σ a[i]·b[i].
// Complexity: O(d).
func InnerProduct(a, b Vector) (*big.Rat, error) {
	if err := sameLen("InnerProduct", a, b); err != nil {
		return nil, err
	}

	return dot(a, b), nil
}

// dot assumes equal lengths.
func dot(a, b Vector) *big.Rat {
	sum := new(big.Rat)
	term := new(big.Rat)
	for i := range a.c {
		sum.Add(sum, term.Mul(a.c[i], b.c[i]))
	}

	return sum
}

// SelfProduct returns the squared Euclidean norm Σ a[i]².
func SelfProduct(a Vector) *big.Rat {
	return dot(a, a)
}

// Scale returns the element-wise product a[i]·s. s must be non-nil.
func Scale(a Vector, s *big.Rat) Vector {
	c := make([]*big.Rat, len(a.c))
	for i, x := range a.c {
		c[i] = new(big.Rat).Mul(x, s)
	}

	return Vector{c: c}
}

// Sub returns the element-wise difference a[i] − b[i].
func Sub(a, b Vector) (Vector, error) {
	if err := sameLen("Sub", a, b); err != nil {
		return Vector{}, err
	}
	c := make([]*big.Rat, len(a.c))
	for i := range a.c {
		c[i] = new(big.Rat).Sub(a.c[i], b.c[i])
	}

	return Vector{c: c}, nil
}

// ProjectionFactor returns ⟨a,b⟩ / ⟨a,a⟩, the coefficient μ of the projection
// of b onto a. It fails with ErrZeroVector when a has zero squared norm.
func ProjectionFactor(a, b Vector) (*big.Rat, error) {
	if err := sameLen("ProjectionFactor", a, b); err != nil {
		return nil, err
	}
	den := SelfProduct(a)
	if den.Sign() == 0 {
		return nil, fmt.Errorf("ProjectionFactor: onto %s: %w", a, ErrZeroVector)
	}

	return new(big.Rat).Quo(dot(a, b), den), nil
}

// ProjectOnto returns the projection of b onto a: a · ProjectionFactor(a, b).
func ProjectOnto(a, b Vector) (Vector, error) {
	mu, err := ProjectionFactor(a, b)
	if err != nil {
		return Vector{}, err
	}

	return Scale(a, mu), nil
}

// RoundHalfEven maps r to the nearest integer; exact halves go to the even
// neighbour (2.5 → 2, 3.5 → 4, −2.5 → −2).
func RoundHalfEven(r *big.Rat) *big.Int {
	num, den := r.Num(), r.Denom() // den > 0 always
	q, m := new(big.Int).DivMod(num, den, new(big.Int))
	// Euclidean DivMod: q = floor(r), 0 ≤ m < den.
	switch new(big.Int).Lsh(m, 1).Cmp(den) {
	case 1:
		q.Add(q, big.NewInt(1))
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}

	return q
}
