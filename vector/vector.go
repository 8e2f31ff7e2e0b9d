// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Immutable Vector type backed by []*big.Rat.
//   - Constructors from int64, *big.Int and *big.Rat inputs.
//   - Copy-out accessors so no caller can alias internal storage.

package vector

import (
	"fmt"
	"math/big"
	"strings"
)

// Vector is an immutable, fixed-length sequence of exact rationals.
// The zero value is the empty vector.
type Vector struct {
	c []*big.Rat // never exposed; every element owned by this Vector
}

// New builds a Vector from integer coordinates.
// Complexity: O(d).
func New(xs ...int64) Vector {
	c := make([]*big.Rat, len(xs))
	for i, x := range xs {
		c[i] = new(big.Rat).SetInt64(x)
	}

	return Vector{c: c}
}

// FromInts is New for an existing slice.
func FromInts(xs []int64) Vector {
	return New(xs...)
}

// FromBigInts builds a Vector from arbitrary-precision integers.
// Nil entries are treated as zero.
func FromBigInts(xs []*big.Int) Vector {
	c := make([]*big.Rat, len(xs))
	for i, x := range xs {
		c[i] = new(big.Rat)
		if x != nil {
			c[i].SetInt(x)
		}
	}

	return Vector{c: c}
}

// FromRats builds a Vector from rationals. Values are copied, so later
// mutation of xs does not leak into the Vector. Nil entries are treated as zero.
func FromRats(xs []*big.Rat) Vector {
	c := make([]*big.Rat, len(xs))
	for i, x := range xs {
		c[i] = new(big.Rat)
		if x != nil {
			c[i].Set(x)
		}
	}

	return Vector{c: c}
}

// Len returns the number of coordinates.
func (v Vector) Len() int { return len(v.c) }

// At returns a copy of coordinate i. It panics if i is out of range, like a
// slice index would.
func (v Vector) At(i int) *big.Rat {
	return new(big.Rat).Set(v.c[i])
}

// Rats returns copies of all coordinates.
func (v Vector) Rats() []*big.Rat {
	out := make([]*big.Rat, len(v.c))
	for i, x := range v.c {
		out[i] = new(big.Rat).Set(x)
	}

	return out
}

// IsZero reports whether every coordinate is zero. The empty vector is zero.
func (v Vector) IsZero() bool {
	for _, x := range v.c {
		if x.Sign() != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether v and w have the same length and coordinates.
func (v Vector) Equal(w Vector) bool {
	if len(v.c) != len(w.c) {
		return false
	}
	for i := range v.c {
		if v.c[i].Cmp(w.c[i]) != 0 {
			return false
		}
	}

	return true
}

// Ints converts every coordinate to *big.Int.
// It fails with ErrNonIntegral instead of truncating.
func (v Vector) Ints() ([]*big.Int, error) {
	out := make([]*big.Int, len(v.c))
	for i, x := range v.c {
		if !x.IsInt() {
			return nil, fmt.Errorf("Ints: coordinate %d = %s: %w", i, x.RatString(), ErrNonIntegral)
		}
		out[i] = new(big.Int).Set(x.Num())
	}

	return out, nil
}

// String renders the vector as "[a b/c ...]", integers without a denominator.
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.c {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(x.RatString())
	}
	sb.WriteByte(']')

	return sb.String()
}
