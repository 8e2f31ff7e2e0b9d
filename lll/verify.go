// SPDX-License-Identifier: MIT
// Package: lll
//
// Purpose:
//   - Verifiers for the properties a reduced basis must satisfy, usable on any
//     basis (not only on Reduce output): lattice volume via Determinant,
//     CheckSizeReduced, CheckLovasz.

package lll

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lll/gramschmidt"
	"github.com/katalvlaran/lll/vector"
)

// Determinant returns det(basis) exactly using fraction-free Bareiss
// elimination with row pivoting. Two bases span the same full-rank lattice
// only if their determinants agree up to sign.
// Complexity: O(n³) big-integer operations.
func Determinant(basis [][]int64) (*big.Int, error) {
	n := len(basis)
	if n == 0 {
		return nil, fmt.Errorf("Determinant: empty basis: %w", ErrInput)
	}
	a := make([][]*big.Int, n)
	for i, row := range basis {
		if len(row) != n {
			return nil, fmt.Errorf("Determinant: row %d has %d entries, want %d: %w", i, len(row), n, ErrInput)
		}
		a[i] = make([]*big.Int, n)
		for j, x := range row {
			a[i][j] = big.NewInt(x)
		}
	}

	sign := 1
	prev := big.NewInt(1)
	t1, t2 := new(big.Int), new(big.Int)
	for k := 0; k < n-1; k++ {
		// pivot
		if a[k][k].Sign() == 0 {
			p := -1
			for i := k + 1; i < n; i++ {
				if a[i][k].Sign() != 0 {
					p = i
					break
				}
			}
			if p < 0 {
				return new(big.Int), nil
			}
			a[k], a[p] = a[p], a[k]
			sign = -sign
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				t1.Mul(a[i][j], a[k][k])
				t2.Mul(a[i][k], a[k][j])
				a[i][j] = new(big.Int).Quo(t1.Sub(t1, t2), prev) // exact
			}
		}
		prev = a[k][k]
	}

	det := new(big.Int).Set(a[n-1][n-1])
	if sign < 0 {
		det.Neg(det)
	}

	return det, nil
}

// CheckSizeReduced verifies |μ(i, j)| ≤ 1/2 for every j < i.
// A violation returns an error wrapping ErrNotReduced.
func CheckSizeReduced(basis [][]int64) error {
	vs, orth, err := prepare(basis)
	if err != nil {
		return err
	}
	for i := 1; i < len(vs); i++ {
		for j := 0; j < i; j++ {
			mu, err := vector.ProjectionFactor(orth[j], vs[i])
			if err != nil {
				return fmt.Errorf("CheckSizeReduced: μ(%d,%d): %w: %w", i, j, ErrArithmetic, err)
			}
			if new(big.Rat).Abs(mu).Cmp(half) > 0 {
				return fmt.Errorf("CheckSizeReduced: |μ(%d,%d)| = |%s| > 1/2: %w", i, j, mu.RatString(), ErrNotReduced)
			}
		}
	}

	return nil
}

// CheckLovasz verifies ‖b*_i‖² ≥ (δ − μ(i,i-1)²)·‖b*_{i-1}‖² for every i ≥ 1.
// A violation returns an error wrapping ErrNotReduced.
func CheckLovasz(basis [][]int64, delta *big.Rat) error {
	if delta == nil {
		return fmt.Errorf("CheckLovasz: nil threshold: %w", ErrInput)
	}
	vs, orth, err := prepare(basis)
	if err != nil {
		return err
	}
	for i := 1; i < len(vs); i++ {
		mu, err := vector.ProjectionFactor(orth[i-1], vs[i])
		if err != nil {
			return fmt.Errorf("CheckLovasz: μ(%d,%d): %w: %w", i, i-1, ErrArithmetic, err)
		}
		rhs := new(big.Rat).Mul(mu, mu)
		rhs.Sub(delta, rhs)
		rhs.Mul(rhs, vector.SelfProduct(orth[i-1]))
		if lhs := vector.SelfProduct(orth[i]); lhs.Cmp(rhs) < 0 {
			return fmt.Errorf("CheckLovasz: at %d: %s < %s: %w", i, lhs.RatString(), rhs.RatString(), ErrNotReduced)
		}
	}

	return nil
}

// prepare converts rows and builds the aligned orthogonal set.
func prepare(basis [][]int64) ([]vector.Vector, []vector.Vector, error) {
	if len(basis) == 0 {
		return nil, nil, fmt.Errorf("check: empty basis: %w", ErrInput)
	}
	vs := make([]vector.Vector, len(basis))
	for i, row := range basis {
		vs[i] = vector.FromInts(row)
	}
	orth, err := gramschmidt.OrthogonalizeAligned(vs)
	if err != nil {
		return nil, nil, fmt.Errorf("check: %w: %w", ErrInput, err)
	}

	return vs, orth, nil
}
