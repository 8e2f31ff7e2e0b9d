// SPDX-License-Identifier: MIT
// Package: lll
//
// LLL — Lenstra–Lenstra–Lovász basis reduction
//
// Algorithm Outline:
//  1. Validate: square, integral, full rank (OrthogonalizeAligned has no zero).
//  2. idx = 1. While idx < n:
//     2.1 Size-reduce b[idx] against b[idx-1] … b[0]:
//     μ = ⟨b*_j, b_idx⟩ / ⟨b*_j, b*_j⟩; if |μ| > 1/2,
//     b_idx −= round(μ)·b_j (round-half-to-even) and rebuild b*.
//     2.2 Lovász test: ‖b*_idx‖² ≥ (δ − μ(idx,idx-1)²)·‖b*_{idx-1}‖².
//     2.3 Pass → idx++. Fail → swap b_idx, b_{idx-1}; rebuild b*;
//     idx = max(idx-1, 1).
//  3. Convert every coordinate back to an integer, failing on non-integral.
//
// Complexity:
//
//	Each rebuild costs O(n²·d); the number of outer steps is polynomial in n
//	and log max‖b_i‖ for δ < 1.

package lll

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/lll/gramschmidt"
	"github.com/katalvlaran/lll/vector"
)

// half is the size-reduction bound |μ| ≤ 1/2.
var half = big.NewRat(1, 2)

// Result holds the outcome of one reduction.
type Result struct {
	// Basis is the reduced basis as int64 rows, in final internal order.
	Basis [][]int64
	// Vectors is the reduced basis as exact vectors.
	Vectors []vector.Vector
	// Iterations counts outer steps (size-reduce + Lovász test).
	Iterations int
	// SizeReductions counts b_idx −= round(μ)·b_j replacements.
	SizeReductions int
	// Swaps counts Lovász-failure exchanges.
	Swaps int
}

// Reducer runs LLL with a fixed threshold and configuration.
// It holds no per-call state and may be shared across goroutines.
type Reducer struct {
	delta *big.Rat
	opts  Options
}

// New returns a Reducer for threshold delta. delta is copied. It is not range
// checked: values outside (1/4, 1] are accepted and only change convergence.
func New(delta *big.Rat, opts ...Option) (*Reducer, error) {
	if delta == nil {
		return nil, fmt.Errorf("New: nil threshold: %w", ErrInput)
	}

	return &Reducer{delta: new(big.Rat).Set(delta), opts: gatherOptions(opts...)}, nil
}

// Delta returns a copy of the threshold.
func (r *Reducer) Delta() *big.Rat { return new(big.Rat).Set(r.delta) }

// Reduce is the one-shot form: New(delta, opts...).Reduce(basis).Basis.
func Reduce(basis [][]int64, delta *big.Rat, opts ...Option) ([][]int64, error) {
	r, err := New(delta, opts...)
	if err != nil {
		return nil, err
	}
	res, err := r.Reduce(basis)
	if err != nil {
		return nil, err
	}

	return res.Basis, nil
}

// Reduce runs LLL on an n×n integer basis. The input is not modified.
func (r *Reducer) Reduce(basis [][]int64) (*Result, error) {
	n := len(basis)
	if n == 0 {
		return nil, fmt.Errorf("Reduce: empty basis: %w", ErrInput)
	}
	vs := make([]vector.Vector, n)
	for i, row := range basis {
		if len(row) != n {
			return nil, fmt.Errorf("Reduce: row %d has %d entries, want %d: %w", i, len(row), n, ErrInput)
		}
		vs[i] = vector.FromInts(row)
	}
	res, err := r.ReduceVectors(vs)
	if err != nil {
		return nil, err
	}
	if res.Basis == nil {
		_, err = toInt64(res.Vectors)

		return nil, err
	}

	return res, nil
}

// ReduceVectors runs LLL on a square basis of integral vectors, which may
// carry coordinates beyond int64. When some reduced coordinate does not fit
// in int64, Result.Basis is nil and only Result.Vectors is populated.
func (r *Reducer) ReduceVectors(basis []vector.Vector) (*Result, error) {
	// Stage 1: validate shape, integrality, rank.
	if err := validate(basis); err != nil {
		return nil, err
	}
	b := make([]vector.Vector, len(basis))
	copy(b, basis) // Vectors are immutable; copying the slice is enough

	// Stage 2: iterate.
	st := &state{r: r, b: b, obs: fanout(r.opts.observers)}
	if err := st.run(); err != nil {
		return nil, err
	}

	// Stage 3: finalize.
	res := &Result{
		Vectors:        st.b,
		Iterations:     st.iterations,
		SizeReductions: st.sizeReductions,
		Swaps:          st.swaps,
	}
	out, err := toInt64(st.b)
	if err != nil && !errors.Is(err, ErrOverflow) {
		return nil, err
	}
	res.Basis = out // nil on overflow; Vectors stays exact
	st.obs.Converged(res)

	return res, nil
}

// validate rejects bases the reduction cannot start from.
func validate(basis []vector.Vector) error {
	n := len(basis)
	if n == 0 {
		return fmt.Errorf("Reduce: empty basis: %w", ErrInput)
	}
	for i, v := range basis {
		if v.Len() != n {
			return fmt.Errorf("Reduce: vector %d has length %d, want %d: %w", i, v.Len(), n, ErrInput)
		}
		if _, err := v.Ints(); err != nil {
			return fmt.Errorf("Reduce: vector %d: %w: %w", i, ErrInput, err)
		}
	}
	orth, err := gramschmidt.OrthogonalizeAligned(basis)
	if err != nil {
		return fmt.Errorf("Reduce: %w: %w", ErrInput, err)
	}
	for k, u := range orth {
		if u.IsZero() {
			return fmt.Errorf("Reduce: vector %d depends on its predecessors: %w: %w: %w",
				k, ErrLinearlyDependent, ErrArithmetic, vector.ErrZeroVector)
		}
	}

	return nil
}

// state is the mutable data of one reduction call.
type state struct {
	r    *Reducer
	b    []vector.Vector // basis, mutated in place
	orth []vector.Vector // b*, rebuilt after every change
	obs  fanout

	iterations     int
	sizeReductions int
	swaps          int
}

// run drives the idx cursor from 1 to n.
func (s *state) run() error {
	if err := s.rebuild(); err != nil {
		return err
	}
	n := len(s.b)
	for idx := 1; idx < n; {
		if err := s.r.opts.ctx.Err(); err != nil {
			return fmt.Errorf("Reduce: at step %d: %w", s.iterations, err)
		}
		if s.iterations >= s.r.opts.maxIterations {
			return fmt.Errorf("Reduce: %d steps without convergence (idx=%d): %w",
				s.iterations, idx, ErrNonTermination)
		}
		s.iterations++

		if err := s.sizeReduce(idx); err != nil {
			return err
		}
		holds, err := s.lovasz(idx)
		if err != nil {
			return err
		}
		if holds {
			idx++
			continue
		}
		s.b[idx], s.b[idx-1] = s.b[idx-1], s.b[idx]
		s.swaps++
		s.obs.Swapped(idx)
		if err = s.rebuild(); err != nil {
			return err
		}
		idx = max(idx-1, 1)
	}

	return nil
}

// sizeReduce makes |μ(idx, j)| ≤ 1/2 for j = idx-1 … 0.
func (s *state) sizeReduce(idx int) error {
	for j := idx - 1; j >= 0; j-- {
		coeff, err := s.coefficient(idx, j)
		if err != nil {
			return err
		}
		s.obs.CoefficientComputed(idx, j, coeff)
		if new(big.Rat).Abs(coeff).Cmp(half) <= 0 {
			continue
		}
		q := vector.RoundHalfEven(coeff)
		nb, err := vector.Sub(s.b[idx], vector.Scale(s.b[j], new(big.Rat).SetInt(q)))
		if err != nil {
			return fmt.Errorf("Reduce: %w", err)
		}
		s.b[idx] = nb
		s.sizeReductions++
		s.obs.VectorReplaced(idx, j, q, nb)
		if err = s.rebuild(); err != nil {
			return err
		}
	}

	return nil
}

// lovasz evaluates ‖b*_idx‖² ≥ (δ − μ²)·‖b*_{idx-1}‖².
func (s *state) lovasz(idx int) (bool, error) {
	mu, err := s.coefficient(idx, idx-1)
	if err != nil {
		return false, err
	}
	rhs := new(big.Rat).Mul(mu, mu)
	rhs.Sub(s.r.delta, rhs)
	rhs.Mul(rhs, vector.SelfProduct(s.orth[idx-1]))
	holds := vector.SelfProduct(s.orth[idx]).Cmp(rhs) >= 0
	s.obs.ConditionChecked(idx, mu, holds)

	return holds, nil
}

// coefficient returns μ(i, j) = ProjectionFactor(b*_j, b_i).
func (s *state) coefficient(i, j int) (*big.Rat, error) {
	mu, err := vector.ProjectionFactor(s.orth[j], s.b[i])
	if err != nil {
		if errors.Is(err, vector.ErrZeroVector) {
			return nil, fmt.Errorf("Reduce: μ(%d,%d): %w: %w", i, j, ErrArithmetic, err)
		}

		return nil, fmt.Errorf("Reduce: μ(%d,%d): %w", i, j, err)
	}

	return mu, nil
}

// rebuild recomputes b* from scratch.
func (s *state) rebuild() error {
	orth, err := gramschmidt.OrthogonalizeAligned(s.b)
	if err != nil {
		return fmt.Errorf("Reduce: %w", err)
	}
	s.orth = orth

	return nil
}

// toInt64 converts the final basis, failing rather than truncating.
func toInt64(b []vector.Vector) ([][]int64, error) {
	out := make([][]int64, len(b))
	for i, v := range b {
		xs, err := v.Ints()
		if err != nil {
			return nil, fmt.Errorf("Reduce: row %d: %w: %w", i, ErrIntegrality, err)
		}
		row := make([]int64, len(xs))
		for j, x := range xs {
			if !x.IsInt64() {
				return nil, fmt.Errorf("Reduce: row %d col %d = %s: %w", i, j, x, ErrOverflow)
			}
			row[j] = x.Int64()
		}
		out[i] = row
	}

	return out, nil
}
