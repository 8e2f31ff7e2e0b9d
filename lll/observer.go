// SPDX-License-Identifier: MIT

package lll

import (
	"math/big"

	"github.com/katalvlaran/lll/vector"
)

// Observer receives trace events from a reduction. Arguments are copies or
// immutable values; an Observer cannot influence the computation.
//
// Call order within one outer step at index idx:
//
//	CoefficientComputed(idx, j, …) for j = idx-1 … 0, each possibly followed
//	by VectorReplaced(idx, j, …); then ConditionChecked(idx, …); then
//	Swapped(idx) when the condition failed.
//
// Converged is called once on success.
type Observer interface {
	// CoefficientComputed reports μ(idx, j) = ⟨b*_j, b_idx⟩ / ⟨b*_j, b*_j⟩.
	CoefficientComputed(idx, j int, coeff *big.Rat)
	// VectorReplaced reports b_idx := b_idx − factor·b_j and the new b_idx.
	VectorReplaced(idx, j int, factor *big.Int, v vector.Vector)
	// ConditionChecked reports the Lovász test at idx and its outcome.
	ConditionChecked(idx int, mu *big.Rat, holds bool)
	// Swapped reports the exchange of b_idx and b_{idx-1}.
	Swapped(idx int)
	// Converged reports the final result.
	Converged(res *Result)
}

// ObserverFuncs adapts optional callbacks to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnCoefficient func(idx, j int, coeff *big.Rat)
	OnReplace     func(idx, j int, factor *big.Int, v vector.Vector)
	OnCondition   func(idx int, mu *big.Rat, holds bool)
	OnSwap        func(idx int)
	OnConverged   func(res *Result)
}

func (f ObserverFuncs) CoefficientComputed(idx, j int, coeff *big.Rat) {
	if f.OnCoefficient != nil {
		f.OnCoefficient(idx, j, coeff)
	}
}

func (f ObserverFuncs) VectorReplaced(idx, j int, factor *big.Int, v vector.Vector) {
	if f.OnReplace != nil {
		f.OnReplace(idx, j, factor, v)
	}
}

func (f ObserverFuncs) ConditionChecked(idx int, mu *big.Rat, holds bool) {
	if f.OnCondition != nil {
		f.OnCondition(idx, mu, holds)
	}
}

func (f ObserverFuncs) Swapped(idx int) {
	if f.OnSwap != nil {
		f.OnSwap(idx)
	}
}

func (f ObserverFuncs) Converged(res *Result) {
	if f.OnConverged != nil {
		f.OnConverged(res)
	}
}

// fanout notifies observers in registration order.
type fanout []Observer

func (fs fanout) CoefficientComputed(idx, j int, coeff *big.Rat) {
	for _, o := range fs {
		o.CoefficientComputed(idx, j, new(big.Rat).Set(coeff))
	}
}

func (fs fanout) VectorReplaced(idx, j int, factor *big.Int, v vector.Vector) {
	for _, o := range fs {
		o.VectorReplaced(idx, j, new(big.Int).Set(factor), v)
	}
}

func (fs fanout) ConditionChecked(idx int, mu *big.Rat, holds bool) {
	for _, o := range fs {
		o.ConditionChecked(idx, new(big.Rat).Set(mu), holds)
	}
}

func (fs fanout) Swapped(idx int) {
	for _, o := range fs {
		o.Swapped(idx)
	}
}

func (fs fanout) Converged(res *Result) {
	for _, o := range fs {
		o.Converged(res)
	}
}
