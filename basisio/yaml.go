// SPDX-License-Identifier: MIT

package basisio

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lll/lll"
)

// document is the YAML request layout:
//
//	delta: 3/4            # or 0.75
//	max_iterations: 10000 # optional
//	dimension: 3          # optional, defaults to len(basis)
//	basis:
//	  - [1, 1, 1]
//	  - [-1, 0, 2]
//	  - [3, 5, 6]
type document struct {
	Delta         yaml.Node `yaml:"delta"`
	MaxIterations int       `yaml:"max_iterations"`
	Dimension     int       `yaml:"dimension"`
	Basis         [][]int64 `yaml:"basis"`
}

// ReadYAML decodes one request document.
func ReadYAML(r io.Reader) (*Input, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("ReadYAML: empty document: %w", ErrInput)
		}

		return nil, fmt.Errorf("ReadYAML: %w: %w", ErrInput, err)
	}

	n := doc.Dimension
	if n == 0 {
		n = len(doc.Basis)
	}
	if n <= 0 {
		return nil, fmt.Errorf("ReadYAML: dimension %d must be > 0: %w", n, ErrInput)
	}
	basis, err := truncate(doc.Basis, n)
	if err != nil {
		return nil, fmt.Errorf("ReadYAML: %w", err)
	}
	if doc.Delta.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("ReadYAML: threshold missing: %w", ErrInput)
	}
	delta, err := ParseDelta(doc.Delta.Value)
	if err != nil {
		return nil, fmt.Errorf("ReadYAML: %w", err)
	}
	if doc.MaxIterations < 0 {
		return nil, fmt.Errorf("ReadYAML: max_iterations %d: %w", doc.MaxIterations, ErrInput)
	}

	return &Input{Basis: basis, Delta: delta, MaxIterations: doc.MaxIterations}, nil
}

// report is the YAML response layout.
type report struct {
	Delta          string    `yaml:"delta"`
	Determinant    string    `yaml:"determinant,omitempty"`
	Iterations     int       `yaml:"iterations"`
	SizeReductions int       `yaml:"size_reductions"`
	Swaps          int       `yaml:"swaps"`
	Basis          [][]int64 `yaml:"basis,flow"`
}

// WriteYAML encodes a reduction result with its threshold and, when it can
// be computed, the lattice determinant.
func WriteYAML(w io.Writer, res *lll.Result, delta *big.Rat) error {
	rep := report{
		Iterations:     res.Iterations,
		SizeReductions: res.SizeReductions,
		Swaps:          res.Swaps,
		Basis:          res.Basis,
	}
	if delta != nil {
		rep.Delta = delta.RatString()
	}
	if det, err := lll.Determinant(res.Basis); err == nil {
		rep.Determinant = det.String()
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return enc.Close()
}
