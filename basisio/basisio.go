// SPDX-License-Identifier: MIT

// Package basisio reads reduction requests and writes reduced bases.
//
// Three input layouts share one validation policy:
//
//   - Prompt: interactive dialogue on a terminal (dimension, one row per
//     prompt, threshold).
//   - ReadText: the same tokens without prompts; blank lines and lines
//     starting with '#' are ignored.
//   - ReadYAML: a document {delta, max_iterations, basis}.
//
// Rows longer than the dimension are truncated to the first n entries; rows
// shorter than n are rejected. Every malformed input wraps ErrInput.
package basisio

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ErrInput indicates malformed input: bad dimension, short row, non-numeric
// entry or threshold.
var ErrInput = errors.New("basisio: invalid input")

// Input is a validated reduction request.
type Input struct {
	// Basis is n×n.
	Basis [][]int64
	// Delta is the Lovász threshold.
	Delta *big.Rat
	// MaxIterations is 0 unless the source specified a cap.
	MaxIterations int
}

// parseDimension accepts a positive decimal integer.
func parseDimension(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("dimension %q: %w", s, ErrInput)
	}
	if n <= 0 {
		return 0, fmt.Errorf("dimension %d must be > 0: %w", n, ErrInput)
	}

	return n, nil
}

// parseRow parses whitespace-separated integers and keeps the first n.
func parseRow(line string, i, n int) ([]int64, error) {
	fields := strings.Fields(line)
	if len(fields) < n {
		return nil, fmt.Errorf("row %d: %d entries, want %d: %w", i+1, len(fields), n, ErrInput)
	}
	row := make([]int64, n)
	for j := 0; j < n; j++ {
		x, err := strconv.ParseInt(fields[j], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d entry %d %q: %w", i+1, j+1, fields[j], ErrInput)
		}
		row[j] = x
	}

	return row, nil
}

// ParseDelta accepts a decimal ("0.75", "1e-1") or fraction ("3/4").
func ParseDelta(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("threshold: empty: %w", ErrInput)
	}
	d, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("threshold %q: %w", s, ErrInput)
	}

	return d, nil
}

// truncate keeps the first n entries of each row, rejecting short rows.
func truncate(rows [][]int64, n int) ([][]int64, error) {
	if len(rows) != n {
		return nil, fmt.Errorf("%d rows, want %d: %w", len(rows), n, ErrInput)
	}
	out := make([][]int64, n)
	for i, r := range rows {
		if len(r) < n {
			return nil, fmt.Errorf("row %d: %d entries, want %d: %w", i+1, len(r), n, ErrInput)
		}
		out[i] = append([]int64(nil), r[:n]...)
	}

	return out, nil
}
