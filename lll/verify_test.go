package lll_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lll/lll"
)

// TestDeterminant_Table checks Bareiss against hand-computed values,
// including inputs that need a row pivot.
func TestDeterminant_Table(t *testing.T) {
	cases := []struct {
		name string
		in   [][]int64
		want int64
	}{
		{"1x1", [][]int64{{5}}, 5},
		{"identity", [][]int64{{1, 0}, {0, 1}}, 1},
		{"classic", [][]int64{{1, 1, 1}, {-1, 0, 2}, {3, 5, 6}}, -3},
		{"classic-reduced", [][]int64{{0, 1, 0}, {1, 0, 1}, {-1, 0, 2}}, -3},
		{"needs-pivot", [][]int64{{0, 1}, {1, 0}}, -1},
		{"needs-pivot-3d", [][]int64{{0, 2, 1}, {0, 1, 3}, {4, 0, 0}}, 20},
		{"singular", [][]int64{{1, 2}, {2, 4}}, 0},
		{"zero-column", [][]int64{{0, 1, 2}, {0, 3, 4}, {0, 5, 6}}, 0},
		{"skewed", [][]int64{{201, 37}, {1648, 297}}, -1279},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := lll.Determinant(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Int64())
		})
	}
}

// TestDeterminant_Errors covers shape validation.
func TestDeterminant_Errors(t *testing.T) {
	_, err := lll.Determinant(nil)
	assert.ErrorIs(t, err, lll.ErrInput)

	_, err = lll.Determinant([][]int64{{1, 2}, {3}})
	assert.ErrorIs(t, err, lll.ErrInput)
}

// TestCheckSizeReduced detects a large off-diagonal coefficient.
func TestCheckSizeReduced(t *testing.T) {
	assert.NoError(t, lll.CheckSizeReduced([][]int64{{1, 0}, {0, 1}}))
	assert.NoError(t, lll.CheckSizeReduced([][]int64{{2, 0}, {1, 1}}), "μ = 1/2 is allowed")

	err := lll.CheckSizeReduced([][]int64{{1, 0}, {3, 1}})
	assert.ErrorIs(t, err, lll.ErrNotReduced)

	err = lll.CheckSizeReduced([][]int64{{0, 0}, {1, 1}})
	assert.ErrorIs(t, err, lll.ErrArithmetic)
}

// TestCheckLovasz detects an out-of-order pair.
func TestCheckLovasz(t *testing.T) {
	assert.NoError(t, lll.CheckLovasz([][]int64{{1, 0}, {0, 2}}, big.NewRat(3, 4)))

	err := lll.CheckLovasz([][]int64{{0, 2}, {1, 0}}, big.NewRat(3, 4))
	assert.ErrorIs(t, err, lll.ErrNotReduced, "1 < 3/4·4")

	assert.NoError(t, lll.CheckLovasz([][]int64{{0, 2}, {1, 0}}, big.NewRat(1, 4)), "1 ≥ 1/4·4")

	assert.ErrorIs(t, lll.CheckLovasz([][]int64{{1}}, nil), lll.ErrInput)
}
