package gramschmidt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lll/gramschmidt"
	"github.com/katalvlaran/lll/vector"
)

// rows converts integer rows to vectors.
func rows(xs ...[]int64) []vector.Vector {
	out := make([]vector.Vector, len(xs))
	for i, x := range xs {
		out[i] = vector.FromInts(x)
	}

	return out
}

// assertPairwiseOrthogonal checks ⟨u_i,u_j⟩ = 0 for all i ≠ j.
func assertPairwiseOrthogonal(t *testing.T, us []vector.Vector) {
	t.Helper()
	for i := range us {
		for j := i + 1; j < len(us); j++ {
			ip, err := vector.InnerProduct(us[i], us[j])
			require.NoError(t, err)
			assert.Zero(t, ip.Sign(), "u[%d]·u[%d] = %s", i, j, ip.RatString())
		}
	}
}

// TestOrthogonalize_Classic checks the exact orthogonal set of a 3×3 basis.
func TestOrthogonalize_Classic(t *testing.T) {
	basis := rows([]int64{1, 1, 1}, []int64{-1, 0, 2}, []int64{3, 5, 6})

	out, err := gramschmidt.Orthogonalize(basis)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "[1 1 1]", out[0].String())
	assert.Equal(t, "[-4/3 -1/3 5/3]", out[1].String())
	assert.Equal(t, "[-3/7 9/14 -3/14]", out[2].String())
	assertPairwiseOrthogonal(t, out)

	// input untouched
	assert.Equal(t, "[-1 0 2]", basis[1].String())
}

// TestOrthogonalize_AlreadyOrthogonal verifies a no-op on the identity.
func TestOrthogonalize_AlreadyOrthogonal(t *testing.T) {
	basis := rows([]int64{1, 0}, []int64{0, 1})
	out, err := gramschmidt.Orthogonalize(basis)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, out[0].Equal(basis[0]))
	assert.True(t, out[1].Equal(basis[1]))
}

// TestOrthogonalize_DropsDependent documents the shrinking behaviour.
func TestOrthogonalize_DropsDependent(t *testing.T) {
	basis := rows([]int64{1, 2}, []int64{2, 4})
	out, err := gramschmidt.Orthogonalize(basis)
	require.NoError(t, err)
	assert.Len(t, out, 1, "dependent vector must be dropped")

	out, err = gramschmidt.Orthogonalize(rows([]int64{0, 0}, []int64{1, 0}))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "[1 0]", out[0].String(), "index shifts after the dropped zero row")
}

// TestOrthogonalizeAligned_KeepsPlaceholders verifies 1:1 index correspondence.
func TestOrthogonalizeAligned_KeepsPlaceholders(t *testing.T) {
	out, err := gramschmidt.OrthogonalizeAligned(rows([]int64{1, 2}, []int64{2, 4}))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "[1 2]", out[0].String())
	assert.True(t, out[1].IsZero())

	out, err = gramschmidt.OrthogonalizeAligned(rows([]int64{0, 0}, []int64{1, 0}, []int64{1, 1}))
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.True(t, out[0].IsZero(), "zero row keeps its slot")
	assert.Equal(t, "[1 0]", out[1].String())
	assert.Equal(t, "[0 1]", out[2].String(), "placeholder is skipped as a projection target")
}

// TestRank counts independent vectors.
func TestRank(t *testing.T) {
	r, err := gramschmidt.Rank(rows([]int64{1, 1, 1}, []int64{-1, 0, 2}, []int64{3, 5, 6}))
	require.NoError(t, err)
	assert.Equal(t, 3, r)

	r, err = gramschmidt.Rank(rows([]int64{1, 0, 0}, []int64{2, 0, 0}, []int64{0, 0, 0}))
	require.NoError(t, err)
	assert.Equal(t, 1, r)
}

// TestOrthogonalize_Errors covers shape validation.
func TestOrthogonalize_Errors(t *testing.T) {
	_, err := gramschmidt.Orthogonalize(nil)
	assert.ErrorIs(t, err, gramschmidt.ErrEmptyBasis)

	_, err = gramschmidt.OrthogonalizeAligned(rows([]int64{1, 0}, []int64{1}))
	assert.ErrorIs(t, err, gramschmidt.ErrDimensionMismatch)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// BenchmarkOrthogonalize_8 measures one from-scratch pass on an 8×8 basis.
func BenchmarkOrthogonalize_8(b *testing.B) {
	const n = 8
	basis := make([]vector.Vector, n)
	for i := 0; i < n; i++ {
		row := make([]int64, n)
		for j := range row {
			row[j] = int64((i*7+j*13)%11 - 5)
		}
		row[i] += 17 // keep it comfortably full rank
		basis[i] = vector.FromInts(row)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gramschmidt.Orthogonalize(basis); err != nil {
			b.Fatalf("Orthogonalize failed: %v", err)
		}
	}
}
