// Package vector provides exact-arithmetic vectors over the rationals.
//
// 🚀 What is it for?
//
//	Lattice reduction recomputes Gram-Schmidt data from scratch many times.
//	Binary floating point would let rounding error creep into every pass, so
//	every coordinate here is a *big.Rat and every operation is exact.
//
// ✨ Key properties:
//   - Vector is immutable: accessors return copies, operations return new values.
//   - All binary operations require equal lengths (ErrDimensionMismatch).
//   - ProjectionFactor refuses to divide by a zero squared norm (ErrZeroVector).
//   - RoundHalfEven is the single rounding rule used for size-reduction.
//
// ⚙️ Usage:
//
//	a := vector.New(1, 1, 1)
//	b := vector.New(-1, 0, 2)
//	mu, err := vector.ProjectionFactor(a, b) // 1/3
//
// Complexity: every operation is O(d) big-rational operations, d = Len().
package vector
