// Package lll implements Lenstra–Lenstra–Lovász lattice basis reduction over
// exact rationals.
//
// 🚀 What is LLL?
//
//	Given an integer basis of a lattice, LLL returns another basis of the same
//	lattice whose vectors are short and nearly orthogonal. It underpins:
//	  • integer relation finding & simultaneous Diophantine approximation
//	  • cryptanalysis of knapsack and truncated-LCG style constructions
//	  • integer programming in fixed dimension
//
// ✨ Key features:
//   - exact arithmetic end to end (math/big); no rounding drift
//   - round-half-to-even size-reduction, so results are reproducible
//   - rank-deficient input is rejected up front (ErrLinearlyDependent)
//   - iteration cap (WithMaxIterations) turns pathological input into
//     ErrNonTermination instead of a hang
//   - attachable Observer for tracing; the arithmetic itself never logs
//   - Determinant / CheckSizeReduced / CheckLovasz to verify any output
//
// ⚙️ Usage:
//
//	out, err := lll.Reduce([][]int64{{1, 1, 1}, {-1, 0, 2}, {3, 5, 6}}, big.NewRat(3, 4))
//	// out == [[0 1 0] [1 0 1] [-1 0 2]]
//
//	r, _ := lll.New(big.NewRat(99, 100), lll.WithObserver(obs), lll.WithMaxIterations(10_000))
//	res, err := r.Reduce(basis) // res.Basis, res.Iterations, res.Swaps …
//
// Performance:
//
//	The orthogonal set is rebuilt from scratch after every basis change:
//	O(n²·d) rational operations per rebuild. This targets small dimensions.
//
// See example_test.go for runnable walkthroughs.
package lll
