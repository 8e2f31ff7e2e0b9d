// Package lll is the entry point to an exact-arithmetic implementation of
// Lenstra–Lenstra–Lovász lattice basis reduction.
//
// 🚀 What is in the box?
//
//	A small, pure-Go toolkit that brings together:
//		• Exact rational vectors (no floating point anywhere)
//		• Gram-Schmidt orthogonalization, recomputed from scratch
//		• The LLL size-reduction / Lovász-swap iteration
//		• Verifiers: determinant, size-reduced and Lovász checks
//		• Observers for structured logs and Prometheus counters
//		• A CLI that reads text or YAML bases
//
// Under the hood, everything is organized under these subpackages:
//
//	vector/      — immutable *big.Rat vectors and the pure operations on them
//	gramschmidt/ — orthogonal sets, dropping or aligned (zero placeholders)
//	lll/         — Reducer, options, Observer, Determinant/Check* verifiers
//	trace/       — zerolog and Prometheus observers
//	basisio/     — prompt / text / YAML input and output
//	cmd/lll/     — the command-line tool
//
// Quick example:
//
//	out, err := lll.Reduce([][]int64{{1, 1, 1}, {-1, 0, 2}, {3, 5, 6}}, big.NewRat(3, 4))
//	// out == [[0 1 0] [1 0 1] [-1 0 2]]
//
// Complexity: every basis change rebuilds the Gram-Schmidt data in O(n²·d)
// rational operations; the package targets small dimensions.
package lll
