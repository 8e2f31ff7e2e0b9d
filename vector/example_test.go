package vector_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lll/vector"
)

// ExampleProjectOnto projects b onto a and removes the component, which is
// exactly one Gram-Schmidt step.
func ExampleProjectOnto() {
	a := vector.New(1, 1, 1)
	b := vector.New(-1, 0, 2)

	p, err := vector.ProjectOnto(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	r, _ := vector.Sub(b, p)
	fmt.Println("proj:", p)
	fmt.Println("rest:", r)
	// Output:
	// proj: [1/3 1/3 1/3]
	// rest: [-4/3 -1/3 5/3]
}

// ExampleRoundHalfEven shows the tie-breaking rule used by size-reduction.
func ExampleRoundHalfEven() {
	for _, r := range []*big.Rat{big.NewRat(5, 2), big.NewRat(7, 2), big.NewRat(-5, 2)} {
		fmt.Println(r.RatString(), "→", vector.RoundHalfEven(r))
	}
	// Output:
	// 5/2 → 2
	// 7/2 → 4
	// -5/2 → -2
}
