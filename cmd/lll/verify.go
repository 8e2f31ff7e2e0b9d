package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lll/lll"
)

// errNotReduced makes verify exit non-zero after printing its verdicts.
var errNotReduced = errors.New("basis is not LLL-reduced")

func newVerifyCmd() *cobra.Command {
	f := &inputFlags{}
	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Check whether a basis is LLL-reduced",
		Long: `Verify prints the lattice determinant and whether the basis is size-reduced
and satisfies the Lovász condition for the threshold.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			return runVerify(cmd, path, f)
		},
	}
	f.register(cmd.Flags())

	return cmd
}

func runVerify(cmd *cobra.Command, path string, f *inputFlags) error {
	in, err := loadInput(cmd, path, f)
	if err != nil {
		return err
	}
	det, err := lll.Determinant(in.Basis)
	if err != nil {
		return err
	}
	sizeErr := lll.CheckSizeReduced(in.Basis)
	lovErr := lll.CheckLovasz(in.Basis, in.Delta)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "determinant: %s\n", det.Abs(det))
	fmt.Fprintf(out, "size-reduced: %s\n", verdict(sizeErr))
	fmt.Fprintf(out, "lovasz(%s): %s\n", in.Delta.RatString(), verdict(lovErr))

	for _, e := range []error{sizeErr, lovErr} {
		if e != nil && !errors.Is(e, lll.ErrNotReduced) {
			return e
		}
	}
	if sizeErr != nil || lovErr != nil {
		return errNotReduced
	}

	return nil
}

func verdict(err error) string {
	if err == nil {
		return "yes"
	}

	return "no (" + err.Error() + ")"
}
