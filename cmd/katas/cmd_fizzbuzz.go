package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-katas/fizzbuzz"
)

// newFizzBuzzCmd builds `katas fizzbuzz`.
func newFizzBuzzCmd() *cobra.Command {
	var bound int
	cmd := &cobra.Command{
		Use:   "fizzbuzz",
		Short: "Count from 1 up to (excluding) a bound, saying Fizz, Buzz or FizzBuzz",
		Long: `Count from 1 up to, but not including, the bound.

Multiples of 3 print "Fizz", multiples of 5 print "Buzz" and multiples of
both print "FizzBuzz". Without --max the bound is asked for interactively,
re-prompting until a whole number is entered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("max") {
				logger.Debug("Counting with flag bound", zap.Int("bound", bound))

				return fizzbuzz.Count(out, bound)
			}
			logger.Debug("Prompting for bound")

			return fizzbuzz.Run(cmd.InOrStdin(), out)
		},
	}
	cmd.Flags().IntVar(&bound, "max", 0, "Upper bound (exclusive); skips the prompt")

	return cmd
}
