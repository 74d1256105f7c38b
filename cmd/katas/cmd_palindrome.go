package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-katas/palindrome"
)

// newPalindromeCmd builds `katas palindrome`.
func newPalindromeCmd() *cobra.Command {
	var (
		sentence    bool
		variantName string
	)
	cmd := &cobra.Command{
		Use:   "palindrome TEXT...",
		Short: "Report whether each argument is a palindrome",
		Long: `Report whether each argument reads the same forward and backward,
ignoring case. With --sentence, spaces and the punctuation . ? ! , ; : -
are dropped first.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, err := palindrome.ParseVariant(variantName)
			if err != nil {
				return err
			}
			logger.Debug("Checking palindromes",
				zap.Stringer("variant", variant),
				zap.Bool("sentence", sentence),
				zap.Int("count", len(args)))

			for _, text := range args {
				var ok bool
				if sentence {
					ok = palindrome.IsSentencePalindrome(text, palindrome.WithVariant(variant))
				} else if ok, err = palindrome.Check(text, variant); err != nil {
					return err
				}
				if _, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %t\n", text, ok); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&sentence, "sentence", false, "Ignore spaces and common punctuation")
	cmd.Flags().StringVar(&variantName, "variant", palindrome.Naive.String(), "Algorithm: naive, half or manual-half")

	return cmd
}
