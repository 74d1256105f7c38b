// Command katas runs the algorithm katas from the command line:
//
//	katas fizzbuzz [--max N]
//	katas palindrome [--sentence] [--variant naive|half|manual-half] TEXT...
//	katas sort [--in-place] N...
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger, built in PersistentPreRunE. Writes JSON to stderr only.
	logger *zap.Logger

	// newLogger is swapped out by tests.
	newLogger = buildLogger
)

// buildLogger returns a production zap logger, at debug level if debug is set.
func buildLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

// newRootCmd assembles the command tree. A fresh tree per call keeps flag
// state from leaking between test runs.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "katas",
		Short: "Small algorithm katas: FizzBuzz, palindromes and quick sort",
		Long: `katas runs three self-contained algorithm exercises.

  fizzbuzz    count up to a bound, replacing multiples of 3 and 5
  palindrome  check words or whole sentences for symmetry
  sort        sort integers with a recursive quick sort`,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the error once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger.Debug("Command starting", zap.String("command", cmd.Name()), zap.Strings("args", args))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(newFizzBuzzCmd())
	rootCmd.AddCommand(newPalindromeCmd())
	rootCmd.AddCommand(newSortCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
