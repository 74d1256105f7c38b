package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-katas/quicksort"
)

// ErrInvalidNumber is returned when a `katas sort` argument is not an integer.
var ErrInvalidNumber = errors.New("katas: invalid number")

// newSortCmd builds `katas sort`.
func newSortCmd() *cobra.Command {
	var inPlace bool
	cmd := &cobra.Command{
		Use:   "sort N...",
		Short: "Sort integers with quick sort",
		Long: `Sort the integer arguments in non-decreasing order and print them
space separated. The default algorithm allocates new partitions on every
call; --in-place uses the Lomuto partition scheme instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			logger.Debug("Sorting", zap.Int("count", len(nums)), zap.Bool("in_place", inPlace))

			if inPlace {
				quicksort.SortInPlace(nums)
			} else {
				nums = quicksort.Sort(nums)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), joinInts(nums))

			return err
		},
	}
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "Use the in-place Lomuto variant")

	return cmd
}

// parseInts converts every argument, naming the first one that fails.
func parseInts(args []string) ([]int, error) {
	nums := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidNumber, a, err)
		}
		nums = append(nums, n)
	}

	return nums, nil
}

// joinInts renders nums separated by single spaces.
func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, " ")
}
