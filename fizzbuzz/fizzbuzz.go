package fizzbuzz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Classify maps n to its FizzBuzz label.
//
// Rules, checked in order:
//  1. n divisible by FizzDivisor*BuzzDivisor → FizzBuzz
//  2. n divisible by FizzDivisor             → Fizz
//  3. n divisible by BuzzDivisor             → Buzz
//  4. otherwise                              → Number(n)
//
// The contract covers n ≥ 1; other values go through the same arithmetic.
// Complexity: O(1).
func Classify(n int) Label {
	switch {
	case n%(FizzDivisor*BuzzDivisor) == 0:
		return FizzBuzz()
	case n%FizzDivisor == 0:
		return Fizz()
	case n%BuzzDivisor == 0:
		return Buzz()
	default:
		return Number(n)
	}
}

// Sequence classifies every integer in the half-open range [1, bound).
// A bound ≤ 1 yields an empty (non-nil) slice.
func Sequence(bound int) []Label {
	if bound <= 1 {
		return []Label{}
	}
	out := make([]Label, 0, bound-1)
	for n := 1; n < bound; n++ {
		out = append(out, Classify(n))
	}

	return out
}

// Count writes StartingText followed by one line per integer in [1, bound).
func Count(w io.Writer, bound int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, StartingText); err != nil {
		return fmt.Errorf("fizzbuzz: write header: %w", err)
	}
	for n := 1; n < bound; n++ {
		if _, err := fmt.Fprintln(bw, Classify(n)); err != nil {
			return fmt.Errorf("fizzbuzz: write %d: %w", n, err)
		}
	}

	return bw.Flush()
}

// AskBound prompts on w for the upper bound and reads lines from r until
// one parses as an integer (see ParseBound). Each invalid line, whatever its
// length, is reported on w and the prompt repeats. A final line without a
// trailing newline still counts. If r is exhausted first, ErrNoInput is
// returned.
func AskBound(r io.Reader, w io.Writer) (int, error) {
	br := bufio.NewReader(r)
	for {
		if _, err := fmt.Fprintln(w, PromptText); err != nil {
			return 0, fmt.Errorf("fizzbuzz: write prompt: %w", err)
		}
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("fizzbuzz: read bound: %w", err)
		}
		if errors.Is(err, io.EOF) && line == "" {
			return 0, ErrNoInput
		}
		text := strings.TrimRight(line, "\r\n")
		if n, perr := ParseBound(text); perr == nil {
			return n, nil
		}
		if _, err = fmt.Fprintf(w, "`%s` is not a valid number. Example valid numbers : 1, 12, or 30\n", text); err != nil {
			return 0, fmt.Errorf("fizzbuzz: write retry hint: %w", err)
		}
	}
}

// Run is the interactive game: ask for the bound, then count up to it.
func Run(r io.Reader, w io.Writer) error {
	bound, err := AskBound(r, w)
	if err != nil {
		return err
	}

	return Count(w, bound)
}
