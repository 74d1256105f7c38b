package palindrome

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsPalindrome reports whether s reads the same in both directions,
// ignoring case. It is the Naive variant.
// To skip punctuation and spaces use IsSentencePalindrome instead.
func IsPalindrome(s string) bool {
	return IsPalindromeNaive(s)
}

// IsPalindromeNaive compares the lower-cased runes of s with their reversal.
func IsPalindromeNaive(s string) bool {
	runes := lowerRunes(s)
	reversed := slices.Clone(runes)
	slices.Reverse(reversed)

	return slices.Equal(runes, reversed)
}

// IsPalindromeHalf compares the first ⌊n/2⌋ runes with the reversed
// last ⌊n/2⌋ runes. The middle rune of an odd-length text is skipped.
func IsPalindromeHalf(s string) bool {
	runes := lowerRunes(s)
	n := len(runes)
	middle := n / 2

	tail := slices.Clone(runes[n-middle:])
	slices.Reverse(tail)

	return slices.Equal(runes[:middle], tail)
}

// IsPalindromeManualHalf walks index i and its mirror n-1-i up to the
// midpoint and returns false at the first mismatch.
func IsPalindromeManualHalf(s string) bool {
	runes := lowerRunes(s)
	n := len(runes)
	for i := 0; i < n/2; i++ {
		if runes[i] != runes[n-1-i] {
			return false
		}
	}

	return true
}

// Check applies the variant v to s.
// Returns ErrUnknownVariant if v is not supported.
func Check(s string, v Variant) (bool, error) {
	switch v {
	case Naive:
		return IsPalindromeNaive(s), nil
	case Half:
		return IsPalindromeHalf(s), nil
	case ManualHalf:
		return IsPalindromeManualHalf(s), nil
	default:
		return false, fmt.Errorf("%w: %v", ErrUnknownVariant, v)
	}
}

// RemoveIgnored returns s without any rune contained in ignored.
func RemoveIgnored(s, ignored string) string {
	if ignored == "" {
		return s
	}

	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(ignored, r) {
			return -1 // drop
		}

		return r
	}, s)
}

// IsSentencePalindrome removes the ignore set from s, then applies the
// selected variant. Defaults: Naive, DefaultIgnored.
// Options that select an unsupported variant report false; use
// CheckSentence to observe ErrUnknownVariant instead.
func IsSentencePalindrome(s string, opts ...Option) bool {
	ok, err := CheckSentence(s, opts...)

	return ok && err == nil
}

// CheckSentence is IsSentencePalindrome with option validation: the
// resolved options are checked before any work is done, and an
// unsupported variant returns ErrUnknownVariant.
func CheckSentence(s string, opts ...Option) (bool, error) {
	o, err := resolveOptions(opts...)
	if err != nil {
		return false, err
	}

	return Check(RemoveIgnored(s, o.Ignored), o.Variant)
}

// resolveOptions applies opts over DefaultOptions and validates the result.
func resolveOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.Variant.Valid() {
		return Options{}, fmt.Errorf("%w: %v", ErrUnknownVariant, o.Variant)
	}

	return o, nil
}

// lowerRunes lower-cases s with Unicode rules and splits it into runes.
// A Caser holds state, so a fresh one is built per call.
func lowerRunes(s string) []rune {
	return []rune(cases.Lower(language.Und).String(s))
}
