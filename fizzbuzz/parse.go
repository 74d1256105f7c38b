package fizzbuzz

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseBound parses a typed integer the way a person writes it:
//   - surrounding whitespace is ignored
//   - an optional leading '+' or '-'
//   - decimal digits from any script ("١٢" is 12)
//   - single '_' separators between digits ("1_000" is 1000)
//
// Anything else, including values outside the int range, returns
// ErrInvalidBound.
func ParseBound(text string) (int, error) {
	s := strings.TrimSpace(text)
	sign := ""
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		sign, s = s[:1], s[1:]
	}
	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBound, text)
	}

	var b strings.Builder
	b.Grow(len(s) + 1)
	b.WriteString(sign)
	prevDigit := false
	for _, r := range s {
		switch {
		case r == '_' && prevDigit:
			prevDigit = false // next rune must be a digit
		case unicode.IsDigit(r):
			b.WriteByte(byte('0' + digitValue(r)))
			prevDigit = true
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidBound, text)
		}
	}
	if !prevDigit { // trailing '_'
		return 0, fmt.Errorf("%w: %q", ErrInvalidBound, text)
	}

	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidBound, text, err)
	}

	return n, nil
}

// digitValue returns the numeric value of a Unicode decimal digit.
// Decimal digits are encoded in contiguous runs made of whole 0..9 blocks,
// so the offset from the start of the run, modulo 10, is the value.
func digitValue(r rune) int {
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}

	return int(r-start) % 10
}
