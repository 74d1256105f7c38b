package palindrome

import (
	"errors"
	"fmt"
)

// DefaultIgnored is the set of runes stripped by sentence normalisation.
const DefaultIgnored = " .?!,;:-"

// ErrUnknownVariant is returned when a Variant value or name is not supported.
var ErrUnknownVariant = errors.New("palindrome: unknown variant")

// Variant selects the palindrome algorithm.
type Variant int

const (
	// Naive compares the lower-cased text with its full reversal.
	Naive Variant = iota
	// Half compares the first half with the reversed second half.
	Half
	// ManualHalf walks mirrored indices and short-circuits on mismatch.
	ManualHalf
)

// variantNames maps variants to their CLI / ParseVariant names.
var variantNames = map[Variant]string{
	Naive:      "naive",
	Half:       "half",
	ManualHalf: "manual-half",
}

// Variants lists every supported variant in declaration order.
func Variants() []Variant { return []Variant{Naive, Half, ManualHalf} }

// String returns the variant name, or "Variant(N)" for unsupported values.
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}

	return fmt.Sprintf("Variant(%d)", int(v))
}

// Valid reports whether v is a supported variant.
func (v Variant) Valid() bool {
	_, ok := variantNames[v]

	return ok
}

// ParseVariant resolves a variant by name ("naive", "half", "manual-half").
func ParseVariant(name string) (Variant, error) {
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Option configures IsSentencePalindrome.
type Option func(*Options)

// Options holds the sentence-check configuration.
type Options struct {
	// Variant is the algorithm applied after normalisation. Default Naive.
	Variant Variant

	// Ignored lists the runes removed before comparison.
	// Default DefaultIgnored; empty means nothing is removed.
	Ignored string
}

// DefaultOptions returns Options with the Naive variant and DefaultIgnored.
func DefaultOptions() Options {
	return Options{
		Variant: Naive,
		Ignored: DefaultIgnored,
	}
}

// WithVariant selects the algorithm. Panics on an unsupported variant.
func WithVariant(v Variant) Option {
	if !v.Valid() {
		panic(fmt.Sprintf("palindrome: WithVariant(%d): unsupported variant", int(v)))
	}

	return func(o *Options) {
		o.Variant = v
	}
}

// WithIgnored replaces the ignore set.
func WithIgnored(ignored string) Option {
	return func(o *Options) {
		o.Ignored = ignored
	}
}
