package fizzbuzz

import (
	"errors"
	"strconv"
)

// Divisors of the game. A number divisible by both is a FizzBuzz.
const (
	FizzDivisor = 3
	BuzzDivisor = 5
)

// Prompt and report texts used by the interactive driver.
const (
	PromptText   = "Enter the maximum number to count up to:"
	StartingText = "Starting to count:"
)

// ErrNoInput is returned by AskBound when the reader is exhausted before
// a valid integer has been read.
var ErrNoInput = errors.New("fizzbuzz: no more input")

// ErrInvalidBound is returned by ParseBound for text that is not an integer.
var ErrInvalidBound = errors.New("fizzbuzz: invalid bound")

// Kind tags which shape a Label holds.
type Kind int

const (
	// KindNumber: the label is the classified number itself.
	KindNumber Kind = iota
	// KindFizz: divisible by FizzDivisor only.
	KindFizz
	// KindBuzz: divisible by BuzzDivisor only.
	KindBuzz
	// KindFizzBuzz: divisible by both divisors.
	KindFizzBuzz
)

// String returns the word for labelled kinds and "Number" for KindNumber.
func (k Kind) String() string {
	switch k {
	case KindFizz:
		return "Fizz"
	case KindBuzz:
		return "Buzz"
	case KindFizzBuzz:
		return "FizzBuzz"
	default:
		return "Number"
	}
}

// Label is the result of classifying a number: either one of the fixed
// words or the original number. Number is only meaningful for KindNumber.
type Label struct {
	Kind   Kind
	Number int
}

// Number returns a Label carrying n itself.
func Number(n int) Label { return Label{Kind: KindNumber, Number: n} }

// Fizz returns the "Fizz" label.
func Fizz() Label { return Label{Kind: KindFizz} }

// Buzz returns the "Buzz" label.
func Buzz() Label { return Label{Kind: KindBuzz} }

// FizzBuzz returns the "FizzBuzz" label.
func FizzBuzz() Label { return Label{Kind: KindFizzBuzz} }

// IsNumber reports whether l carries a number rather than a word.
func (l Label) IsNumber() bool { return l.Kind == KindNumber }

// String renders the label the way it is spoken: the word, or the
// decimal form of the number.
func (l Label) String() string {
	if l.Kind == KindNumber {
		return strconv.Itoa(l.Number)
	}

	return l.Kind.String()
}
