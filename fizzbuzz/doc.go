// Package fizzbuzz classifies positive integers into the classic
// Fizz / Buzz / FizzBuzz labels and drives the interactive counting game.
//
// 🚀 What is FizzBuzz?
//
//	Count upward from 1. Multiples of 3 are replaced by "Fizz", multiples
//	of 5 by "Buzz" and multiples of both (i.e. of 15) by "FizzBuzz".
//	Every other number is spoken as-is.
//
// ✨ Key features:
//   - Label: an explicit sum type (Fizz, Buzz, FizzBuzz or the number itself)
//   - Classify: pure, allocation-free classification of a single integer
//   - Sequence / Count: classification of the half-open range [1, bound)
//   - AskBound / Run: prompt for the bound, retrying until an integer is read
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlath-katas/fizzbuzz"
//
//	l := fizzbuzz.Classify(15)
//	fmt.Println(l)         // FizzBuzz
//	fmt.Println(l.Kind)    // FizzBuzz
//
//	// interactive driver on any reader/writer pair
//	err := fizzbuzz.Run(os.Stdin, os.Stdout)
//
// Errors:
//   - ErrNoInput — the input stream ended before a valid bound was read.
//   - ErrInvalidBound — ParseBound got text that is not an integer.
//
// Complexity:
//
//   - Classify: O(1)
//   - Sequence / Count: O(bound)
package fizzbuzz
