// Package katas is a small playground of classic algorithm exercises,
// each in its own package with tests, runnable examples and benchmarks.
//
// 🚀 What is inside?
//
//	fizzbuzz/   — classify integers as Fizz, Buzz, FizzBuzz or the number itself;
//	              interactive counting driver with an input-retry loop
//	palindrome/ — case-insensitive palindrome check in three equivalent variants,
//	              plus sentence mode that ignores spaces and punctuation
//	quicksort/  — recursive pivot-partition sort (new slices per call) and an
//	              in-place Lomuto variant
//	cmd/katas/  — command-line front end for all three
//
// ✨ Conventions
//
//   - Pure functions; no package-level mutable state, no goroutines
//   - Sentinel errors (errors.Is) for the few failure modes that exist
//   - Functional options with DefaultOptions() where behaviour is configurable
//
// Quick start:
//
//	go run ./cmd/katas fizzbuzz --max 16
//	go run ./cmd/katas palindrome --sentence "A man, a plan, a canal: Panama"
//	go run ./cmd/katas sort 9 2 1 8 5 6 4 7 1
//
//	go get github.com/katalvlaran/lvlath-katas
package katas
