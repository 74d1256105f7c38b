// Package palindrome tests whether text reads the same forward and backward,
// with three interchangeable algorithms and an optional sentence-level
// normalisation that drops punctuation and whitespace.
//
// 🚀 Variants
//
//	Naive      — lower-case, reverse the whole text, compare.
//	Half       — compare the first ⌊n/2⌋ runes with the reversed last ⌊n/2⌋.
//	ManualHalf — walk mirrored indices up to the midpoint, stop at the first mismatch.
//
//	All three agree on every input. Naive is the default (IsPalindrome);
//	ManualHalf wins on long non-palindromes since it exits early.
//
// ✨ Key features:
//   - Unicode-aware: runes, not bytes; lower-casing via golang.org/x/text/cases
//   - Sentence mode: IsSentencePalindrome removes the ignore set " .?!,;:-"
//   - Functional options: WithVariant, WithIgnored
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlath-katas/palindrome"
//
//	palindrome.IsPalindrome("Kayak")                                  // true
//	palindrome.IsSentencePalindrome("A man, a plan, a canal: Panama") // true
//	palindrome.IsSentencePalindrome("No lemon, no melon",
//		palindrome.WithVariant(palindrome.ManualHalf))                // true
//
// Errors:
//   - ErrUnknownVariant — Check / CheckSentence / ParseVariant with an unsupported variant.
//
// Complexity (n = rune count):
//
//   - Naive:      Time O(n), Memory O(n) (reversed copy)
//   - Half:       Time O(n), Memory O(n) (reversed half)
//   - ManualHalf: Time O(n) worst case, Memory O(n) (rune slice only)
package palindrome
