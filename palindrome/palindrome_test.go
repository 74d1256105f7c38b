package palindrome_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-katas/palindrome"
)

// corpus is shared by the differential tests; it mixes odd/even lengths,
// case differences, punctuation and multi-byte runes.
var corpus = []string{
	"", "a", "A", "aa", "ab", "aba", "abba", "abca", "abcd", "abcde", "abbd",
	"kayak", "Kayak", "KaYaK", "racecar", "RaceCar", "abab", "()()", "())(",
	"tims", "A man, a plan, a canal: Panama", "amanaplanacanalpanama",
	"été", "ÉtÉ", "été!", "日本日", "日本", "Ωmegaω", "x y x", "x yx",
	strings.Repeat("a", 1000), strings.Repeat("a", 1000) + "b",
}

// TestIsPalindrome_Basics verifies the empty string, a single rune, and a
// simple positive and negative word.
func TestIsPalindrome_Basics(t *testing.T) {
	assert.True(t, palindrome.IsPalindrome(""), "empty string is a palindrome")
	assert.True(t, palindrome.IsPalindrome("a"), "single rune is a palindrome")
	assert.True(t, palindrome.IsPalindrome("kayak"))
	assert.False(t, palindrome.IsPalindrome("abcd"))
}

// TestIsPalindrome_CaseInsensitive ensures Unicode lower-casing is applied.
func TestIsPalindrome_CaseInsensitive(t *testing.T) {
	assert.True(t, palindrome.IsPalindrome("Kayak"))
	assert.True(t, palindrome.IsPalindrome("ÉtÉ"))
	assert.True(t, palindrome.IsPalindrome("Ωω"), "Unicode lower-casing applies")
}

// TestIsPalindrome_RunesNotBytes ensures multi-byte runes compare as units.
func TestIsPalindrome_RunesNotBytes(t *testing.T) {
	// "日本日" is not a byte palindrome but is a rune palindrome.
	assert.True(t, palindrome.IsPalindrome("日本日"))
	assert.False(t, palindrome.IsPalindrome("日本"))
}

// TestIsSentencePalindrome_Fixture runs the reference table through every variant.
func TestIsSentencePalindrome_Fixture(t *testing.T) {
	cases := map[string]bool{
		"abcd":                           false,
		"abcde":                          false,
		"abbd":                           false,
		"kayak":                          true,
		"abba":                           true,
		"A man, a plan, a canal: Panama": true,
		"tims":                           false,
		"abab":                           false,
		"()()":                           false,
		"())(":                           true,
		"a":                              true,
		"":                               true,
	}
	for text, want := range cases {
		for _, v := range palindrome.Variants() {
			got := palindrome.IsSentencePalindrome(text, palindrome.WithVariant(v))
			assert.Equal(t, want, got, "IsSentencePalindrome(%q) with %v", text, v)
		}
	}
}

// TestIsSentencePalindrome_IgnoredSet verifies default and custom ignore sets.
func TestIsSentencePalindrome_IgnoredSet(t *testing.T) {
	assert.False(t, palindrome.IsPalindrome("No lemon, no melon"), "punctuation counts without normalisation")
	assert.True(t, palindrome.IsSentencePalindrome("No lemon, no melon"))
	assert.True(t, palindrome.IsSentencePalindrome("Was it a car or a cat I saw?"))

	// Custom ignore set: only spaces are removed, commas stay significant.
	assert.True(t, palindrome.IsSentencePalindrome("ab, a"))
	assert.False(t, palindrome.IsSentencePalindrome("ab, a", palindrome.WithIgnored(" ")))
	// Empty ignore set removes nothing.
	assert.False(t, palindrome.IsSentencePalindrome("a b", palindrome.WithIgnored("")))
	assert.True(t, palindrome.IsSentencePalindrome("a_b_a", palindrome.WithIgnored("_")))
}

// TestRemoveIgnored verifies rune removal, including an empty ignore set.
func TestRemoveIgnored(t *testing.T) {
	assert.Equal(t, "AmanaplanacanalPanama", palindrome.RemoveIgnored("A man, a plan, a canal: Panama", palindrome.DefaultIgnored))
	assert.Equal(t, "()()", palindrome.RemoveIgnored("()()", palindrome.DefaultIgnored))
	assert.Equal(t, "a.b", palindrome.RemoveIgnored("a.b", ""))
	assert.Equal(t, "", palindrome.RemoveIgnored(" .?!,;:-", palindrome.DefaultIgnored))
}

// TestVariants_Agree is the differential property: every variant returns
// the same answer for every corpus entry, with and without normalisation.
func TestVariants_Agree(t *testing.T) {
	for _, text := range corpus {
		naive := palindrome.IsPalindromeNaive(text)
		assert.Equal(t, naive, palindrome.IsPalindromeHalf(text), "Half disagrees on %q", text)
		assert.Equal(t, naive, palindrome.IsPalindromeManualHalf(text), "ManualHalf disagrees on %q", text)

		sentence := palindrome.IsSentencePalindrome(text)
		for _, v := range palindrome.Variants() {
			assert.Equal(t, sentence, palindrome.IsSentencePalindrome(text, palindrome.WithVariant(v)),
				"sentence variant %v disagrees on %q", v, text)
		}
	}
}

// TestCheck dispatches each variant and rejects an unknown one.
func TestCheck(t *testing.T) {
	for _, v := range palindrome.Variants() {
		ok, err := palindrome.Check("Abba", v)
		require.NoError(t, err)
		assert.True(t, ok, "variant %v", v)
	}

	_, err := palindrome.Check("abba", palindrome.Variant(42))
	assert.ErrorIs(t, err, palindrome.ErrUnknownVariant)
}

// TestParseVariant round-trips every variant name and rejects unknown names.
func TestParseVariant(t *testing.T) {
	for _, v := range palindrome.Variants() {
		got, err := palindrome.ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	_, err := palindrome.ParseVariant("quarter")
	assert.ErrorIs(t, err, palindrome.ErrUnknownVariant)
	assert.Equal(t, "Variant(7)", palindrome.Variant(7).String())
}

// TestWithVariant_PanicsOnUnknown ensures the option constructor validates eagerly.
func TestWithVariant_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { palindrome.WithVariant(palindrome.Variant(-1)) })
}

// TestCheckSentence_InvalidVariantOption ensures a hand-written Option that
// sets an unsupported variant is rejected instead of silently ignored.
func TestCheckSentence_InvalidVariantOption(t *testing.T) {
	bad := palindrome.Option(func(o *palindrome.Options) { o.Variant = palindrome.Variant(9) })

	ok, err := palindrome.CheckSentence("abba", bad)
	assert.ErrorIs(t, err, palindrome.ErrUnknownVariant)
	assert.False(t, ok)
	assert.False(t, palindrome.IsSentencePalindrome("abba", bad))
}

// TestCheckSentence_Valid agrees with IsSentencePalindrome and skips nil options.
func TestCheckSentence_Valid(t *testing.T) {
	ok, err := palindrome.CheckSentence("A man, a plan, a canal: Panama", nil, palindrome.WithVariant(palindrome.Half))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = palindrome.CheckSentence("tims")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestDefaultOptions pins the default variant and ignore set.
func TestDefaultOptions(t *testing.T) {
	o := palindrome.DefaultOptions()
	assert.Equal(t, palindrome.Naive, o.Variant)
	assert.Equal(t, palindrome.DefaultIgnored, o.Ignored)
}
