package merlin

import (
	"slices"
	"strings"
	"unicode"

	"crosswarped.com/merlin/pkg/primitives"
)

// CountLetters counts the letters A to Z in s, ignoring case. Every other character
// is skipped, so the result never holds a key outside the alphabet.
func CountLetters(s string) primitives.Multiset {
	alphabet := primitives.DefaultCharSet()
	counts := make(primitives.Multiset)
	for _, r := range strings.ToUpper(s) {
		if !alphabet.InRange(r) {
			continue
		}
		counts[r]++
	}
	return counts
}

// Remaining returns, for every letter present in either string, how many of it are
// left in original once used is taken out.
//
// Counts go negative when a letter is over-used. Use Multiset.Clamped or PoolString
// for display.
func Remaining(original, used string) primitives.Multiset {
	have := CountLetters(original)
	spent := CountLetters(used)

	letters := have.Keys()
	letters.AddAll(spent.Keys())

	remaining := make(primitives.Multiset, letters.Count())
	for r := range letters.Runes() {
		remaining[r] = have.Get(r) - spent.Get(r)
	}
	return remaining
}

// PoolString expands the remaining counts into a sorted string of letters, e.g.
// {B:1, A:2} becomes "AAB". Negative counts contribute nothing.
func PoolString(remaining primitives.Multiset) string {
	var letters []rune
	for r, n := range remaining {
		for range max(n, 0) {
			letters = append(letters, r)
		}
	}
	slices.Sort(letters)
	return string(letters)
}

// Overused lists, in alphabetical order, the letters used more often than original
// provides.
func Overused(original, used string) []rune {
	return Remaining(original, used).Negative()
}

// CanType reports whether typing r after used still fits in the pool of original.
// Characters that are not letters never consume the pool and can always be typed.
func CanType(original, used string, r rune) bool {
	r = unicode.ToUpper(r)
	if !primitives.DefaultCharSet().InRange(r) {
		return true
	}
	return Remaining(original, used).Get(r) > 0
}
