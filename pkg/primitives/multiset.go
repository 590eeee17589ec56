package primitives

import (
	"fmt"
	"slices"
	"strings"
)

// Multiset maps a letter to how many times it occurs.
//
// Counts may be negative when a Multiset is the difference of two others; a negative
// count means the letter was used more often than it was available.
type Multiset map[rune]int

// Get returns the count for r, or 0 if r is absent.
func (m Multiset) Get(r rune) int {
	return m[r]
}

// Total returns the sum of all counts.
func (m Multiset) Total() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

// Letters returns the keys of m in ascending order.
func (m Multiset) Letters() []rune {
	letters := make([]rune, 0, len(m))
	for r := range m {
		letters = append(letters, r)
	}
	slices.Sort(letters)
	return letters
}

// Keys returns the keys of m as a CharSet over the default alphabet. Keys outside of
// the alphabet are skipped.
func (m Multiset) Keys() *CharSet {
	cs := DefaultCharSet()
	for r := range m {
		if cs.InRange(r) {
			cs.Add(r)
		}
	}
	return cs
}

// Clamped returns a copy of m where every negative count is replaced with 0.
func (m Multiset) Clamped() Multiset {
	out := make(Multiset, len(m))
	for r, n := range m {
		out[r] = max(n, 0)
	}
	return out
}

// Negative returns the letters whose count is below zero, in ascending order.
func (m Multiset) Negative() []rune {
	var neg []rune
	for _, r := range m.Letters() {
		if m[r] < 0 {
			neg = append(neg, r)
		}
	}
	return neg
}

func (m Multiset) String() string {
	parts := make([]string, 0, len(m))
	for _, r := range m.Letters() {
		parts = append(parts, fmt.Sprintf("%c:%d", r, m[r]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
