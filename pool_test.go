package merlin

import (
	"slices"
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"

	"crosswarped.com/merlin/pkg/primitives"
)

func TestCountLetters(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want primitives.Multiset
	}{
		{name: "banana", in: "banana!!", want: primitives.Multiset{'B': 1, 'A': 3, 'N': 2}},
		{name: "empty", in: "", want: primitives.Multiset{}},
		{name: "no letters", in: "123 !? -", want: primitives.Multiset{}},
		{name: "mixed case", in: "aA bB", want: primitives.Multiset{'A': 2, 'B': 2}},
		{name: "accents are not letters", in: "éA", want: primitives.Multiset{'A': 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountLetters(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CountLetters(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestCountLetters_Properties(t *testing.T) {
	for _, s := range []string{
		"The quick brown fox, 1999!",
		"MERLIN's   magic\tmerlin",
		"ÆØÅ ß ñ",
		"",
	} {
		counts := CountLetters(s)
		alphabetic := 0
		for _, r := range s {
			if u := unicode.ToUpper(r); u >= 'A' && u <= 'Z' {
				alphabetic++
			}
		}
		if counts.Total() != alphabetic {
			t.Errorf("CountLetters(%q).Total() = %d, want %d", s, counts.Total(), alphabetic)
		}
		for r := range counts {
			if r < 'A' || r > 'Z' {
				t.Errorf("CountLetters(%q) has key %q outside A-Z", s, r)
			}
		}
	}
}

func TestRemaining(t *testing.T) {
	tests := []struct {
		name     string
		original string
		used     string
		want     primitives.Multiset
	}{
		{name: "partial use", original: "AAB", used: "A", want: primitives.Multiset{'A': 1, 'B': 1}},
		{name: "nothing used", original: "merlin", used: "", want: primitives.Multiset{'M': 1, 'E': 1, 'R': 1, 'L': 1, 'I': 1, 'N': 1}},
		{name: "all used", original: "ab", used: "BA", want: primitives.Multiset{'A': 0, 'B': 0}},
		{name: "over use goes negative", original: "A", used: "AAC", want: primitives.Multiset{'A': -1, 'C': -1}},
		{name: "punctuation ignored", original: "a-b", used: "b!", want: primitives.Multiset{'A': 1, 'B': 0}},
		{name: "both empty", original: "", used: "", want: primitives.Multiset{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Remaining(tt.original, tt.used)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Remaining(%q, %q) mismatch (-want +got):\n%s", tt.original, tt.used, diff)
			}

			have, spent := CountLetters(tt.original), CountLetters(tt.used)
			for r := 'A'; r <= 'Z'; r++ {
				if got.Get(r) != have.Get(r)-spent.Get(r) {
					t.Errorf("Remaining[%c] = %d, want %d", r, got.Get(r), have.Get(r)-spent.Get(r))
				}
			}
		})
	}
}

func TestPoolString(t *testing.T) {
	tests := []struct {
		name      string
		remaining primitives.Multiset
		want      string
	}{
		{name: "example", remaining: Remaining("AAB", "A"), want: "AB"},
		{name: "sorted", remaining: primitives.Multiset{'Z': 1, 'A': 2, 'M': 1}, want: "AAMZ"},
		{name: "negative counts dropped", remaining: primitives.Multiset{'A': -2, 'B': 1}, want: "B"},
		{name: "empty", remaining: primitives.Multiset{}, want: ""},
		{name: "nil", remaining: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PoolString(tt.remaining); got != tt.want {
				t.Errorf("PoolString(%v) = %q, want %q", tt.remaining, got, tt.want)
			}
		})
	}
}

func TestPoolString_OrderIndependent(t *testing.T) {
	a := PoolString(Remaining("QUIVERING", ""))
	b := PoolString(Remaining("gniREviuq", ""))
	c := PoolString(Remaining("IQUIVERINGX", "ix"))
	if a != b || a != c {
		t.Errorf("PoolString differs for equal multisets: %q, %q, %q", a, b, c)
	}
	if a != "EGIINQRUV" {
		t.Errorf("PoolString = %q, want %q", a, "EGIINQRUV")
	}
}

func TestOverused(t *testing.T) {
	if got := Overused("MERLIN", "MERRILL"); !slices.Equal(got, []rune{'L', 'R'}) {
		t.Errorf("Overused() = %q, want %q", got, []rune{'L', 'R'})
	}
	if got := Overused("MERLIN", "LIMNER"); got != nil {
		t.Errorf("Overused() = %q, want nil", got)
	}
}

func TestCanType(t *testing.T) {
	tests := []struct {
		name     string
		original string
		used     string
		r        rune
		want     bool
	}{
		{name: "letter available", original: "AB", used: "A", r: 'b', want: true},
		{name: "letter exhausted", original: "AB", used: "A", r: 'A', want: false},
		{name: "letter never in pool", original: "AB", used: "", r: 'z', want: false},
		{name: "space always allowed", original: "", used: "", r: ' ', want: true},
		{name: "newline always allowed", original: "A", used: "A", r: '\n', want: true},
		{name: "digit always allowed", original: "", used: "", r: '7', want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanType(tt.original, tt.used, tt.r); got != tt.want {
				t.Errorf("CanType(%q, %q, %q) = %v, want %v", tt.original, tt.used, tt.r, got, tt.want)
			}
		})
	}
}
