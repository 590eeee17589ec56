package primitives

import (
	"slices"
	"testing"
)

func TestCharSet_Add(t *testing.T) {
	cs := DefaultCharSet()

	tests := []struct {
		name      string
		char      rune
		wantErr   bool
		wantCount int
	}{
		{"add 'A'", 'A', false, 1},
		{"add 'B'", 'B', false, 2},
		{"add 'Z'", 'Z', false, 3},
		{"add 'A' again", 'A', false, 3}, // should not increase count
		{"add lowercase", 'a', true, 3},
		{"add out of range low", '@', true, 3},
		{"add out of range high", '[', true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cs.Add(tt.char)
			if (err != nil) != tt.wantErr {
				t.Errorf("Add() error = %v, wantErr %v", err, tt.wantErr)
			}
			if cs.Count() != tt.wantCount {
				t.Errorf("count = %d, want %d", cs.Count(), tt.wantCount)
			}
		})
	}
}

func TestCharSet_AddAll(t *testing.T) {
	full := func() *CharSet {
		cs := DefaultCharSet()
		for r := 'A'; r <= 'Z'; r++ {
			cs.Add(r)
		}
		return cs
	}

	tests := []struct {
		name     string
		setup    func() (*CharSet, *CharSet)
		expected int
	}{
		{
			name: "add to empty set",
			setup: func() (*CharSet, *CharSet) {
				cs1 := DefaultCharSet()
				cs2 := DefaultCharSet()
				cs2.Add('A')
				cs2.Add('B')
				return cs1, cs2
			},
			expected: 2,
		},
		{
			name: "add overlapping sets",
			setup: func() (*CharSet, *CharSet) {
				cs1 := DefaultCharSet()
				cs1.Add('A')
				cs2 := DefaultCharSet()
				cs2.Add('A')
				cs2.Add('C')
				return cs1, cs2
			},
			expected: 2,
		},
		{
			name: "add to full set",
			setup: func() (*CharSet, *CharSet) {
				cs2 := DefaultCharSet()
				cs2.Add('Q')
				return full(), cs2
			},
			expected: 26,
		},
		{
			name: "add full set to partial",
			setup: func() (*CharSet, *CharSet) {
				cs1 := DefaultCharSet()
				cs1.Add('U')
				return cs1, full()
			},
			expected: 26,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs1, cs2 := tt.setup()
			cs1.AddAll(cs2)
			if cs1.Count() != tt.expected {
				t.Errorf("count = %d, want %d", cs1.Count(), tt.expected)
			}
		})
	}

	t.Run("mismatched ranges panic", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("AddAll() did not panic")
			}
		}()
		DefaultCharSet().AddAll(NewCharSet('a', 'z'))
	})
}

func TestCharSet_Contains(t *testing.T) {
	cs := DefaultCharSet()
	cs.Add('I')
	cs.Add('J')

	tests := []struct {
		name string
		char rune
		want bool
	}{
		{"contains 'I'", 'I', true},
		{"contains 'J'", 'J', true},
		{"contains 'K'", 'K', false},
		{"lowercase is out of range", 'i', false},
		{"punctuation is out of range", '!', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cs.Contains(tt.char); got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCharSet_IsFull(t *testing.T) {
	cs := DefaultCharSet()

	if cs.IsFull() {
		t.Error("IsFull() = true, want false for empty set")
	}

	cs.Add('A')
	if cs.IsFull() {
		t.Error("IsFull() = true, want false for partially filled set")
	}

	for r := 'A'; r <= 'Z'; r++ {
		cs.Add(r)
	}
	if !cs.IsFull() {
		t.Error("IsFull() = false, want true for full set")
	}
	if cs.Capacity() != 26 {
		t.Errorf("Capacity() = %d, want 26", cs.Capacity())
	}
}

func TestCharSet_Runes(t *testing.T) {
	cs := DefaultCharSet()
	for _, r := range "VUWU" {
		cs.Add(r)
	}

	got := slices.Collect(cs.Runes())
	want := []rune{'U', 'V', 'W'}
	if !slices.Equal(got, want) {
		t.Errorf("Runes() = %q, want %q", got, want)
	}

	n := 0
	for range cs.Runes() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("Runes() kept yielding after break, n = %d", n)
	}
}
