package merlin

import (
	"fmt"
	"strings"
	"unicode"

	"crosswarped.com/merlin/pkg/primitives"
)

// ScratchPad is the text a player has typed while working on a pool.
//
// It is a value: every edit returns a new ScratchPad and leaves the receiver alone.
type ScratchPad struct {
	lines [][]rune
}

func NewScratchPad(text string) ScratchPad {
	raw := strings.Split(text, "\n")
	lines := make([][]rune, len(raw))
	for i, l := range raw {
		lines[i] = []rune(l)
	}
	return ScratchPad{
		lines: lines,
	}
}

func (p ScratchPad) Height() int {
	return len(p.lines)
}

func (p ScratchPad) Lines() []string {
	lines := make([]string, p.Height())
	for y := range p.Height() {
		lines[y] = string(p.lines[y])
	}
	return lines
}

func (p ScratchPad) Repr() string {
	return strings.Join(p.Lines(), "\n")
}

// UsedLetters returns every letter on the pad, uppercased, in the order typed.
func (p ScratchPad) UsedLetters() string {
	alphabet := primitives.DefaultCharSet()
	var b strings.Builder
	for _, line := range p.lines {
		for _, r := range line {
			if r = unicode.ToUpper(r); alphabet.InRange(r) {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// Type appends r to the last line, or starts a new line for '\n'. It reports false,
// and returns p unchanged, when r is a letter with none left in the pool of original.
func (p ScratchPad) Type(original string, r rune) (ScratchPad, bool) {
	if !CanType(original, p.UsedLetters(), r) {
		return p, false
	}

	lines := make([][]rune, len(p.lines), len(p.lines)+1)
	copy(lines, p.lines)
	if len(lines) == 0 {
		lines = append(lines, nil)
	}

	if r == '\n' {
		return ScratchPad{lines: append(lines, nil)}, true
	}

	last := len(lines) - 1
	line := make([]rune, len(lines[last]), len(lines[last])+1)
	copy(line, lines[last])
	lines[last] = append(line, r)
	return ScratchPad{lines: lines}, true
}

// Remaining is Remaining(original, p.UsedLetters()).
func (p ScratchPad) Remaining(original string) primitives.Multiset {
	return Remaining(original, p.UsedLetters())
}

// Pool returns the display pool left over from original.
func (p ScratchPad) Pool(original string) string {
	return PoolString(p.Remaining(original))
}

func (p ScratchPad) DebugString() string {
	return fmt.Sprintf("ScratchPad{height: %d, lines: %q}", p.Height(), p.Lines())
}
