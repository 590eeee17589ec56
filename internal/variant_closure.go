package internal

import (
	"slices"
)

// Rule identifies one of the fungible-letter substitutions. Rules combine as a bit set.
type Rule uint8

const (
	// RuleCollapse replaces a literal UU or VV pair with a single W.
	RuleCollapse Rule = 1 << iota
	RuleUToV
	RuleVToU
	RuleIToJ
)

// DefaultMaxCandidates bounds the working set of the closure. It holds the whole
// closure of a pool with a dozen U/V letters and a few I.
const DefaultMaxCandidates = 1 << 18

type ClosureParams struct {
	// Seed is the string the closure starts from. It is expected to be uppercased
	// already; runes other than U, V and I are carried through untouched.
	Seed string

	// MaxCandidates caps how many distinct candidates are accumulated. Once the cap is
	// reached no new candidates are added, so the closure is a best-effort sample.
	// The U/V phase only gets the share of the cap that leaves room for every I of
	// the seed to double what it kept.
	MaxCandidates *int
}

// Candidate is one string reachable from the seed, with the rules that produced it.
type Candidate struct {
	Text    string
	Applied Rule
}

type params struct {
	seed          []rune
	maxCandidates int
}

func asParams(p ClosureParams) params {
	pp := params{
		seed: []rune(p.Seed),
	}

	if p.MaxCandidates == nil || *p.MaxCandidates < 1 {
		pp.maxCandidates = DefaultMaxCandidates
	} else {
		pp.maxCandidates = *p.MaxCandidates
	}

	return pp
}

// candidate is a working string. origin[j] is the seed position runes[j] came from;
// a collapsed W keeps the position of the first letter of its pair, so origin is
// always strictly increasing.
type candidate struct {
	runes   []rune
	origin  []int
	applied Rule
}

// indexOf returns the index in c that holds seed position pos, or -1 if that
// position was consumed by a collapse.
func (c candidate) indexOf(pos int) int {
	j, ok := slices.BinarySearch(c.origin, pos)
	if !ok {
		return -1
	}
	return j
}

func (c candidate) with(j int, r rune, rule Rule) candidate {
	runes := slices.Clone(c.runes)
	runes[j] = r
	return candidate{runes: runes, origin: c.origin, applied: c.applied | rule}
}

type closureState struct {
	maxCandidates int

	seen       map[string]bool
	candidates []candidate
}

func (s *closureState) full() bool {
	return len(s.candidates) >= s.maxCandidates
}

func (s *closureState) add(c candidate) {
	if s.full() {
		return
	}
	key := string(c.runes)
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.candidates = append(s.candidates, c)
}

// extend applies step to every candidate accumulated so far and adds whatever it
// produces. Candidates added during the pass are not revisited by it.
func (s *closureState) extend(step func(candidate) (candidate, bool)) {
	n := len(s.candidates)
	for i := range n {
		if s.full() {
			return
		}
		if next, ok := step(s.candidates[i]); ok {
			s.add(next)
		}
	}
}

func swapAt(pos int) func(candidate) (candidate, bool) {
	return func(c candidate) (candidate, bool) {
		j := c.indexOf(pos)
		if j < 0 {
			return c, false
		}
		switch c.runes[j] {
		case 'U':
			return c.with(j, 'V', RuleUToV), true
		case 'V':
			return c.with(j, 'U', RuleVToU), true
		}
		return c, false
	}
}

func collapseAt(pos int) func(candidate) (candidate, bool) {
	return func(c candidate) (candidate, bool) {
		j := c.indexOf(pos)
		if j < 0 || j+1 >= len(c.runes) || c.origin[j+1] != pos+1 {
			return c, false
		}
		// Only a literal double letter collapses; U next to V never becomes W.
		if first := c.runes[j]; !isUV(first) || c.runes[j+1] != first {
			return c, false
		}

		runes := make([]rune, 0, len(c.runes)-1)
		runes = append(runes, c.runes[:j]...)
		runes = append(runes, 'W')
		runes = append(runes, c.runes[j+2:]...)

		origin := make([]int, 0, len(c.origin)-1)
		origin = append(origin, c.origin[:j+1]...)
		origin = append(origin, c.origin[j+2:]...)

		return candidate{runes: runes, origin: origin, applied: c.applied | RuleCollapse}, true
	}
}

func jAt(pos int) func(candidate) (candidate, bool) {
	return func(c candidate) (candidate, bool) {
		j := c.indexOf(pos)
		if j < 0 || c.runes[j] != 'I' {
			return c, false
		}
		return c.with(j, 'J', RuleIToJ), true
	}
}

func isUV(r rune) bool {
	return r == 'U' || r == 'V'
}

// Closure returns every candidate reachable from the seed, in discovery order. The
// seed itself is always the first entry.
//
// U/V swaps and UU/VV collapses are explored first, walking the seed positions left
// to right; I to J substitutions are explored afterwards over the resulting set.
func Closure(p ClosureParams) []Candidate {
	params := asParams(p)
	seed := params.seed

	origin := make([]int, len(seed))
	for i := range origin {
		origin[i] = i
	}

	numI := 0
	for _, r := range seed {
		if r == 'I' {
			numI++
		}
	}

	state := closureState{
		maxCandidates: max(params.maxCandidates>>numI, 1),
		seen:          make(map[string]bool),
	}
	state.add(candidate{runes: seed, origin: origin})

	for i, r := range seed {
		if !isUV(r) {
			continue
		}
		state.extend(swapAt(i))
		if i+1 < len(seed) && seed[i+1] == r {
			state.extend(collapseAt(i))
		}
	}

	state.maxCandidates = params.maxCandidates
	for i, r := range seed {
		if r == 'I' {
			state.extend(jAt(i))
		}
	}

	out := make([]Candidate, len(state.candidates))
	for i, c := range state.candidates {
		out[i] = Candidate{Text: string(c.runes), Applied: c.applied}
	}
	return out
}
