package merlin

import (
	"slices"
	"strings"

	"crosswarped.com/merlin/internal"
)

// MaxVariants is the most variants GenerateVariants returns.
const MaxVariants = 50

// ChangeOriginal labels the variant that is the pool itself.
const ChangeOriginal = "Original"

// Variant is an alternate spelling of a pool under the fungible-letter rules.
type Variant struct {
	Text string `json:"text"`

	// Change describes which substitutions turn the pool into Text, e.g. "U→V, I→J".
	Change string `json:"changeDescription"`
}

// Options bounds the work GenerateVariantsWithOptions does.
type Options struct {
	// Limit caps the number of variants returned. Values outside 1..MaxVariants fall
	// back to MaxVariants.
	Limit int

	// MaxCandidates bounds how many distinct strings are explored before sorting.
	// Zero means internal.DefaultMaxCandidates.
	MaxCandidates int
}

// GenerateVariants returns the spellings reachable from pool by swapping U and V,
// collapsing a UU or VV pair into W, and turning I into J. The result is sorted,
// free of duplicates, capped at MaxVariants, and always contains the uppercased pool.
func GenerateVariants(pool string) []Variant {
	return GenerateVariantsWithOptions(pool, Options{})
}

// GenerateVariantsWithOptions is GenerateVariants with a custom result limit and
// working-set bound. The uppercased pool is kept even when it sorts past the limit.
func GenerateVariantsWithOptions(pool string, opts Options) []Variant {
	seed := strings.ToUpper(pool)

	limit := opts.Limit
	if limit < 1 || limit > MaxVariants {
		limit = MaxVariants
	}

	params := internal.ClosureParams{Seed: seed}
	if opts.MaxCandidates > 0 {
		params.MaxCandidates = &opts.MaxCandidates
	}

	candidates := internal.Closure(params)
	slices.SortFunc(candidates, func(a, b internal.Candidate) int {
		return strings.Compare(a.Text, b.Text)
	})

	if len(candidates) > limit {
		// The seed sorts anywhere; keep it even when it falls past the limit.
		seedIdx := slices.IndexFunc(candidates, func(c internal.Candidate) bool {
			return c.Text == seed
		})
		if seedIdx >= limit {
			candidates[limit-1] = candidates[seedIdx]
			slices.SortFunc(candidates[:limit], func(a, b internal.Candidate) int {
				return strings.Compare(a.Text, b.Text)
			})
		}
		candidates = candidates[:limit]
	}

	variants := make([]Variant, len(candidates))
	for i, c := range candidates {
		variants[i] = Variant{Text: c.Text, Change: describe(c.Applied)}
	}
	return variants
}

func describe(applied internal.Rule) string {
	var labels []string
	if applied&internal.RuleCollapse != 0 {
		labels = append(labels, "UU/VV→W")
	}
	if applied&internal.RuleUToV != 0 {
		labels = append(labels, "U→V")
	}
	if applied&internal.RuleVToU != 0 {
		labels = append(labels, "V→U")
	}
	if applied&internal.RuleIToJ != 0 {
		labels = append(labels, "I→J")
	}
	if len(labels) == 0 {
		return ChangeOriginal
	}
	return strings.Join(labels, ", ")
}
