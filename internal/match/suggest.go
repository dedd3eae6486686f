package match

import (
	"sort"
	"strings"
)

// suggestThreshold is the minimum normalized similarity for a suggestion.
const suggestThreshold = 0.5

// Suggest returns the candidates closest to input, best first. It backs
// the "did you mean" hints attached to unknown directives and field
// references. A case-insensitive exact match returns nil; a candidate
// that only differs in case style or separators ranks first.
func Suggest(input string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	in := strings.ToLower(input)
	folded := Fold(input)

	var ranked []scored

	for _, c := range candidates {
		lc := strings.ToLower(c)
		if lc == in {
			return nil
		}

		score := LevenshteinNormalized(in, lc)
		if folded != "" && Fold(c) == folded {
			score = 1
		}

		if score >= suggestThreshold || strings.HasPrefix(lc, in) && in != "" {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}
