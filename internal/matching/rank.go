package matching

import "sort"

// Rank drops results below minPercentage, orders the rest by match
// percentage descending and keeps at most maxResults. Results with equal
// percentages stay in catalog order.
func Rank(results []MatchResult, minPercentage, maxResults int) []MatchResult {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	ranked := make([]MatchResult, 0, len(results))
	for _, r := range results {
		if r.MatchPercentage < minPercentage {
			continue
		}
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchPercentage > ranked[j].MatchPercentage
	})

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked
}
