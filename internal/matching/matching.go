// Package matching ranks catalog recipes by how many of their ingredients a
// user already has. Everything here is pure: inputs are never mutated and no
// state is shared between calls.
package matching

import (
	"slices"

	"github.com/vegichef/backend/internal/types"
)

const (
	// DefaultMinPercentage is the lowest match percentage a recipe needs to
	// be returned from a search.
	DefaultMinPercentage = 30
	// DefaultMaxResults caps the number of ranked recipes.
	DefaultMaxResults = 10
)

// Query is a single user search.
type Query struct {
	Ingredients []string
	Filters     map[string]bool
	MealType    string
}

// MatchResult is a recipe scored against a Query. Its slices are copies and
// never alias the catalog.
type MatchResult struct {
	Name               string   `json:"name"`
	Ingredients        []string `json:"ingredients"`
	Time               string   `json:"time"`
	Steps              []string `json:"steps"`
	Type               string   `json:"type"`
	Tags               []string `json:"tags"`
	MatchPercentage    int      `json:"match_percentage"`
	MissingIngredients []string `json:"missing_ingredients"`
}

// Config controls the ranker. A non-positive MaxResults or a negative
// MinPercentage falls back to the defaults.
type Config struct {
	MinPercentage int
	MaxResults    int
}

// Matcher runs the filter, score and rank stages over a catalog.
type Matcher struct {
	minPercentage int
	maxResults    int
}

// NewMatcher creates a matcher from cfg.
func NewMatcher(cfg Config) *Matcher {
	minPct := cfg.MinPercentage
	if minPct < 0 {
		minPct = DefaultMinPercentage
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Matcher{minPercentage: minPct, maxResults: maxResults}
}

// Match filters the catalog, scores every remaining recipe and returns the
// ranked top results. An empty result is a normal outcome.
func (m *Matcher) Match(catalog []types.Recipe, q Query) []MatchResult {
	filtered := Filter(catalog, q.Filters, q.MealType)

	scored := make([]MatchResult, 0, len(filtered))
	for _, r := range filtered {
		pct, missing := Score(q.Ingredients, r.Ingredients)
		scored = append(scored, MatchResult{
			Name:               r.Name,
			Ingredients:        slices.Clone(r.Ingredients),
			Time:               r.Time,
			Steps:              slices.Clone(r.Steps),
			Type:               r.Type,
			Tags:               slices.Clone(r.Tags),
			MatchPercentage:    pct,
			MissingIngredients: missing,
		})
	}

	return Rank(scored, m.minPercentage, m.maxResults)
}
