package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegichef/backend/internal/types"
)

func resultNames(results []MatchResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Name)
	}
	return out
}

func TestRank(t *testing.T) {
	t.Run("drops below threshold and keeps catalog order on ties", func(t *testing.T) {
		in := []MatchResult{
			{Name: "a", MatchPercentage: 80},
			{Name: "b", MatchPercentage: 80},
			{Name: "c", MatchPercentage: 50},
			{Name: "d", MatchPercentage: 20},
		}
		got := Rank(in, 30, 10)
		assert.Equal(t, []string{"a", "b", "c"}, resultNames(got))
	})

	t.Run("threshold is inclusive", func(t *testing.T) {
		in := []MatchResult{{Name: "edge", MatchPercentage: 30}, {Name: "below", MatchPercentage: 29}}
		assert.Equal(t, []string{"edge"}, resultNames(Rank(in, 30, 10)))
	})

	t.Run("sorts descending", func(t *testing.T) {
		in := []MatchResult{
			{Name: "low", MatchPercentage: 40},
			{Name: "high", MatchPercentage: 100},
			{Name: "mid", MatchPercentage: 60},
		}
		assert.Equal(t, []string{"high", "mid", "low"}, resultNames(Rank(in, 30, 10)))
	})

	t.Run("truncates to the best results with ties in catalog order", func(t *testing.T) {
		var in []MatchResult
		for i := 0; i < 15; i++ {
			pct := 40
			if i%3 == 0 {
				pct = 90
			}
			in = append(in, MatchResult{Name: fmt.Sprintf("r%02d", i), MatchPercentage: pct})
		}
		got := Rank(in, 30, 10)
		require.Len(t, got, 10)
		assert.Equal(t, []string{"r00", "r03", "r06", "r09", "r12", "r01", "r02", "r04", "r05", "r07"}, resultNames(got))
	})

	t.Run("non-positive max uses default", func(t *testing.T) {
		var in []MatchResult
		for i := 0; i < 12; i++ {
			in = append(in, MatchResult{Name: fmt.Sprint(i), MatchPercentage: 50})
		}
		assert.Len(t, Rank(in, 30, 0), DefaultMaxResults)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		got := Rank(nil, 30, 10)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestMatcher(t *testing.T) {
	catalog := []types.Recipe{
		{Name: "Jeera Rice", Type: "Lunch", Ingredients: []string{"Rice", "Jeera", "Ghee"}, Tags: []string{"quick", "jain"}},
		{Name: "Aloo Paratha", Type: "Breakfast", Ingredients: []string{"Wheat Flour", "Potato", "Green Chilli", "Ghee"}, Tags: []string{"healthy"}},
		{Name: "Dal Rice", Type: "Lunch", Ingredients: []string{"Rice", "Toor Dal", "Turmeric"}, Tags: []string{"satvik"}},
		{Name: "Masala Chai", Type: "Snacks", Ingredients: []string{"Tea", "Milk", "Ginger", "Sugar"}, Tags: []string{"quick"}},
	}

	t.Run("falls back to defaults", func(t *testing.T) {
		m := NewMatcher(Config{MinPercentage: -1})
		assert.Equal(t, DefaultMinPercentage, m.minPercentage)
		assert.Equal(t, DefaultMaxResults, m.maxResults)
	})

	t.Run("ranks filtered catalog", func(t *testing.T) {
		m := NewMatcher(Config{MinPercentage: 30, MaxResults: 10})
		got := m.Match(catalog, Query{Ingredients: []string{"rice", "ghee"}, MealType: "All"})

		require.Len(t, got, 2)
		assert.Equal(t, "Jeera Rice", got[0].Name)
		assert.Equal(t, 67, got[0].MatchPercentage)
		assert.Equal(t, []string{"Jeera"}, got[0].MissingIngredients)
		assert.Equal(t, "Dal Rice", got[1].Name)
		assert.Equal(t, 33, got[1].MatchPercentage)
	})

	t.Run("applies filters before scoring", func(t *testing.T) {
		m := NewMatcher(Config{MinPercentage: 30})
		got := m.Match(catalog, Query{
			Ingredients: []string{"rice", "ghee"},
			Filters:     map[string]bool{"jain": true},
		})
		assert.Equal(t, []string{"Jeera Rice"}, resultNames(got))
	})

	t.Run("results do not share slices with the catalog", func(t *testing.T) {
		m := NewMatcher(Config{MinPercentage: 30})
		got := m.Match(catalog, Query{Ingredients: []string{"rice", "ghee"}, MealType: "Lunch"})
		require.NotEmpty(t, got)

		got[0].Ingredients[0] = "changed"
		got[0].Tags[0] = "changed"
		assert.Equal(t, "Rice", catalog[0].Ingredients[0])
		assert.Equal(t, "quick", catalog[0].Tags[0])
	})
}
