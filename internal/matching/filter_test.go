package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vegichef/backend/internal/types"
)

func filterCatalog() []types.Recipe {
	return []types.Recipe{
		{Name: "Poha", Type: "Breakfast", Tags: []string{"Quick", "Healthy"}},
		{Name: "Jain Dal", Type: "Lunch", Tags: []string{"jain", "quick", "No Onion/Garlic"}},
		{Name: "Khichdi", Type: "Dinner", Tags: []string{"satvik", "healthy"}},
		{Name: "Samosa", Type: "Snacks", Tags: []string{}},
	}
}

func names(recipes []types.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	catalog := filterCatalog()

	t.Run("no filters keeps everything", func(t *testing.T) {
		got := Filter(catalog, nil, "")
		assert.Equal(t, []string{"Poha", "Jain Dal", "Khichdi", "Samosa"}, names(got))
	})

	t.Run("All disables the meal type filter", func(t *testing.T) {
		assert.Len(t, Filter(catalog, nil, "All"), 4)
		assert.Len(t, Filter(catalog, nil, "all"), 4)
	})

	t.Run("meal type compares case-insensitively", func(t *testing.T) {
		got := Filter(catalog, nil, "dinner")
		assert.Equal(t, []string{"Khichdi"}, names(got))
	})

	t.Run("single tag filter", func(t *testing.T) {
		got := Filter(catalog, map[string]bool{"healthy": true}, "All")
		assert.Equal(t, []string{"Poha", "Khichdi"}, names(got))
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		onlyQuick := []types.Recipe{{Name: "Toast", Tags: []string{"quick"}}}
		got := Filter(onlyQuick, map[string]bool{"quick": true, "jain": true}, "")
		assert.Empty(t, got)

		got = Filter(catalog, map[string]bool{"quick": true, "jain": true}, "")
		assert.Equal(t, []string{"Jain Dal"}, names(got))
	})

	t.Run("no onion garlic accepts both key spellings", func(t *testing.T) {
		got := Filter(catalog, map[string]bool{"no_onion_garlic": true}, "")
		assert.Equal(t, []string{"Jain Dal"}, names(got))

		got = Filter(catalog, map[string]bool{"no-onion-garlic": true}, "")
		assert.Equal(t, []string{"Jain Dal"}, names(got))
	})

	t.Run("inactive and unknown keys are ignored", func(t *testing.T) {
		got := Filter(catalog, map[string]bool{"jain": false, "vegan": true}, "")
		assert.Len(t, got, 4)
	})

	t.Run("meal type and tags together", func(t *testing.T) {
		got := Filter(catalog, map[string]bool{"healthy": true}, "Breakfast")
		assert.Equal(t, []string{"Poha"}, names(got))
	})

	t.Run("catalog is untouched", func(t *testing.T) {
		before := filterCatalog()
		Filter(catalog, map[string]bool{"satvik": true}, "Dinner")
		assert.Equal(t, before, catalog)
	})
}
