package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegichef/backend/internal/matching"
	"github.com/vegichef/backend/internal/types"
)

type stubLister struct {
	recipes []types.Recipe
	err     error
	calls   int
}

func (s *stubLister) ListRecipes(context.Context) ([]types.Recipe, error) {
	s.calls++
	return s.recipes, s.err
}

func TestSearchService_Search(t *testing.T) {
	matcher := matching.NewMatcher(matching.Config{MinPercentage: 30, MaxResults: 10})

	t.Run("empty ingredient list skips the catalog", func(t *testing.T) {
		lister := &stubLister{}
		results, err := NewSearchService(lister, matcher).Search(testContext(), matching.Query{})
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Zero(t, lister.calls)
	})

	t.Run("catalog errors are wrapped", func(t *testing.T) {
		boom := errors.New("db down")
		lister := &stubLister{err: boom}
		_, err := NewSearchService(lister, matcher).Search(testContext(), matching.Query{Ingredients: []string{"rice"}})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("ranks the stored catalog", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewSearchService(seedCatalog(t, db), matcher)

		results, err := svc.Search(testContext(), matching.Query{
			Ingredients: []string{"Rice", "ghee"},
			MealType:    "All",
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Jeera Rice", results[0].Name)
		assert.Equal(t, 67, results[0].MatchPercentage)
		assert.Equal(t, []string{"jeera"}, results[0].MissingIngredients)
	})
}
