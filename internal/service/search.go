package service

import (
	"context"
	"fmt"

	"github.com/vegichef/backend/internal/matching"
	"github.com/vegichef/backend/internal/types"
)

// RecipeLister supplies the catalog to search.
type RecipeLister interface {
	ListRecipes(ctx context.Context) ([]types.Recipe, error)
}

// SearchService reads the catalog fresh for every query and ranks it.
type SearchService struct {
	catalog RecipeLister
	matcher *matching.Matcher
}

// NewSearchService creates a new SearchService instance
func NewSearchService(catalog RecipeLister, matcher *matching.Matcher) *SearchService {
	return &SearchService{catalog: catalog, matcher: matcher}
}

// Search returns the ranked matches for q. An empty ingredient list yields
// no results without touching the store.
func (s *SearchService) Search(ctx context.Context, q matching.Query) ([]matching.MatchResult, error) {
	if len(q.Ingredients) == 0 {
		return []matching.MatchResult{}, nil
	}

	recipes, err := s.catalog.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return s.matcher.Match(recipes, q), nil
}
