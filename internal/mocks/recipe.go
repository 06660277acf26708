package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vegichef/backend/internal/matching"
	"github.com/vegichef/backend/internal/model"
	"github.com/vegichef/backend/internal/service"
	"github.com/vegichef/backend/internal/types"
)

// MockCatalogService is a mock implementation of the ICatalogService interface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListRecipes(ctx context.Context) ([]types.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Recipe), args.Error(1)
}

func (m *MockCatalogService) ListIngredientNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogService) GetRecipeByName(ctx context.Context, name string) (*model.Recipe, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockCatalogService) Import(ctx context.Context, entries []types.CatalogEntry) (*service.ImportStats, error) {
	args := m.Called(ctx, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImportStats), args.Error(1)
}

// MockSearchService is a mock implementation of the ISearchService interface
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, q matching.Query) ([]matching.MatchResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]matching.MatchResult), args.Error(1)
}

type MockLLMService struct {
	mock.Mock
}

func (m *MockLLMService) GetCookingInstructions(ctx context.Context, recipeName string, userIngredients, recipeIngredients []string) types.Guidance {
	args := m.Called(ctx, recipeName, userIngredients, recipeIngredients)
	return args.Get(0).(types.Guidance)
}
