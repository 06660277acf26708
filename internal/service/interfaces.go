package service

import (
	"context"

	"github.com/vegichef/backend/internal/matching"
	"github.com/vegichef/backend/internal/model"
	"github.com/vegichef/backend/internal/types"
)

// ICatalogService reads and replaces the recipe catalog.
type ICatalogService interface {
	ListRecipes(ctx context.Context) ([]types.Recipe, error)
	ListIngredientNames(ctx context.Context) ([]string, error)
	GetRecipeByName(ctx context.Context, name string) (*model.Recipe, error)
	Import(ctx context.Context, entries []types.CatalogEntry) (*ImportStats, error)
}

// ISearchService ranks the catalog against a query.
type ISearchService interface {
	Search(ctx context.Context, q matching.Query) ([]matching.MatchResult, error)
}

// ILLMService produces cooking guidance. It never fails: problems are
// reported through a fallback Guidance.
type ILLMService interface {
	GetCookingInstructions(ctx context.Context, recipeName string, userIngredients, recipeIngredients []string) types.Guidance
}

// ISessionService maps a session token to a user, creating one when needed.
type ISessionService interface {
	Resolve(ctx context.Context, token string) (*model.User, string, error)
}

// IFavoriteService manages a user's favorite recipes.
type IFavoriteService interface {
	Toggle(ctx context.Context, userID uint, recipeName string) (bool, error)
	List(ctx context.Context, userID uint) ([]types.Recipe, error)
	Check(ctx context.Context, userID uint, recipeNames []string) ([]string, error)
}
