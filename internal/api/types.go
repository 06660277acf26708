package api

import (
	"github.com/vegichef/backend/internal/matching"
	"github.com/vegichef/backend/internal/types"
)

const (
	msgSelectIngredients = "Please select some ingredients first!"
	msgNoRecipes         = "No recipes found with your ingredients. Try adding more ingredients or adjusting filters!"

	errInvalidBody        = "Invalid request body"
	errSearchFailed       = "An error occurred while searching recipes"
	errRecipeNameRequired = "Recipe name is required"
	errRecipeNotFound     = "Recipe not found"
	errInstructionsFailed = "Failed to get AI cooking instructions. Please try again."
	errIngredientsFailed  = "Failed to load ingredients"
	errToggleFailed       = "Failed to toggle favorite"
	errFavoritesFailed    = "Failed to get favorites"
	errCheckFailed        = "Failed to check favorites"
	errSessionRequired    = "Session required"
)

// SearchResponse is the body of a recipe search.
type SearchResponse struct {
	Recipes []matching.MatchResult `json:"recipes"`
	Message string                 `json:"message"`
}

type InstructionsResponse struct {
	Instructions types.Guidance `json:"instructions"`
}

type IngredientsResponse struct {
	Ingredients []string `json:"ingredients"`
}

type ToggleFavoriteResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

type FavoritesResponse struct {
	Recipes []types.Recipe `json:"recipes"`
}

type CheckFavoritesResponse struct {
	FavoritedRecipes []string `json:"favorited_recipes"`
}
