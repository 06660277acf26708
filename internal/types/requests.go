package types

// SearchRequest is the body of the recipe search endpoint.
type SearchRequest struct {
	Ingredients []string        `json:"ingredients"`
	Filters     map[string]bool `json:"filters"`
	MealType    string          `json:"meal_type"`
}

// InstructionsRequest is the body of the cooking instructions endpoint.
type InstructionsRequest struct {
	RecipeName        string   `json:"recipe_name"`
	UserIngredients   []string `json:"user_ingredients"`
	RecipeIngredients []string `json:"recipe_ingredients"`
}

// ToggleFavoriteRequest names the recipe whose favorite flag flips.
type ToggleFavoriteRequest struct {
	RecipeName string `json:"recipe_name"`
}

// CheckFavoritesRequest lists recipe names to test against the user's favorites.
type CheckFavoritesRequest struct {
	RecipeNames []string `json:"recipe_names"`
}

// CatalogEntry is one element of the recipes.json import file.
type CatalogEntry struct {
	Name        string   `json:"name"`
	Time        string   `json:"time"`
	Type        string   `json:"type"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Tags        []string `json:"tags"`
}
