package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vegichef/backend/internal/matching"
	"github.com/vegichef/backend/internal/middleware"
	"github.com/vegichef/backend/internal/mocks"
	"github.com/vegichef/backend/internal/testhelpers"
	"github.com/vegichef/backend/internal/types"
)

func setupRecipeTestRouter() (*gin.Engine, *mocks.MockCatalogService, *mocks.MockSearchService, *mocks.MockLLMService) {
	catalog := new(mocks.MockCatalogService)
	search := new(mocks.MockSearchService)
	llm := new(mocks.MockLLMService)
	h := NewRecipeHandler(catalog, search, llm)

	router := gin.New()
	router.POST("/search", h.SearchRecipes)
	router.POST("/instructions", h.GetInstructions)
	router.GET("/ingredients", h.ListIngredients)
	return router, catalog, search, llm
}

func TestSearchRecipes(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		router, _, search, _ := setupRecipeTestRouter()
		w := testhelpers.PerformRequest(t, router, http.MethodPost, "/search", "not an object")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp middleware.ErrorResponse
		testhelpers.DecodeJSON(t, w, &resp)
		assert.Equal(t, "Invalid request body", resp.Error)
		search.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("no ingredients selected", func(t *testing.T) {
		router, _, search, _ := setupRecipeTestRouter()
		w := testhelpers.PerformRequest(t, router, http.MethodPost, "/search", types.SearchRequest{Ingredients: []string{}})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp SearchResponse
		testhelpers.DecodeJSON(t, w, &resp)
		assert.Empty(t, resp.Recipes)
		assert.NotNil(t, resp.Recipes)
		assert.Equal(t, "Please select some ingredients first!", resp.Message)
		search.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("no matches", func(t *testing.T) {
		router, _, search, _ := setupRecipeTestRouter()
		search.On("Search", mock.Anything, mock.Anything).Return([]matching.MatchResult{}, nil)

		w := testhelpers.PerformRequest(t, router, http.MethodPost, "/search", types.SearchRequest{Ingredients: []string{"saffron"}})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp SearchResponse
		testhelpers.DecodeJSON(t, w, &resp)
		assert.Empty(t, resp.Recipes)
		assert.Equal(t, "No recipes found with your ingredients. Try adding more ingredients or adjusting filters!", resp.Message)
	})

	t.Run("found recipes", func(t *testing.T) {
		router, _, search, _ := setupRecipeTestRouter()
		want := matching.Query{
			Ingredients: []string{"rice", "ghee"},
			Filters:     map[string]bool{"quick": true},
			MealType:    "Lunch",
		}
		search.On("Search", mock.Anything, want).Return([]matching.MatchResult{
			{Name: "Jeera Rice", MatchPercentage: 67, MissingIngredients: []string{"Jeera"}},
			{Name: "Ghee Rice", MatchPercentage: 100, MissingIngredients: []string{}},
		}, nil)

		w := testhelpers.PerformRequest(t, router, http.MethodPost, "/search", types.SearchRequest{
			Ingredients: want.Ingredients,
			Filters:     want.Filters,
			MealType:    want.MealType,
		})

		require.Equal(t, http.StatusOK, w.Code)
		var resp SearchResponse
		testhelpers.DecodeJSON(t, w, &resp)
		assert.Equal(t, "Found 2 recipes!", resp.Message)
		require.Len(t, resp.Recipes, 2)
		assert.Equal(t, "Jeera Rice", resp.Recipes[0].Name)
		search.AssertExpectations(t)
	})

	t.Run("catalog failure", func(t *testing.T) {
		router, _, search, _ := setupRecipeTestRouter()
		search.On("Search", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

		w := testhelpers.PerformRequest(t, router, http.MethodPost, "/search", types.SearchRequest{Ingredients: []string{"rice"}})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp middleware.ErrorResponse
		testhelpers.DecodeJSON(t, w, &resp)
		assert.Equal(t, "An error occurred while searching recipes", resp.Error)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestGetInstructions(t *testing.T) {
	t.Run("missing recipe name", func(t *testing.T) {
		router, _, _, llm := setupRecipeTestRouter()
		w := testhelpers.PerformRequest(t, router, http.MethodPost, "/instructions", types.InstructionsRequest{RecipeName: "  "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp middleware.ErrorResponse
		testhelpers.DecodeJSON(t, w, &resp)
		assert.Equal(t, "Recipe name is required", resp.Error)
		llm.AssertNotCalled(t, "GetCookingInstructions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("returns guidance", func(t *testing.T) {
		router, _, _, llm := setupRecipeTestRouter()
		guidance := types.Guidance{
			Instructions:       []string{"Rinse rice", "Temper jeera"},
			Substitutions:      []string{"Use oil instead of ghee"},
			Tips:               []string{},
			CulturalContext:    "A North Indian staple.",
			ServingSuggestions: []string{"Dal"},
		}
		llm.On("GetCookingInstructions", mock.Anything, "Jeera Rice", []string{"rice"}, []string{"Rice", "Jeera"}).
			Return(guidance)

		w := testhelpers.PerformRequest(t, router, http.MethodPost, "/instructions", types.InstructionsRequest{
			RecipeName:        "Jeera Rice",
			UserIngredients:   []string{"rice"},
			RecipeIngredients: []string{"Rice", "Jeera"},
		})

		require.Equal(t, http.StatusOK, w.Code)
		var resp InstructionsResponse
		testhelpers.DecodeJSON(t, w, &resp)
		assert.Equal(t, guidance, resp.Instructions)
		llm.AssertExpectations(t)
	})
}

func TestListIngredients(t *testing.T) {
	t.Run("sorted names", func(t *testing.T) {
		router, catalog, _, _ := setupRecipeTestRouter()
		catalog.On("ListIngredientNames", mock.Anything).Return([]string{"ghee", "jeera", "rice"}, nil)

		w := testhelpers.PerformRequest(t, router, http.MethodGet, "/ingredients", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp IngredientsResponse
		testhelpers.DecodeJSON(t, w, &resp)
		assert.Equal(t, []string{"ghee", "jeera", "rice"}, resp.Ingredients)
	})

	t.Run("store failure", func(t *testing.T) {
		router, catalog, _, _ := setupRecipeTestRouter()
		catalog.On("ListIngredientNames", mock.Anything).Return(nil, errors.New("boom"))

		w := testhelpers.PerformRequest(t, router, http.MethodGet, "/ingredients", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
