package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vegichef/backend/internal/logger"
	"github.com/vegichef/backend/internal/matching"
	"github.com/vegichef/backend/internal/middleware"
	"github.com/vegichef/backend/internal/service"
	"github.com/vegichef/backend/internal/types"
)

// RecipeHandler serves ingredient search, cooking guidance and the
// ingredient picker.
type RecipeHandler struct {
	catalog service.ICatalogService
	search  service.ISearchService
	llm     service.ILLMService
}

func NewRecipeHandler(catalog service.ICatalogService, search service.ISearchService, llm service.ILLMService) *RecipeHandler {
	return &RecipeHandler{
		catalog: catalog,
		search:  search,
		llm:     llm,
	}
}

// SearchRecipes ranks the catalog against the posted ingredients.
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	var req types.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: errInvalidBody})
		return
	}

	if len(req.Ingredients) == 0 {
		c.JSON(http.StatusOK, SearchResponse{Recipes: []matching.MatchResult{}, Message: msgSelectIngredients})
		return
	}

	results, err := h.search.Search(c.Request.Context(), matching.Query{
		Ingredients: req.Ingredients,
		Filters:     req.Filters,
		MealType:    req.MealType,
	})
	if err != nil {
		logger.Error("error in search_recipes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, middleware.ErrorResponse{Error: errSearchFailed})
		return
	}

	if len(results) == 0 {
		c.JSON(http.StatusOK, SearchResponse{Recipes: []matching.MatchResult{}, Message: msgNoRecipes})
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Recipes: results,
		Message: fmt.Sprintf("Found %d recipes!", len(results)),
	})
}

// GetInstructions returns language-model cooking guidance for one recipe.
func (h *RecipeHandler) GetInstructions(c *gin.Context) {
	var req types.InstructionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: errInvalidBody})
		return
	}
	if strings.TrimSpace(req.RecipeName) == "" {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: errRecipeNameRequired})
		return
	}

	guidance := h.llm.GetCookingInstructions(c.Request.Context(), req.RecipeName, req.UserIngredients, req.RecipeIngredients)
	c.JSON(http.StatusOK, InstructionsResponse{Instructions: guidance})
}

// ListIngredients returns every known ingredient name, sorted.
func (h *RecipeHandler) ListIngredients(c *gin.Context) {
	names, err := h.catalog.ListIngredientNames(c.Request.Context())
	if err != nil {
		logger.Error("error loading ingredients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, middleware.ErrorResponse{Error: errIngredientsFailed})
		return
	}
	c.JSON(http.StatusOK, IngredientsResponse{Ingredients: names})
}
