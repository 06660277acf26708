package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vegichef/backend/internal/logger"
	"github.com/vegichef/backend/internal/middleware"
	"github.com/vegichef/backend/internal/service"
	"github.com/vegichef/backend/internal/types"
)

// FavoriteHandler serves the session user's favorites. Routes using it must
// run behind middleware.Session.
type FavoriteHandler struct {
	favorites service.IFavoriteService
}

func NewFavoriteHandler(favorites service.IFavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

func sessionUser(c *gin.Context) (uint, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, middleware.ErrorResponse{Error: errSessionRequired})
	}
	return id, ok
}

func (h *FavoriteHandler) ToggleFavorite(c *gin.Context) {
	var req types.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: errInvalidBody})
		return
	}
	userID, ok := sessionUser(c)
	if !ok {
		return
	}

	isFavorite, err := h.favorites.Toggle(c.Request.Context(), userID, req.RecipeName)
	switch {
	case errors.Is(err, service.ErrRecipeNameRequired):
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: errRecipeNameRequired})
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: errRecipeNotFound})
	case err != nil:
		logger.Error("error in toggle_favorite", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, middleware.ErrorResponse{Error: errToggleFailed})
	default:
		c.JSON(http.StatusOK, ToggleFavoriteResponse{IsFavorite: isFavorite})
	}
}

func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	userID, ok := sessionUser(c)
	if !ok {
		return
	}

	recipes, err := h.favorites.List(c.Request.Context(), userID)
	if err != nil {
		logger.Error("error in get_favorites", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, middleware.ErrorResponse{Error: errFavoritesFailed})
		return
	}
	c.JSON(http.StatusOK, FavoritesResponse{Recipes: recipes})
}

func (h *FavoriteHandler) CheckFavorites(c *gin.Context) {
	var req types.CheckFavoritesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: errInvalidBody})
		return
	}
	userID, ok := sessionUser(c)
	if !ok {
		return
	}

	names, err := h.favorites.Check(c.Request.Context(), userID, req.RecipeNames)
	if err != nil {
		logger.Error("error in check_favorites", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, middleware.ErrorResponse{Error: errCheckFailed})
		return
	}
	c.JSON(http.StatusOK, CheckFavoritesResponse{FavoritedRecipes: names})
}
