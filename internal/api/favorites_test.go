package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vegichef/backend/internal/middleware"
	"github.com/vegichef/backend/internal/mocks"
	"github.com/vegichef/backend/internal/service"
	"github.com/vegichef/backend/internal/testhelpers"
	"github.com/vegichef/backend/internal/types"
)

const testUserID uint = 7

func setupFavoriteTestRouter(withSession bool) (*gin.Engine, *mocks.MockFavoriteService) {
	favorites := new(mocks.MockFavoriteService)
	h := NewFavoriteHandler(favorites)

	router := gin.New()
	if withSession {
		router.Use(func(c *gin.Context) {
			c.Set(middleware.UserIDKey, testUserID)
			c.Next()
		})
	}
	router.POST("/toggle", h.ToggleFavorite)
	router.GET("/favorites", h.GetFavorites)
	router.POST("/check", h.CheckFavorites)
	return router, favorites
}

func TestToggleFavorite(t *testing.T) {
	tests := []struct {
		name       string
		isFavorite bool
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "added", isFavorite: true, wantStatus: http.StatusOK},
		{name: "removed", isFavorite: false, wantStatus: http.StatusOK},
		{name: "unknown recipe", err: service.ErrRecipeNotFound, wantStatus: http.StatusNotFound, wantError: "Recipe not found"},
		{name: "missing name", err: service.ErrRecipeNameRequired, wantStatus: http.StatusBadRequest, wantError: "Recipe name is required"},
		{name: "store failure", err: errors.New("disk full"), wantStatus: http.StatusInternalServerError, wantError: "Failed to toggle favorite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, favorites := setupFavoriteTestRouter(true)
			favorites.On("Toggle", mock.Anything, testUserID, "Poha").Return(tt.isFavorite, tt.err)

			w := testhelpers.PerformRequest(t, router, http.MethodPost, "/toggle", types.ToggleFavoriteRequest{RecipeName: "Poha"})

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				var resp middleware.ErrorResponse
				testhelpers.DecodeJSON(t, w, &resp)
				assert.Equal(t, tt.wantError, resp.Error)
				return
			}
			var resp ToggleFavoriteResponse
			testhelpers.DecodeJSON(t, w, &resp)
			assert.Equal(t, tt.isFavorite, resp.IsFavorite)
		})
	}
}

func TestFavoritesRequireSession(t *testing.T) {
	router, favorites := setupFavoriteTestRouter(false)

	w := testhelpers.PerformRequest(t, router, http.MethodGet, "/favorites", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	favorites.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestGetFavorites(t *testing.T) {
	t.Run("lists recipes", func(t *testing.T) {
		router, favorites := setupFavoriteTestRouter(true)
		favorites.On("List", mock.Anything, testUserID).Return([]types.Recipe{{Name: "Poha", Type: "Breakfast"}}, nil)

		w := testhelpers.PerformRequest(t, router, http.MethodGet, "/favorites", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp FavoritesResponse
		testhelpers.DecodeJSON(t, w, &resp)
		require.Len(t, resp.Recipes, 1)
		assert.Equal(t, "Poha", resp.Recipes[0].Name)
	})

	t.Run("store failure", func(t *testing.T) {
		router, favorites := setupFavoriteTestRouter(true)
		favorites.On("List", mock.Anything, testUserID).Return(nil, errors.New("boom"))

		w := testhelpers.PerformRequest(t, router, http.MethodGet, "/favorites", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp middleware.ErrorResponse
		testhelpers.DecodeJSON(t, w, &resp)
		assert.Equal(t, "Failed to get favorites", resp.Error)
	})
}

func TestCheckFavorites(t *testing.T) {
	t.Run("returns favorited subset", func(t *testing.T) {
		router, favorites := setupFavoriteTestRouter(true)
		favorites.On("Check", mock.Anything, testUserID, []string{"Poha", "Upma"}).Return([]string{"Upma"}, nil)

		w := testhelpers.PerformRequest(t, router, http.MethodPost, "/check", types.CheckFavoritesRequest{RecipeNames: []string{"Poha", "Upma"}})

		require.Equal(t, http.StatusOK, w.Code)
		var resp CheckFavoritesResponse
		testhelpers.DecodeJSON(t, w, &resp)
		assert.Equal(t, []string{"Upma"}, resp.FavoritedRecipes)
	})

	t.Run("store failure", func(t *testing.T) {
		router, favorites := setupFavoriteTestRouter(true)
		favorites.On("Check", mock.Anything, testUserID, mock.Anything).Return(nil, errors.New("boom"))

		w := testhelpers.PerformRequest(t, router, http.MethodPost, "/check", types.CheckFavoritesRequest{RecipeNames: []string{"Poha"}})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp middleware.ErrorResponse
		testhelpers.DecodeJSON(t, w, &resp)
		assert.Equal(t, "Failed to check favorites", resp.Error)
	})
}
