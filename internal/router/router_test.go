package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/vegichef/backend/internal/api"
)

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	noop := func(c *gin.Context) { c.Next() }
	r := SetupRouter([]string{"*"}, api.Routes{
		Recipes:   api.NewRecipeHandler(nil, nil, nil),
		Favorites: api.NewFavoriteHandler(nil),
		Session:   noop,
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	t.Run("request id is echoed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("panics become 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
	})

	t.Run("any origin allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://example.org")
		r.ServeHTTP(w, req)

		assert.Equal(t, "https://example.org", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
