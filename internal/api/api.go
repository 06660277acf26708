package api

import (
	"github.com/gin-gonic/gin"
)

// Routes bundles the handlers and per-route middleware the API needs.
type Routes struct {
	Recipes   *RecipeHandler
	Favorites *FavoriteHandler
	// Session resolves the visitor's user; required by favorites and
	// instructions.
	Session gin.HandlerFunc
	// InstructionLimit throttles guidance requests.
	InstructionLimit gin.HandlerFunc
	ReadyChecks      []ReadyCheck
}

// RegisterRoutes registers all API routes, plus root-level aliases for the
// paths the legacy web client posts to.
func RegisterRoutes(router *gin.Engine, r Routes) {
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)
	router.GET("/ready", Readiness(r.ReadyChecks))

	instructions := []gin.HandlerFunc{r.Session}
	if r.InstructionLimit != nil {
		instructions = append(instructions, r.InstructionLimit)
	}
	instructions = append(instructions, r.Recipes.GetInstructions)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/ingredients", r.Recipes.ListIngredients)

		recipes := v1.Group("/recipes")
		recipes.POST("/search", r.Recipes.SearchRecipes)
		recipes.POST("/instructions", instructions...)

		favorites := v1.Group("/favorites", r.Session)
		favorites.GET("", r.Favorites.GetFavorites)
		favorites.POST("/toggle", r.Favorites.ToggleFavorite)
		favorites.POST("/check", r.Favorites.CheckFavorites)
	}

	router.POST("/search_recipes", r.Recipes.SearchRecipes)
	router.POST("/get_ai_instructions", instructions...)
	router.POST("/toggle_favorite", r.Session, r.Favorites.ToggleFavorite)
	router.GET("/get_favorites", r.Session, r.Favorites.GetFavorites)
	router.POST("/check_favorites", r.Session, r.Favorites.CheckFavorites)
}
