package router

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/vegichef/backend/internal/api"
	"github.com/vegichef/backend/internal/middleware"
)

// SetupRouter configures the middleware chain and the application routes.
func SetupRouter(allowedOrigins []string, routes api.Routes) *gin.Engine {
	router := gin.New()

	router.Use(requestid.New())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(allowedOrigins))

	api.RegisterRoutes(router, routes)
	return router
}
