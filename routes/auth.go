package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/charandeep-reddy/food-login/auth"
)

// SetupAuthRoutes registers the public "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(deps.DB))
		authGroup.POST("/login", auth.Login(deps.DB, deps.JWTSecret))
	}
}
