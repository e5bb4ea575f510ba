package routes

import (
	"github.com/gin-gonic/gin"

	itemController "github.com/charandeep-reddy/food-login/controllers/item"
	"github.com/charandeep-reddy/food-login/middleware"
	"github.com/charandeep-reddy/food-login/policy"
)

// SetupItemRoutes registers catalog browsing (public) and catalog
// management (admin only).
func SetupItemRoutes(r *gin.Engine, deps Deps) {
	r.GET("/items", itemController.GetItems(deps.DB))
	r.GET("/items/:id", itemController.GetItemByID(deps.DB))

	manage := r.Group("/items")
	manage.Use(
		middleware.ValidateToken(deps.JWTSecret),
		middleware.RequireAdmin(policy.ActionManageCatalog),
	)
	{
		manage.POST("", itemController.CreateItem(deps.DB))
		manage.PUT("/:id", itemController.UpdateItem(deps.DB))
		manage.DELETE("/:id", itemController.DeleteItem(deps.DB))
	}
}
