package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/charandeep-reddy/food-login/controllers/cart"
	checkoutControllers "github.com/charandeep-reddy/food-login/controllers/checkout"
	userControllers "github.com/charandeep-reddy/food-login/controllers/user"
	"github.com/charandeep-reddy/food-login/middleware"
)

// SetupUserRoutes registers the JWT-protected profile, cart, and checkout
// endpoints. Cart operations only ever touch the caller's own cart.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(deps.JWTSecret))
	{
		userGroup.GET("/profile", userControllers.GetProfile(deps.DB))
		userGroup.PUT("/profile", userControllers.UpdateProfile(deps.DB))

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(deps.DB))
			cartGroup.POST("", cartControllers.UpdateCartItem(deps.DB))
			cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(deps.DB))
			cartGroup.DELETE("", cartControllers.ClearUserCart(deps.DB))
		}
	}

	r.POST("/checkout",
		middleware.ValidateToken(deps.JWTSecret),
		checkoutControllers.CreateIntent(deps.DB, deps.Gateway),
	)
}
