package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/charandeep-reddy/food-login/controllers/order"
	"github.com/charandeep-reddy/food-login/middleware"
)

// SetupOrderRoutes registers the order placement and tracking endpoints.
func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken(deps.JWTSecret))
	{
		// Phase 2 of checkout: confirm payment and place the order.
		orders.POST("", orderControllers.ConfirmOrder(deps.DB, deps.PaymentSecret, deps.Hub))

		orders.GET("", orderControllers.GetMyOrders(deps.DB))
		orders.GET("/:orderID", orderControllers.GetOrderByID(deps.DB))
	}
}
