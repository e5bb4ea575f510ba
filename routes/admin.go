package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/charandeep-reddy/food-login/controllers/admin"
	orderControllers "github.com/charandeep-reddy/food-login/controllers/order"
	userControllers "github.com/charandeep-reddy/food-login/controllers/user"
	"github.com/charandeep-reddy/food-login/middleware"
	"github.com/charandeep-reddy/food-login/policy"
)

// SetupAdminRoutes registers the "/admin/*" endpoints. All of them require
// an authenticated administrator.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(deps.JWTSecret))
	{
		orderMgmt := adminGroup.Group("/orders")
		{
			orderMgmt.GET("",
				middleware.RequireAdmin(policy.ActionReadOrder),
				orderControllers.GetAllOrders(deps.DB))
			orderMgmt.PATCH("/:orderID/status",
				middleware.RequireAdmin(policy.ActionUpdateOrderStatus),
				orderControllers.UpdateOrderStatus(deps.DB, deps.Hub))
			orderMgmt.GET("/export",
				middleware.RequireAdmin(policy.ActionExportOrders),
				adminController.ExportOrdersToExcel(deps.DB))
			orderMgmt.GET("/ws",
				middleware.RequireAdmin(policy.ActionWatchOrders),
				deps.Hub.Handler())
		}

		adminGroup.GET("/users",
			middleware.RequireAdmin(policy.ActionViewAccounts),
			userControllers.GetAllUsers(deps.DB))
		adminGroup.GET("/admins",
			middleware.RequireAdmin(policy.ActionViewAccounts),
			userControllers.GetAllAdmins(deps.DB))
	}
}
