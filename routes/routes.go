package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/charandeep-reddy/food-login/controllers/order"
	"github.com/charandeep-reddy/food-login/payment"
)

// Deps holds the application-scoped dependencies handlers need. Everything
// is constructed once in main and passed down; nothing is reached through
// package globals.
type Deps struct {
	DB        *gorm.DB
	Gateway   payment.Gateway
	Hub       *orderControllers.Hub
	JWTSecret string

	// Razorpay key secret, used to verify payment-confirmation signatures.
	PaymentSecret string
}

// SetupRoutes wires up every route group.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupAuthRoutes(r, deps)
	SetupItemRoutes(r, deps)
	SetupUserRoutes(r, deps)
	SetupOrderRoutes(r, deps)
	SetupAdminRoutes(r, deps)
}
