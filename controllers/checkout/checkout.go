package checkoutControllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/charandeep-reddy/food-login/apierror"
	"github.com/charandeep-reddy/food-login/logging"
	"github.com/charandeep-reddy/food-login/middleware"
	"github.com/charandeep-reddy/food-login/payment"
	"github.com/charandeep-reddy/food-login/store"
)

// POST /checkout — phase 1 of order placement: price the cart against the
// live catalog and create a payment intent for that amount. No local state
// changes here; a gateway failure leaves the cart untouched.
func CreateIntent(db *gorm.DB, gateway payment.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := middleware.Caller(c)

		total, lines, err := store.PriceCart(db, caller.UserID)
		if err != nil {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to read cart")
			return
		}
		if len(lines) == 0 {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Cart is empty")
			return
		}

		amountPaise := int64(math.Round(total * 100))
		receipt := uuid.NewString()

		order, err := gateway.CreateOrder(c.Request.Context(), amountPaise, "INR", receipt)
		if err != nil {
			logging.From(c).Error("payment intent creation failed", "err", err)
			apierror.JSON(c, http.StatusBadGateway, apierror.KindExternal, "Order creation failed: "+err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order": order,
			"total": total,
		})
	}
}
