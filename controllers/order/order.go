package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/charandeep-reddy/food-login/apierror"
	"github.com/charandeep-reddy/food-login/logging"
	"github.com/charandeep-reddy/food-login/middleware"
	"github.com/charandeep-reddy/food-login/models"
	"github.com/charandeep-reddy/food-login/payment"
	"github.com/charandeep-reddy/food-login/policy"
	"github.com/charandeep-reddy/food-login/store"
)

type ConfirmOrderRequest struct {
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /orders — phase 2 of order placement. Verifies the gateway's HMAC
// signature, then re-reads the cart and prices it against the live catalog;
// the amount recorded here can differ from the phase 1 quote if the cart or
// prices changed in between. A confirmation replayed with an
// already-recorded payment id is refused.
func ConfirmOrder(db *gorm.DB, keySecret string, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := middleware.Caller(c)

		var req ConfirmOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Invalid input: "+err.Error())
			return
		}

		if !payment.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, keySecret) {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindSignatureMismatch, "Payment verification failed")
			return
		}

		order, err := store.PlaceOrder(db, caller.UserID, req.RazorpayPaymentID, req.RazorpayOrderID)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrEmptyCart):
				apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Cart is empty")
			case errors.Is(err, store.ErrDuplicatePayment):
				apierror.JSON(c, http.StatusConflict, apierror.KindConflict, "An order already exists for this payment")
			default:
				apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to place order")
			}
			return
		}

		logging.From(c).Info("order placed",
			"order_id", order.ID, "user_id", order.UserID,
			"total", order.Total, "payment_id", order.PaymentID,
		)
		hub.Broadcast(*order)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully",
			"order":   order,
		})
	}
}

// GET /orders — caller's own orders, most recent first.
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := middleware.Caller(c)

		orders, err := store.OrdersForUser(db, caller.UserID)
		if err != nil {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID — owner or admin only.
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := middleware.Caller(c)

		id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Invalid order ID")
			return
		}

		order, err := store.OrderByID(db, uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierror.JSON(c, http.StatusNotFound, apierror.KindNotFound, "Order not found")
				return
			}
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to fetch order")
			return
		}

		if !policy.Can(caller, policy.ActionReadOrder, policy.Resource{OwnerID: order.UserID}) {
			apierror.JSON(c, http.StatusForbidden, apierror.KindForbidden, "Not allowed to view this order")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := store.AllOrders(db)
		if err != nil {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PATCH /admin/orders/:orderID/status — any of the four statuses is
// accepted in any sequence, Delivered back to Pending included.
func UpdateOrderStatus(db *gorm.DB, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Invalid order ID")
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Invalid input: "+err.Error())
			return
		}
		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, err.Error())
			return
		}

		order, err := store.UpdateOrderStatus(db, uint(id), status)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierror.JSON(c, http.StatusNotFound, apierror.KindNotFound, "Order not found")
				return
			}
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to update order status")
			return
		}

		hub.Broadcast(*order)
		c.JSON(http.StatusOK, order)
	}
}
