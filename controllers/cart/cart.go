package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/charandeep-reddy/food-login/apierror"
	"github.com/charandeep-reddy/food-login/middleware"
	"github.com/charandeep-reddy/food-login/store"
)

type CartItemInput struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := middleware.Caller(c)

		entries, err := store.ResolveCart(db, caller.UserID)
		if err != nil {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to fetch cart")
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

// POST /user/cart — add-or-set: an existing entry gets its quantity
// replaced, never duplicated.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := middleware.Caller(c)

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Invalid input: "+err.Error())
			return
		}

		row, created, err := store.UpsertCartItem(db, caller.UserID, input.ItemID, input.Quantity)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Item does not exist")
				return
			}
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to update cart")
			return
		}
		if created {
			c.JSON(http.StatusCreated, row)
			return
		}
		c.JSON(http.StatusOK, row)
	}
}

// DELETE /user/cart/:item_id — removing an absent entry is a no-op.
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := middleware.Caller(c)

		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Invalid item ID")
			return
		}

		if err := store.RemoveCartItem(db, caller.UserID, uint(itemID)); err != nil {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to remove cart item")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := middleware.Caller(c)

		if err := store.ClearCart(db, caller.UserID); err != nil {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to clear cart")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
