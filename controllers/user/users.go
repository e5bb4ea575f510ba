package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/charandeep-reddy/food-login/apierror"
	"github.com/charandeep-reddy/food-login/middleware"
	"github.com/charandeep-reddy/food-login/models"
)

type UpdateProfileInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

func profileResponse(user models.User) gin.H {
	return gin.H{
		"name":    user.Name,
		"email":   user.Email,
		"address": user.Address,
		"phone":   user.Phone,
	}
}

// GET /user/profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := middleware.Caller(c)

		var user models.User
		if err := db.First(&user, "id = ?", caller.UserID).Error; err != nil {
			apierror.JSON(c, http.StatusNotFound, apierror.KindNotFound, "User not found")
			return
		}
		c.JSON(http.StatusOK, profileResponse(user))
	}
}

// PUT /user/profile — profile edits never touch already-placed orders;
// their address and phone are snapshots.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := middleware.Caller(c)

		var user models.User
		if err := db.First(&user, "id = ?", caller.UserID).Error; err != nil {
			apierror.JSON(c, http.StatusNotFound, apierror.KindNotFound, "User not found")
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Invalid input: "+err.Error())
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Address != nil {
			updates["address"] = *input.Address
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to update profile")
				return
			}
		}
		c.JSON(http.StatusOK, profileResponse(user))
	}
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "name", "email", "is_admin", "created_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to fetch users")
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GET /admin/admins
func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.User
		if err := db.
			Select("id", "name", "email", "is_admin", "created_at").
			Where("is_admin = ?", true).
			Order("created_at desc").
			Find(&admins).Error; err != nil {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to fetch admins")
			return
		}
		c.JSON(http.StatusOK, admins)
	}
}
