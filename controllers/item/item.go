package itemController

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/charandeep-reddy/food-login/apierror"
	"github.com/charandeep-reddy/food-login/models"
)

type CreateItemInput struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required,gte=0"`
	Image string   `json:"image" binding:"required"`
}

type UpdateItemInput struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price" binding:"omitempty,gte=0"`
	Image *string  `json:"image"`
}

// GET /items
func GetItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.Item
		if err := db.Order("id").Find(&items).Error; err != nil {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to fetch items")
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GET /items/:id
func GetItemByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Invalid item ID")
			return
		}

		var item models.Item
		if err := db.First(&item, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierror.JSON(c, http.StatusNotFound, apierror.KindNotFound, "Item not found")
				return
			}
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to retrieve item")
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// POST /items (admin)
func CreateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Invalid input: "+err.Error())
			return
		}

		var existing models.Item
		err := db.Where("name = ?", input.Name).First(&existing).Error
		if err == nil {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Item already exists")
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to check existing item")
			return
		}

		item := models.Item{
			Name:  input.Name,
			Price: *input.Price,
			Image: input.Image,
		}
		if err := db.Create(&item).Error; err != nil {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to create item")
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /items/:id (admin)
func UpdateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Invalid item ID")
			return
		}

		var item models.Item
		if err := db.First(&item, "id = ?", id).Error; err != nil {
			apierror.JSON(c, http.StatusNotFound, apierror.KindNotFound, "Item not found")
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Invalid input: "+err.Error())
			return
		}

		if input.Name != nil && *input.Name != item.Name {
			var dup models.Item
			if err := db.Where("name = ?", *input.Name).First(&dup).Error; err == nil {
				apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Item name already in use")
				return
			}
			item.Name = *input.Name
		}
		if input.Price != nil {
			item.Price = *input.Price
		}
		if input.Image != nil {
			item.Image = *input.Image
		}

		if err := db.Save(&item).Error; err != nil {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to update item")
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /items/:id (admin)
func DeleteItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierror.JSON(c, http.StatusBadRequest, apierror.KindValidation, "Invalid item ID")
			return
		}

		var item models.Item
		if err := db.First(&item, "id = ?", id).Error; err != nil {
			apierror.JSON(c, http.StatusNotFound, apierror.KindNotFound, "Item not found")
			return
		}
		if err := db.Delete(&item).Error; err != nil {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to delete item")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
	}
}
