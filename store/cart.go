package store

import (
	"errors"
	"time"

	"github.com/charandeep-reddy/food-login/models"
	"gorm.io/gorm"
)

// CartEntry is a cart line resolved against the current catalog. Item is
// nil when the referenced item no longer exists.
type CartEntry struct {
	Item     *models.Item `json:"item"`
	Quantity int          `json:"quantity"`
}

// ResolveCart returns the user's cart with item payloads attached. A
// dangling item reference resolves to a nil item rather than failing the
// whole read.
func ResolveCart(db *gorm.DB, userID uint) ([]CartEntry, error) {
	var rows []models.CartItem
	if err := db.Where("user_id = ?", userID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]CartEntry, 0, len(rows))
	for _, row := range rows {
		var item models.Item
		err := db.First(&item, "id = ?", row.ItemID).Error
		switch {
		case err == nil:
			entries = append(entries, CartEntry{Item: &item, Quantity: row.Quantity})
		case errors.Is(err, gorm.ErrRecordNotFound):
			entries = append(entries, CartEntry{Item: nil, Quantity: row.Quantity})
		default:
			return nil, err
		}
	}
	return entries, nil
}

// UpsertCartItem adds the item to the cart, or replaces the quantity of an
// existing entry. Returns the row and whether it was newly created. The
// item must exist in the catalog; gorm.ErrRecordNotFound is returned
// otherwise.
func UpsertCartItem(db *gorm.DB, userID, itemID uint, quantity int) (models.CartItem, bool, error) {
	var item models.Item
	if err := db.First(&item, "id = ?", itemID).Error; err != nil {
		return models.CartItem{}, false, err
	}

	var row models.CartItem
	err := db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.CartItem{
			UserID:   userID,
			ItemID:   itemID,
			Quantity: quantity,
			AddedAt:  time.Now(),
		}
		if err := db.Create(&row).Error; err != nil {
			return models.CartItem{}, false, err
		}
		return row, true, nil
	}
	if err != nil {
		return models.CartItem{}, false, err
	}

	row.Quantity = quantity
	row.AddedAt = time.Now()
	if err := db.Save(&row).Error; err != nil {
		return models.CartItem{}, false, err
	}
	return row, false, nil
}

// RemoveCartItem deletes the entry if present. Removing an absent entry is
// a no-op, not an error.
func RemoveCartItem(db *gorm.DB, userID, itemID uint) error {
	return db.Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&models.CartItem{}).Error
}

func ClearCart(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

// PriceCart reads the user's cart and prices every line at the current
// catalog price, returning the total and the placement-time snapshot lines.
// A dangling item reference is kept with a zero price, matching how the
// cart renders it as absent.
func PriceCart(db *gorm.DB, userID uint) (float64, []models.OrderItem, error) {
	var rows []models.CartItem
	if err := db.Where("user_id = ?", userID).Order("id").Find(&rows).Error; err != nil {
		return 0, nil, err
	}

	var total float64
	lines := make([]models.OrderItem, 0, len(rows))
	for _, row := range rows {
		line := models.OrderItem{ItemID: row.ItemID, Quantity: row.Quantity}

		var item models.Item
		err := db.First(&item, "id = ?", row.ItemID).Error
		if err == nil {
			line.Name = item.Name
			line.Price = item.Price
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil, err
		}

		total += line.Price * float64(line.Quantity)
		lines = append(lines, line)
	}
	return total, lines, nil
}
