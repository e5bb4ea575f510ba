package store

import (
	"errors"
	"time"

	"github.com/charandeep-reddy/food-login/models"
	"gorm.io/gorm"
)

// PlaceOrder persists a new order for the user's current cart and clears
// the cart, all in one transaction. The total and line prices come from the
// live catalog at this moment, not from any earlier quote. One order per
// payment id: a replayed confirmation returns ErrDuplicatePayment.
func PlaceOrder(db *gorm.DB, userID uint, paymentID, gatewayOrderID string) (*models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.Order
		err := tx.Where("payment_id = ?", paymentID).First(&existing).Error
		if err == nil {
			return ErrDuplicatePayment
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		total, lines, err := PriceCart(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		order = models.Order{
			UserID:         userID,
			Items:          lines,
			Total:          total,
			Status:         models.OrderStatusPending,
			PaymentID:      paymentID,
			GatewayOrderID: gatewayOrderID,
			Address:        user.Address,
			Phone:          user.Phone,
			CreatedAt:      time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return ClearCart(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	if err := AttachItems(db, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// AttachItems populates each order line with the current catalog item, nil
// for items deleted since placement. The stored snapshot is untouched.
func AttachItems(db *gorm.DB, order *models.Order) error {
	for i := range order.Items {
		var item models.Item
		err := db.First(&item, "id = ?", order.Items[i].ItemID).Error
		switch {
		case err == nil:
			order.Items[i].Item = &item
		case errors.Is(err, gorm.ErrRecordNotFound):
			order.Items[i].Item = nil
		default:
			return err
		}
	}
	return nil
}

// OrdersForUser lists the user's orders, most recent first.
func OrdersForUser(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	for i := range orders {
		if err := AttachItems(db, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// AllOrders lists every order with its owning user, most recent first.
func AllOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Preload("Items").Preload("User").
		Order("created_at DESC, id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	for i := range orders {
		if err := AttachItems(db, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func OrderByID(db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := AttachItems(db, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus sets the status field; everything else on an order is
// immutable.
func UpdateOrderStatus(db *gorm.DB, id uint, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}
	order.Status = status
	if err := AttachItems(db, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
