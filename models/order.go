package models

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusPreparing      OrderStatus = "Preparing"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
)

// ParseOrderStatus accepts exactly the four stored status values. There is
// no transition graph: any status may follow any other.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusOutForDelivery, OrderStatusDelivered:
		return OrderStatus(s), nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Order is an immutable record of a completed purchase; only Status changes
// after creation. Items, Total, Address and Phone are snapshotted at
// placement time so later catalog or profile edits never alter history.
type Order struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	UserID         uint        `gorm:"not null;index" json:"user_id"`
	User           User        `gorm:"foreignKey:UserID" json:"-"`
	Items          []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total          float64     `gorm:"not null" json:"total"`
	Status         OrderStatus `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	PaymentID      string      `gorm:"uniqueIndex;not null" json:"payment_id"`
	GatewayOrderID string      `json:"gateway_order_id"`
	Address        string      `json:"address"`
	Phone          string      `json:"phone"`
	CreatedAt      time.Time   `json:"created_at"`
}

// OrderItem carries the placement-time snapshot of a line. Item is attached
// at read time from the current catalog and is nil for deleted items.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	OrderID  uint    `gorm:"index" json:"-"`
	ItemID   uint    `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Item     *Item   `gorm:"-" json:"item,omitempty"`
}
