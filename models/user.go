package models

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"unique;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	IsAdmin      bool       `gorm:"default:false" json:"is_admin"`
	Address      string     `json:"address"`
	Phone        string     `json:"phone"`
	Cart         []CartItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CartItem is one pending-purchase entry in a user's cart. The unique index
// on (user_id, item_id) makes add-or-set a replacement, never a duplicate.
type CartItem struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"uniqueIndex:uix_cart_user_item;index" json:"user_id"`
	ItemID   uint      `gorm:"uniqueIndex:uix_cart_user_item" json:"item_id"`
	Quantity int       `gorm:"not null" json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}
