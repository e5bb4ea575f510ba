package models

// Item is a sellable menu entry. Managed by admins only.
type Item struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"unique;not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`
	Image string  `gorm:"not null" json:"image"`
}
