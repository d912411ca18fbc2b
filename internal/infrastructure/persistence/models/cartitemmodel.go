package models

import "time"

// CartItemModel is the GORM model for the cart_items table. One row per
// user and product.
type CartItemModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"uniqueIndex:idx_cart_user_product;not null"`
	ProductID   uint   `gorm:"uniqueIndex:idx_cart_user_product;not null"`
	ProductName string `gorm:"size:255"`
	Quantity    int    `gorm:"not null"`
	UnitPrice   int64  `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CartItemModel) TableName() string {
	return "cart_items"
}
