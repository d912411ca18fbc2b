package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderModel is the GORM model for the orders table.
type OrderModel struct {
	ID              uint   `gorm:"primaryKey"`
	OrderNo         string `gorm:"uniqueIndex;size:32;not null"`
	UserID          uint   `gorm:"index;not null"`
	ShippingAddress string `gorm:"size:500"`
	Status          string `gorm:"size:20;not null;default:'processing'"`
	TotalAmount     int64  `gorm:"not null"`
	Currency        string `gorm:"size:3;not null;default:'VND'"`
	PlacedAt        time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`

	Items   []OrderItemModel `gorm:"foreignKey:OrderID"`
	Payment *PaymentModel    `gorm:"foreignKey:OrderID"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM model for the order_items table.
type OrderItemModel struct {
	ID          uint   `gorm:"primaryKey"`
	OrderID     uint   `gorm:"index;not null"`
	ProductID   uint   `gorm:"not null"`
	ProductName string `gorm:"size:255"`
	Quantity    int    `gorm:"not null"`
	UnitPrice   int64  `gorm:"not null"`
	CreatedAt   time.Time
}

func (OrderItemModel) TableName() string {
	return "order_items"
}

// PaymentModel is the GORM model for the payments table. Reference carries
// the gateway transaction reference; its unique index is what makes
// settlement idempotent under concurrent callback deliveries.
type PaymentModel struct {
	ID            uint   `gorm:"primaryKey"`
	OrderID       uint   `gorm:"index;not null"`
	Method        string `gorm:"size:20;not null"`
	Amount        int64  `gorm:"not null"`
	Currency      string `gorm:"size:3;not null;default:'VND'"`
	Reference     string `gorm:"uniqueIndex;size:64;not null"`
	TransactionNo string `gorm:"size:64"`
	BankCode      string `gorm:"size:20"`
	PaidAt        time.Time
	RawParams     datatypes.JSON `gorm:"type:json"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Histories []PaymentHistoryModel `gorm:"foreignKey:PaymentID"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

// PaymentHistoryModel is the GORM model for the payment_histories table.
type PaymentHistoryModel struct {
	ID              uint   `gorm:"primaryKey"`
	PaymentID       uint   `gorm:"index;not null"`
	Status          string `gorm:"size:20;not null"`
	Notes           string `gorm:"size:500"`
	TransactionDate time.Time
	CreatedAt       time.Time
}

func (PaymentHistoryModel) TableName() string {
	return "payment_histories"
}
