package migration

import (
	"bookstore/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.PaymentModel{},
		&models.PaymentHistoryModel{},
		&models.CartItemModel{},
	}
}
