package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookstore/internal/domain/order"
	"bookstore/internal/infrastructure/persistence/mappers"
	"bookstore/internal/infrastructure/persistence/models"
	"bookstore/internal/shared/db"
)

// OrderRepository is the GORM implementation of order.Repository.
type OrderRepository struct {
	db     *gorm.DB
	mapper *mappers.OrderMapper
}

func NewOrderRepository(database *gorm.DB) *OrderRepository {
	return &OrderRepository{
		db:     database,
		mapper: mappers.NewOrderMapper(),
	}
}

// CreateSettled writes the whole aggregate in one associated create. The
// unique index on payments.reference surfaces duplicate callbacks as a
// driver duplicate-key error the caller can recognize.
func (r *OrderRepository) CreateSettled(ctx context.Context, o *order.Order) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	o.SetID(model.ID)
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *OrderRepository) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	return r.findOne(ctx, "order_no = ?", orderNo)
}

func (r *OrderRepository) FindByPaymentReference(ctx context.Context, reference string) (*order.Order, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var payment models.PaymentModel
	err := tx.WithContext(ctx).Where("reference = ?", reference).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find payment by reference: %w", err)
	}
	return r.findOne(ctx, "id = ?", payment.OrderID)
}

func (r *OrderRepository) ListByUserID(ctx context.Context, userID uint, offset, limit int) ([]*order.Order, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.WithContext(ctx).Model(&models.OrderModel{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var rows []models.OrderModel
	err := tx.WithContext(ctx).
		Preload("Items").
		Preload("Payment").
		Preload("Payment.Histories").
		Where("user_id = ?", userID).
		Order("placed_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*order.Order, 0, len(rows))
	for i := range rows {
		o, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, nil
}

func (r *OrderRepository) findOne(ctx context.Context, query string, args ...interface{}) (*order.Order, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.OrderModel
	err := tx.WithContext(ctx).
		Preload("Items").
		Preload("Payment").
		Preload("Payment.Histories").
		Where(query, args...).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return r.mapper.ToDomain(&model)
}
