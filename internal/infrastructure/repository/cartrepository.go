package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookstore/internal/domain/cart"
	"bookstore/internal/infrastructure/persistence/mappers"
	"bookstore/internal/infrastructure/persistence/models"
	"bookstore/internal/shared/db"
)

// CartRepository is the GORM implementation of cart.Repository.
type CartRepository struct {
	db     *gorm.DB
	mapper *mappers.CartItemMapper
}

func NewCartRepository(database *gorm.DB) *CartRepository {
	return &CartRepository{
		db:     database,
		mapper: mappers.NewCartItemMapper(),
	}
}

func (r *CartRepository) Create(ctx context.Context, item *cart.Item) error {
	model := r.mapper.ToModel(item)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	item.SetID(model.ID)
	return nil
}

func (r *CartRepository) Update(ctx context.Context, item *cart.Item) error {
	model := r.mapper.ToModel(item)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	return nil
}

func (r *CartRepository) FindByUserID(ctx context.Context, userID uint) ([]*cart.Item, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.CartItemModel
	err := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find cart items: %w", err)
	}
	return r.mapper.ToDomainList(rows), nil
}

func (r *CartRepository) FindByUserAndProduct(ctx context.Context, userID, productID uint) (*cart.Item, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.CartItemModel
	err := tx.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find cart item: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *CartRepository) DeleteByUserAndProduct(ctx context.Context, userID, productID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItemModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

func (r *CartRepository) ClearByUserID(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItemModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
