package mappers

import (
	"bookstore/internal/domain/cart"
	vo "bookstore/internal/domain/order/valueobjects"
	"bookstore/internal/infrastructure/persistence/models"
)

// CartItemMapper converts between cart items and their GORM model.
type CartItemMapper struct{}

func NewCartItemMapper() *CartItemMapper {
	return &CartItemMapper{}
}

func (m *CartItemMapper) ToModel(item *cart.Item) *models.CartItemModel {
	return &models.CartItemModel{
		ID:          item.ID(),
		UserID:      item.UserID(),
		ProductID:   item.ProductID(),
		ProductName: item.ProductName(),
		Quantity:    item.Quantity(),
		UnitPrice:   item.UnitPrice().Amount(),
		CreatedAt:   item.CreatedAt(),
		UpdatedAt:   item.UpdatedAt(),
	}
}

func (m *CartItemMapper) ToDomain(model *models.CartItemModel) *cart.Item {
	if model == nil {
		return nil
	}
	return cart.ReconstructItem(
		model.ID,
		model.UserID,
		model.ProductID,
		model.ProductName,
		model.Quantity,
		vo.NewMoney(model.UnitPrice, "VND"),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *CartItemMapper) ToDomainList(modelsList []models.CartItemModel) []*cart.Item {
	items := make([]*cart.Item, 0, len(modelsList))
	for i := range modelsList {
		items = append(items, m.ToDomain(&modelsList[i]))
	}
	return items
}
