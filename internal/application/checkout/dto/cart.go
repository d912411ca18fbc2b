package dto

import "bookstore/internal/domain/cart"

// CartItemDTO is one item in the cart listing.
type CartItemDTO struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	Subtotal    int64  `json:"subtotal"`
}

// CartDTO is the cart view with its recomputed total.
type CartDTO struct {
	Items    []CartItemDTO `json:"items"`
	Total    int64         `json:"total"`
	Currency string        `json:"currency"`
}

// CartToDTO converts cart items into the API representation.
func CartToDTO(items []*cart.Item) *CartDTO {
	out := make([]CartItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, CartItemDTO{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			Subtotal:    item.Subtotal().Amount(),
		})
	}
	total := cart.Total(items)
	return &CartDTO{
		Items:    out,
		Total:    total.Amount(),
		Currency: total.Currency(),
	}
}
