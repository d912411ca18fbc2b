package dto

import (
	"time"

	"bookstore/internal/domain/order"
)

// OrderItemDTO is one order line in API responses.
type OrderItemDTO struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	Subtotal    int64  `json:"subtotal"`
}

// PaymentDTO describes the settled payment of an order.
type PaymentDTO struct {
	Method        string    `json:"method"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Reference     string    `json:"reference"`
	TransactionNo string    `json:"transaction_no,omitempty"`
	BankCode      string    `json:"bank_code,omitempty"`
	PaidAt        time.Time `json:"paid_at"`
}

// OrderDTO is the API representation of an order aggregate.
type OrderDTO struct {
	ID              uint           `json:"id"`
	OrderNo         string         `json:"order_no"`
	Status          string         `json:"status"`
	Total           int64          `json:"total"`
	Currency        string         `json:"currency"`
	ShippingAddress string         `json:"shipping_address"`
	Items           []OrderItemDTO `json:"items"`
	Payment         PaymentDTO     `json:"payment"`
	PlacedAt        time.Time      `json:"placed_at"`
}

// OrderToDTO converts an order aggregate to its API representation.
func OrderToDTO(o *order.Order) *OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			Subtotal:    item.Subtotal().Amount(),
		})
	}

	p := o.Payment()
	return &OrderDTO{
		ID:              o.ID(),
		OrderNo:         o.OrderNo(),
		Status:          o.Status().String(),
		Total:           o.Total().Amount(),
		Currency:        o.Total().Currency(),
		ShippingAddress: o.ShippingAddress(),
		Items:           items,
		Payment: PaymentDTO{
			Method:        p.Method().String(),
			Amount:        p.Amount().Amount(),
			Currency:      p.Amount().Currency(),
			Reference:     p.Reference(),
			TransactionNo: p.TransactionNo(),
			BankCode:      p.BankCode(),
			PaidAt:        p.PaidAt(),
		},
		PlacedAt: o.PlacedAt(),
	}
}

// OrderListDTO is a paginated order listing.
type OrderListDTO struct {
	Orders   []*OrderDTO `json:"orders"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// PaymentURLDTO is the result of preparing a payment redirect.
type PaymentURLDTO struct {
	PaymentURL string    `json:"payment_url"`
	TxnRef     string    `json:"txn_ref"`
	Amount     int64     `json:"amount"`
	Currency   string    `json:"currency"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// SettlementDTO is the outcome of processing a gateway callback. Order is
// set only when the callback settled (or had already settled) an order.
type SettlementDTO struct {
	Settled          bool      `json:"settled"`
	AlreadySettled   bool      `json:"already_settled"`
	ResponseCode     string    `json:"response_code"`
	Message          string    `json:"message"`
	Order            *OrderDTO `json:"order,omitempty"`
}
