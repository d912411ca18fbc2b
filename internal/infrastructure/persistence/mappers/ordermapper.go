package mappers

import (
	"encoding/json"
	"fmt"

	"bookstore/internal/domain/order"
	vo "bookstore/internal/domain/order/valueobjects"
	"bookstore/internal/infrastructure/persistence/models"
)

// OrderMapper converts between the order aggregate and its GORM models.
type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

// ToModel flattens an aggregate into its persistence models. The returned
// model carries items, payment and histories for gorm to create in one
// associated write.
func (m *OrderMapper) ToModel(o *order.Order) (*models.OrderModel, error) {
	items := make([]models.OrderItemModel, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, models.OrderItemModel{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
		})
	}

	p := o.Payment()
	var rawParams []byte
	if p.RawParams() != nil {
		data, err := json.Marshal(p.RawParams())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal callback params: %w", err)
		}
		rawParams = data
	}

	histories := make([]models.PaymentHistoryModel, 0, len(o.History()))
	for _, h := range o.History() {
		histories = append(histories, models.PaymentHistoryModel{
			Status:          h.Status(),
			Notes:           h.Notes(),
			TransactionDate: h.TransactionDate(),
		})
	}

	return &models.OrderModel{
		ID:              o.ID(),
		OrderNo:         o.OrderNo(),
		UserID:          o.UserID(),
		ShippingAddress: o.ShippingAddress(),
		Status:          o.Status().String(),
		TotalAmount:     o.Total().Amount(),
		Currency:        o.Total().Currency(),
		PlacedAt:        o.PlacedAt(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		Items:           items,
		Payment: &models.PaymentModel{
			Method:        p.Method().String(),
			Amount:        p.Amount().Amount(),
			Currency:      p.Amount().Currency(),
			Reference:     p.Reference(),
			TransactionNo: p.TransactionNo(),
			BankCode:      p.BankCode(),
			PaidAt:        p.PaidAt(),
			RawParams:     rawParams,
			Histories:     histories,
		},
	}, nil
}

// ToDomain rebuilds the aggregate from persistence models.
func (m *OrderMapper) ToDomain(model *models.OrderModel) (*order.Order, error) {
	if model == nil {
		return nil, nil
	}

	items := make([]order.LineItem, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, order.ReconstructLineItem(
			item.ProductID,
			item.ProductName,
			item.Quantity,
			vo.NewMoney(item.UnitPrice, model.Currency),
		))
	}

	var payment order.PaymentRecord
	var history []order.HistoryEntry
	if model.Payment != nil {
		var rawParams map[string]string
		if len(model.Payment.RawParams) > 0 {
			if err := json.Unmarshal(model.Payment.RawParams, &rawParams); err != nil {
				return nil, fmt.Errorf("failed to unmarshal callback params: %w", err)
			}
		}
		method, err := vo.NewPaymentMethod(model.Payment.Method)
		if err != nil {
			return nil, fmt.Errorf("invalid payment method in payment %d: %w", model.Payment.ID, err)
		}
		payment = order.ReconstructPaymentRecord(
			method,
			vo.NewMoney(model.Payment.Amount, model.Payment.Currency),
			model.Payment.Reference,
			model.Payment.TransactionNo,
			model.Payment.BankCode,
			model.Payment.PaidAt,
			rawParams,
		)
		for _, h := range model.Payment.Histories {
			history = append(history, order.ReconstructHistoryEntry(h.Status, h.Notes, h.TransactionDate))
		}
	}

	status := vo.OrderStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid order status %q in order %d", model.Status, model.ID)
	}

	return order.Reconstruct(order.ReconstructParams{
		ID:              model.ID,
		OrderNo:         model.OrderNo,
		UserID:          model.UserID,
		ShippingAddress: model.ShippingAddress,
		Status:          status,
		Total:           vo.NewMoney(model.TotalAmount, model.Currency),
		Items:           items,
		Payment:         payment,
		History:         history,
		PlacedAt:        model.PlacedAt,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}), nil
}
