package valueobjects

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipping   OrderStatus = "shipping"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipping, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

func (s OrderStatus) String() string {
	return string(s)
}
