package order

import "context"

// Repository persists order aggregates. CreateSettled writes the full
// aggregate (header, items, payment, history) in the caller's transaction;
// the unique index on the payment reference makes it safe to race.
type Repository interface {
	CreateSettled(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	FindByOrderNo(ctx context.Context, orderNo string) (*Order, error)
	// FindByPaymentReference returns nil, nil when no order has settled
	// the given provider reference yet.
	FindByPaymentReference(ctx context.Context, reference string) (*Order, error)
	ListByUserID(ctx context.Context, userID uint, offset, limit int) ([]*Order, int64, error)
}
