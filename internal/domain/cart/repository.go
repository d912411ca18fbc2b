package cart

import "context"

// Repository persists cart items. ClearByUserID runs inside the settlement
// transaction so a settled order always empties the cart it was built from.
type Repository interface {
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	FindByUserID(ctx context.Context, userID uint) ([]*Item, error)
	FindByUserAndProduct(ctx context.Context, userID, productID uint) (*Item, error)
	DeleteByUserAndProduct(ctx context.Context, userID, productID uint) error
	ClearByUserID(ctx context.Context, userID uint) error
}
