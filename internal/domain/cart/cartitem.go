package cart

import (
	"fmt"
	"time"

	vo "bookstore/internal/domain/order/valueobjects"
	"bookstore/internal/shared/biztime"
)

// Item is one product line in a user's cart. Unit prices live on the cart
// row so settlement reads a consistent snapshot without joining the catalog.
type Item struct {
	id          uint
	userID      uint
	productID   uint
	productName string
	quantity    int
	unitPrice   vo.Money
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(userID, productID uint, productName string, quantity int, unitPrice vo.Money) (*Item, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	if !unitPrice.IsPositive() {
		return nil, fmt.Errorf("unit price must be positive")
	}
	now := biztime.NowUTC()
	return &Item{
		userID:      userID,
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func (i *Item) ID() uint             { return i.id }
func (i *Item) UserID() uint         { return i.userID }
func (i *Item) ProductID() uint      { return i.productID }
func (i *Item) ProductName() string  { return i.productName }
func (i *Item) Quantity() int        { return i.quantity }
func (i *Item) UnitPrice() vo.Money  { return i.unitPrice }
func (i *Item) Subtotal() vo.Money   { return i.unitPrice.MultiplyQuantity(i.quantity) }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

func (i *Item) SetID(id uint) { i.id = id }

// UpdateQuantity replaces the quantity, used when the same product is added
// again.
func (i *Item) UpdateQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	i.quantity = quantity
	i.updatedAt = biztime.NowUTC()
	return nil
}

// Total sums the subtotals of the given cart items.
func Total(items []*Item) vo.Money {
	total := vo.NewMoney(0, "VND")
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ReconstructItem restores a cart item from persistence.
func ReconstructItem(id, userID, productID uint, productName string, quantity int, unitPrice vo.Money, createdAt, updatedAt time.Time) *Item {
	return &Item{
		id:          id,
		userID:      userID,
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}
