package order

import (
	"fmt"
	"time"

	vo "bookstore/internal/domain/order/valueobjects"
	"bookstore/internal/domain/shared/services"
	"bookstore/internal/shared/biztime"
)

// LineItem is one ordered product with the unit price captured at settlement
// time. Prices are re-read from the live cart at settlement, never trusted
// from callback data.
type LineItem struct {
	productID   uint
	productName string
	quantity    int
	unitPrice   vo.Money
}

func NewLineItem(productID uint, productName string, quantity int, unitPrice vo.Money) (LineItem, error) {
	if productID == 0 {
		return LineItem{}, fmt.Errorf("product ID is required")
	}
	if quantity <= 0 {
		return LineItem{}, fmt.Errorf("quantity must be positive")
	}
	if !unitPrice.IsPositive() {
		return LineItem{}, fmt.Errorf("unit price must be positive")
	}
	return LineItem{
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}, nil
}

func (li LineItem) ProductID() uint      { return li.productID }
func (li LineItem) ProductName() string  { return li.productName }
func (li LineItem) Quantity() int        { return li.quantity }
func (li LineItem) UnitPrice() vo.Money  { return li.unitPrice }
func (li LineItem) Subtotal() vo.Money   { return li.unitPrice.MultiplyQuantity(li.quantity) }

// PaymentRecord captures the provider outcome that settled the order.
// Reference is the vnp_TxnRef of the attempt; it is unique across all
// payments and serves as the idempotency guard for duplicate callbacks.
type PaymentRecord struct {
	method        vo.PaymentMethod
	amount        vo.Money
	reference     string
	transactionNo string
	bankCode      string
	paidAt        time.Time
	rawParams     map[string]string
}

func NewPaymentRecord(
	method vo.PaymentMethod,
	amount vo.Money,
	reference string,
	transactionNo string,
	bankCode string,
	paidAt time.Time,
	rawParams map[string]string,
) (PaymentRecord, error) {
	if reference == "" {
		return PaymentRecord{}, fmt.Errorf("payment reference is required")
	}
	if !amount.IsPositive() {
		return PaymentRecord{}, fmt.Errorf("payment amount must be positive")
	}
	if paidAt.IsZero() {
		paidAt = biztime.NowUTC()
	}
	return PaymentRecord{
		method:        method,
		amount:        amount,
		reference:     reference,
		transactionNo: transactionNo,
		bankCode:      bankCode,
		paidAt:        paidAt,
		rawParams:     rawParams,
	}, nil
}

func (p PaymentRecord) Method() vo.PaymentMethod    { return p.method }
func (p PaymentRecord) Amount() vo.Money            { return p.amount }
func (p PaymentRecord) Reference() string           { return p.reference }
func (p PaymentRecord) TransactionNo() string       { return p.transactionNo }
func (p PaymentRecord) BankCode() string            { return p.bankCode }
func (p PaymentRecord) PaidAt() time.Time           { return p.paidAt }
func (p PaymentRecord) RawParams() map[string]string { return p.rawParams }

// HistoryEntry is one audit line in the payment history.
type HistoryEntry struct {
	status          string
	notes           string
	transactionDate time.Time
}

func NewHistoryEntry(status, notes string) HistoryEntry {
	return HistoryEntry{
		status:          status,
		notes:           notes,
		transactionDate: biztime.NowUTC(),
	}
}

func (h HistoryEntry) Status() string             { return h.status }
func (h HistoryEntry) Notes() string              { return h.notes }
func (h HistoryEntry) TransactionDate() time.Time { return h.transactionDate }

// Order is the durable result of a settled payment: header, line items,
// the payment record and its history. It is created exactly once per
// successful authentic callback and only fulfillment status transitions
// mutate it afterwards.
type Order struct {
	id              uint
	orderNo         string
	userID          uint
	shippingAddress string
	status          vo.OrderStatus
	total           vo.Money
	items           []LineItem
	payment         PaymentRecord
	history         []HistoryEntry
	placedAt        time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewSettledOrder builds an order from the live cart snapshot and a verified
// payment. The total is recomputed from the items here; the provider-echoed
// amount never becomes the persisted total.
func NewSettledOrder(userID uint, shippingAddress string, items []LineItem, payment PaymentRecord) (*Order, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("order must contain at least one line item")
	}

	total := vo.NewMoney(0, payment.Amount().Currency())
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	if !total.IsPositive() {
		return nil, fmt.Errorf("order total must be positive")
	}

	now := biztime.NowUTC()
	orderNo := services.NewOrderNumberGenerator().Generate("ORD")

	return &Order{
		orderNo:         orderNo,
		userID:          userID,
		shippingAddress: shippingAddress,
		status:          vo.OrderStatusProcessing,
		total:           total,
		items:           items,
		payment:         payment,
		history: []HistoryEntry{
			NewHistoryEntry("success", fmt.Sprintf("payment %s settled via %s", payment.Reference(), payment.Method())),
		},
		placedAt:  now,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (o *Order) ID() uint                 { return o.id }
func (o *Order) OrderNo() string          { return o.orderNo }
func (o *Order) UserID() uint             { return o.userID }
func (o *Order) ShippingAddress() string  { return o.shippingAddress }
func (o *Order) Status() vo.OrderStatus   { return o.status }
func (o *Order) Total() vo.Money          { return o.total }
func (o *Order) Items() []LineItem        { return o.items }
func (o *Order) Payment() PaymentRecord   { return o.payment }
func (o *Order) History() []HistoryEntry  { return o.history }
func (o *Order) PlacedAt() time.Time      { return o.placedAt }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }
func (o *Order) UpdatedAt() time.Time     { return o.updatedAt }

// SetID sets the order ID after persistence (used by repository after Create)
func (o *Order) SetID(id uint) {
	o.id = id
}

// ReferenceMatchesAmount cross-checks the provider-echoed amount against the
// recomputed order total. A mismatch is reported for logging; it does not
// block settlement because the recomputed total is authoritative.
func (o *Order) ReferenceMatchesAmount(gatewayAmount vo.Money) bool {
	return o.total.Equals(gatewayAmount)
}

// ReconstructLineItem restores a line item from persistence without
// re-running creation validation.
func ReconstructLineItem(productID uint, productName string, quantity int, unitPrice vo.Money) LineItem {
	return LineItem{
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}
}

// ReconstructPaymentRecord restores a payment record from persistence.
func ReconstructPaymentRecord(
	method vo.PaymentMethod,
	amount vo.Money,
	reference string,
	transactionNo string,
	bankCode string,
	paidAt time.Time,
	rawParams map[string]string,
) PaymentRecord {
	return PaymentRecord{
		method:        method,
		amount:        amount,
		reference:     reference,
		transactionNo: transactionNo,
		bankCode:      bankCode,
		paidAt:        paidAt,
		rawParams:     rawParams,
	}
}

// ReconstructHistoryEntry restores a history entry from persistence.
func ReconstructHistoryEntry(status, notes string, transactionDate time.Time) HistoryEntry {
	return HistoryEntry{
		status:          status,
		notes:           notes,
		transactionDate: transactionDate,
	}
}

// ReconstructParams carries persisted state back into the aggregate.
type ReconstructParams struct {
	ID              uint
	OrderNo         string
	UserID          uint
	ShippingAddress string
	Status          vo.OrderStatus
	Total           vo.Money
	Items           []LineItem
	Payment         PaymentRecord
	History         []HistoryEntry
	PlacedAt        time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func Reconstruct(p ReconstructParams) *Order {
	return &Order{
		id:              p.ID,
		orderNo:         p.OrderNo,
		userID:          p.UserID,
		shippingAddress: p.ShippingAddress,
		status:          p.Status,
		total:           p.Total,
		items:           p.Items,
		payment:         p.Payment,
		history:         p.History,
		placedAt:        p.PlacedAt,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}
}
