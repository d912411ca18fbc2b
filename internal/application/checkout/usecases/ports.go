package usecases

import (
	"context"
	"net/url"
	"time"

	"bookstore/internal/infrastructure/vnpay"
)

// PaymentGateway is the slice of the gateway client the checkout flow
// needs. vnpay.Client satisfies it; tests substitute their own.
type PaymentGateway interface {
	BuildPaymentURL(req vnpay.PaymentRequest) (string, error)
	ParseCallback(query url.Values) *vnpay.CallbackResult
	ExpireWindow() time.Duration
}

// TxManager runs a function inside one database transaction.
// db.TransactionManager satisfies it.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PaymentIntent is the server-side record of an initiated payment attempt,
// keyed by the transaction reference we handed the gateway. Everything the
// settlement needs besides the live cart lives here, so the callback never
// has to trust client-supplied state.
type PaymentIntent struct {
	TxnRef          string    `json:"txn_ref"`
	UserID          uint      `json:"user_id"`
	ShippingAddress string    `json:"shipping_address"`
	AmountVND       int64     `json:"amount_vnd"`
	OrderInfo       string    `json:"order_info"`
	CreatedAt       time.Time `json:"created_at"`
}

// PaymentIntentStore persists payment intents for the lifetime of the
// gateway's payment window.
type PaymentIntentStore interface {
	Save(ctx context.Context, intent *PaymentIntent, ttl time.Duration) error
	// Get returns nil, nil when no intent exists for the reference.
	Get(ctx context.Context, txnRef string) (*PaymentIntent, error)
	Delete(ctx context.Context, txnRef string) error
}

// OrderSettledEvent is emitted after an order has been durably settled.
type OrderSettledEvent struct {
	OrderID          uint      `json:"order_id"`
	OrderNo          string    `json:"order_no"`
	UserID           uint      `json:"user_id"`
	Total            int64     `json:"total"`
	Currency         string    `json:"currency"`
	PaymentReference string    `json:"payment_reference"`
	TransactionNo    string    `json:"transaction_no,omitempty"`
	SettledAt        time.Time `json:"settled_at"`
}

// OrderEventPublisher fans settled orders out to downstream consumers.
// Publishing is strictly after commit and best effort.
type OrderEventPublisher interface {
	PublishOrderSettled(ctx context.Context, event OrderSettledEvent) error
}
