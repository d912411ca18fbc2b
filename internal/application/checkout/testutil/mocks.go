// Package testutil provides hand-written mocks for checkout usecase tests.
package testutil

import (
	"context"
	"net/url"
	"sync"
	"time"

	"bookstore/internal/application/checkout/usecases"
	"bookstore/internal/domain/cart"
	"bookstore/internal/domain/order"
	"bookstore/internal/infrastructure/vnpay"
	"bookstore/internal/shared/logger"
)

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(msg string, args ...any)                   {}
func (NopLogger) Info(msg string, args ...any)                    {}
func (NopLogger) Warn(msg string, args ...any)                    {}
func (NopLogger) Error(msg string, args ...any)                   {}
func (l NopLogger) With(args ...any) logger.Interface             { return l }
func (l NopLogger) Named(name string) logger.Interface            { return l }
func (NopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (NopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (NopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (NopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

// MockOrderRepository keeps settled orders in memory keyed by payment
// reference, enforcing the same uniqueness the database index would.
type MockOrderRepository struct {
	mu         sync.Mutex
	nextID     uint
	byRef      map[string]*order.Order
	CreateErr  error
	FindErr    error
	CreateCall int
}

func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{byRef: make(map[string]*order.Order), nextID: 1}
}

func (m *MockOrderRepository) CreateSettled(ctx context.Context, o *order.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCall++
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if _, exists := m.byRef[o.Payment().Reference()]; exists {
		return errDuplicateRef
	}
	o.SetID(m.nextID)
	m.nextID++
	m.byRef[o.Payment().Reference()] = o
	return nil
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for _, o := range m.byRef {
		if o.ID() == id {
			return o, nil
		}
	}
	return nil, nil
}

func (m *MockOrderRepository) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.byRef {
		if o.OrderNo() == orderNo {
			return o, nil
		}
	}
	return nil, nil
}

func (m *MockOrderRepository) FindByPaymentReference(ctx context.Context, reference string) (*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.byRef[reference], nil
}

func (m *MockOrderRepository) ListByUserID(ctx context.Context, userID uint, offset, limit int) ([]*order.Order, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*order.Order
	for _, o := range m.byRef {
		if o.UserID() == userID {
			out = append(out, o)
		}
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

// errDuplicateRef mimics the driver's duplicate-key message so
// apperrors.IsDuplicateError recognizes it.
var errDuplicateRef = duplicateRefError{}

type duplicateRefError struct{}

func (duplicateRefError) Error() string {
	return "Error 1062 (23000): Duplicate entry '1' for key 'payments.uni_payments_reference'"
}

// MockCartRepository is an in-memory cart keyed by user.
type MockCartRepository struct {
	mu       sync.Mutex
	items    map[uint][]*cart.Item
	nextID   uint
	FindErr  error
	ClearErr error
	Cleared  []uint
}

func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{items: make(map[uint][]*cart.Item), nextID: 1}
}

func (m *MockCartRepository) Seed(items ...*cart.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range items {
		item.SetID(m.nextID)
		m.nextID++
		m.items[item.UserID()] = append(m.items[item.UserID()], item)
	}
}

func (m *MockCartRepository) Create(ctx context.Context, item *cart.Item) error {
	m.Seed(item)
	return nil
}

func (m *MockCartRepository) Update(ctx context.Context, item *cart.Item) error {
	return nil
}

func (m *MockCartRepository) FindByUserID(ctx context.Context, userID uint) ([]*cart.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.items[userID], nil
}

func (m *MockCartRepository) FindByUserAndProduct(ctx context.Context, userID, productID uint) (*cart.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items[userID] {
		if item.ProductID() == productID {
			return item, nil
		}
	}
	return nil, nil
}

func (m *MockCartRepository) DeleteByUserAndProduct(ctx context.Context, userID, productID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.items[userID][:0]
	for _, item := range m.items[userID] {
		if item.ProductID() != productID {
			kept = append(kept, item)
		}
	}
	m.items[userID] = kept
	return nil
}

func (m *MockCartRepository) ClearByUserID(ctx context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.Cleared = append(m.Cleared, userID)
	delete(m.items, userID)
	return nil
}

// MockIntentStore is an in-memory PaymentIntentStore. TTLs are recorded,
// not enforced.
type MockIntentStore struct {
	mu       sync.Mutex
	intents  map[string]*usecases.PaymentIntent
	TTLs     map[string]time.Duration
	SaveErr  error
	GetErr   error
	Deleted  []string
}

func NewMockIntentStore() *MockIntentStore {
	return &MockIntentStore{
		intents: make(map[string]*usecases.PaymentIntent),
		TTLs:    make(map[string]time.Duration),
	}
}

func (m *MockIntentStore) Save(ctx context.Context, intent *usecases.PaymentIntent, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.intents[intent.TxnRef] = intent
	m.TTLs[intent.TxnRef] = ttl
	return nil
}

func (m *MockIntentStore) Get(ctx context.Context, txnRef string) (*usecases.PaymentIntent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.intents[txnRef], nil
}

func (m *MockIntentStore) Delete(ctx context.Context, txnRef string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = append(m.Deleted, txnRef)
	delete(m.intents, txnRef)
	return nil
}

// MockTxManager runs the function directly, no transaction semantics.
type MockTxManager struct {
	Calls int
}

func (m *MockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}

// MockPublisher records published events.
type MockPublisher struct {
	mu     sync.Mutex
	Events []usecases.OrderSettledEvent
	Err    error
}

func (m *MockPublisher) PublishOrderSettled(ctx context.Context, event usecases.OrderSettledEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Events = append(m.Events, event)
	return nil
}

func (m *MockPublisher) EventCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Events)
}

// MockGateway wraps a real client so tests exercise the production signing
// and verification paths against known credentials.
type MockGateway struct {
	Client       *vnpay.Client
	BuildErr     error
	Window   time.Duration
}

func (m *MockGateway) BuildPaymentURL(req vnpay.PaymentRequest) (string, error) {
	if m.BuildErr != nil {
		return "", m.BuildErr
	}
	return m.Client.BuildPaymentURL(req)
}

func (m *MockGateway) ParseCallback(query url.Values) *vnpay.CallbackResult {
	return m.Client.ParseCallback(query)
}

func (m *MockGateway) ExpireWindow() time.Duration {
	if m.Window != 0 {
		return m.Window
	}
	return m.Client.ExpireWindow()
}
