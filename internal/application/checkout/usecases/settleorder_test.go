package usecases_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/application/checkout/testutil"
	"bookstore/internal/application/checkout/usecases"
	"bookstore/internal/domain/cart"
	"bookstore/internal/domain/order"
	vo "bookstore/internal/domain/order/valueobjects"
	"bookstore/internal/infrastructure/vnpay"
	"bookstore/internal/shared/config"
	apperrors "bookstore/internal/shared/errors"
)

const (
	testTmnCode    = "DEMOV210"
	testHashSecret = "RAOEXHYVSDDIIENYWSLDIIZTANRUAXNG"
	testTxnRef     = "1700000000000000000"
	testUserID     = uint(7)
)

func newGateway(t *testing.T) *vnpay.Client {
	t.Helper()
	client, err := vnpay.NewClient(config.VNPayConfig{
		BaseURL:       "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		TmnCode:       testTmnCode,
		HashSecret:    testHashSecret,
		ReturnURL:     "https://bookstore.example.com/api/v1/checkout/vnpay-return",
		Version:       "2.1.0",
		Locale:        "vn",
		CurrencyCode:  "VND",
		ExpireMinutes: 15,
	})
	require.NoError(t, err)
	return client
}

// signedCallback fabricates a gateway callback signed with the test secret.
func signedCallback(t *testing.T, amountMinor string, responseCode string, mutate func(*vnpay.Params)) url.Values {
	t.Helper()

	signer, err := vnpay.NewSigner(testHashSecret)
	require.NoError(t, err)

	p := vnpay.NewParams()
	p.Set("vnp_TmnCode", testTmnCode)
	p.Set("vnp_TxnRef", testTxnRef)
	p.Set("vnp_Amount", amountMinor)
	p.Set("vnp_ResponseCode", responseCode)
	p.Set("vnp_TransactionNo", "14687878")
	p.Set("vnp_BankCode", "NCB")
	p.Set("vnp_OrderInfo", "Thanh toan don hang")
	p.Set("vnp_PayDate", "20260829100512")
	if mutate != nil {
		mutate(p)
	}

	hash := signer.Sign(p.CanonicalQuery())

	query := url.Values{}
	for k, v := range p.All() {
		query.Set(k, v)
	}
	query.Set("vnp_SecureHash", hash)
	return query
}

func seedCart(t *testing.T, repo *testutil.MockCartRepository, userID uint) {
	t.Helper()
	a, err := cart.NewItem(userID, 1, "Clean Architecture", 1, vo.NewMoney(100000, "VND"))
	require.NoError(t, err)
	b, err := cart.NewItem(userID, 2, "The Go Programming Language", 1, vo.NewMoney(50000, "VND"))
	require.NoError(t, err)
	repo.Seed(a, b)
}

type settleFixture struct {
	uc          *usecases.SettleOrderUseCase
	orderRepo   *testutil.MockOrderRepository
	cartRepo    *testutil.MockCartRepository
	intentStore *testutil.MockIntentStore
	publisher   *testutil.MockPublisher
}

func newSettleFixture(t *testing.T) *settleFixture {
	t.Helper()
	f := &settleFixture{
		orderRepo:   testutil.NewMockOrderRepository(),
		cartRepo:    testutil.NewMockCartRepository(),
		intentStore: testutil.NewMockIntentStore(),
		publisher:   &testutil.MockPublisher{},
	}
	f.uc = usecases.NewSettleOrderUseCase(
		f.orderRepo,
		f.cartRepo,
		&testutil.MockGateway{Client: newGateway(t)},
		f.intentStore,
		&testutil.MockTxManager{},
		testutil.NopLogger{},
	)
	f.uc.SetEventPublisher(f.publisher)

	seedCart(t, f.cartRepo, testUserID)
	require.NoError(t, f.intentStore.Save(context.Background(), &usecases.PaymentIntent{
		TxnRef:          testTxnRef,
		UserID:          testUserID,
		ShippingAddress: "12 Nguyen Hue, District 1",
		AmountVND:       150000,
	}, 15*time.Minute))
	return f
}

func TestSettleOrder_SuccessfulCallbackSettlesOnce(t *testing.T) {
	f := newSettleFixture(t)

	result, err := f.uc.Execute(context.Background(), signedCallback(t, "15000000", "00", nil))
	require.NoError(t, err)

	assert.True(t, result.Settled)
	assert.False(t, result.AlreadySettled)
	require.NotNil(t, result.Order)
	assert.Equal(t, int64(150000), result.Order.Total, "total is recomputed from the cart")
	assert.Equal(t, testTxnRef, result.Order.Payment.Reference)
	assert.Equal(t, "14687878", result.Order.Payment.TransactionNo)
	assert.Equal(t, "12 Nguyen Hue, District 1", result.Order.ShippingAddress)
	assert.Len(t, result.Order.Items, 2)

	assert.Equal(t, []uint{testUserID}, f.cartRepo.Cleared, "cart is cleared in the settlement transaction")
	assert.Contains(t, f.intentStore.Deleted, testTxnRef, "intent is discarded after settlement")

	assert.Eventually(t, func() bool {
		return f.publisher.EventCount() == 1
	}, time.Second, 10*time.Millisecond, "settled event is published after commit")
}

func TestSettleOrder_DuplicateDeliveryIsIdempotent(t *testing.T) {
	f := newSettleFixture(t)
	query := signedCallback(t, "15000000", "00", nil)

	first, err := f.uc.Execute(context.Background(), query)
	require.NoError(t, err)
	require.True(t, first.Settled)

	second, err := f.uc.Execute(context.Background(), query)
	require.NoError(t, err)

	assert.True(t, second.Settled)
	assert.True(t, second.AlreadySettled)
	assert.Equal(t, first.Order.OrderNo, second.Order.OrderNo)
	assert.Equal(t, 1, f.orderRepo.CreateCall, "only the first delivery writes an order")
}

func TestSettleOrder_InauthenticCallbackNeverSettles(t *testing.T) {
	f := newSettleFixture(t)

	query := signedCallback(t, "15000000", "00", nil)
	query.Set("vnp_Amount", "100") // tamper after signing

	result, err := f.uc.Execute(context.Background(), query)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, 0, f.orderRepo.CreateCall)
	assert.Empty(t, f.cartRepo.Cleared)
}

func TestSettleOrder_FailureCodeCreatesNothing(t *testing.T) {
	f := newSettleFixture(t)

	result, err := f.uc.Execute(context.Background(), signedCallback(t, "15000000", "24", nil))
	require.NoError(t, err)

	assert.False(t, result.Settled)
	assert.Equal(t, "24", result.ResponseCode)
	assert.NotEmpty(t, result.Message)
	assert.Nil(t, result.Order)
	assert.Equal(t, 0, f.orderRepo.CreateCall)
	assert.Contains(t, f.intentStore.Deleted, testTxnRef, "failed attempt discards the intent")
}

func TestSettleOrder_MissingIntent(t *testing.T) {
	f := newSettleFixture(t)
	require.NoError(t, f.intentStore.Delete(context.Background(), testTxnRef))

	_, err := f.uc.Execute(context.Background(), signedCallback(t, "15000000", "00", nil))
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.Equal(t, 0, f.orderRepo.CreateCall)
}

func TestSettleOrder_EmptyCartAtSettlement(t *testing.T) {
	f := newSettleFixture(t)
	require.NoError(t, f.cartRepo.ClearByUserID(context.Background(), testUserID))
	f.cartRepo.Cleared = nil

	_, err := f.uc.Execute(context.Background(), signedCallback(t, "15000000", "00", nil))
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.Equal(t, 0, f.orderRepo.CreateCall)
}

func TestSettleOrder_AmountMismatchStillUsesRecomputedTotal(t *testing.T) {
	f := newSettleFixture(t)

	// Gateway echoes 999000 VND; the cart says 150000.
	result, err := f.uc.Execute(context.Background(), signedCallback(t, "99900000", "00", nil))
	require.NoError(t, err)

	assert.True(t, result.Settled)
	assert.Equal(t, int64(150000), result.Order.Total)
	assert.Equal(t, int64(150000), result.Order.Payment.Amount)
}

// racingOrderRepo misses the idempotency pre-check once, forcing the
// settlement into the duplicate-key path.
type racingOrderRepo struct {
	*testutil.MockOrderRepository
	missed bool
}

func (r *racingOrderRepo) FindByPaymentReference(ctx context.Context, reference string) (*order.Order, error) {
	if !r.missed {
		r.missed = true
		return nil, nil
	}
	return r.MockOrderRepository.FindByPaymentReference(ctx, reference)
}

func TestSettleOrder_LostRaceReturnsWinningOrder(t *testing.T) {
	inner := testutil.NewMockOrderRepository()
	cartRepo := testutil.NewMockCartRepository()
	intentStore := testutil.NewMockIntentStore()
	seedCart(t, cartRepo, testUserID)

	require.NoError(t, intentStore.Save(context.Background(), &usecases.PaymentIntent{
		TxnRef:          testTxnRef,
		UserID:          testUserID,
		ShippingAddress: "12 Nguyen Hue, District 1",
		AmountVND:       150000,
	}, 15*time.Minute))

	// A concurrent delivery already settled this reference.
	winner := seedSettledOrder(t, inner, testTxnRef)

	uc := usecases.NewSettleOrderUseCase(
		&racingOrderRepo{MockOrderRepository: inner},
		cartRepo,
		&testutil.MockGateway{Client: newGateway(t)},
		intentStore,
		&testutil.MockTxManager{},
		testutil.NopLogger{},
	)

	result, err := uc.Execute(context.Background(), signedCallback(t, "15000000", "00", nil))
	require.NoError(t, err)

	assert.True(t, result.Settled)
	assert.Equal(t, winner.OrderNo(), result.Order.OrderNo)
	assert.Equal(t, 2, inner.CreateCall, "second create hits the unique index")
}

func seedSettledOrder(t *testing.T, repo *testutil.MockOrderRepository, txnRef string) *order.Order {
	t.Helper()
	li, err := order.NewLineItem(1, "Clean Architecture", 1, vo.NewMoney(150000, "VND"))
	require.NoError(t, err)
	payment, err := order.NewPaymentRecord(
		vo.PaymentMethodVNPay,
		vo.NewMoney(150000, "VND"),
		txnRef,
		"14687877",
		"NCB",
		time.Now().UTC(),
		nil,
	)
	require.NoError(t, err)
	o, err := order.NewSettledOrder(testUserID, "12 Nguyen Hue, District 1", []order.LineItem{li}, payment)
	require.NoError(t, err)
	require.NoError(t, repo.CreateSettled(context.Background(), o))
	return o
}
