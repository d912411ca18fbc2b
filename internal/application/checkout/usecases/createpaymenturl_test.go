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
	"bookstore/internal/domain/shared/services"
	apperrors "bookstore/internal/shared/errors"
)

type createURLFixture struct {
	uc          *usecases.CreatePaymentURLUseCase
	cartRepo    *testutil.MockCartRepository
	intentStore *testutil.MockIntentStore
}

func newCreateURLFixture(t *testing.T) *createURLFixture {
	t.Helper()
	f := &createURLFixture{
		cartRepo:    testutil.NewMockCartRepository(),
		intentStore: testutil.NewMockIntentStore(),
	}
	f.uc = usecases.NewCreatePaymentURLUseCase(
		f.cartRepo,
		&testutil.MockGateway{Client: newGateway(t)},
		f.intentStore,
		services.NewPaymentReferenceGenerator(),
		testutil.NopLogger{},
	)
	return f
}

func TestCreatePaymentURL(t *testing.T) {
	f := newCreateURLFixture(t)
	seedCart(t, f.cartRepo, testUserID)

	result, err := f.uc.Execute(context.Background(), usecases.CreatePaymentURLCommand{
		UserID:          testUserID,
		ShippingAddress: "12 Nguyen Hue, District 1",
		ClientIP:        "203.0.113.7",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(150000), result.Amount)
	assert.Equal(t, "VND", result.Currency)
	assert.NotEmpty(t, result.TxnRef)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), result.ExpiresAt, 5*time.Second)

	parsed, err := url.Parse(result.PaymentURL)
	require.NoError(t, err)
	query := parsed.Query()
	assert.Equal(t, "15000000", query.Get("vnp_Amount"))
	assert.Equal(t, result.TxnRef, query.Get("vnp_TxnRef"))
	assert.NotEmpty(t, query.Get("vnp_SecureHash"))

	intent, err := f.intentStore.Get(context.Background(), result.TxnRef)
	require.NoError(t, err)
	require.NotNil(t, intent, "intent must be recorded before handing out the URL")
	assert.Equal(t, testUserID, intent.UserID)
	assert.Equal(t, "12 Nguyen Hue, District 1", intent.ShippingAddress)
	assert.Equal(t, int64(150000), intent.AmountVND)
	assert.Equal(t, 15*time.Minute, f.intentStore.TTLs[result.TxnRef], "intent lives as long as the payment window")
}

func TestCreatePaymentURL_Validation(t *testing.T) {
	f := newCreateURLFixture(t)
	seedCart(t, f.cartRepo, testUserID)

	tests := []struct {
		name string
		cmd  usecases.CreatePaymentURLCommand
	}{
		{
			name: "missing user",
			cmd:  usecases.CreatePaymentURLCommand{ShippingAddress: "somewhere"},
		},
		{
			name: "blank shipping address",
			cmd:  usecases.CreatePaymentURLCommand{UserID: testUserID, ShippingAddress: "   "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestCreatePaymentURL_EmptyCart(t *testing.T) {
	f := newCreateURLFixture(t)

	_, err := f.uc.Execute(context.Background(), usecases.CreatePaymentURLCommand{
		UserID:          testUserID,
		ShippingAddress: "12 Nguyen Hue, District 1",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestCreatePaymentURL_FreshReferencePerAttempt(t *testing.T) {
	f := newCreateURLFixture(t)
	seedCart(t, f.cartRepo, testUserID)

	cmd := usecases.CreatePaymentURLCommand{
		UserID:          testUserID,
		ShippingAddress: "12 Nguyen Hue, District 1",
	}
	first, err := f.uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	second, err := f.uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	assert.NotEqual(t, first.TxnRef, second.TxnRef, "retrying checkout must not reuse a reference")
}
