package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bookstore/internal/domain/order"
	vo "bookstore/internal/domain/order/valueobjects"
	"bookstore/internal/infrastructure/persistence/models"
	apperrors "bookstore/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.PaymentModel{},
		&models.PaymentHistoryModel{},
		&models.CartItemModel{},
	)
	require.NoError(t, err)
	return database
}

func newSettledOrder(t *testing.T, userID uint, reference string) *order.Order {
	t.Helper()
	first, err := order.NewLineItem(1, "Clean Architecture", 2, vo.NewMoney(100000, "VND"))
	require.NoError(t, err)
	second, err := order.NewLineItem(2, "The Go Programming Language", 1, vo.NewMoney(150000, "VND"))
	require.NoError(t, err)

	payment, err := order.NewPaymentRecord(
		vo.PaymentMethodVNPay,
		vo.NewMoney(350000, "VND"),
		reference,
		"14687878",
		"NCB",
		time.Now().UTC().Truncate(time.Second),
		map[string]string{"vnp_ResponseCode": "00", "vnp_TxnRef": reference},
	)
	require.NoError(t, err)

	o, err := order.NewSettledOrder(userID, "12 Nguyen Hue, District 1", []order.LineItem{first, second}, payment)
	require.NoError(t, err)
	return o
}

func TestOrderRepository_CreateSettledAndFind(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t))
	ctx := context.Background()

	o := newSettledOrder(t, 7, "1700000000000000000")
	require.NoError(t, repo.CreateSettled(ctx, o))
	assert.NotZero(t, o.ID())

	found, err := repo.FindByID(ctx, o.ID())
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, o.OrderNo(), found.OrderNo())
	assert.Equal(t, uint(7), found.UserID())
	assert.Equal(t, int64(350000), found.Total().Amount())
	assert.Equal(t, vo.OrderStatusProcessing, found.Status())
	assert.Len(t, found.Items(), 2)
	assert.Equal(t, "1700000000000000000", found.Payment().Reference())
	assert.Equal(t, "00", found.Payment().RawParams()["vnp_ResponseCode"])
	require.Len(t, found.History(), 1)
	assert.Equal(t, "success", found.History()[0].Status())
}

func TestOrderRepository_FindByPaymentReference(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t))
	ctx := context.Background()

	o := newSettledOrder(t, 7, "1700000000000000001")
	require.NoError(t, repo.CreateSettled(ctx, o))

	found, err := repo.FindByPaymentReference(ctx, "1700000000000000001")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, o.OrderNo(), found.OrderNo())

	missing, err := repo.FindByPaymentReference(ctx, "no-such-reference")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestOrderRepository_DuplicateReferenceRejected(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateSettled(ctx, newSettledOrder(t, 7, "1700000000000000002")))

	err := repo.CreateSettled(ctx, newSettledOrder(t, 7, "1700000000000000002"))
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicateError(err), "unique reference index must reject the duplicate: %v", err)
}

func TestOrderRepository_ListByUserID(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateSettled(ctx, newSettledOrder(t, 7, fmt.Sprintf("ref-%d", i))))
	}
	require.NoError(t, repo.CreateSettled(ctx, newSettledOrder(t, 8, "ref-other")))

	orders, total, err := repo.ListByUserID(ctx, 7, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, orders, 2)

	rest, _, err := repo.ListByUserID(ctx, 7, 2, 2)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}
