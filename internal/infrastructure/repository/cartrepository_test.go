package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/domain/cart"
	vo "bookstore/internal/domain/order/valueobjects"
)

func seedCartItem(t *testing.T, repo *CartRepository, userID, productID uint, qty int, price int64) *cart.Item {
	t.Helper()
	item, err := cart.NewItem(userID, productID, "Some Book", qty, vo.NewMoney(price, "VND"))
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), item))
	return item
}

func TestCartRepository_CreateAndFind(t *testing.T) {
	repo := NewCartRepository(setupTestDB(t))
	ctx := context.Background()

	seedCartItem(t, repo, 7, 1, 2, 100000)
	seedCartItem(t, repo, 7, 2, 1, 150000)
	seedCartItem(t, repo, 8, 1, 1, 100000)

	items, err := repo.FindByUserID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(350000), cart.Total(items).Amount())

	found, err := repo.FindByUserAndProduct(ctx, 7, 2)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 1, found.Quantity())

	missing, err := repo.FindByUserAndProduct(ctx, 7, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCartRepository_UpdateQuantity(t *testing.T) {
	repo := NewCartRepository(setupTestDB(t))
	ctx := context.Background()

	item := seedCartItem(t, repo, 7, 1, 1, 100000)
	require.NoError(t, item.UpdateQuantity(5))
	require.NoError(t, repo.Update(ctx, item))

	found, err := repo.FindByUserAndProduct(ctx, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, found.Quantity())
}

func TestCartRepository_DeleteAndClear(t *testing.T) {
	repo := NewCartRepository(setupTestDB(t))
	ctx := context.Background()

	seedCartItem(t, repo, 7, 1, 1, 100000)
	seedCartItem(t, repo, 7, 2, 1, 150000)
	seedCartItem(t, repo, 8, 1, 1, 100000)

	require.NoError(t, repo.DeleteByUserAndProduct(ctx, 7, 1))
	items, err := repo.FindByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, repo.ClearByUserID(ctx, 7))
	items, err = repo.FindByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, items)

	other, err := repo.FindByUserID(ctx, 8)
	require.NoError(t, err)
	assert.Len(t, other, 1, "clearing one user's cart must not touch another's")
}
