package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/reparo/internal/inventory/domain"
	"github.com/smallbiznis/reparo/internal/inventory/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.InventoryItem{}))

	return New(Params{
		DB:   conn,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
}

func TestAdd_ThenListNewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, domain.AddItemRequest{Name: "LCD iPhone 11", Qty: 4, BuyPrice: 35, SellPrice: 60})
	require.NoError(t, err)
	second, err := svc.Add(ctx, domain.AddItemRequest{Name: "Battery A52", Qty: 10, BuyPrice: 8, SellPrice: 18.5})
	require.NoError(t, err)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)
	assert.Equal(t, int64(10), items[0].Qty)
	assert.Equal(t, 18.5, items[0].SellPrice)
}

func TestAdd_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.AddItemRequest{Name: " ", Qty: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Add(ctx, domain.AddItemRequest{Name: "LCD", Qty: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidQty)
}

func TestItemRowRoundTrip(t *testing.T) {
	item := domain.InventoryItem{ID: 2, Name: "Flex cable", Qty: 3, BuyPrice: 2.5, SellPrice: 7}
	assert.Equal(t, item, domain.ItemFromRow(item.Row()))
}
