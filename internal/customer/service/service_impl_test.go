package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/reparo/internal/customer/domain"
	"github.com/smallbiznis/reparo/internal/customer/repository"
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
	require.NoError(t, conn.AutoMigrate(&domain.Customer{}))

	return New(Params{
		DB:   conn,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
}

func TestAdd_ThenListNewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, domain.AddCustomerRequest{Name: "Ana", Phone: "0811"})
	require.NoError(t, err)
	second, err := svc.Add(ctx, domain.AddCustomerRequest{Name: "Budi", Phone: "0822", Address: "Jl. Melati 3"})
	require.NoError(t, err)

	customers, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, second.ID, customers[0].ID)
	assert.Equal(t, first.ID, customers[1].ID)
	assert.Equal(t, "Jl. Melati 3", customers[0].Address)
	assert.Equal(t, "", customers[1].Address)
}

func TestAdd_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.AddCustomerRequest{Name: "", Phone: "0811"})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Add(ctx, domain.AddCustomerRequest{Name: "Ana", Phone: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidPhone)
}

func TestFindByPhone(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.AddCustomerRequest{Name: "Ana", Phone: "0811"})
	require.NoError(t, err)

	found, ok, err := svc.FindByPhone(ctx, "0811")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ana", found.Name)

	_, ok, err = svc.FindByPhone(ctx, "0999")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindByPhone_DuplicateTakesNewest(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.AddCustomerRequest{Name: "Ana", Phone: "0811"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, domain.AddCustomerRequest{Name: "Ana Baru", Phone: "0811"})
	require.NoError(t, err)

	found, ok, err := svc.FindByPhone(ctx, "0811")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ana Baru", found.Name)
}
