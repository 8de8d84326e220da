package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/reparo/internal/clock"
	"github.com/smallbiznis/reparo/internal/ledger/domain"
	"github.com/smallbiznis/reparo/internal/ledger/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *clock.FakeClock) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.LedgerEntry{}))

	fake := clock.NewFakeClock(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC))
	svc := New(Params{
		DB:    conn,
		Log:   zap.NewNop(),
		Clock: fake,
		Repo:  repository.Provide(),
	})
	return svc, fake
}

func TestAdd_AssignsIDAndListsNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	added, err := svc.Add(ctx, domain.AddEntryRequest{
		Title:     "Screen replacement",
		Amount:    75,
		Type:      domain.EntryTypeIncome,
		Note:      "iPhone 12",
		Timestamp: 1000,
	})
	require.NoError(t, err)
	assert.NotZero(t, added.ID)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, added.ID, got.ID)
	assert.Equal(t, "Screen replacement", got.Title)
	assert.Equal(t, 75.0, got.Amount)
	assert.Equal(t, domain.EntryTypeIncome, got.Type)
	assert.Equal(t, "iPhone 12", got.Note)
	assert.Equal(t, int64(1000), got.Timestamp)
}

func TestList_OrdersByTimestampDescending(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, ts := range []int64{100, 300, 200} {
		_, err := svc.Add(ctx, domain.AddEntryRequest{
			Title:     "entry",
			Amount:    1,
			Type:      domain.EntryTypeExpense,
			Timestamp: ts,
		})
		require.NoError(t, err)
	}

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, int64(300), entries[0].Timestamp)
	assert.Equal(t, int64(200), entries[1].Timestamp)
	assert.Equal(t, int64(100), entries[2].Timestamp)
}

func TestAdd_DefaultsTimestampToNow(t *testing.T) {
	svc, fake := newTestService(t)
	ctx := context.Background()

	fake.Set(time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC))
	added, err := svc.Add(ctx, domain.AddEntryRequest{
		Title:  "Charger sale",
		Amount: 15,
		Type:   domain.EntryTypeIncome,
	})
	require.NoError(t, err)
	assert.Equal(t, fake.Now().UnixMilli(), added.Timestamp)
}

func TestAdd_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.AddEntryRequest{Title: "  ", Amount: 1, Type: domain.EntryTypeIncome})
	assert.ErrorIs(t, err, domain.ErrInvalidTitle)

	_, err = svc.Add(ctx, domain.AddEntryRequest{Title: "x", Amount: -5, Type: domain.EntryTypeIncome})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.Add(ctx, domain.AddEntryRequest{Title: "x", Amount: 1, Type: "transfer"})
	assert.ErrorIs(t, err, domain.ErrInvalidType)
}

func TestTotals_NeverNegatesAmounts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.AddEntryRequest{Title: "repair", Amount: 100, Type: domain.EntryTypeIncome, Timestamp: 1})
	require.NoError(t, err)
	_, err = svc.Add(ctx, domain.AddEntryRequest{Title: "parts", Amount: 40, Type: domain.EntryTypeExpense, Timestamp: 2})
	require.NoError(t, err)

	totals, err := svc.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100.0, totals.Income)
	assert.Equal(t, 40.0, totals.Expense)
	assert.Equal(t, 60.0, totals.Net())
}

func TestExportCSV_QuotingAndFormatting(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ts := time.Date(2024, 3, 5, 14, 30, 0, 0, time.Local)
	_, err := svc.Add(ctx, domain.AddEntryRequest{
		Title:     `Fix "A"`,
		Amount:    50.0,
		Type:      domain.EntryTypeIncome,
		Note:      "",
		Timestamp: ts.UnixMilli(),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(ctx, &buf))

	want := "title,amount,type,note,timestamp\n" +
		`"Fix ""A""",50.0,income,"",` + ts.Format("2006-01-02 15:04") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestExportCSV_RowsFollowListOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i, ts := range []int64{100, 300, 200} {
		_, err := svc.Add(ctx, domain.AddEntryRequest{
			Title:     fmt.Sprintf("entry-%d", i),
			Amount:    float64(i + 1),
			Type:      domain.EntryTypeExpense,
			Timestamp: ts,
		})
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(ctx, &buf))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Contains(t, string(lines[1]), "entry-1")
	assert.Contains(t, string(lines[2]), "entry-2")
	assert.Contains(t, string(lines[3]), "entry-0")
}
