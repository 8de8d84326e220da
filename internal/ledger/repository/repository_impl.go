package repository

import (
	"context"

	"github.com/smallbiznis/reparo/internal/ledger/domain"
	"github.com/smallbiznis/reparo/pkg/db"
	"gorm.io/gorm"
)

const table = "ledger"

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, conn *gorm.DB, entry *domain.LedgerEntry) error {
	id, err := db.Insert(ctx, conn, table, entry.Row())
	if err != nil {
		return err
	}
	entry.ID = id
	return nil
}

func (r *repo) List(ctx context.Context, conn *gorm.DB) ([]domain.LedgerEntry, error) {
	rows, err := db.ListAll(ctx, conn, table, "timestamp", true)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.EntryFromRow(row))
	}
	return entries, nil
}
