package repository

import (
	"context"

	"github.com/smallbiznis/reparo/internal/inventory/domain"
	"github.com/smallbiznis/reparo/pkg/db"
	"gorm.io/gorm"
)

const table = "inventory"

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, conn *gorm.DB, item *domain.InventoryItem) error {
	id, err := db.Insert(ctx, conn, table, item.Row())
	if err != nil {
		return err
	}
	item.ID = id
	return nil
}

func (r *repo) List(ctx context.Context, conn *gorm.DB) ([]domain.InventoryItem, error) {
	rows, err := db.ListAll(ctx, conn, table, "id", true)
	if err != nil {
		return nil, err
	}
	items := make([]domain.InventoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.ItemFromRow(row))
	}
	return items, nil
}
