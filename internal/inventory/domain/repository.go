package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, conn *gorm.DB, item *InventoryItem) error
	List(ctx context.Context, conn *gorm.DB) ([]InventoryItem, error)
}
