package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, conn *gorm.DB, entry *LedgerEntry) error
	List(ctx context.Context, conn *gorm.DB) ([]LedgerEntry, error)
}
