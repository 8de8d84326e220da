package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, conn *gorm.DB, entry *MessageLog) error
	List(ctx context.Context, conn *gorm.DB) ([]MessageLog, error)
}
