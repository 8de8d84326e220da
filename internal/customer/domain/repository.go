package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, conn *gorm.DB, customer *Customer) error
	List(ctx context.Context, conn *gorm.DB) ([]Customer, error)
}
