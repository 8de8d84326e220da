package repository

import (
	"context"

	"github.com/smallbiznis/reparo/internal/customer/domain"
	"github.com/smallbiznis/reparo/pkg/db"
	"gorm.io/gorm"
)

const table = "customers"

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, conn *gorm.DB, customer *domain.Customer) error {
	id, err := db.Insert(ctx, conn, table, customer.Row())
	if err != nil {
		return err
	}
	customer.ID = id
	return nil
}

func (r *repo) List(ctx context.Context, conn *gorm.DB) ([]domain.Customer, error) {
	rows, err := db.ListAll(ctx, conn, table, "id", true)
	if err != nil {
		return nil, err
	}
	customers := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, domain.CustomerFromRow(row))
	}
	return customers, nil
}
