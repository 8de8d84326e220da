package repository

import (
	"context"

	"github.com/smallbiznis/reparo/internal/messagelog/domain"
	"github.com/smallbiznis/reparo/pkg/db"
	"gorm.io/gorm"
)

const table = "message_log"

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, conn *gorm.DB, entry *domain.MessageLog) error {
	id, err := db.Insert(ctx, conn, table, entry.Row())
	if err != nil {
		return err
	}
	entry.ID = id
	return nil
}

func (r *repo) List(ctx context.Context, conn *gorm.DB) ([]domain.MessageLog, error) {
	rows, err := db.ListAll(ctx, conn, table, "sentAt", true)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.MessageLog, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.LogFromRow(row))
	}
	return entries, nil
}
