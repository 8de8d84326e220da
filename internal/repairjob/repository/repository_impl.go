package repository

import (
	"context"

	"github.com/smallbiznis/reparo/internal/repairjob/domain"
	"github.com/smallbiznis/reparo/pkg/db"
	"gorm.io/gorm"
)

const table = "repairs"

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, conn *gorm.DB, job *domain.RepairJob) error {
	id, err := db.Insert(ctx, conn, table, job.Row())
	if err != nil {
		return err
	}
	job.ID = id
	return nil
}

func (r *repo) List(ctx context.Context, conn *gorm.DB) ([]domain.RepairJob, error) {
	rows, err := db.ListAll(ctx, conn, table, "createdAt", true)
	if err != nil {
		return nil, err
	}
	jobs := make([]domain.RepairJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, domain.JobFromRow(row))
	}
	return jobs, nil
}

func (r *repo) Update(ctx context.Context, conn *gorm.DB, job domain.RepairJob) error {
	return db.UpdateByID(ctx, conn, table, job.ID, job.Row())
}
