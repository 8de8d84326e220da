package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, conn *gorm.DB, job *RepairJob) error
	List(ctx context.Context, conn *gorm.DB) ([]RepairJob, error)

	// Update overwrites the whole row keyed by the job's id. Only the
	// status-change path uses it.
	Update(ctx context.Context, conn *gorm.DB, job RepairJob) error
}
