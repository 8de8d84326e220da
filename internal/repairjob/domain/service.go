package domain

import (
	"context"
	"errors"
)

type AddJobRequest struct {
	CustomerName string
	Phone        string
	Model        string
	IMEI         string
	Problem      string
	Status       string

	// CapturedImagePath is where the platform left the photo, if any.
	// The service copies it into the managed images directory.
	CapturedImagePath string

	// CreatedAt is epoch milliseconds; zero means "now".
	CreatedAt int64
}

type InvoiceRequest struct {
	JobID int64

	// ServiceFee is the charge printed on the invoice, decided at
	// invoice time since jobs carry no price.
	ServiceFee float64
}

type Service interface {
	Add(context.Context, AddJobRequest) (RepairJob, error)
	List(context.Context) ([]RepairJob, error)
	Get(ctx context.Context, id int64) (RepairJob, error)

	// UpdateStatus is the single in-place mutation in the system.
	UpdateStatus(ctx context.Context, id int64, status string) (RepairJob, error)

	// Invoice renders the PDF invoice for a job. When no customer
	// contact matches the job's phone, a synthetic customer built from
	// the job's own fields is used; that is never an error.
	Invoice(context.Context, InvoiceRequest) ([]byte, error)
}

var (
	ErrInvalidCustomerName = errors.New("invalid_customer_name")
	ErrInvalidPhone        = errors.New("invalid_phone")
	ErrInvalidModel        = errors.New("invalid_model")
	ErrInvalidStatus       = errors.New("invalid_status")
	ErrNotFound            = errors.New("not_found")
)
