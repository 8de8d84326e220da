package domain

import (
	"context"
	"errors"
)

type AddCustomerRequest struct {
	Name    string
	Phone   string
	Address string
	Note    string
}

type Service interface {
	Add(context.Context, AddCustomerRequest) (Customer, error)
	List(context.Context) ([]Customer, error)

	// FindByPhone resolves a contact by phone at read time. The second
	// return is false when no contact matches; that is not an error.
	FindByPhone(ctx context.Context, phone string) (Customer, bool, error)
}

var (
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidPhone = errors.New("invalid_phone")
)
