package domain

import (
	"context"
	"errors"
)

type AddItemRequest struct {
	Name      string
	Qty       int64
	BuyPrice  float64
	SellPrice float64
}

type Service interface {
	Add(context.Context, AddItemRequest) (InventoryItem, error)
	List(context.Context) ([]InventoryItem, error)
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidQty  = errors.New("invalid_qty")
)
