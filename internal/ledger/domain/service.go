package domain

import (
	"context"
	"errors"
	"io"
)

type AddEntryRequest struct {
	Title  string
	Amount float64
	Type   EntryType
	Note   string

	// Timestamp is epoch milliseconds; zero means "now".
	Timestamp int64
}

type Service interface {
	Add(context.Context, AddEntryRequest) (LedgerEntry, error)
	List(context.Context) ([]LedgerEntry, error)
	Totals(context.Context) (Totals, error)
	ExportCSV(context.Context, io.Writer) error
}

var (
	ErrInvalidTitle  = errors.New("invalid_title")
	ErrInvalidAmount = errors.New("invalid_amount")
	ErrInvalidType   = errors.New("invalid_type")
)
