package domain

import (
	"context"
	"errors"
)

type NotifyRequest struct {
	To      string
	Message string
}

type Service interface {
	// Notify sends through the SMS transport and records the outcome.
	// A transport failure is recovered: the attempt is logged as failed
	// and the returned entry carries SendStatusFailed without an error.
	Notify(context.Context, NotifyRequest) (MessageLog, error)
	List(context.Context) ([]MessageLog, error)
}

var (
	ErrInvalidNumber  = errors.New("invalid_number")
	ErrInvalidMessage = errors.New("invalid_message")
)
