package sms

import "context"

// Provider delivers a text message. Send either succeeds or returns an
// error; recording the outcome is the caller's job.
type Provider interface {
	Send(ctx context.Context, to string, message string) error
}

type NoOpProvider struct{}

func (p *NoOpProvider) Send(ctx context.Context, to string, message string) error {
	return nil
}
