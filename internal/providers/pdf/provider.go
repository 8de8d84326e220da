package pdf

import (
	"bytes"
	"context"
	"io"
)

// InvoiceData is everything the fixed-layout repair invoice needs. The
// caller resolves the customer (or builds a fallback from the job) before
// rendering; this package only draws.
type InvoiceData struct {
	ShopName    string
	ShopAddress string
	ShopPhone   string

	InvoiceNumber string
	// Reference is a globally unique document id, independent of the
	// human-readable invoice number.
	Reference string
	IssueDate string

	CustomerName    string
	CustomerPhone   string
	CustomerAddress string

	Model   string
	IMEI    string
	Problem string
	Status  string

	Items []InvoiceItem
	Total string
}

type InvoiceItem struct {
	Description string
	Amount      string
}

type Provider interface {
	GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error)
}

// NoOpProvider renders an empty document. The reader is always non-nil so
// callers can drain it unconditionally.
type NoOpProvider struct{}

func (p *NoOpProvider) GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error) {
	return bytes.NewReader(nil), nil
}
