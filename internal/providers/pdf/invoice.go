package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateInvoice(ctx context.Context, invoice InvoiceData) (io.Reader, error) {
	cfg := config.NewBuilder().Build()

	m := maroto.New(cfg)

	// Shop header
	m.AddRow(22,
		col.New(8).Add(
			text.New(invoice.ShopName, props.Text{Size: 14, Style: fontstyle.Bold}),
			text.New(invoice.ShopAddress, props.Text{Size: 9, Top: 8}),
			text.New(invoice.ShopPhone, props.Text{Size: 9, Top: 13}),
		),
		col.New(4).Add(
			text.New("SERVICE INVOICE", props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right}),
			text.New(invoice.InvoiceNumber, props.Text{Size: 9, Top: 8, Align: align.Right}),
			text.New(invoice.IssueDate, props.Text{Size: 9, Top: 13, Align: align.Right}),
			text.New("Ref "+invoice.Reference, props.Text{Size: 7, Top: 18, Align: align.Right}),
		),
	)

	// Customer and device blocks
	m.AddRow(30,
		col.New(6).Add(
			text.New("Customer", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.New(invoice.CustomerName, props.Text{Size: 9, Top: 5}),
			text.New(invoice.CustomerPhone, props.Text{Size: 9, Top: 10}),
			text.New(invoice.CustomerAddress, props.Text{Size: 9, Top: 15}),
		),
		col.New(6).Add(
			text.New("Device", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.New(invoice.Model, props.Text{Size: 9, Top: 5}),
			text.New("IMEI: "+invoice.IMEI, props.Text{Size: 9, Top: 10}),
			text.New("Status: "+invoice.Status, props.Text{Size: 9, Top: 15}),
		),
	)

	m.AddRow(12,
		text.NewCol(12, "Reported problem: "+invoice.Problem, props.Text{Size: 9}),
	)

	// Charges
	m.AddRow(10,
		text.NewCol(9, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	for _, item := range invoice.Items {
		m.AddRow(8,
			text.NewCol(9, item.Description, props.Text{Size: 9}),
			text.NewCol(3, item.Amount, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(12,
		col.New(9),
		text.NewCol(3, "Total "+invoice.Total, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
