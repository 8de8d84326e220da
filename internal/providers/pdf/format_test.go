package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInvoiceNumber(t *testing.T) {
	issuedAt := time.Date(2024, 7, 9, 0, 0, 0, 0, time.UTC)

	got, err := FormatInvoiceNumber("INV-{YYYY}{MM}{DD}-{SEQ4}", issuedAt, 12)
	require.NoError(t, err)
	assert.Equal(t, "INV-20240709-0012", got)

	got, err = FormatInvoiceNumber("{YY}/{SEQ}", issuedAt, 7)
	require.NoError(t, err)
	assert.Equal(t, "24/7", got)
}

func TestFormatInvoiceNumber_Invalid(t *testing.T) {
	issuedAt := time.Now()

	_, err := FormatInvoiceNumber("", issuedAt, 1)
	assert.Error(t, err)

	_, err = FormatInvoiceNumber("INV-{SEQ}", issuedAt, 0)
	assert.Error(t, err)

	_, err = FormatInvoiceNumber("INV-{NOPE}", issuedAt, 1)
	assert.Error(t, err)
}
