package domain

import (
	"testing"

	"github.com/smallbiznis/reparo/pkg/db"
	"github.com/stretchr/testify/assert"
)

func TestEntryRowRoundTrip(t *testing.T) {
	entry := LedgerEntry{
		ID:        7,
		Title:     "LCD repair",
		Amount:    125.5,
		Type:      EntryTypeIncome,
		Note:      "warranty",
		Timestamp: 1717230000000,
	}
	assert.Equal(t, entry, EntryFromRow(entry.Row()))
}

func TestEntryFromRow_CoercesStoreNumerics(t *testing.T) {
	// SQLite may hand a REAL column back as int64 when the stored value is
	// integral, and ids come back as int64 regardless.
	row := db.Row{
		"id":        int64(3),
		"title":     []byte("battery"),
		"amount":    int64(50),
		"type":      "expense",
		"note":      nil,
		"timestamp": float64(1000),
	}
	entry := EntryFromRow(row)
	assert.Equal(t, int64(3), entry.ID)
	assert.Equal(t, "battery", entry.Title)
	assert.Equal(t, 50.0, entry.Amount)
	assert.Equal(t, EntryTypeExpense, entry.Type)
	assert.Equal(t, "", entry.Note)
	assert.Equal(t, int64(1000), entry.Timestamp)
}
