package domain

import (
	"github.com/smallbiznis/reparo/pkg/db"
)

// EntryType is the sign of a ledger entry. Amounts are always stored
// positive; the type alone decides whether the money came in or went out.
type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

// LedgerEntry is one cash movement in the shop's book.
type LedgerEntry struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"column:title;type:text;not null" json:"title"`
	Amount    float64   `gorm:"column:amount;type:real;not null" json:"amount"`
	Type      EntryType `gorm:"column:type;type:text;not null" json:"type"`
	Note      string    `gorm:"column:note;type:text;not null;default:''" json:"note"`
	Timestamp int64     `gorm:"column:timestamp;not null" json:"timestamp"`
}

// TableName sets the database table name.
func (LedgerEntry) TableName() string { return "ledger" }

// Row converts the entry to its stored form. A zero ID marks a record the
// store has not assigned an id to yet.
func (e LedgerEntry) Row() db.Row {
	return db.Row{
		"id":        e.ID,
		"title":     e.Title,
		"amount":    e.Amount,
		"type":      string(e.Type),
		"note":      e.Note,
		"timestamp": e.Timestamp,
	}
}

// EntryFromRow rebuilds an entry from its stored form, coercing numerics to
// their semantic types and defaulting optional text to empty.
func EntryFromRow(row db.Row) LedgerEntry {
	return LedgerEntry{
		ID:        db.AsInt64(row["id"]),
		Title:     db.AsString(row["title"]),
		Amount:    db.AsFloat64(row["amount"]),
		Type:      EntryType(db.AsString(row["type"])),
		Note:      db.AsString(row["note"]),
		Timestamp: db.AsInt64(row["timestamp"]),
	}
}

// Totals are the dashboard sums over the whole book.
type Totals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

func (t Totals) Net() float64 {
	return t.Income - t.Expense
}
