package domain

import (
	"github.com/smallbiznis/reparo/pkg/db"
)

// Customer is a shop contact. Phone is the de facto join key to repair
// jobs, but nothing enforces uniqueness.
type Customer struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"column:name;type:text;not null" json:"name"`
	Phone   string `gorm:"column:phone;type:text;not null" json:"phone"`
	Address string `gorm:"column:address;type:text;not null;default:''" json:"address"`
	Note    string `gorm:"column:note;type:text;not null;default:''" json:"note"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }

func (c Customer) Row() db.Row {
	return db.Row{
		"id":      c.ID,
		"name":    c.Name,
		"phone":   c.Phone,
		"address": c.Address,
		"note":    c.Note,
	}
}

func CustomerFromRow(row db.Row) Customer {
	return Customer{
		ID:      db.AsInt64(row["id"]),
		Name:    db.AsString(row["name"]),
		Phone:   db.AsString(row["phone"]),
		Address: db.AsString(row["address"]),
		Note:    db.AsString(row["note"]),
	}
}
