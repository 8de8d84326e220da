package domain

import (
	"github.com/smallbiznis/reparo/pkg/db"
)

// InventoryItem is a stocked part or accessory. Qty is a plain counter kept
// by overwrite; there is no stock-movement history.
type InventoryItem struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string  `gorm:"column:name;type:text;not null" json:"name"`
	Qty       int64   `gorm:"column:qty;not null" json:"qty"`
	BuyPrice  float64 `gorm:"column:buyPrice;type:real;not null" json:"buyPrice"`
	SellPrice float64 `gorm:"column:sellPrice;type:real;not null" json:"sellPrice"`
}

// TableName sets the database table name.
func (InventoryItem) TableName() string { return "inventory" }

func (i InventoryItem) Row() db.Row {
	return db.Row{
		"id":        i.ID,
		"name":      i.Name,
		"qty":       i.Qty,
		"buyPrice":  i.BuyPrice,
		"sellPrice": i.SellPrice,
	}
}

func ItemFromRow(row db.Row) InventoryItem {
	return InventoryItem{
		ID:        db.AsInt64(row["id"]),
		Name:      db.AsString(row["name"]),
		Qty:       db.AsInt64(row["qty"]),
		BuyPrice:  db.AsFloat64(row["buyPrice"]),
		SellPrice: db.AsFloat64(row["sellPrice"]),
	}
}
