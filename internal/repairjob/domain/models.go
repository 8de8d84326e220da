package domain

import (
	"github.com/smallbiznis/reparo/pkg/db"
)

// Canonical status values. Status stays an open string for parity with how
// the shop actually uses it; these are the values the UI offers.
const (
	StatusPending    = "Pending"
	StatusInProgress = "InProgress"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

// RepairJob is one tracked device-repair case.
type RepairJob struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CustomerName string `gorm:"column:customerName;type:text;not null" json:"customerName"`
	Phone        string `gorm:"column:phone;type:text;not null" json:"phone"`
	Model        string `gorm:"column:model;type:text;not null" json:"model"`
	IMEI         string `gorm:"column:imei;type:text;not null" json:"imei"`
	Problem      string `gorm:"column:problem;type:text;not null" json:"problem"`
	Status       string `gorm:"column:status;type:text;not null" json:"status"`
	ImagePath    string `gorm:"column:imagePath;type:text" json:"imagePath,omitempty"`
	CreatedAt    int64  `gorm:"column:createdAt;not null" json:"createdAt"`
}

// TableName sets the database table name.
func (RepairJob) TableName() string { return "repairs" }

// Row converts the job to its stored form. imagePath is the one nullable
// column; an absent photo is stored as NULL.
func (j RepairJob) Row() db.Row {
	var imagePath any
	if j.ImagePath != "" {
		imagePath = j.ImagePath
	}
	return db.Row{
		"id":           j.ID,
		"customerName": j.CustomerName,
		"phone":        j.Phone,
		"model":        j.Model,
		"imei":         j.IMEI,
		"problem":      j.Problem,
		"status":       j.Status,
		"imagePath":    imagePath,
		"createdAt":    j.CreatedAt,
	}
}

func JobFromRow(row db.Row) RepairJob {
	return RepairJob{
		ID:           db.AsInt64(row["id"]),
		CustomerName: db.AsString(row["customerName"]),
		Phone:        db.AsString(row["phone"]),
		Model:        db.AsString(row["model"]),
		IMEI:         db.AsString(row["imei"]),
		Problem:      db.AsString(row["problem"]),
		Status:       db.AsString(row["status"]),
		ImagePath:    db.AsString(row["imagePath"]),
		CreatedAt:    db.AsInt64(row["createdAt"]),
	}
}
