package domain

import (
	"github.com/smallbiznis/reparo/pkg/db"
)

// SendStatus is the recorded outcome of one delivery attempt.
type SendStatus string

const (
	SendStatusSent   SendStatus = "sent"
	SendStatusFailed SendStatus = "failed"
)

// MessageLog is one row of the append-only notification audit trail.
type MessageLog struct {
	ID       int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ToNumber string     `gorm:"column:toNumber;type:text;not null" json:"toNumber"`
	Message  string     `gorm:"column:message;type:text;not null" json:"message"`
	SentAt   int64      `gorm:"column:sentAt;not null" json:"sentAt"`
	Status   SendStatus `gorm:"column:status;type:text;not null" json:"status"`
}

// TableName sets the database table name.
func (MessageLog) TableName() string { return "message_log" }

func (m MessageLog) Row() db.Row {
	return db.Row{
		"id":       m.ID,
		"toNumber": m.ToNumber,
		"message":  m.Message,
		"sentAt":   m.SentAt,
		"status":   string(m.Status),
	}
}

func LogFromRow(row db.Row) MessageLog {
	return MessageLog{
		ID:       db.AsInt64(row["id"]),
		ToNumber: db.AsString(row["toNumber"]),
		Message:  db.AsString(row["message"]),
		SentAt:   db.AsInt64(row["sentAt"]),
		Status:   SendStatus(db.AsString(row["status"])),
	}
}
