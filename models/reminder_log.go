package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReminderStatusSent   = "sent"
	ReminderStatusFailed = "failed"
)

// ReminderLog records every outbound customer message, reminders and receipts alike.
type ReminderLog struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID   string         `gorm:"type:varchar(64);index" json:"customerId"`
	Phone        string         `gorm:"type:varchar(32)" json:"phone"`
	Type         string         `gorm:"type:varchar(20)" json:"type"` // birthday, receipt
	Message      string         `gorm:"type:text" json:"message"`
	Status       string         `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage string         `gorm:"type:text" json:"errorMessage,omitempty"`
	Channel      string         `gorm:"type:varchar(20)" json:"channel"` // whatsapp, sms
	SentAt       time.Time      `json:"sentAt"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}
