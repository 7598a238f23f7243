package models

import (
	"gorm.io/gorm"
)

const (
	ReminderBirthday = "birthday"
	ReminderReceipt  = "receipt"
)

type ReminderTemplate struct {
	Type       string `gorm:"type:varchar(20);uniqueIndex;not null" json:"type"`
	Message    string `gorm:"type:text;not null" json:"message"`
	IsActive   bool   `gorm:"default:true" json:"isActive"`
	gorm.Model `json:"-"`
}

// DefaultReminderTemplates are seeded when the table has no row for a type.
var DefaultReminderTemplates = []ReminderTemplate{
	{
		Type:     ReminderBirthday,
		Message:  "Hi [CustomerName], HairLab wishes you a very happy birthday! Enjoy 20% off on your next visit this month!",
		IsActive: true,
	},
	{
		Type:     ReminderReceipt,
		Message:  "Hi [CustomerName], thank you for visiting HairLab. Your bill of Rs.[Amount] has been paid by [PaymentMethod].",
		IsActive: true,
	},
}
