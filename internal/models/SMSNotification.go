package models

import (
	"time"

	"gorm.io/gorm"
)

// SMSNotification is the audit row for one dispatch attempt. Delivery is
// best effort; the flag records the transport outcome, nothing retries.
type SMSNotification struct {
	gorm.Model
	RecipientPhone string    `json:"recipient_phone" gorm:"index"`
	Message        string    `json:"message"`
	SentTime       time.Time `json:"sent_time"`
	IsSent         bool      `json:"is_sent" gorm:"default:false"`
}
