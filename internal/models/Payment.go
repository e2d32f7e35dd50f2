package models

import (
	"time"

	"gorm.io/gorm"
)

// Mobile-money providers.
const (
	ProviderMTN    = "mtn"
	ProviderOrange = "orange"
)

// Payment records a mobile-money payment attempt for a booking. A booking
// has at most one payment; the transaction id is globally unique.
type Payment struct {
	gorm.Model

	BookingID *uint    `json:"booking_id" gorm:"uniqueIndex"`
	Booking   *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`

	Amount        float64   `json:"amount"`
	Provider      string    `json:"provider"`
	TransactionID string    `json:"transaction_id" gorm:"uniqueIndex"`
	PayerName     string    `json:"payer_name"`
	PayerPhone    string    `json:"payer_phone"`
	PaymentTime   time.Time `json:"payment_time"`
	IsRefunded    bool      `json:"is_refunded" gorm:"default:false"`
}
