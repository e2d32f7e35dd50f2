package models

import "gorm.io/gorm"

// CustomerInfo holds the passenger details required for a booking.
// Identification number is the identity key: a returning customer is
// reused, not duplicated.
type CustomerInfo struct {
	gorm.Model
	Identification string `json:"identification" binding:"required" gorm:"uniqueIndex"`
	PhoneNumber    string `json:"phone_number" binding:"required"`
	Username       string `json:"username" binding:"required"`

	// Optional link to a registered account; booking works without one.
	UserID *uint `json:"user_id"`
}
