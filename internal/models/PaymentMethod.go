package models

import "gorm.io/gorm"

// PaymentMethod is a configured mobile-money provider. Client secrets are
// sealed before they reach storage (see config.SecretBox); the raw value
// never appears in a row or a response.
type PaymentMethod struct {
	gorm.Model
	Name         string `json:"name" gorm:"uniqueIndex"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	ClientID     string `json:"-"`
	ClientSecret string `json:"-"`
}
