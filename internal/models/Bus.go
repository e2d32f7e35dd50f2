package models

import "gorm.io/gorm"

// Maintenance statuses for a bus.
const (
	BusOperational = "operational"
	BusMaintenance = "maintenance"
	BusRepair      = "repair"
)

type Bus struct {
	gorm.Model
	BusTypeID          uint    `json:"bus_type_id" gorm:"index"`
	BusType            BusType `gorm:"foreignKey:BusTypeID" json:"bus_type,omitempty"`
	RegistrationNumber string  `json:"registration_number" gorm:"uniqueIndex"`
	MaintenanceStatus  string  `json:"maintenance_status" gorm:"default:operational"`
	IsActive           bool    `json:"is_active" gorm:"default:true"`
}
