package models

import (
	"gorm.io/gorm"
)

// BusType defines a class of bus and its seating capacity. Trip capacity is
// always derived from the assigned bus's type, never stored on the bus.
type BusType struct {
	gorm.Model
	Name     string `json:"name" binding:"required" gorm:"uniqueIndex"`
	Capacity int    `json:"capacity" binding:"required"`
}

// UpsertBusType creates a bus type by name or refreshes its capacity.
func UpsertBusType(db *gorm.DB, name string, capacity int) (BusType, error) {
	var busType BusType
	err := db.Where(BusType{Name: name}).
		Attrs(BusType{Capacity: capacity}).
		FirstOrCreate(&busType).Error
	if err != nil {
		return busType, err
	}
	if busType.Capacity != capacity {
		busType.Capacity = capacity
		err = db.Save(&busType).Error
	}
	return busType, err
}
