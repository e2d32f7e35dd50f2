package models

import (
	"time"

	"gorm.io/gorm"
)

// Time-of-day categories for a trip.
const (
	TripMorning = "morning"
	TripEvening = "evening"
)

// Trip is one scheduled run of a bus along a route on a specific date.
// AvailableSeats is a capacity snapshot taken from the bus type when the
// trip is created; it is nil only for rows that predate the snapshot and
// is then resolved lazily on first read. Once set it never changes, even
// if the bus is swapped or the bus type is edited later.
type Trip struct {
	gorm.Model

	RouteID uint  `json:"route_id" gorm:"index"`
	Route   Route `gorm:"foreignKey:RouteID" json:"route,omitempty"`
	BusID   uint  `json:"bus_id" gorm:"index"`
	Bus     Bus   `gorm:"foreignKey:BusID" json:"bus,omitempty"`

	DepartureTime time.Time  `json:"departure_time"`
	ArrivalTime   time.Time  `json:"arrival_time"`
	Date          *time.Time `json:"date" gorm:"type:date;index"`
	TimeOfDay     string     `json:"time_of_day"`

	AvailableSeats *int `json:"available_seats"`
	IsActive       bool `json:"is_active" gorm:"default:true"`

	CreatedBy string `json:"created_by"`
	UpdatedBy string `json:"updated_by"`

	Bookings []Booking `gorm:"foreignKey:TripID" json:"bookings,omitempty"`
}
