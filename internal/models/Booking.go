package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. Created is the initial state, pending means a payment
// attempt has been initiated, confirmed and cancelled are terminal.
const (
	BookingCreated   = "created"
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Service types (pricing tiers).
const (
	ServiceStandard = "standard"
	ServiceVIP      = "vip"
)

// Booking represents seats claimed on a trip by a customer.
//
// IsDeleted is a visibility flag, not a state: soft-deleted bookings are
// hidden from listings but still count against trip capacity unless their
// status is cancelled.
type Booking struct {
	gorm.Model

	CustomerInfoID *uint         `json:"customer_info_id" gorm:"index"`
	CustomerInfo   *CustomerInfo `gorm:"foreignKey:CustomerInfoID" json:"customer_info,omitempty"`

	TripID uint `json:"trip_id" gorm:"index"`
	Trip   Trip `gorm:"foreignKey:TripID" json:"trip,omitempty"`

	Seats       int       `json:"seats"`
	BookingTime time.Time `json:"booking_time"`
	Status      string    `json:"status" gorm:"default:created;index"`
	ServiceType string    `json:"service_type" gorm:"default:standard"`

	IsRoundTrip     bool     `json:"is_round_trip" gorm:"default:false"`
	ReturnBookingID *uint    `json:"return_booking_id"`
	ReturnBooking   *Booking `gorm:"foreignKey:ReturnBookingID" json:"return_booking,omitempty"`

	IsDeleted bool   `json:"is_deleted" gorm:"default:false;index"`
	Slug      string `json:"slug" gorm:"uniqueIndex"`
}

func (b Booking) IsCancelled() bool { return b.Status == BookingCancelled }
func (b Booking) IsConfirmed() bool { return b.Status == BookingConfirmed }
func (b Booking) IsPending() bool   { return b.Status == BookingPending }

// IsCancellableAt reports whether the booking is still inside the
// cancellation window (one day from booking time) at the given instant.
func (b Booking) IsCancellableAt(at time.Time) bool {
	return at.Sub(b.BookingTime) < 24*time.Hour
}

// TotalPrice is seats times the route price for the booking's service
// type. Computed on demand from current route pricing, never cached.
// Requires Trip.Route to be loaded.
func (b Booking) TotalPrice() float64 {
	return float64(b.Seats) * b.Trip.Route.PriceFor(b.ServiceType)
}
