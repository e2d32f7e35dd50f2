package services

import (
	"errors"

	"gorm.io/gorm"

	"favour_express/internal/models"
)

// ResolveCapacity returns the trip's total seat capacity. A trip created
// through TripService already carries the snapshot; for older rows the
// capacity is read from the assigned bus's type and persisted so later
// reads are stable against bus-type edits. Concurrent first reads may both
// write, which is harmless: they compute the same number.
func ResolveCapacity(db *gorm.DB, trip *models.Trip) (int, error) {
	if trip.AvailableSeats != nil {
		return *trip.AvailableSeats, nil
	}

	var bus models.Bus
	err := db.Preload("BusType").First(&bus, trip.BusID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCapacityUnavailable
		}
		return 0, err
	}
	if bus.BusType.ID == 0 || bus.BusType.Capacity <= 0 {
		return 0, ErrCapacityUnavailable
	}

	capacity := bus.BusType.Capacity
	if err := db.Model(trip).Update("available_seats", capacity).Error; err != nil {
		return 0, err
	}
	trip.AvailableSeats = &capacity
	return capacity, nil
}

// BookedSeats sums seats held by all non-cancelled bookings on a trip.
// Soft-deleted bookings still count unless their status is cancelled;
// they remain part of the audit trail and of the capacity ledger.
func BookedSeats(db *gorm.DB, tripID uint) (int, error) {
	var booked int
	err := db.Model(&models.Booking{}).
		Where("trip_id = ? AND status <> ?", tripID, models.BookingCancelled).
		Select("COALESCE(SUM(seats), 0)").
		Scan(&booked).Error
	return booked, err
}

// RemainingSeats is capacity minus booked seats, floored at zero. It is
// computed fresh from booking rows on every call; there is no counter to
// drift under concurrent cancellations.
func RemainingSeats(db *gorm.DB, trip *models.Trip) (int, error) {
	capacity, err := ResolveCapacity(db, trip)
	if err != nil {
		return 0, err
	}
	booked, err := BookedSeats(db, trip.ID)
	if err != nil {
		return 0, err
	}
	remaining := capacity - booked
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// IsFull reports whether the trip has no remaining seats.
func IsFull(db *gorm.DB, trip *models.Trip) (bool, error) {
	remaining, err := RemainingSeats(db, trip)
	if err != nil {
		return false, err
	}
	return remaining == 0, nil
}
