package services

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"favour_express/internal/models"
)

// Get returns a booking by id with trip and customer loaded. Soft-deleted
// bookings are invisible here and in List.
func (s *BookingService) Get(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("Trip.Route").Preload("CustomerInfo").
		Where("is_deleted = ?", false).
		First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// List returns all visible bookings, newest first.
func (s *BookingService) List() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Preload("Trip.Route").Preload("CustomerInfo").
		Where("is_deleted = ?", false).
		Order("booking_time DESC").
		Find(&bookings).Error
	return bookings, err
}

// Cancel moves a booking to cancelled, releasing its seats back to the
// trip. Only non-terminal bookings inside the one-day window qualify.
// Cancelling an already-cancelled booking is a no-op success.
func (s *BookingService) Cancel(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("is_deleted = ?", false).First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if booking.IsCancelled() {
			return nil
		}
		if booking.IsConfirmed() {
			return ErrInvalidTransition
		}
		if !booking.IsCancellableAt(time.Now()) {
			return ErrCancellationWindowExpired
		}
		booking.Status = models.BookingCancelled
		return tx.Save(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	logrus.WithField("booking_id", booking.ID).Info("booking cancelled")
	return &booking, nil
}

// SoftDelete hides a booking from listings. The row stays in storage for
// audit, and its seats stay counted unless the status is cancelled.
func (s *BookingService) SoftDelete(id uint) error {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	if booking.IsDeleted {
		return nil
	}
	booking.IsDeleted = true
	return s.DB.Save(&booking).Error
}

// markPending records that a payment attempt was initiated. Valid from
// created or pending; pending to pending is a no-op.
func markPending(tx *gorm.DB, booking *models.Booking) error {
	switch booking.Status {
	case models.BookingCreated:
		booking.Status = models.BookingPending
		return tx.Model(booking).Update("status", models.BookingPending).Error
	case models.BookingPending:
		return nil
	default:
		return ErrInvalidTransition
	}
}

// markConfirmed finalizes a booking after payment confirmation.
// Re-confirming a confirmed booking is a no-op so duplicate provider
// callbacks stay harmless.
func markConfirmed(tx *gorm.DB, booking *models.Booking) error {
	switch booking.Status {
	case models.BookingConfirmed:
		return nil
	case models.BookingCreated, models.BookingPending:
		booking.Status = models.BookingConfirmed
		return tx.Model(booking).Update("status", models.BookingConfirmed).Error
	default:
		return ErrInvalidTransition
	}
}
