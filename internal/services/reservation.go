package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"favour_express/internal/models"
)

// maxSlugAttempts bounds the random-suffix retry loop. Exhaustion means
// the suffix entropy assumption is broken, which is a configuration
// problem, not an expected outcome.
const maxSlugAttempts = 6

// BookingService owns booking creation and the lifecycle transitions.
type BookingService struct {
	DB *gorm.DB
}

// CustomerInput carries the passenger details attached to a reservation.
type CustomerInput struct {
	Identification string `json:"identification" binding:"required"`
	PhoneNumber    string `json:"phone_number" binding:"required"`
	Username       string `json:"username" binding:"required"`
	UserID         *uint  `json:"user_id"`
}

// ReserveInput is the request for one reservation.
type ReserveInput struct {
	TripID      uint          `json:"trip_id" binding:"required"`
	Seats       int           `json:"seats" binding:"required"`
	ServiceType string        `json:"service_type" binding:"omitempty,oneof=standard vip"`
	IsRoundTrip bool          `json:"is_round_trip"`
	Customer    CustomerInput `json:"customer_info" binding:"required"`
}

// Reserve atomically claims seats on a trip and creates the booking row.
//
// The trip row is locked FOR UPDATE for the duration of the read-then-
// insert sequence, so two concurrent reservations cannot both observe a
// stale remaining-seat count and jointly oversell the trip. The sum of
// seats over non-cancelled bookings never exceeds the trip's capacity
// after commit.
func (s *BookingService) Reserve(in ReserveInput) (*models.Booking, error) {
	if in.Seats <= 0 {
		return nil, ErrInvalidSeatCount
	}
	serviceType := in.ServiceType
	if serviceType == "" {
		serviceType = models.ServiceStandard
	}

	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var trip models.Trip
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&trip, in.TripID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTripNotFound
			}
			return err
		}
		if !trip.IsActive {
			return ErrTripInactive
		}

		remaining, err := RemainingSeats(tx, &trip)
		if err != nil {
			return err
		}
		if in.Seats > remaining {
			return ErrInsufficientSeats
		}

		customer, err := upsertCustomer(tx, in.Customer)
		if err != nil {
			return err
		}

		slug, err := generateSlug(tx, in.Customer.Identification, trip.ID)
		if err != nil {
			return err
		}

		booking = models.Booking{
			CustomerInfoID: &customer.ID,
			TripID:         trip.ID,
			Seats:          in.Seats,
			BookingTime:    time.Now(),
			Status:         models.BookingCreated,
			ServiceType:    serviceType,
			IsRoundTrip:    in.IsRoundTrip,
			Slug:           slug,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"trip_id":    booking.TripID,
		"seats":      booking.Seats,
	}).Info("booking reserved")

	if err := s.DB.Preload("Trip.Route").Preload("CustomerInfo").First(&booking, booking.ID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// upsertCustomer finds a customer by identification number or creates the
// row. Existing fields are left untouched beyond the identity match. A
// unique-constraint race against a concurrent insert is retried once with
// a fresh read before surfacing as a conflict.
func upsertCustomer(tx *gorm.DB, in CustomerInput) (models.CustomerInfo, error) {
	var customer models.CustomerInfo
	err := tx.Where("identification = ?", in.Identification).First(&customer).Error
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return customer, err
	}

	customer = models.CustomerInfo{
		Identification: in.Identification,
		PhoneNumber:    in.PhoneNumber,
		Username:       in.Username,
		UserID:         in.UserID,
	}
	err = tx.Create(&customer).Error
	if err == nil {
		return customer, nil
	}
	if !isUniqueViolation(err) {
		return customer, err
	}

	// Lost the insert race; the row exists now.
	if err := tx.Where("identification = ?", in.Identification).First(&customer).Error; err != nil {
		return customer, ErrDuplicateCustomer
	}
	return customer, nil
}

// generateSlug builds a deterministic base from the customer identity and
// trip id, then appends random suffixes until the slug is unused.
func generateSlug(tx *gorm.DB, identification string, tripID uint) (string, error) {
	base := fmt.Sprintf("%s-%d", models.Slugify(identification), tripID)
	candidate := base
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		var count int64
		if err := tx.Model(&models.Booking{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%s", base, uuid.NewString()[:6])
	}
	return "", ErrSlugExhausted
}
