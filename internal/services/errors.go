package services

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Core-operation errors. Every business rejection surfaces as one of
// these so callers can tell "no seats" apart from "misconfigured bus"
// or "wrong amount".
var (
	ErrTripNotFound              = errors.New("trip not found")
	ErrTripInactive              = errors.New("trip is not open for booking")
	ErrInvalidSeatCount          = errors.New("requested seats must be a positive number")
	ErrInsufficientSeats         = errors.New("not enough seats remaining on this trip")
	ErrCapacityUnavailable       = errors.New("bus type capacity is not configured for this trip")
	ErrBookingNotFound           = errors.New("booking not found")
	ErrCancellationWindowExpired = errors.New("booking can no longer be cancelled")
	ErrInvalidTransition         = errors.New("booking status does not allow this operation")
	ErrDuplicateCustomer         = errors.New("customer record conflicts with an existing one")
	ErrUnknownProvider           = errors.New("payment provider is not available")
	ErrPaymentInitiationFailed   = errors.New("payment initiation failed")
	ErrPaymentNotFound           = errors.New("payment not found")
	ErrAmountMismatch            = errors.New("payment amount does not match booking total")
	ErrSlugExhausted             = errors.New("could not generate a unique booking slug")
)

// isUniqueViolation reports whether err is a unique-constraint failure,
// either as gorm's translated error or as a raw postgres 23505.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return false
}
