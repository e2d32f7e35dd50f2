package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"favour_express/internal/services"
)

// respondError maps a core-operation error to a stable outward code so
// callers can tell "no seats" from "misconfigured bus" from "wrong
// amount" without parsing messages.
func respondError(c *gin.Context, err error) {
	type mapping struct {
		status int
		code   string
	}
	table := []struct {
		err error
		m   mapping
	}{
		{services.ErrTripNotFound, mapping{http.StatusNotFound, "trip_not_found"}},
		{services.ErrBookingNotFound, mapping{http.StatusNotFound, "booking_not_found"}},
		{services.ErrPaymentNotFound, mapping{http.StatusNotFound, "payment_not_found"}},
		{services.ErrInvalidSeatCount, mapping{http.StatusBadRequest, "validation_error"}},
		{services.ErrTripInactive, mapping{http.StatusConflict, "trip_inactive"}},
		{services.ErrInsufficientSeats, mapping{http.StatusConflict, "insufficient_seats"}},
		{services.ErrCapacityUnavailable, mapping{http.StatusUnprocessableEntity, "capacity_unavailable"}},
		{services.ErrCancellationWindowExpired, mapping{http.StatusConflict, "cancellation_window_expired"}},
		{services.ErrInvalidTransition, mapping{http.StatusConflict, "invalid_transition"}},
		{services.ErrDuplicateCustomer, mapping{http.StatusConflict, "duplicate_customer"}},
		{services.ErrUnknownProvider, mapping{http.StatusBadRequest, "unknown_provider"}},
		{services.ErrPaymentInitiationFailed, mapping{http.StatusPaymentRequired, "payment_initiation_failed"}},
		{services.ErrAmountMismatch, mapping{http.StatusConflict, "amount_mismatch"}},
	}

	for _, entry := range table {
		if errors.Is(err, entry.err) {
			c.JSON(entry.m.status, gin.H{"error": err.Error(), "code": entry.m.code})
			return
		}
	}

	logrus.WithError(err).Error("unhandled core error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": "internal_error"})
}

// respondBadInput is for payloads rejected before core logic runs.
func respondBadInput(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error(), "code": "validation_error"})
}
