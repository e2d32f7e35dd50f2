package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"favour_express/internal/services"
)

type BookingController struct {
	Svc *services.BookingService
}

// Create reserves seats on a trip. The heavy lifting — locking, seat
// validation, customer upsert, slug generation — happens in the service
// inside one transaction.
func (bc *BookingController) Create(c *gin.Context) {
	var input services.ReserveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadInput(c, err)
		return
	}

	booking, err := bc.Svc.Reserve(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking_id":    booking.ID,
		"booking_slug":  booking.Slug,
		"status":        booking.Status,
		"seats":         booking.Seats,
		"service_type":  booking.ServiceType,
		"total_price":   booking.TotalPrice(),
		"customer_info": booking.CustomerInfo,
	})
}

func (bc *BookingController) List(c *gin.Context) {
	bookings, err := bc.Svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (bc *BookingController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadInput(c, err)
		return
	}

	booking, err := bc.Svc.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking, "total_price": booking.TotalPrice()})
}

// Cancel releases the booking's seats if it is still inside the one-day
// cancellation window.
func (bc *BookingController) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadInput(c, err)
		return
	}

	booking, err := bc.Svc.Cancel(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// Delete soft-deletes a booking: hidden from listings, kept in storage.
func (bc *BookingController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadInput(c, err)
		return
	}

	if err := bc.Svc.SoftDelete(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
