package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"favour_express/internal/services"
)

type PaymentController struct {
	Svc *services.PaymentService
}

type initiatePaymentInput struct {
	BookingID  uint   `json:"booking_id" binding:"required"`
	Provider   string `json:"provider" binding:"required,oneof=mtn orange MTN ORANGE Mtn Orange"`
	PayerName  string `json:"payer_name" binding:"required"`
	PayerPhone string `json:"payer_phone" binding:"required"`
}

// Initiate creates a payment for a booking at its current total price and
// charges it through the gateway.
func (pc *PaymentController) Initiate(c *gin.Context) {
	var input initiatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadInput(c, err)
		return
	}

	pay, err := pc.Svc.InitiatePayment(input.BookingID, input.Provider, input.PayerName, input.PayerPhone)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Payment initiated successfully",
		"transaction_id": pay.TransactionID,
		"amount":         pay.Amount,
		"provider":       pay.Provider,
	})
}

type confirmPaymentInput struct {
	TransactionID string `json:"transaction_id" binding:"required"`
}

// Confirm verifies a payment after the provider reports it made. Safe to
// call repeatedly for the same transaction id.
func (pc *PaymentController) Confirm(c *gin.Context) {
	var input confirmPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadInput(c, err)
		return
	}

	pay, err := pc.Svc.ConfirmPayment(input.TransactionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Payment confirmed successfully",
		"transaction_id": pay.TransactionID,
		"amount":         pay.Amount,
		"provider":       pay.Provider,
	})
}

// Refund marks a payment refunded; repeat calls are no-ops.
func (pc *PaymentController) Refund(c *gin.Context) {
	pay, err := pc.Svc.RefundPayment(c.Param("transaction_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": pay})
}

func (pc *PaymentController) Get(c *gin.Context) {
	pay, err := pc.Svc.GetByTransactionID(c.Param("transaction_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": pay})
}

// ListMethods returns the active providers. Credentials never serialize.
func (pc *PaymentController) ListMethods(c *gin.Context) {
	methods, err := pc.Svc.ListMethods()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment_methods": methods})
}

type registerMethodInput struct {
	Name         string `json:"name" binding:"required,oneof=mtn orange"`
	ClientID     string `json:"client_id" binding:"required"`
	ClientSecret string `json:"client_secret" binding:"required"`
	IsActive     *bool  `json:"is_active"`
}

// RegisterMethod configures a provider. Staff only; the client secret is
// sealed before it touches storage.
func (pc *PaymentController) RegisterMethod(c *gin.Context) {
	var input registerMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadInput(c, err)
		return
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	method, err := pc.Svc.RegisterMethod(input.Name, input.ClientID, input.ClientSecret, active)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"payment_method": method})
}
