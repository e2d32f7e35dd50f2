package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"favour_express/internal/config"
	"favour_express/internal/models"
	"favour_express/internal/notify"
	"favour_express/internal/payment"
)

const maxTransactionIDAttempts = 6

// PaymentService links payments to bookings and drives the
// confirmation/refund transitions.
type PaymentService struct {
	DB         *gorm.DB
	Gateway    payment.Gateway
	Dispatcher *notify.Dispatcher
	Secrets    *config.SecretBox
}

// RegisterMethod stores a payment method with its client secret sealed.
// Re-registering an existing provider refreshes its credentials.
func (s *PaymentService) RegisterMethod(name, clientID, clientSecret string, active bool) (*models.PaymentMethod, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	sealed := clientSecret
	if s.Secrets != nil {
		var err error
		sealed, err = s.Secrets.Seal(clientSecret)
		if err != nil {
			return nil, err
		}
	}

	var method models.PaymentMethod
	err := s.DB.Where(models.PaymentMethod{Name: name}).FirstOrCreate(&method).Error
	if err != nil {
		return nil, err
	}
	method.ClientID = clientID
	method.ClientSecret = sealed
	method.IsActive = active
	if err := s.DB.Save(&method).Error; err != nil {
		return nil, err
	}
	return &method, nil
}

// credentials unseals a method's client secret for the gateway call.
func (s *PaymentService) credentials(method models.PaymentMethod) (string, string) {
	if s.Secrets == nil {
		return method.ClientID, method.ClientSecret
	}
	secret, err := s.Secrets.Open(method.ClientSecret)
	if err != nil {
		logrus.WithError(err).WithField("provider", method.Name).Warn("could not unseal provider secret")
		return method.ClientID, ""
	}
	return method.ClientID, secret
}

// InitiatePayment computes the amount due from the booking, creates the
// payment record and hands it to the gateway. A gateway rejection rolls
// the whole attempt back so no payment row is left dangling. On success
// the booking moves to pending.
func (s *PaymentService) InitiatePayment(bookingID uint, provider, payerName, payerPhone string) (*models.Payment, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))

	var pay models.Payment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		err := tx.Preload("Trip.Route").
			Where("is_deleted = ?", false).
			First(&booking, bookingID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		var method models.PaymentMethod
		err = tx.Where("name = ? AND is_active = ?", provider, true).First(&method).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownProvider
			}
			return err
		}

		txID, err := generateTransactionID(tx)
		if err != nil {
			return err
		}

		pay = models.Payment{
			BookingID:     &booking.ID,
			Amount:        booking.TotalPrice(),
			Provider:      provider,
			TransactionID: txID,
			PayerName:     payerName,
			PayerPhone:    payerPhone,
			PaymentTime:   time.Now(),
		}
		if err := tx.Create(&pay).Error; err != nil {
			return err
		}

		clientID, clientSecret := s.credentials(method)
		if !s.Gateway.Charge(&pay, clientID, clientSecret) {
			return ErrPaymentInitiationFailed
		}

		return markPending(tx, &booking)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"booking_id":     bookingID,
		"transaction_id": pay.TransactionID,
		"amount":         pay.Amount,
	}).Info("payment initiated")
	return &pay, nil
}

// ConfirmPayment looks a payment up by transaction id, validates the
// amount against the booking's current total and confirms the booking.
// Calling it again for the same transaction id is a no-op success, so
// duplicated provider callbacks cannot double-fire side effects.
func (s *PaymentService) ConfirmPayment(transactionID string) (*models.Payment, error) {
	var pay models.Payment
	transitioned := false

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Preload("Booking.Trip.Route").Preload("Booking.CustomerInfo").
			Where("transaction_id = ?", transactionID).
			First(&pay).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}
		if pay.Booking == nil {
			return nil
		}
		if pay.Amount != pay.Booking.TotalPrice() {
			return ErrAmountMismatch
		}
		wasConfirmed := pay.Booking.IsConfirmed()
		if err := markConfirmed(tx, pay.Booking); err != nil {
			return err
		}
		transitioned = !wasConfirmed
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Notification happens outside the transaction and only on the first
	// confirmation; re-confirms stay silent.
	if transitioned && s.Dispatcher != nil && pay.Booking.CustomerInfo != nil {
		message := fmt.Sprintf("Your booking (ID: %d) has been confirmed. Thank you for choosing our service!", pay.Booking.ID)
		s.Dispatcher.Notify(pay.Booking.CustomerInfo.PhoneNumber, message)
	}
	return &pay, nil
}

// RefundPayment flips the refunded flag once. Refunding an already
// refunded payment is a no-op.
func (s *PaymentService) RefundPayment(transactionID string) (*models.Payment, error) {
	var pay models.Payment
	err := s.DB.Where("transaction_id = ?", transactionID).First(&pay).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if pay.IsRefunded {
		return &pay, nil
	}
	pay.IsRefunded = true
	if err := s.DB.Model(&pay).Update("is_refunded", true).Error; err != nil {
		return nil, err
	}
	logrus.WithField("transaction_id", transactionID).Info("payment refunded")
	return &pay, nil
}

// GetByTransactionID returns a payment with its booking loaded.
func (s *PaymentService) GetByTransactionID(transactionID string) (*models.Payment, error) {
	var pay models.Payment
	err := s.DB.Preload("Booking").
		Where("transaction_id = ?", transactionID).
		First(&pay).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &pay, nil
}

// ListMethods returns the active payment methods. Secrets never leave the
// model's json-excluded fields.
func (s *PaymentService) ListMethods() ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	err := s.DB.Where("is_active = ?", true).Order("name").Find(&methods).Error
	return methods, err
}

// generateTransactionID draws random ids until one is unused. Collisions
// are vanishingly rare; the bound guards against a misbehaving store.
func generateTransactionID(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < maxTransactionIDAttempts; attempt++ {
		candidate := strings.ReplaceAll(uuid.NewString(), "-", "")
		var count int64
		if err := tx.Model(&models.Payment{}).Where("transaction_id = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique transaction id")
}
