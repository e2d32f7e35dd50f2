package notify

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"favour_express/internal/models"
)

// Dispatcher sends a notice through the transport and records the attempt.
// Failures are logged and swallowed: a booking or payment transaction must
// commit whether or not the SMS went out, so callers invoke this only
// after their transaction has committed and never while holding a lock.
type Dispatcher struct {
	DB     *gorm.DB
	Sender Sender
}

// Notify makes a single synchronous delivery attempt. There is no retry
// or queueing; the audit row carries the outcome.
func (d *Dispatcher) Notify(recipientPhone, message string) bool {
	sent := false
	if d.Sender != nil {
		sent = d.Sender.Send(recipientPhone, message)
	}
	if !sent {
		logrus.WithField("recipient", recipientPhone).Warn("SMS delivery failed")
	}

	if d.DB != nil {
		record := models.SMSNotification{
			RecipientPhone: recipientPhone,
			Message:        message,
			SentTime:       time.Now(),
			IsSent:         sent,
		}
		if err := d.DB.Create(&record).Error; err != nil {
			logrus.WithError(err).Warn("could not record SMS notification")
		}
	}
	return sent
}
