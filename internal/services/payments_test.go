package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"favour_express/internal/models"
	"favour_express/internal/notify"
)

type stubGateway struct {
	ok    bool
	calls int
}

func (g *stubGateway) Charge(_ *models.Payment, _, _ string) bool {
	g.calls++
	return g.ok
}

type stubSender struct {
	sent []string
}

func (s *stubSender) Send(phone, _ string) bool {
	s.sent = append(s.sent, phone)
	return true
}

func paymentBookingRows(id uint, seats int, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "trip_id", "customer_info_id", "seats", "status", "service_type", "is_deleted", "booking_time"}).
		AddRow(id, 1, 9, seats, status, models.ServiceStandard, false, time.Now())
}

func expectBookingWithRoute(mock sqlmock.Sqlmock, bookingID uint, seats int, status string) {
	mock.ExpectQuery(`SELECT .* FROM "bookings"`).
		WillReturnRows(paymentBookingRows(bookingID, seats, status))
	mock.ExpectQuery(`SELECT .* FROM "trips"`).
		WillReturnRows(tripRows(1, 5, true))
	mock.ExpectQuery(`SELECT .* FROM "routes"`).
		WillReturnRows(routeRows(5, 1000, 2000))
}

func TestInitiatePaymentUnknownProvider(t *testing.T) {
	db, mock := newMockDB(t)
	gateway := &stubGateway{ok: true}
	svc := &PaymentService{DB: db, Gateway: gateway}

	mock.ExpectBegin()
	expectBookingWithRoute(mock, 2, 3, models.BookingCreated)
	mock.ExpectQuery(`SELECT .* FROM "payment_methods"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.InitiatePayment(2, "mtn", "J. Neba", "+237670000001")
	if !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("err = %v, want ErrUnknownProvider", err)
	}
	if gateway.calls != 0 {
		t.Fatalf("gateway reached %d times for unknown provider", gateway.calls)
	}
}

// A gateway rejection must roll the payment row back out of existence.
func TestInitiatePaymentGatewayFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	gateway := &stubGateway{ok: false}
	svc := &PaymentService{DB: db, Gateway: gateway}

	mock.ExpectBegin()
	expectBookingWithRoute(mock, 2, 3, models.BookingCreated)
	mock.ExpectQuery(`SELECT .* FROM "payment_methods"`).
		WillReturnRows(paymentMethodRows())
	mock.ExpectQuery(`SELECT count\(\*\) FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectRollback()

	_, err := svc.InitiatePayment(2, "mtn", "J. Neba", "+237670000001")
	if !errors.Is(err, ErrPaymentInitiationFailed) {
		t.Fatalf("err = %v, want ErrPaymentInitiationFailed", err)
	}
	if gateway.calls != 1 {
		t.Fatalf("gateway calls = %d, want 1", gateway.calls)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitiatePaymentChargesBookingTotal(t *testing.T) {
	db, mock := newMockDB(t)
	gateway := &stubGateway{ok: true}
	svc := &PaymentService{DB: db, Gateway: gateway}

	mock.ExpectBegin()
	expectBookingWithRoute(mock, 2, 3, models.BookingCreated)
	mock.ExpectQuery(`SELECT .* FROM "payment_methods"`).
		WillReturnRows(paymentMethodRows())
	mock.ExpectQuery(`SELECT count\(\*\) FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	pay, err := svc.InitiatePayment(2, "MTN", "J. Neba", "+237670000001")
	if err != nil {
		t.Fatalf("initiate error: %v", err)
	}
	// 3 seats, standard service, base price 1000
	if pay.Amount != 3000 {
		t.Fatalf("amount = %v, want 3000", pay.Amount)
	}
	if pay.Provider != models.ProviderMTN {
		t.Fatalf("provider = %q, want normalized mtn", pay.Provider)
	}
	if len(pay.TransactionID) != 32 {
		t.Fatalf("transaction id %q not 32 chars", pay.TransactionID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConfirmPaymentIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	sender := &stubSender{}
	svc := &PaymentService{DB: db, Dispatcher: &notify.Dispatcher{Sender: sender}}

	// booking already confirmed: no update, no notification
	mock.ExpectBegin()
	expectPaymentWithBooking(mock, 3000, models.BookingConfirmed)
	mock.ExpectCommit()

	pay, err := svc.ConfirmPayment("abc123")
	if err != nil {
		t.Fatalf("re-confirm error: %v", err)
	}
	if !pay.Booking.IsConfirmed() {
		t.Fatal("booking should stay confirmed")
	}
	if len(sender.sent) != 0 {
		t.Fatalf("re-confirm sent %d notifications", len(sender.sent))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConfirmPaymentTransitionsAndNotifies(t *testing.T) {
	db, mock := newMockDB(t)
	sender := &stubSender{}
	svc := &PaymentService{DB: db, Dispatcher: &notify.Dispatcher{Sender: sender}}

	mock.ExpectBegin()
	expectPaymentWithBooking(mock, 3000, models.BookingPending)
	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	pay, err := svc.ConfirmPayment("abc123")
	if err != nil {
		t.Fatalf("confirm error: %v", err)
	}
	if !pay.Booking.IsConfirmed() {
		t.Fatalf("booking status = %q, want confirmed", pay.Booking.Status)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("notifications sent = %d, want 1", len(sender.sent))
	}
}

func TestConfirmPaymentAmountMismatch(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &PaymentService{DB: db}

	// booking total is 3000 (3 seats x 1000), payment carries 2500
	mock.ExpectBegin()
	expectPaymentWithBooking(mock, 2500, models.BookingPending)
	mock.ExpectRollback()

	_, err := svc.ConfirmPayment("abc123")
	if !errors.Is(err, ErrAmountMismatch) {
		t.Fatalf("err = %v, want ErrAmountMismatch", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("booking status must not change on mismatch: %v", err)
	}
}

func TestConfirmPaymentNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &PaymentService{DB: db}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.ConfirmPayment("missing")
	if !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("err = %v, want ErrPaymentNotFound", err)
	}
}

func TestRefundPaymentSetsFlagOnce(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &PaymentService{DB: db}

	mock.ExpectQuery(`SELECT .* FROM "payments"`).
		WillReturnRows(paymentRows(3000, false))
	mock.ExpectExec(`UPDATE "payments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	pay, err := svc.RefundPayment("abc123")
	if err != nil {
		t.Fatalf("refund error: %v", err)
	}
	if !pay.IsRefunded {
		t.Fatal("payment should be refunded")
	}

	// second refund: read only, no write
	mock.ExpectQuery(`SELECT .* FROM "payments"`).
		WillReturnRows(paymentRows(3000, true))

	if _, err := svc.RefundPayment("abc123"); err != nil {
		t.Fatalf("repeat refund error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func paymentRows(amount float64, refunded bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "booking_id", "amount", "provider", "transaction_id", "payer_name", "payer_phone", "is_refunded"}).
		AddRow(1, 2, amount, models.ProviderMTN, "abc123", "J. Neba", "+237670000001", refunded)
}

func paymentMethodRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "is_active", "client_id", "client_secret"}).
		AddRow(1, models.ProviderMTN, true, "client-1", "sealed-secret")
}

// expectPaymentWithBooking mocks the confirm lookup: payment row, then the
// preloaded booking, customer, trip and route in gorm's sorted order.
func expectPaymentWithBooking(mock sqlmock.Sqlmock, amount float64, bookingStatus string) {
	mock.ExpectQuery(`SELECT .* FROM "payments"`).
		WillReturnRows(paymentRows(amount, false))
	mock.ExpectQuery(`SELECT .* FROM "bookings"`).
		WillReturnRows(paymentBookingRows(2, 3, bookingStatus))
	mock.ExpectQuery(`SELECT .* FROM "customer_infos"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "identification", "phone_number", "username"}).
			AddRow(9, "CM-001-994", "+237670000001", "jneba"))
	mock.ExpectQuery(`SELECT .* FROM "trips"`).
		WillReturnRows(tripRows(1, 5, true))
	mock.ExpectQuery(`SELECT .* FROM "routes"`).
		WillReturnRows(routeRows(5, 1000, 2000))
}
