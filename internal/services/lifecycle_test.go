package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"favour_express/internal/models"
)

func TestMarkPendingTransitions(t *testing.T) {
	// pending -> pending is a no-op and needs no database
	b := &models.Booking{Status: models.BookingPending}
	if err := markPending(nil, b); err != nil {
		t.Fatalf("pending no-op errored: %v", err)
	}

	for _, status := range []string{models.BookingConfirmed, models.BookingCancelled} {
		b := &models.Booking{Status: status}
		if err := markPending(nil, b); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("%s: err = %v, want ErrInvalidTransition", status, err)
		}
	}

	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	b = &models.Booking{Status: models.BookingCreated}
	b.ID = 1
	if err := markPending(db, b); err != nil {
		t.Fatalf("created->pending errored: %v", err)
	}
	if b.Status != models.BookingPending {
		t.Fatalf("status = %q, want pending", b.Status)
	}
}

func TestMarkConfirmedIsIdempotent(t *testing.T) {
	b := &models.Booking{Status: models.BookingConfirmed}
	if err := markConfirmed(nil, b); err != nil {
		t.Fatalf("re-confirm errored: %v", err)
	}

	b = &models.Booking{Status: models.BookingCancelled}
	if err := markConfirmed(nil, b); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("cancelled: err = %v, want ErrInvalidTransition", err)
	}
}

func TestCancelInsideWindow(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &BookingService{DB: db}

	bookedAt := time.Now().Add(-23*time.Hour - 59*time.Minute)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "bookings"`).
		WillReturnRows(cancellableBookingRows(4, models.BookingCreated, bookedAt))
	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, err := svc.Cancel(4)
	if err != nil {
		t.Fatalf("cancel error: %v", err)
	}
	if booking.Status != models.BookingCancelled {
		t.Fatalf("status = %q, want cancelled", booking.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCancelAfterWindowExpires(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &BookingService{DB: db}

	bookedAt := time.Now().Add(-24*time.Hour - time.Minute)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "bookings"`).
		WillReturnRows(cancellableBookingRows(4, models.BookingPending, bookedAt))
	mock.ExpectRollback()

	_, err := svc.Cancel(4)
	if !errors.Is(err, ErrCancellationWindowExpired) {
		t.Fatalf("err = %v, want ErrCancellationWindowExpired", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCancelAlreadyCancelledIsNoOp(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &BookingService{DB: db}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "bookings"`).
		WillReturnRows(cancellableBookingRows(4, models.BookingCancelled, time.Now().Add(-48*time.Hour)))
	mock.ExpectCommit()

	booking, err := svc.Cancel(4)
	if err != nil {
		t.Fatalf("cancel no-op errored: %v", err)
	}
	if booking.Status != models.BookingCancelled {
		t.Fatalf("status = %q, want cancelled", booking.Status)
	}
}

func TestCancelConfirmedBookingRejected(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &BookingService{DB: db}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "bookings"`).
		WillReturnRows(cancellableBookingRows(4, models.BookingConfirmed, time.Now()))
	mock.ExpectRollback()

	_, err := svc.Cancel(4)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestSoftDeleteSetsFlagOnce(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &BookingService{DB: db}

	mock.ExpectQuery(`SELECT .* FROM "bookings"`).
		WillReturnRows(cancellableBookingRows(4, models.BookingPending, time.Now()))
	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.SoftDelete(4); err != nil {
		t.Fatalf("soft delete error: %v", err)
	}

	// already deleted: read, no write
	rows := sqlmock.NewRows([]string{"id", "status", "booking_time", "is_deleted"}).
		AddRow(4, models.BookingPending, time.Now(), true)
	mock.ExpectQuery(`SELECT .* FROM "bookings"`).WillReturnRows(rows)

	if err := svc.SoftDelete(4); err != nil {
		t.Fatalf("repeat soft delete error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func cancellableBookingRows(id uint, status string, bookedAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "trip_id", "seats", "status", "booking_time", "is_deleted"}).
		AddRow(id, 1, 2, status, bookedAt, false)
}
