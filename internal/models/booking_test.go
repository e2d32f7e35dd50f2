package models

import (
	"testing"
	"time"
)

func pricedBooking(seats int, serviceType string) Booking {
	return Booking{
		Seats:       seats,
		ServiceType: serviceType,
		Trip: Trip{
			Route: Route{BasePrice: 1000, VipPrice: 2000},
		},
	}
}

func TestTotalPriceByServiceType(t *testing.T) {
	if got := pricedBooking(3, ServiceStandard).TotalPrice(); got != 3000 {
		t.Fatalf("standard total = %v, want 3000", got)
	}
	if got := pricedBooking(3, ServiceVIP).TotalPrice(); got != 6000 {
		t.Fatalf("vip total = %v, want 6000", got)
	}
	// unknown tiers price as standard
	if got := pricedBooking(2, "economy").TotalPrice(); got != 2000 {
		t.Fatalf("fallback total = %v, want 2000", got)
	}
}

func TestIsCancellableAtWindowBoundary(t *testing.T) {
	bookedAt := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	b := Booking{BookingTime: bookedAt}

	if !b.IsCancellableAt(bookedAt.Add(24*time.Hour - time.Second)) {
		t.Fatal("just inside the window should be cancellable")
	}
	if b.IsCancellableAt(bookedAt.Add(24 * time.Hour)) {
		t.Fatal("exactly one day after booking is outside the window")
	}
	if b.IsCancellableAt(bookedAt.Add(25 * time.Hour)) {
		t.Fatal("a day and an hour later should not be cancellable")
	}
}
