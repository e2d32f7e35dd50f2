package services

import (
	"errors"
	"time"

	"github.com/jinzhu/now"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"favour_express/internal/models"
)

// TripService owns trip scheduling and the seat-availability reads.
type TripService struct {
	DB *gorm.DB
}

// CreateTripInput is the staff request to schedule a trip.
type CreateTripInput struct {
	RouteID       uint      `json:"route_id" binding:"required"`
	BusID         uint      `json:"bus_id" binding:"required"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
	ArrivalTime   time.Time `json:"arrival_time" binding:"required"`
	Date          string    `json:"date" binding:"required"`
	TimeOfDay     string    `json:"time_of_day" binding:"required,oneof=morning evening"`
}

// TripFilters narrows ListTrips. Zero values mean "no filter".
type TripFilters struct {
	OriginID      uint
	DestinationID uint
	RouteID       uint
	BusID         uint
	Date          string
	TimeOfDay     string
	ActiveOnly    bool
}

// TripWithSeats decorates a trip with its computed remaining seats.
type TripWithSeats struct {
	models.Trip
	RemainingSeats int `json:"remaining_seats"`
}

// SeatReport is the per-trip availability summary.
type SeatReport struct {
	TripID         uint `json:"trip_id"`
	TotalSeats     int  `json:"total_seats"`
	BookedSeats    int  `json:"booked_seats"`
	RemainingSeats int  `json:"remaining_seats"`
	IsFull         bool `json:"is_full"`
}

// Create schedules a trip. The seat-capacity snapshot is resolved from
// the bus type here, at creation time, and never rewritten afterwards;
// swapping the bus later does not silently change the trip's capacity.
func (s *TripService) Create(in CreateTripInput, createdBy string) (*models.Trip, error) {
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, err
	}

	var route models.Route
	if err := s.DB.First(&route, in.RouteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	var bus models.Bus
	if err := s.DB.Preload("BusType").First(&bus, in.BusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCapacityUnavailable
		}
		return nil, err
	}
	if bus.BusType.ID == 0 || bus.BusType.Capacity <= 0 {
		return nil, ErrCapacityUnavailable
	}
	capacity := bus.BusType.Capacity

	trip := models.Trip{
		RouteID:        in.RouteID,
		BusID:          in.BusID,
		DepartureTime:  in.DepartureTime,
		ArrivalTime:    in.ArrivalTime,
		Date:           &date,
		TimeOfDay:      in.TimeOfDay,
		AvailableSeats: &capacity,
		IsActive:       true,
		CreatedBy:      createdBy,
		UpdatedBy:      createdBy,
	}
	if err := s.DB.Create(&trip).Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"trip_id":  trip.ID,
		"route_id": trip.RouteID,
		"capacity": capacity,
	}).Info("trip created")

	if err := s.DB.Preload("Route.Origin").Preload("Route.Destination").Preload("Bus.BusType").
		First(&trip, trip.ID).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

// Get returns one trip with associations loaded.
func (s *TripService) Get(id uint) (*models.Trip, error) {
	var trip models.Trip
	err := s.DB.Preload("Route.Origin").Preload("Route.Destination").Preload("Bus.BusType").
		First(&trip, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return &trip, nil
}

// List returns trips matching the filters, each with remaining seats
// computed from current booking rows. A trip whose bus type is
// misconfigured reports zero remaining seats instead of failing the
// listing.
func (s *TripService) List(f TripFilters) ([]TripWithSeats, error) {
	q := s.DB.Model(&models.Trip{}).
		Preload("Route.Origin").Preload("Route.Destination").Preload("Bus.BusType")

	if f.OriginID != 0 || f.DestinationID != 0 {
		q = q.Joins("JOIN routes ON routes.id = trips.route_id")
		if f.OriginID != 0 {
			q = q.Where("routes.origin_id = ?", f.OriginID)
		}
		if f.DestinationID != 0 {
			q = q.Where("routes.destination_id = ?", f.DestinationID)
		}
	}
	if f.RouteID != 0 {
		q = q.Where("trips.route_id = ?", f.RouteID)
	}
	if f.BusID != 0 {
		q = q.Where("trips.bus_id = ?", f.BusID)
	}
	if f.Date != "" {
		parsed, err := time.Parse("2006-01-02", f.Date)
		if err != nil {
			return nil, err
		}
		day := now.New(parsed)
		q = q.Where("trips.date BETWEEN ? AND ?", day.BeginningOfDay(), day.EndOfDay())
	}
	if f.TimeOfDay != "" {
		q = q.Where("trips.time_of_day = ?", f.TimeOfDay)
	}
	if f.ActiveOnly {
		q = q.Where("trips.is_active = ?", true)
	}

	var trips []models.Trip
	if err := q.Order("trips.departure_time").Find(&trips).Error; err != nil {
		return nil, err
	}

	out := make([]TripWithSeats, 0, len(trips))
	for i := range trips {
		remaining, err := RemainingSeats(s.DB, &trips[i])
		if err != nil {
			if !errors.Is(err, ErrCapacityUnavailable) {
				return nil, err
			}
			remaining = 0
		}
		out = append(out, TripWithSeats{Trip: trips[i], RemainingSeats: remaining})
	}
	return out, nil
}

// Seats builds the availability report for one trip.
func (s *TripService) Seats(tripID uint) (*SeatReport, error) {
	var trip models.Trip
	if err := s.DB.First(&trip, tripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	total, err := ResolveCapacity(s.DB, &trip)
	if err != nil {
		return nil, err
	}
	booked, err := BookedSeats(s.DB, trip.ID)
	if err != nil {
		return nil, err
	}
	remaining := total - booked
	if remaining < 0 {
		remaining = 0
	}
	return &SeatReport{
		TripID:         trip.ID,
		TotalSeats:     total,
		BookedSeats:    booked,
		RemainingSeats: remaining,
		IsFull:         remaining == 0,
	}, nil
}
