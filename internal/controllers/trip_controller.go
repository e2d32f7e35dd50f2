package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"favour_express/internal/services"
)

type TripController struct {
	Svc *services.TripService
}

// TripResponse is the outward projection of a trip: the record, its
// computed remaining seats and the route path as GeoJSON.
type TripResponse struct {
	services.TripWithSeats
	RoutePath string `json:"route_path,omitempty"`
}

func toTripResponse(t services.TripWithSeats) TripResponse {
	path, err := convertWKBToGeoJSON(t.Route.Geometry)
	if err != nil {
		logrus.WithError(err).WithField("trip_id", t.ID).Warn("bad route geometry")
	}
	return TripResponse{TripWithSeats: t, RoutePath: path}
}

// Create schedules a new trip. Staff only; the audit fields record the
// authenticated principal.
func (tc *TripController) Create(c *gin.Context) {
	var input services.CreateTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadInput(c, err)
		return
	}

	createdBy := c.GetString("name")
	if createdBy == "" {
		userID := uint(c.MustGet("user_id").(float64))
		createdBy = "staff:" + strconv.FormatUint(uint64(userID), 10)
	}

	trip, err := tc.Svc.Create(input, createdBy)
	if err != nil {
		respondError(c, err)
		return
	}

	remaining := 0
	if trip.AvailableSeats != nil {
		remaining = *trip.AvailableSeats
	}
	c.JSON(http.StatusCreated, gin.H{"trip": toTripResponse(services.TripWithSeats{Trip: *trip, RemainingSeats: remaining})})
}

// List returns trips matching the query filters, each with remaining
// seats computed fresh.
func (tc *TripController) List(c *gin.Context) {
	filters := services.TripFilters{
		OriginID:      queryUint(c, "origin"),
		DestinationID: queryUint(c, "destination"),
		RouteID:       queryUint(c, "route"),
		BusID:         queryUint(c, "bus"),
		Date:          c.Query("date"),
		TimeOfDay:     c.Query("time_of_day"),
		ActiveOnly:    c.DefaultQuery("active", "true") == "true",
	}

	trips, err := tc.Svc.List(filters)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]TripResponse, 0, len(trips))
	for _, t := range trips {
		responses = append(responses, toTripResponse(t))
	}
	c.JSON(http.StatusOK, gin.H{"trips": responses})
}

func (tc *TripController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadInput(c, err)
		return
	}

	trip, err := tc.Svc.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	report, err := tc.Svc.Seats(trip.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": toTripResponse(services.TripWithSeats{Trip: *trip, RemainingSeats: report.RemainingSeats})})
}

// Seats reports total, booked and remaining seats for a trip.
func (tc *TripController) Seats(c *gin.Context) {
	tripID := queryUint(c, "trip_id")
	if tripID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "trip_id is required", "code": "validation_error"})
		return
	}

	report, err := tc.Svc.Seats(tripID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func queryUint(c *gin.Context, key string) uint {
	v, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}
