package routes

import (
	"github.com/gin-gonic/gin"

	"favour_express/internal/controllers"
	"favour_express/internal/middleware"
)

func TripRoutes(r *gin.Engine, tc *controllers.TripController) {
	trips := r.Group("/trips")
	{
		trips.GET("", tc.List)
		trips.GET("/:id", tc.Get)
		trips.POST("", middleware.RequireAuthWithRole("staff"), tc.Create)
	}

	r.GET("/available-seats", tc.Seats)
}
