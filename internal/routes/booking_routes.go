package routes

import (
	"github.com/gin-gonic/gin"

	"favour_express/internal/controllers"
)

func BookingRoutes(r *gin.Engine, bc *controllers.BookingController) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", bc.Create)
		bookings.GET("", bc.List)
		bookings.GET("/:id", bc.Get)
		bookings.POST("/:id/cancel", bc.Cancel)
		bookings.DELETE("/:id", bc.Delete)
	}
}
