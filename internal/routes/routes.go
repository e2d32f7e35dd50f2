package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"favour_express/internal/controllers"
)

// SetupRouter wires recovery, request logging and every route group onto
// a fresh engine. The caller wraps CORS and starts the server.
func SetupRouter(tc *controllers.TripController, bc *controllers.BookingController, pc *controllers.PaymentController) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	TripRoutes(r, tc)
	BookingRoutes(r, bc)
	PaymentRoutes(r, pc)

	return r
}
