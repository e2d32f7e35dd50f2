package routes

import (
	"github.com/gin-gonic/gin"

	"favour_express/internal/controllers"
	"favour_express/internal/middleware"
)

func PaymentRoutes(r *gin.Engine, pc *controllers.PaymentController) {
	payments := r.Group("/payments")
	{
		payments.POST("/initiate", pc.Initiate)
		payments.POST("/confirm", pc.Confirm)
		payments.POST("/:transaction_id/refund", middleware.RequireAuthWithRole("staff"), pc.Refund)
		payments.GET("/:transaction_id", pc.Get)
	}

	r.GET("/payment-methods", pc.ListMethods)
	r.POST("/payment-methods", middleware.RequireAuthWithRole("staff"), pc.RegisterMethod)
}
