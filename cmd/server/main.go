package main

import (
	"log"
	"net/http"
	"time"

	"favour_express/internal/config"
	"favour_express/internal/controllers"
	"favour_express/internal/logger"
	"favour_express/internal/middleware"
	"favour_express/internal/notify"
	"favour_express/internal/payment"
	"favour_express/internal/routes"
	"favour_express/internal/services"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()
	cfg := config.Load()

	secrets, err := config.NewSecretBox(cfg.SecretKey)
	if err != nil {
		log.Printf("secret sealing disabled: %v", err)
	}

	dispatcher := &notify.Dispatcher{
		DB:     config.DB,
		Sender: notify.NewClient(cfg),
	}
	gateway := payment.NewSimulatedGateway(cfg.GatewaySuccessRate, time.Now().UnixNano())

	tripSvc := &services.TripService{DB: config.DB}
	bookingSvc := &services.BookingService{DB: config.DB}
	paymentSvc := &services.PaymentService{
		DB:         config.DB,
		Gateway:    gateway,
		Dispatcher: dispatcher,
		Secrets:    secrets,
	}

	r := routes.SetupRouter(
		&controllers.TripController{Svc: tripSvc},
		&controllers.BookingController{Svc: bookingSvc},
		&controllers.PaymentController{Svc: paymentSvc},
	)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at %s", cfg.ServerAddr)
	log.Fatal(http.ListenAndServe(cfg.ServerAddr, handler))
}
