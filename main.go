package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"drivehub/config"
	"drivehub/database"
	bookingRepoPkg "drivehub/database/repository/booking"
	carRepoPkg "drivehub/database/repository/car"
	showroomRepoPkg "drivehub/database/repository/showroom"
	"drivehub/handlers"
	"drivehub/middleware"
	"drivehub/routes"
	"drivehub/services/booking"
	"drivehub/services/invoice"
	"drivehub/services/notification"
	"drivehub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitNotifyClient()

	invoiceRenderer, err := invoice.NewFileRenderer(config.AppConfig.InvoiceDir)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize invoice renderer: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	carRepo := carRepoPkg.NewMongoCarRepo()
	showroomRepo := showroomRepoPkg.NewMongoShowroomRepo()

	// services.
	notifier := notification.NewRedisPublisher(utils.GetNotifyClient())
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		CarRepo:   carRepo,
		Showrooms: showroomRepo,
		Invoices:  invoiceRenderer,
		Notifier:  notifier,
		Zone:      booking.BusinessZone(config.AppConfig.BookingTZOffsetHours),
	}

	bookingHandler := handlers.NewBookingHandler(bookingService)
	routes.RegisterRoutes(router, bookingHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
