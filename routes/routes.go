package routes

import (
	"net/http"
	"time"

	"drivehub/config"
	"drivehub/handlers"
	"drivehub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	bookingGroup := r.Group("/api/bookcar")
	{
		// Rendered invoices are public downloads addressed by booking id.
		bookingGroup.Static("/invoices", config.AppConfig.InvoiceDir)

		authed := bookingGroup.Group("")
		authed.Use(middleware.JWTAuthMiddleware())
		authed.POST("/book", bh.BookCarHandler)
		authed.GET("/bookings", bh.GetUserBookingsHandler)
		authed.PUT("/extend/:bookingId", bh.ExtendBookingHandler)
		authed.PUT("/:bookingId", bh.UpdateBookingHandler)
		authed.DELETE("/:bookingId", bh.CancelBookingHandler)
		authed.POST("/return/:bookingId", bh.ReturnCarHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm DriveHub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, bh)
}
