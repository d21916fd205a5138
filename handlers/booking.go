package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"drivehub/models"
	"drivehub/services/booking"
	"drivehub/utils"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// authedUserID pulls the user id set by the auth middleware.
func authedUserID(c *gin.Context) (string, bool) {
	val, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	userID, ok := val.(string)
	return userID, ok && userID != ""
}

// requestBaseURL reconstructs the scheme://host prefix of the request,
// honoring a forwarding proxy's protocol header.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}

// writeBookingError maps service error codes onto HTTP status codes.
func writeBookingError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch booking.CodeOf(err) {
	case booking.CodeValidation:
		status = http.StatusBadRequest
	case booking.CodeNotFound:
		status = http.StatusNotFound
	case booking.CodeConflict:
		status = http.StatusConflict
	}
	message := "Internal Server Error"
	var be *booking.BookingError
	if errors.As(err, &be) {
		message = be.Message
	}
	utils.JSONError(c, status, message, "")
}

// BookCarHandler handles POST /api/bookcar/book.
func (h *BookingHandler) BookCarHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := authedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.BookCarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	receipt, err := h.Service.BookCar(c.Request.Context(), userID, input, requestBaseURL(c))
	if err != nil {
		logger.Warn("book car failed", zap.String("carID", input.CarID), zap.Error(err))
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

// GetUserBookingsHandler handles GET /api/bookcar/bookings.
func (h *BookingHandler) GetUserBookingsHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	details, err := h.Service.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": details})
}

// UpdateBookingHandler handles PUT /api/bookcar/:bookingId.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	bookingID := c.Param("bookingId")

	var input models.UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.UpdateBooking(c.Request.Context(), bookingID, input)
	if err != nil {
		logger.Warn("update booking failed", zap.String("bookingID", bookingID), zap.Error(err))
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// ExtendBookingHandler handles PUT /api/bookcar/extend/:bookingId.
func (h *BookingHandler) ExtendBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	bookingID := c.Param("bookingId")

	var input models.ExtendBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	receipt, err := h.Service.ExtendBooking(c.Request.Context(), bookingID, input, requestBaseURL(c))
	if err != nil {
		logger.Warn("extend booking failed", zap.String("bookingID", bookingID), zap.Error(err))
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// CancelBookingHandler handles DELETE /api/bookcar/:bookingId.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	bookingID := c.Param("bookingId")

	userID, ok := authedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.CancelBooking(c.Request.Context(), bookingID, userID); err != nil {
		logger.Warn("cancel booking failed", zap.String("bookingID", bookingID), zap.Error(err))
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// ReturnCarHandler handles POST /api/bookcar/return/:bookingId.
func (h *BookingHandler) ReturnCarHandler(c *gin.Context) {
	logger := getLogger(c)
	bookingID := c.Param("bookingId")

	if err := h.Service.ReturnCar(c.Request.Context(), bookingID); err != nil {
		logger.Warn("return car failed", zap.String("bookingID", bookingID), zap.Error(err))
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Return request sent to the car owner"})
}
