package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"drivehub/models"
	"drivehub/services/booking"
)

// stubBookingService returns canned results per operation.
type stubBookingService struct {
	receipt *models.BookingReceipt
	details []models.BookingDetail
	booking *models.Booking
	err     error
}

func (s *stubBookingService) BookCar(ctx context.Context, userID string, in models.BookCarInput, baseURL string) (*models.BookingReceipt, error) {
	return s.receipt, s.err
}
func (s *stubBookingService) GetUserBookings(ctx context.Context, userID string) ([]models.BookingDetail, error) {
	return s.details, s.err
}
func (s *stubBookingService) UpdateBooking(ctx context.Context, bookingID string, in models.UpdateBookingInput) (*models.Booking, error) {
	return s.booking, s.err
}
func (s *stubBookingService) ExtendBooking(ctx context.Context, bookingID string, in models.ExtendBookingInput, baseURL string) (*models.BookingReceipt, error) {
	return s.receipt, s.err
}
func (s *stubBookingService) CancelBooking(ctx context.Context, bookingID, userID string) error {
	return s.err
}
func (s *stubBookingService) ReturnCar(ctx context.Context, bookingID string) error {
	return s.err
}

func newTestRouter(svc booking.BookingService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc)

	auth := func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		c.Next()
	}
	r.POST("/api/bookcar/book", auth, h.BookCarHandler)
	r.GET("/api/bookcar/bookings", auth, h.GetUserBookingsHandler)
	r.PUT("/api/bookcar/extend/:bookingId", auth, h.ExtendBookingHandler)
	r.PUT("/api/bookcar/:bookingId", auth, h.UpdateBookingHandler)
	r.DELETE("/api/bookcar/:bookingId", auth, h.CancelBookingHandler)
	r.POST("/api/bookcar/return/:bookingId", auth, h.ReturnCarHandler)
	return r
}

const validBookBody = `{
	"carId": "car-1",
	"showroomId": "show-1",
	"rentalStartDate": "2030-06-01",
	"rentalStartTime": "10:00",
	"rentalEndDate": "2030-06-03",
	"rentalEndTime": "10:00"
}`

func TestBookCarHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &stubBookingService{receipt: &models.BookingReceipt{
			Booking:    &models.Booking{ID: "b-1", TotalPrice: 300},
			InvoiceURL: "http://api.test/api/bookcar/invoices/invoice_b-1.pdf",
		}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bookcar/book", strings.NewReader(validBookBody))
		newTestRouter(svc, "user-1").ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "invoice_b-1.pdf")
	})

	t.Run("missing fields rejected by binding", func(t *testing.T) {
		svc := &stubBookingService{}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bookcar/book", strings.NewReader(`{"carId": "car-1"}`))
		newTestRouter(svc, "user-1").ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		svc := &stubBookingService{}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bookcar/book", strings.NewReader(validBookBody))
		newTestRouter(svc, "").ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("conflict maps to 409", func(t *testing.T) {
		svc := &stubBookingService{err: booking.NewConflictError("car is not available for rental")}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bookcar/book", strings.NewReader(validBookBody))
		newTestRouter(svc, "user-1").ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", booking.NewValidationError("bad dates"), http.StatusBadRequest},
		{"not found", booking.NewNotFoundError("booking not found"), http.StatusNotFound},
		{"conflict", booking.NewConflictError("overlap"), http.StatusConflict},
		{"untyped", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubBookingService{err: tt.err}
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/bookcar/b-1", nil)
			newTestRouter(svc, "user-1").ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestGetUserBookingsHandler(t *testing.T) {
	t.Run("empty result is 404", func(t *testing.T) {
		svc := &stubBookingService{err: booking.NewNotFoundError("no bookings found for user")}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/bookcar/bookings", nil)
		newTestRouter(svc, "user-1").ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns bookings", func(t *testing.T) {
		svc := &stubBookingService{details: []models.BookingDetail{
			{Booking: models.Booking{ID: "b-1"}, Car: &models.Car{ID: "car-1"}},
		}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/bookcar/bookings", nil)
		newTestRouter(svc, "user-1").ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"car-1"`)
	})
}

func TestReturnCarHandler(t *testing.T) {
	svc := &stubBookingService{}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookcar/return/b-1", nil)
	newTestRouter(svc, "user-1").ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Return request sent")
}

func TestRequestBaseURL(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "http://example.com/api/bookcar/bookings", nil)
	assert.Equal(t, "http://example.com", requestBaseURL(c))

	c.Request.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://example.com", requestBaseURL(c))
}
