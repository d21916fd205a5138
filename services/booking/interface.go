package booking

import (
	"context"
	"time"

	bookingRepo "drivehub/database/repository/booking"
	carRepo "drivehub/database/repository/car"
	showroomRepo "drivehub/database/repository/showroom"
	"drivehub/models"
	"drivehub/services/invoice"
	"drivehub/services/notification"
)

// BookingService defines the booking lifecycle operations.
//
// baseURL is the scheme://host prefix of the current request, used to derive
// the invoice download URL.
type BookingService interface {
	BookCar(ctx context.Context, userID string, in models.BookCarInput, baseURL string) (*models.BookingReceipt, error)
	GetUserBookings(ctx context.Context, userID string) ([]models.BookingDetail, error)
	UpdateBooking(ctx context.Context, bookingID string, in models.UpdateBookingInput) (*models.Booking, error)
	ExtendBooking(ctx context.Context, bookingID string, in models.ExtendBookingInput, baseURL string) (*models.BookingReceipt, error)
	CancelBooking(ctx context.Context, bookingID, userID string) error
	ReturnCar(ctx context.Context, bookingID string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	CarRepo   carRepo.CarRepository
	Showrooms showroomRepo.ShowroomRepository
	Invoices  invoice.Renderer
	Notifier  notification.Publisher
	Zone      *time.Location

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (svc *DefaultBookingService) now() time.Time {
	if svc.Now != nil {
		return svc.Now().In(svc.Zone)
	}
	return time.Now().In(svc.Zone)
}
