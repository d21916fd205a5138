package bookingRepo

import (
	"context"
	"errors"

	"drivehub/models"
)

var (
	// ErrNotFound is returned when no booking matches the given filter.
	ErrNotFound = errors.New("booking not found")
	// ErrCarUnavailable is returned by the transactional create when the
	// conditional availability flip matched no document.
	ErrCarUnavailable = errors.New("car is not available")
	// ErrOverlap is returned when a conflicting booking exists for the car
	// inside the guarded write.
	ErrOverlap = errors.New("overlapping booking exists")
)

// BookingRepository defines persistence operations for bookings.
//
// CreateWithCarHold and UpdateWithOverlapGuard run their read-check-write
// sequence inside a MongoDB session transaction so that two concurrent
// requests for the same car cannot both pass the overlap check.
type BookingRepository interface {
	GetByID(id string) (*models.Booking, error)
	GetByIDAndUser(id, userID string) (*models.Booking, error)
	GetByUser(userID string) ([]models.BookingDetail, error)
	FindOverlapping(carID, startDate, endDate, excludeID string) ([]models.Booking, error)
	CreateWithCarHold(ctx context.Context, booking *models.Booking) error
	UpdateWithOverlapGuard(ctx context.Context, booking *models.Booking) error
	Delete(id string) error
}
