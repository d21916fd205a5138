package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "drivehub/database/repository/booking"
	carRepo "drivehub/database/repository/car"
	showroomRepo "drivehub/database/repository/showroom"
	"drivehub/models"
	"drivehub/services/invoice"
	"drivehub/services/notification"
	"drivehub/utils"
)

// InvoiceURL derives the public download URL for a booking's invoice.
func InvoiceURL(baseURL, bookingID string) string {
	return fmt.Sprintf("%s/api/bookcar/invoices/%s", baseURL, invoice.FileName(bookingID))
}

// BookCar validates the request, checks the car and the overlap window, and
// creates the booking. The overlap re-check and the availability flip run
// atomically in the repository; the pre-checks here only produce friendlier
// errors on the common paths.
func (svc *DefaultBookingService) BookCar(ctx context.Context, userID string, in models.BookCarInput, baseURL string) (*models.BookingReceipt, error) {
	logger := utils.GetLogger()

	car, err := svc.CarRepo.GetByID(in.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrNotFound) {
			return nil, NewNotFoundError("car not found")
		}
		return nil, NewInternalError(err.Error())
	}
	if car.Availability != models.CarAvailable {
		return nil, NewConflictError("car is not available for rental")
	}

	if _, err := svc.Showrooms.GetByID(in.ShowroomID); err != nil {
		if errors.Is(err, showroomRepo.ErrNotFound) {
			return nil, NewNotFoundError("showroom not found")
		}
		return nil, NewInternalError(err.Error())
	}

	start, err := ParseRentalStamp(in.RentalStartDate, in.RentalStartTime, svc.Zone)
	if err != nil {
		return nil, NewValidationError("invalid rental start date or time")
	}
	end, err := ParseRentalStamp(in.RentalEndDate, in.RentalEndTime, svc.Zone)
	if err != nil {
		return nil, NewValidationError("invalid rental end date or time")
	}
	if start.Before(svc.now()) {
		return nil, NewValidationError("rental start is in the past")
	}
	if end.Before(start) {
		return nil, NewValidationError("rental end precedes rental start")
	}

	existing, err := svc.Repo.FindOverlapping(in.CarID, in.RentalStartDate, in.RentalEndDate, "")
	if err != nil {
		return nil, NewInternalError(err.Error())
	}
	if len(existing) > 0 {
		return nil, NewConflictError("car is already booked for the selected dates")
	}

	daysRented := DaysRented(start, end)
	booking := &models.Booking{
		ID:              uuid.New().String(),
		CarID:           in.CarID,
		UserID:          userID,
		ShowroomID:      in.ShowroomID,
		RentalStartDate: in.RentalStartDate,
		RentalStartTime: FormatClock12(start),
		RentalEndDate:   in.RentalEndDate,
		RentalEndTime:   FormatClock12(end),
		TotalPrice:      TotalPrice(daysRented, car.RentRate),
	}

	if err := svc.Repo.CreateWithCarHold(ctx, booking); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrOverlap):
			return nil, NewConflictError("car is already booked for the selected dates")
		case errors.Is(err, bookingRepo.ErrCarUnavailable):
			return nil, NewConflictError("car is not available for rental")
		default:
			return nil, NewInternalError(err.Error())
		}
	}

	if _, err := svc.Invoices.CreateInvoice(ctx, booking); err != nil {
		// The booking is committed; a missing artifact is recoverable.
		logger.Warn("invoice generation failed", zap.String("bookingID", booking.ID), zap.Error(err))
	}

	return &models.BookingReceipt{
		Booking:    booking,
		InvoiceURL: InvoiceURL(baseURL, booking.ID),
	}, nil
}

// GetUserBookings lists a user's bookings with car and showroom expanded.
// An empty result is reported as not found.
func (svc *DefaultBookingService) GetUserBookings(ctx context.Context, userID string) ([]models.BookingDetail, error) {
	details, err := svc.Repo.GetByUser(userID)
	if err != nil {
		return nil, NewInternalError(err.Error())
	}
	if len(details) == 0 {
		return nil, NewNotFoundError("no bookings found for user")
	}
	return details, nil
}

// UpdateBooking reschedules a booking before its rental has started. The new
// start must move strictly later than the current one.
func (svc *DefaultBookingService) UpdateBooking(ctx context.Context, bookingID string, in models.UpdateBookingInput) (*models.Booking, error) {
	booking, err := svc.Repo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewNotFoundError("booking not found")
		}
		return nil, NewInternalError(err.Error())
	}

	prevStart, err := ParseRentalStamp(booking.RentalStartDate, booking.RentalStartTime, svc.Zone)
	if err != nil {
		return nil, NewInternalError(fmt.Sprintf("stored rental start is unreadable: %v", err))
	}
	if !svc.now().Before(prevStart) {
		return nil, NewConflictError("cannot modify a rental that has already started")
	}

	startDate, startTime := booking.RentalStartDate, booking.RentalStartTime
	endDate, endTime := booking.RentalEndDate, booking.RentalEndTime
	if in.RentalStartDate != "" {
		startDate = in.RentalStartDate
	}
	if in.RentalStartTime != "" {
		startTime = in.RentalStartTime
	}
	if in.RentalEndDate != "" {
		endDate = in.RentalEndDate
	}
	if in.RentalEndTime != "" {
		endTime = in.RentalEndTime
	}

	newStart, err := ParseRentalStamp(startDate, startTime, svc.Zone)
	if err != nil {
		return nil, NewValidationError("invalid rental start date or time")
	}
	newEnd, err := ParseRentalStamp(endDate, endTime, svc.Zone)
	if err != nil {
		return nil, NewValidationError("invalid rental end date or time")
	}
	if !newEnd.After(newStart) {
		return nil, NewValidationError("rental end must be after rental start")
	}
	if !newStart.After(prevStart) {
		return nil, NewValidationError("new rental start must be later than the current start")
	}

	car, err := svc.CarRepo.GetByID(booking.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrNotFound) {
			return nil, NewNotFoundError("car not found")
		}
		return nil, NewInternalError(err.Error())
	}

	booking.RentalStartDate = startDate
	booking.RentalStartTime = FormatClock12(newStart)
	booking.RentalEndDate = endDate
	booking.RentalEndTime = FormatClock12(newEnd)
	booking.TotalPrice = TotalPrice(DaysRented(newStart, newEnd), car.RentRate)

	if err := svc.Repo.UpdateWithOverlapGuard(ctx, booking); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrOverlap):
			return nil, NewConflictError("car is already booked for the selected dates")
		case errors.Is(err, bookingRepo.ErrNotFound):
			return nil, NewNotFoundError("booking not found")
		default:
			return nil, NewInternalError(err.Error())
		}
	}
	return booking, nil
}

// ExtendBooking pushes the rental end later, before the rental has started,
// and regenerates the invoice.
func (svc *DefaultBookingService) ExtendBooking(ctx context.Context, bookingID string, in models.ExtendBookingInput, baseURL string) (*models.BookingReceipt, error) {
	logger := utils.GetLogger()

	booking, err := svc.Repo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewNotFoundError("booking not found")
		}
		return nil, NewInternalError(err.Error())
	}

	start, err := ParseRentalStamp(booking.RentalStartDate, booking.RentalStartTime, svc.Zone)
	if err != nil {
		return nil, NewInternalError(fmt.Sprintf("stored rental start is unreadable: %v", err))
	}
	if !svc.now().Before(start) {
		return nil, NewConflictError("cannot extend a rental that has already started")
	}

	endDate := booking.RentalEndDate
	if in.RentalEndDate != "" {
		if _, err := ParseRentalDate(in.RentalEndDate, svc.Zone); err != nil {
			return nil, NewValidationError("invalid rental end date")
		}
		endDate = in.RentalEndDate
	}
	endTime := booking.RentalEndTime
	if in.RentalEndTime != "" {
		if !ValidClock24(in.RentalEndTime) {
			return nil, NewValidationError("rental end time must be in HH:MM format")
		}
		endTime = in.RentalEndTime
	}

	end, err := ParseRentalStamp(endDate, endTime, svc.Zone)
	if err != nil {
		return nil, NewValidationError("invalid rental end date or time")
	}
	if !end.After(start) {
		return nil, NewValidationError("rental end must be after rental start")
	}

	car, err := svc.CarRepo.GetByID(booking.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrNotFound) {
			return nil, NewNotFoundError("car not found")
		}
		return nil, NewInternalError(err.Error())
	}

	price := TotalPrice(DaysRented(start, end), car.RentRate)
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, NewValidationError("computed rental price is not a positive number")
	}

	booking.RentalEndDate = endDate
	booking.RentalEndTime = FormatClock12(end)
	booking.TotalPrice = price

	if err := svc.Repo.UpdateWithOverlapGuard(ctx, booking); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrOverlap):
			return nil, NewConflictError("car is already booked for the selected dates")
		case errors.Is(err, bookingRepo.ErrNotFound):
			return nil, NewNotFoundError("booking not found")
		default:
			return nil, NewInternalError(err.Error())
		}
	}

	if _, err := svc.Invoices.CreateInvoice(ctx, booking); err != nil {
		logger.Warn("invoice regeneration failed", zap.String("bookingID", booking.ID), zap.Error(err))
	}

	return &models.BookingReceipt{
		Booking:    booking,
		InvoiceURL: InvoiceURL(baseURL, booking.ID),
	}, nil
}

// CancelBooking releases the car and hard-deletes the booking. Only the
// booking's owner may cancel; anyone else sees not found. The car release is
// best-effort and does not block the delete.
func (svc *DefaultBookingService) CancelBooking(ctx context.Context, bookingID, userID string) error {
	logger := utils.GetLogger()

	booking, err := svc.Repo.GetByIDAndUser(bookingID, userID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return NewNotFoundError("booking not found")
		}
		return NewInternalError(err.Error())
	}

	if err := svc.CarRepo.SetAvailability(booking.CarID, models.CarAvailable); err != nil {
		logger.Warn("failed to release car on cancellation",
			zap.String("carID", booking.CarID), zap.String("bookingID", booking.ID), zap.Error(err))
	}

	if err := svc.Repo.Delete(booking.ID); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return NewNotFoundError("booking not found")
		}
		return NewInternalError(err.Error())
	}
	return nil
}

// ReturnCar notifies the car's owner that a return was requested. Delivery
// is fire-and-forget and nothing is persisted here; return completion is
// handled by the owner's approval flow.
func (svc *DefaultBookingService) ReturnCar(ctx context.Context, bookingID string) error {
	logger := utils.GetLogger()

	booking, err := svc.Repo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return NewNotFoundError("booking not found")
		}
		return NewInternalError(err.Error())
	}
	car, err := svc.CarRepo.GetByID(booking.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrNotFound) {
			return NewNotFoundError("car not found")
		}
		return NewInternalError(err.Error())
	}

	notice := models.ReturnNotice{
		BookingID: booking.ID,
		CarID:     car.ID,
		UserID:    booking.UserID,
		Message:   "A renter has requested to return your car. Please review and approve the return.",
		SentAt:    time.Now(),
	}
	channel := notification.ChannelForUser(car.UserID)
	if err := svc.Notifier.Publish(ctx, channel, notice); err != nil {
		logger.Warn("return notification publish failed",
			zap.String("channel", channel), zap.String("bookingID", booking.ID), zap.Error(err))
	}
	return nil
}
