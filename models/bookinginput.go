package models

// BookCarInput is the payload for creating a booking. All fields are
// required; the user id comes from the auth middleware, not the body.
type BookCarInput struct {
	CarID           string `json:"carId" binding:"required"`
	ShowroomID      string `json:"showroomId" binding:"required"`
	RentalStartDate string `json:"rentalStartDate" binding:"required"`
	RentalStartTime string `json:"rentalStartTime" binding:"required"`
	RentalEndDate   string `json:"rentalEndDate" binding:"required"`
	RentalEndTime   string `json:"rentalEndTime" binding:"required"`
}

// UpdateBookingInput carries optional overrides for a pre-start reschedule.
// Empty fields leave the stored value untouched.
type UpdateBookingInput struct {
	RentalStartDate string `json:"rentalStartDate"`
	RentalStartTime string `json:"rentalStartTime"`
	RentalEndDate   string `json:"rentalEndDate"`
	RentalEndTime   string `json:"rentalEndTime"`
}

// ExtendBookingInput carries the new end of an extended rental.
type ExtendBookingInput struct {
	RentalEndDate string `json:"rentalEndDate"`
	RentalEndTime string `json:"rentalEndTime"`
}
