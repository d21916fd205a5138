package models

import "time"

// Booking represents a confirmed car rental record.
//
// Dates are stored as "YYYY-MM-DD" strings so that lexicographic comparison
// matches chronological order in range queries. Times are stored as 12-hour
// display strings ("3:04 PM") after input validation.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	CarID           string    `bson:"car_id" json:"carId"`
	UserID          string    `bson:"user_id" json:"userId"`
	ShowroomID      string    `bson:"showroom_id" json:"showroomId"`
	RentalStartDate string    `bson:"rental_start_date" json:"rentalStartDate"`
	RentalStartTime string    `bson:"rental_start_time" json:"rentalStartTime"`
	RentalEndDate   string    `bson:"rental_end_date" json:"rentalEndDate"`
	RentalEndTime   string    `bson:"rental_end_time" json:"rentalEndTime"`
	TotalPrice      float64   `bson:"total_price" json:"totalPrice"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}
