package models

import "time"

// Car availability states. The flag is toggled by booking lifecycle
// events rather than derived from active bookings.
const (
	CarAvailable = "Available"
	CarRentedOut = "Rented Out"
)

// Car represents a rentable vehicle listed by a showroom.
type Car struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Model        string    `bson:"model" json:"model"`
	Availability string    `bson:"availability" json:"availability"` // "Available" | "Rented Out"
	RentRate     float64   `bson:"rent_rate" json:"rentRate"`        // currency per day
	ShowroomID   string    `bson:"showroom_id" json:"showroomId"`
	UserID       string    `bson:"user_id" json:"userId"` // owning user, notified on return
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
