package models

import "time"

// ReturnNotice is the payload published to a car owner's notification
// channel when a renter initiates a return. Delivery is fire-and-forget;
// the approval flow that completes the return lives outside this service.
type ReturnNotice struct {
	BookingID string    `json:"bookingId"`
	CarID     string    `json:"carId"`
	UserID    string    `json:"userId"` // renter who initiated the return
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sentAt"`
}
