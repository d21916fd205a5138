package models

// BookingDetail is a booking with its car and showroom expanded inline,
// as returned by the list endpoint.
type BookingDetail struct {
	Booking  `bson:",inline"`
	Car      *Car      `bson:"car" json:"car"`
	Showroom *Showroom `bson:"showroom" json:"showroom"`
}

// BookingReceipt pairs a persisted booking with the URL of its rendered
// invoice artifact.
type BookingReceipt struct {
	Booking    *Booking `json:"booking"`
	InvoiceURL string   `json:"invoiceUrl"`
}
