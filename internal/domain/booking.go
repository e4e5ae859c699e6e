package domain

import "time"

// Booking reserves a catway for a client's boat over a date range.
// CatwayNumber is copied from the referenced catway when the booking is
// created; it is not a live reference.
type Booking struct {
	ID           string    `json:"id"`
	BookingID    int64     `json:"bookingId"`
	CatwayNumber int       `json:"catwayNumber"`
	ClientName   string    `json:"clientName"`
	BoatName     string    `json:"boatName"`
	CheckIn      time.Time `json:"checkIn"`
	CheckOut     time.Time `json:"checkOut"`
}
