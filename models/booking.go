package models

import "time"

// Booking represents a confirmed seat booking record. Payment processing is
// external to this service; the status field is storage only.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	SeatID        int       `bson:"seat_id" json:"seat_id"`
	UserName      string    `bson:"user_name" json:"user_name"`
	UserEmail     string    `bson:"user_email" json:"user_email"`
	BookingDate   time.Time `bson:"booking_date" json:"booking_date"`
	PaymentStatus string    `bson:"payment_status" json:"payment_status"` // e.g. "pending"
}

// BookingRequest is the payload for creating a booking.
type BookingRequest struct {
	SeatID    int    `json:"seat_id" binding:"required"`
	UserName  string `json:"user_name" binding:"required"`
	UserEmail string `json:"user_email" binding:"required,email"`
}
