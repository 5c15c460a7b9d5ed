package bookingRepo

import "seatadvisor/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetAll retrieves all bookings, newest first.
	GetAll() ([]models.Booking, error)
	// GetByID retrieves a booking by its ID, nil when absent.
	GetByID(id string) (*models.Booking, error)
	// Delete removes a booking record by its ID.
	Delete(id string) error
}
