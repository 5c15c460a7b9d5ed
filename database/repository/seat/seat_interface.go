package seatRepo

import "seatadvisor/models"

// SeatRepository defines methods for seat data access. GetAll returns the
// pool ordered by seat type, layer, side and position so scoring sees a
// stable snapshot order.
type SeatRepository interface {
	// GetAll retrieves the full seat pool.
	GetAll() ([]models.Seat, error)
	// GetByID retrieves a seat by its numeric ID.
	GetByID(id int) (*models.Seat, error)
	// SetAvailability toggles a seat's availability flag.
	SetAvailability(id int, available bool) error
	// EnsureSeeded populates the venue layout when the collection is empty.
	EnsureSeeded() error
}
