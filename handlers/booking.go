package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bookingRepo "seatadvisor/database/repository/booking"
	"seatadvisor/models"
	"seatadvisor/utils"
)

// BookingRepo is wired in main before the router starts.
var BookingRepo bookingRepo.BookingRepository

// CreateBooking books an available seat and marks it unavailable.
func CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	seat, err := SeatRepo.GetByID(req.SeatID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load seat", err.Error())
		return
	}
	if seat == nil {
		utils.JSONError(c, http.StatusNotFound, "seat not found", "")
		return
	}
	if !seat.IsAvailable {
		utils.JSONError(c, http.StatusConflict, "seat is no longer available", "")
		return
	}

	booking := &models.Booking{
		ID:        uuid.New().String(),
		SeatID:    req.SeatID,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
	}
	if err := BookingRepo.Create(booking); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", err.Error())
		return
	}

	if err := SeatRepo.SetAvailability(req.SeatID, false); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update seat availability", err.Error())
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListBookings returns all bookings, newest first.
func ListBookings(c *gin.Context) {
	bookings, err := BookingRepo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// CancelBooking deletes a booking and frees its seat again.
func CancelBooking(c *gin.Context) {
	id := c.Param("id")

	booking, err := BookingRepo.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load booking", err.Error())
		return
	}
	if booking == nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", id)
		return
	}

	if err := BookingRepo.Delete(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete booking", err.Error())
		return
	}

	if err := SeatRepo.SetAvailability(booking.SeatID, true); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to free seat", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking_id": id, "cancelled": true})
}
