package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	seatRepo "seatadvisor/database/repository/seat"
	"seatadvisor/utils"
)

// SeatRepo is wired in main before the router starts.
var SeatRepo seatRepo.SeatRepository

// ListSeats returns the full seat pool snapshot.
func ListSeats(c *gin.Context) {
	seats, err := SeatRepo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load seats", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"seats": seats, "count": len(seats)})
}

// GetSeat returns a single seat by its numeric id.
func GetSeat(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid seat id", c.Param("id"))
		return
	}

	seat, err := SeatRepo.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load seat", err.Error())
		return
	}
	if seat == nil {
		utils.JSONError(c, http.StatusNotFound, "seat not found", c.Param("id"))
		return
	}

	c.JSON(http.StatusOK, seat)
}
