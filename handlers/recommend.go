package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seatadvisor/models"
	"seatadvisor/services/advisor"
	"seatadvisor/utils"
)

const defaultRecommendationLimit = 5

// recommendationRequest carries preference fields inline plus an optional
// session id; when both are present the inline fields win key by key.
type recommendationRequest struct {
	models.PreferenceRecord
	SessionID string `json:"session_id,omitempty"`
	Limit     *int   `json:"limit,omitempty"`
}

// Recommend scores the current seat pool against the caller's preferences
// and returns the top ranked candidates with per-seat explanations.
func Recommend(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	limit := defaultRecommendationLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	if limit < 0 {
		utils.JSONError(c, http.StatusBadRequest, "limit must not be negative", "")
		return
	}

	prefs := req.PreferenceRecord
	if req.SessionID != "" {
		if sess, ok := AdvisorService.Store().Get(req.SessionID); ok {
			merged := sess.Prefs
			merged.Merge(req.PreferenceRecord)
			prefs = merged
		}
	}

	pool, err := SeatRepo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load seat pool", err.Error())
		return
	}

	c.JSON(http.StatusOK, advisor.Rank(pool, prefs, limit))
}

// QuickFilter applies hard conjunctive filters to the available seat pool.
func QuickFilter(c *gin.Context) {
	var filter models.SeatFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	pool, err := SeatRepo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load seat pool", err.Error())
		return
	}

	c.JSON(http.StatusOK, advisor.QuickFilter(pool, filter))
}
