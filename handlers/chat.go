package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"seatadvisor/config"
	"seatadvisor/models"
	"seatadvisor/services/advisor"
	"seatadvisor/utils"
)

// AdvisorService is wired in main before the router starts.
var AdvisorService *advisor.Advisor

// Chat handles one conversational turn. An unknown or expired session id is
// replaced transparently; the client should adopt the id from the response.
func Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		utils.JSONError(c, http.StatusBadRequest, "message is required", "")
		return
	}

	timeout := time.Duration(config.AppConfig.NLUTimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	resp, err := AdvisorService.Chat(ctx, req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, advisor.ErrEmptyMessage) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to process message", err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SessionCount reports how many conversation sessions are currently live.
func SessionCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"active_sessions": AdvisorService.Store().ActiveCount()})
}

// ClearSession drops a conversation session. Clearing an unknown session is
// a no-op, not an error.
func ClearSession(c *gin.Context) {
	id := c.Param("id")
	AdvisorService.Store().Clear(id)
	c.JSON(http.StatusOK, gin.H{"session_id": id, "cleared": true})
}
