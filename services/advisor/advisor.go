package advisor

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"seatadvisor/models"
)

// ErrEmptyMessage rejects chat turns with no content.
var ErrEmptyMessage = errors.New("message is required")

// Advisor orchestrates one conversational turn: it resolves the session, runs
// the NLU chain over the session's bounded history and merged preferences,
// and persists the turn's delta back into the store. Scoring is exposed as
// the package-level Rank and QuickFilter functions since it needs no session
// state.
type Advisor struct {
	store     *SessionStore
	processor Processor
	logger    *zap.Logger
}

// NewAdvisor wires the orchestrator. The store is passed by reference; there
// is no ambient session registry.
func NewAdvisor(store *SessionStore, processor Processor, logger *zap.Logger) *Advisor {
	return &Advisor{store: store, processor: processor, logger: logger}
}

// Store exposes the session store for session-level endpoints.
func (a *Advisor) Store() *SessionStore {
	return a.store
}

// Chat handles one user turn. An unknown or expired session id transparently
// becomes a new session whose id is returned in the response.
func (a *Advisor) Chat(ctx context.Context, sessionID, message string) (*models.ChatResponse, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}

	sess, ok := a.store.Get(sessionID)
	if !ok {
		sessionID = a.store.Create()
		sess, _ = a.store.Get(sessionID)
	}

	result, err := a.processor.ProcessMessage(ctx, message, sess.History, sess.Prefs)
	if err != nil {
		// The hybrid chain recovers everything; reaching here means a bare
		// processor was wired in. Degrade the same way.
		a.logger.Warn("processor error on chat turn", zap.Error(err))
		result = apologyResult()
	}

	sessionID = a.store.Update(sessionID, message, result.BotMessage, result.Preferences)

	merged := result.Preferences
	if updated, ok := a.store.Get(sessionID); ok {
		merged = updated.Prefs
	}

	return &models.ChatResponse{
		SessionID:              sessionID,
		Response:               result.BotMessage,
		Preferences:            merged,
		Confidence:             result.Confidence,
		ReadyForRecommendation: result.ReadyForRecommendation,
	}, nil
}
