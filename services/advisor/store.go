package advisor

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"seatadvisor/models"
)

// DefaultSessionTimeout is the sliding expiry applied when no timeout is
// configured.
const DefaultSessionTimeout = 30 * time.Minute

// SessionStore keeps conversation sessions in memory with sliding time-based
// expiry. Expired sessions are reaped lazily on access rather than by a
// background goroutine, so an idle store costs nothing. All operations are
// mutually exclusive under one store-wide mutex; a session absent from the
// map is a normal outcome, never an error.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.ConversationSession
	timeout  time.Duration
	now      func() time.Time
}

// NewSessionStore builds a store with the given sliding timeout and clock.
// A nil clock uses time.Now; a non-positive timeout uses the default.
func NewSessionStore(timeout time.Duration, now func() time.Time) *SessionStore {
	if timeout <= 0 {
		timeout = DefaultSessionTimeout
	}
	if now == nil {
		now = time.Now
	}
	return &SessionStore{
		sessions: make(map[string]*models.ConversationSession),
		timeout:  timeout,
		now:      now,
	}
}

// Create allocates a fresh session and returns its id.
func (s *SessionStore) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked()
}

func (s *SessionStore) createLocked() string {
	id := uuid.NewString()
	now := s.now()
	s.sessions[id] = &models.ConversationSession{
		ID:         id,
		CreatedAt:  now,
		LastActive: now,
		History:    make([]models.Turn, 0, models.MaxHistoryTurns),
	}
	return id
}

// Get sweeps expired sessions, then returns a snapshot of the session and
// refreshes its last-active time. The second return is false when the id is
// unknown or already expired.
func (s *SessionStore) Get(id string) (models.ConversationSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	sess, ok := s.sessions[id]
	if !ok {
		return models.ConversationSession{}, false
	}
	sess.LastActive = s.now()
	return snapshot(sess), true
}

// Update records one exchange and merges the turn's preference delta into the
// stored record. When id is unknown a new session is created and its id
// returned, so callers can always hand the result back to the client.
func (s *SessionStore) Update(id, userText, botText string, delta models.PreferenceRecord) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		id = s.createLocked()
		sess = s.sessions[id]
	}
	sess.LastActive = s.now()

	sess.History = append(sess.History,
		models.Turn{Role: models.RoleUser, Content: userText},
		models.Turn{Role: models.RoleAssistant, Content: botText},
	)
	if n := len(sess.History); n > models.MaxHistoryTurns {
		sess.History = append(sess.History[:0:0], sess.History[n-models.MaxHistoryTurns:]...)
	}

	sess.Prefs.Merge(delta)
	return id
}

// Clear removes the session if present and reports whether it existed.
func (s *SessionStore) Clear(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// ActiveCount sweeps, then reports the number of live sessions.
func (s *SessionStore) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	return len(s.sessions)
}

func (s *SessionStore) sweepLocked() {
	now := s.now()
	for id, sess := range s.sessions {
		if now.Sub(sess.LastActive) > s.timeout {
			delete(s.sessions, id)
		}
	}
}

// snapshot copies the session out so callers never share mutable state with
// the store.
func snapshot(sess *models.ConversationSession) models.ConversationSession {
	out := *sess
	out.History = append([]models.Turn(nil), sess.History...)
	return out
}
