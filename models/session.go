package models

import "time"

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MaxHistoryTurns caps stored conversation history at 10 exchanges.
const MaxHistoryTurns = 20

// Turn is a single message in a conversation, oldest first in history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ConversationSession holds one user's accumulated advisor state: bounded
// turn history and the merged preference record.
type ConversationSession struct {
	ID         string           `json:"session_id"`
	CreatedAt  time.Time        `json:"created_at"`
	LastActive time.Time        `json:"last_active"`
	History    []Turn           `json:"conversation_history"`
	Prefs      PreferenceRecord `json:"preferences"`
}
