package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse is what the chat handler returns to the frontend. Preferences
// carries the merged session record, not just this turn's delta.
type ChatResponse struct {
	SessionID              string           `json:"session_id"`
	Response               string           `json:"response"`
	Preferences            PreferenceRecord `json:"preferences"`
	Confidence             float64          `json:"confidence"`
	ReadyForRecommendation bool             `json:"ready_for_recommendations"`
}

// ChatResult is the structured outcome of one NLU turn, produced either by
// the external collaborator or by the deterministic keyword processor.
type ChatResult struct {
	BotMessage             string           `json:"bot_message"`
	Preferences            PreferenceRecord `json:"preferences"` // this turn's delta only
	ReadyForRecommendation bool             `json:"ready_for_recommendations"`
	Confidence             float64          `json:"confidence"`
}

// ExtractionResult is the output of one deterministic extraction pass.
type ExtractionResult struct {
	Preferences     PreferenceRecord `json:"preferences"`
	ExtractedFields []string         `json:"extracted_fields"`
	Confidence      float64          `json:"confidence"`
	IsGreeting      bool             `json:"is_greeting"`
}
