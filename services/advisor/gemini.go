package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"seatadvisor/models"
)

const advisorSystemPrompt = `You are an expert Seat Advisor for a theater venue. Your personality is friendly, helpful, and conversational.

Your role:
1. Understand user preferences through natural conversation
2. Ask clarifying questions when information is ambiguous or incomplete
3. Extract structured preferences from user messages
4. Be concise but warm in your responses (2-3 sentences max)
5. Guide users toward making a booking decision

Available seat features:
- Price range: $100-$600 per year
- Air Conditioning: Some seats have AC, others don't
- View quality: Rated 0-10 (higher is better)
- Locations: Front (close to stage), Middle (balanced), Back (overview)
- Positions: Aisle (easy access), Center (best view)
- Special feature: Some seats have historical significance (famous people sat there)

IMPORTANT: Always respond with valid JSON in this exact format:
{
  "bot_message": "Your friendly conversational response to the user",
  "preferences": {
    "budget_max": 400,
    "ac_importance": "required",
    "view_importance": 8,
    "famous_people": false,
    "position_preference": "aisle",
    "location_preference": "front"
  },
  "ready_for_recommendations": false,
  "confidence": 0.85
}

Preference extraction rules:
- budget_max: number (extract from "$400", "under 300", "cheap" = 200, "expensive" = 600)
- ac_importance: "required" | "preferred" | "optional"
- view_importance: 0-10 number ("great view" = 9-10, "doesn't matter" = 0-3)
- famous_people: true | false (only true if explicitly mentioned)
- position_preference: "aisle" | "center" | null
- location_preference: "front" | "middle" | "back" | null
Only include keys the user actually expressed a preference about.

Set ready_for_recommendations to true when you have:
- Budget + at least 2 other preferences, OR
- At least 3 preferences total (not counting famous_people), OR
- The user is refining existing results (asking for cheaper, better, etc.)

Confidence score (0.0-1.0): 0.9-1.0 very clear preferences, 0.7-0.9 good
understanding with minor ambiguity, 0.5-0.7 some preferences but needs
clarification, below 0.5 very vague.`

// geminiModel generates one structured chat completion. Satisfied by
// *genai.GenerativeModel; tests substitute a stub.
type geminiModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiProcessor is the external NLU collaborator. Every call is bounded by
// the caller's context; any transport error or structurally invalid reply is
// reported as an error so the hybrid chain can discard it.
type GeminiProcessor struct {
	model geminiModel
}

// NewGeminiProcessor builds the collaborator against the Gemini API.
func NewGeminiProcessor(ctx context.Context, apiKey string) (*GeminiProcessor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.ResponseMIMEType = "application/json"
	return &GeminiProcessor{model: model}, nil
}

// ProcessMessage sends the turn with bounded history and the current merged
// preferences as context, and parses the structured JSON reply.
func (p *GeminiProcessor) ProcessMessage(ctx context.Context, message string, history []models.Turn, current models.PreferenceRecord) (*models.ChatResult, error) {
	prompt := buildGeminiPrompt(message, history, current)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}

	var sb strings.Builder
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	return parseChatResult(sb.String())
}

func buildGeminiPrompt(message string, history []models.Turn, current models.PreferenceRecord) string {
	var sb strings.Builder
	sb.WriteString(advisorSystemPrompt)
	sb.WriteString("\n\nConversation so far:\n")
	for _, turn := range history {
		sb.WriteString(turn.Role)
		sb.WriteString(": ")
		sb.WriteString(turn.Content)
		sb.WriteString("\n")
	}
	if ctxJSON, err := json.Marshal(current); err == nil {
		sb.WriteString("\n[Current user preferences: ")
		sb.Write(ctxJSON)
		sb.WriteString("]\n")
	}
	sb.WriteString("\nuser: ")
	sb.WriteString(message)
	return sb.String()
}

// parseChatResult validates the collaborator's reply: it must be JSON and
// must carry the bot_message, preferences and ready_for_recommendations keys.
// A missing confidence defaults to 0.8.
func parseChatResult(raw string) (*models.ChatResult, error) {
	raw = stripCodeFence(raw)

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		return nil, fmt.Errorf("non-JSON NLU response: %w", err)
	}
	for _, required := range []string{"bot_message", "preferences", "ready_for_recommendations"} {
		if _, ok := keys[required]; !ok {
			return nil, fmt.Errorf("NLU response missing %q", required)
		}
	}

	var result models.ChatResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("malformed NLU response: %w", err)
	}
	if _, ok := keys["confidence"]; !ok {
		result.Confidence = 0.8
	}
	return &result, nil
}

// stripCodeFence tolerates models that wrap JSON in a markdown fence despite
// the JSON response MIME type.
func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	return strings.TrimSpace(raw)
}
