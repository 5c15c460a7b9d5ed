package advisor

import (
	"fmt"
	"math/rand"
	"strings"

	"seatadvisor/models"
)

// PhraseChooser selects one of n equivalent phrasings. The choice is purely
// cosmetic: extraction and scoring never depend on it, and tests can plug a
// fixed chooser to pin wording down.
type PhraseChooser interface {
	Choose(n int) int
}

type randChooser struct {
	r *rand.Rand
}

func (c *randChooser) Choose(n int) int {
	return c.r.Intn(n)
}

// NewRandChooser returns a seedable phrase chooser backed by math/rand.
func NewRandChooser(seed int64) PhraseChooser {
	return &randChooser{r: rand.New(rand.NewSource(seed))}
}

var (
	greetingPhrases = []string{
		"Hi! I'd love to help you find the perfect seat. What are you looking for?",
		"Hello! Tell me what kind of seat you're interested in.",
		"Hey there! What seat features are important to you?",
	}
	budgetPhrases = []string{
		"Got it! Looking for seats up to $%s.",
		"Perfect! I'll focus on seats within your $%s budget.",
		"Understood - $%s maximum. What else is important?",
	}
	acPhrases = []string{
		"Noted - air conditioning is %s for you.",
		"AC preference recorded as %s.",
	}
	viewPhrases = []string{
		"Great! %s view quality is noted.",
		"Got it - view quality is %s to you.",
	}
	locationPhrases = []string{
		"Perfect! Looking at %s seats.",
		"Understood - %s section preference noted.",
	}
	needMorePhrases = []string{
		"That helps! Anything else? (budget, AC, view quality, location)",
		"Thanks! Any other preferences like price range or features?",
		"Good to know! What else matters to you?",
	}
	readyPhrases = []string{
		"Perfect! I have enough info. Let me find the best seats for you!",
		"Great! Searching for your ideal seats now...",
		"Excellent! Let me pull up the top recommendations for you!",
	}
	clarifyPhrases = []string{
		"Could you tell me more about what you're looking for?",
		"I want to help! Can you specify your preferences? (budget, AC, view, location)",
		"Let me know your priorities - price? features? location?",
	}
)

// apologyMessage is the neutral acknowledgement produced when nothing else
// can be, e.g. when the whole NLU path failed.
const apologyMessage = "Sorry, I didn't quite understand that. Could you tell me about your budget or seat preferences?"

// Responder assembles short templated acknowledgements from one extraction
// pass and the session's merged preference record.
type Responder struct {
	chooser PhraseChooser
}

// NewResponder builds a responder with the given phrase chooser.
func NewResponder(chooser PhraseChooser) *Responder {
	return &Responder{chooser: chooser}
}

func (r *Responder) pick(phrases []string) string {
	return phrases[r.chooser.Choose(len(phrases))]
}

// Acknowledge produces the bot reply for one turn. merged must already
// include this turn's delta so the readiness follow-up reflects everything
// known so far.
func (r *Responder) Acknowledge(res models.ExtractionResult, merged models.PreferenceRecord) string {
	if res.IsGreeting {
		return r.pick(greetingPhrases)
	}

	var parts []string
	for _, field := range res.ExtractedFields {
		switch field {
		case fieldBudget:
			parts = append(parts, fmt.Sprintf(r.pick(budgetPhrases), formatMoney(*res.Preferences.BudgetMax)))
		case fieldAC:
			parts = append(parts, fmt.Sprintf(r.pick(acPhrases), res.Preferences.ACImportance))
		case fieldView:
			parts = append(parts, fmt.Sprintf(r.pick(viewPhrases), viewImportanceText(*res.Preferences.ViewImportance)))
		case fieldFamous:
			parts = append(parts, "Noted - seats with historical significance!")
		case fieldPosition:
			parts = append(parts, fmt.Sprintf("Looking for %s seats.", res.Preferences.PositionPreference))
		case fieldLocation:
			parts = append(parts, fmt.Sprintf(r.pick(locationPhrases), res.Preferences.LocationPreference))
		}
	}

	if len(parts) == 0 {
		return r.pick(clarifyPhrases)
	}

	if HasSufficientPreferences(merged) {
		parts = append(parts, r.pick(readyPhrases))
	} else {
		parts = append(parts, r.pick(needMorePhrases))
	}
	return strings.Join(parts, " ")
}

func viewImportanceText(score int) string {
	switch {
	case score >= 8:
		return "very important"
	case score >= 5:
		return "somewhat important"
	default:
		return "not very important"
	}
}

// HasSufficientPreferences reports whether enough is known to produce useful
// recommendations: a budget, or at least two known fields including one
// meaningful feature preference.
func HasSufficientPreferences(p models.PreferenceRecord) bool {
	if p.BudgetMax != nil {
		return true
	}
	hasFeature := (p.ACImportance != "" && p.ACImportance != models.ACOptional) ||
		(p.ViewImportance != nil && *p.ViewImportance > 0) ||
		p.LocationPreference != "" ||
		p.WantsFamous()
	return hasFeature && p.FieldCount() >= 2
}
