package advisor

import (
	"regexp"
	"strconv"
	"strings"

	"seatadvisor/models"
)

// Extracted field tags, in extraction order.
const (
	fieldBudget   = "budget"
	fieldAC       = "ac"
	fieldView     = "view"
	fieldFamous   = "famous"
	fieldPosition = "position"
	fieldLocation = "location"
)

var (
	reDollarAmount = regexp.MustCompile(`\$\s*(\d+)`)
	reDollarWord   = regexp.MustCompile(`(?i)(\d+)\s*dollars?`)
	reUnderAmount  = regexp.MustCompile(`(?i)under\s+(\d+)`)
	reCheap        = regexp.MustCompile(`(?i)\b(cheap|budget|affordable|inexpensive|low cost)\b`)
	reExpensive    = regexp.MustCompile(`(?i)\b(expensive|premium|luxury|high.end)\b`)
	reMidRange     = regexp.MustCompile(`(?i)\b(mid.range|moderate|average)\b`)

	reACRequired   = regexp.MustCompile(`\b(need|must|require|essential|necessary)\b.*\b(ac|air.conditioning|cooling|cool)`)
	reACRequired2  = regexp.MustCompile(`\b(ac|air.conditioning|cooling)\b.*\b(need|must|require|essential)`)
	reACPreferred  = regexp.MustCompile(`\b(prefer|like|want|would like)\b.*\b(ac|air.conditioning|cooling)`)
	reACPreferred2 = regexp.MustCompile(`\b(ac|air.conditioning|cooling)\b.*\b(prefer|nice|good)`)
	reACDontCare   = regexp.MustCompile(`(don.?t|doesn.?t|no|not).*\b(care|matter|important)\b.*\b(ac|air)`)
	reACMention    = regexp.MustCompile(`\b(ac|air.conditioning|cooling|cool|cold)\b`)

	reViewExcellent  = regexp.MustCompile(`\b(excellent|perfect|amazing|best|great|fantastic|outstanding)\b.*\bview\b`)
	reViewExcellent2 = regexp.MustCompile(`\bview\b.*\b(excellent|perfect|amazing|best|great|fantastic|critical|essential)`)
	reViewGood       = regexp.MustCompile(`\b(good|nice|decent)\b.*\bview\b`)
	reViewGood2      = regexp.MustCompile(`\bview\b.*\b(good|nice|decent|important)`)
	reViewDontCare   = regexp.MustCompile(`(don.?t|doesn.?t|not).*\b(care|matter|important)\b.*\bview\b`)
	reViewDontCare2  = regexp.MustCompile(`\bview\b.*(don.?t|doesn.?t|not).*\b(care|matter|important)`)
	reViewMention    = regexp.MustCompile(`\b(view|see|watch|look|visibility)\b`)

	reFamous = regexp.MustCompile(`\b(famous|celebrity|historic|history|notable|renowned|legend)`)

	rePositionAisle  = regexp.MustCompile(`\b(aisle|end|edge|side)\b`)
	rePositionCenter = regexp.MustCompile(`\b(center|centre|middle)\b`)

	reLocationFront  = regexp.MustCompile(`\b(front|close.*stage|near.*stage|up front|forward)\b`)
	reLocationBack   = regexp.MustCompile(`\b(back|rear|far.*stage|behind)\b`)
	reLocationMiddle = regexp.MustCompile(`\b(middle|center|centre|mid)\b`)
)

var greetingTokens = []string{"hi", "hello", "hey", "howdy", "greetings", "good morning", "good afternoon"}

// Extractor turns free-text messages into partial preference records using
// keyword matching only. It is stateless and fully deterministic: the same
// message always yields the same record, field tags and confidence.
type Extractor struct{}

// NewExtractor returns the deterministic keyword extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses a single message. Each rule category is independent and
// first-match-wins within the category; fields with no match stay unset.
func (e *Extractor) Extract(message string) models.ExtractionResult {
	lower := strings.ToLower(message)

	var prefs models.PreferenceRecord
	var fields []string

	if budget, ok := extractBudget(message); ok {
		prefs.BudgetMax = models.Float64Ptr(budget)
		fields = append(fields, fieldBudget)
	}
	if importance := extractACImportance(lower); importance != "" {
		prefs.ACImportance = importance
		fields = append(fields, fieldAC)
	}
	if view, ok := extractViewImportance(lower); ok {
		prefs.ViewImportance = models.IntPtr(view)
		fields = append(fields, fieldView)
	}
	if reFamous.MatchString(lower) {
		prefs.FamousPeople = models.BoolPtr(true)
		fields = append(fields, fieldFamous)
	}
	if position := extractPosition(lower); position != "" {
		prefs.PositionPreference = position
		fields = append(fields, fieldPosition)
	}
	if location := extractLocation(lower); location != "" {
		prefs.LocationPreference = location
		fields = append(fields, fieldLocation)
	}

	return models.ExtractionResult{
		Preferences:     prefs,
		ExtractedFields: fields,
		Confidence:      confidenceFor(len(fields)),
		IsGreeting:      len(fields) == 0 && containsGreeting(lower),
	}
}

// extractBudget resolves a budget ceiling: explicit currency amounts win over
// "N dollars", which wins over "under N", which wins over categorical
// keywords and their fixed defaults.
func extractBudget(message string) (float64, bool) {
	if m := reDollarAmount.FindStringSubmatch(message); m != nil {
		return parseAmount(m[1])
	}
	if m := reDollarWord.FindStringSubmatch(message); m != nil {
		return parseAmount(m[1])
	}
	if m := reUnderAmount.FindStringSubmatch(message); m != nil {
		return parseAmount(m[1])
	}
	switch {
	case reCheap.MatchString(message):
		return 200, true
	case reExpensive.MatchString(message):
		return 600, true
	case reMidRange.MatchString(message):
		return 400, true
	}
	return 0, false
}

func parseAmount(digits string) (float64, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return float64(n), true
}

// extractACImportance tiers the AC preference. A need/must term co-occurring
// with an AC term means required; preference terms or unqualified mentions
// mean preferred; an explicit "don't care" demotes to optional.
func extractACImportance(lower string) string {
	if reACRequired.MatchString(lower) || reACRequired2.MatchString(lower) {
		return models.ACRequired
	}
	if reACPreferred.MatchString(lower) || reACPreferred2.MatchString(lower) {
		return models.ACPreferred
	}
	if reACDontCare.MatchString(lower) {
		return models.ACOptional
	}
	if reACMention.MatchString(lower) {
		return models.ACPreferred
	}
	return ""
}

func extractViewImportance(lower string) (int, bool) {
	if reViewExcellent.MatchString(lower) || reViewExcellent2.MatchString(lower) {
		return 10, true
	}
	if reViewGood.MatchString(lower) || reViewGood2.MatchString(lower) {
		return 7, true
	}
	if reViewDontCare.MatchString(lower) || reViewDontCare2.MatchString(lower) {
		return 3, true
	}
	if reViewMention.MatchString(lower) {
		return 7, true
	}
	return 0, false
}

// extractPosition checks aisle-family terms before center-family terms.
func extractPosition(lower string) string {
	if rePositionAisle.MatchString(lower) {
		return models.PositionAisle
	}
	if rePositionCenter.MatchString(lower) {
		return models.PositionCenter
	}
	return ""
}

// extractLocation checks front, then back, then middle.
func extractLocation(lower string) string {
	if reLocationFront.MatchString(lower) {
		return models.LocationFront
	}
	if reLocationBack.MatchString(lower) {
		return models.LocationBack
	}
	if reLocationMiddle.MatchString(lower) {
		return models.LocationMiddle
	}
	return ""
}

func containsGreeting(lower string) bool {
	for _, g := range greetingTokens {
		if strings.Contains(lower, g) {
			return true
		}
	}
	return false
}

// confidenceFor steps confidence up with the number of distinct extracted
// fields, capped at 1.0.
func confidenceFor(count int) float64 {
	switch count {
	case 0:
		return 0.0
	case 1:
		return 0.5
	case 2:
		return 0.7
	case 3:
		return 0.85
	case 4:
		return 0.9
	case 5:
		return 0.95
	default:
		return 1.0
	}
}
