package advisor

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"seatadvisor/models"
)

// Match quality bands.
const (
	qualityExcellent = "Excellent Match"
	qualityGreat     = "Great Match"
	qualityGood      = "Good Match"
	qualityFair      = "Fair Match"
	qualityPoor      = "Poor Match"
)

// Scoring weights. Only positive, bounded contributions feed maxScore; the
// flat over-budget and no-AC penalties deliberately do not, which lets a hard
// constraint violation drag the normalized percentage below zero before the
// final clamp. Bonuses stay capped by maxScore while violations are punished
// harder than matches are rewarded.
const (
	budgetWeight      = 30
	overBudgetPenalty = 50
	belowRangeBonus   = 10

	acRequiredWeight  = 20
	acDealbreaker     = 30
	acPreferredWeight = 10
	acMissingPenalty  = 5
	acOptionalWeight  = 5

	famousWeight      = 15
	famousSideBonus   = 3
	positionWeight    = 10
	locationWeight    = 15
	prosConsWeight    = 10
	unspecifiedBudget = 10000
)

// ScoreSeat rates one seat against a preference record. It is a pure
// function: repeated calls yield the identical score and explanation. The
// returned score is normalized and clamped to [0,100]; the explanation lists
// one human-readable fragment per factor that fired, in factor order.
func ScoreSeat(seat models.Seat, prefs models.PreferenceRecord) (int, []string) {
	score := 0
	maxScore := 0
	var explanation []string

	// Budget. An unset ceiling effectively removes it.
	budgetMin := 0.0
	if prefs.BudgetMin != nil {
		budgetMin = *prefs.BudgetMin
	}
	budgetMax := float64(unspecifiedBudget)
	if prefs.BudgetMax != nil {
		budgetMax = *prefs.BudgetMax
	}
	switch {
	case seat.Price > budgetMax:
		score -= overBudgetPenalty
		explanation = append(explanation, fmt.Sprintf("⚠️ Over budget ($%s > $%s)", formatMoney(seat.Price), formatMoney(budgetMax)))
	case seat.Price < budgetMin:
		score += belowRangeBonus
		explanation = append(explanation, fmt.Sprintf("Below preferred price range ($%s < $%s)", formatMoney(seat.Price), formatMoney(budgetMin)))
	default:
		// Reward value: the further under the ceiling, the better.
		ratio := (budgetMax - seat.Price) / (budgetMax - budgetMin + 1)
		score += int(math.Floor(15 + ratio*15))
		explanation = append(explanation, fmt.Sprintf("✓ Within budget ($%s)", formatMoney(seat.Price)))
		maxScore += budgetWeight
	}

	// Air conditioning, tiered by stated importance.
	acImportance := prefs.ACImportance
	if acImportance == "" {
		acImportance = models.ACOptional
	}
	switch acImportance {
	case models.ACRequired:
		maxScore += acRequiredWeight
		if seat.HasAC {
			score += acRequiredWeight
			explanation = append(explanation, "✓ Has air conditioning (required)")
		} else {
			score -= acDealbreaker
			explanation = append(explanation, "✗ No AC (dealbreaker)")
		}
	case models.ACPreferred:
		maxScore += acPreferredWeight
		if seat.HasAC {
			score += acPreferredWeight
			explanation = append(explanation, "✓ Has air conditioning")
		} else {
			score -= acMissingPenalty
			explanation = append(explanation, "⚠️ No AC")
		}
	default:
		maxScore += acOptionalWeight
		if seat.HasAC {
			score += acOptionalWeight
			explanation = append(explanation, "✓ Has air conditioning")
		}
	}

	// View quality, weighted by how much the user cares.
	viewImportance := 5
	if prefs.ViewImportance != nil {
		viewImportance = *prefs.ViewImportance
	}
	viewWeight := viewImportance * 2
	maxScore += viewWeight
	if viewWeight > 0 {
		viewQuality := seat.EffectiveViewQuality()
		score += int(float64(viewQuality) / 10 * float64(viewWeight))
		switch {
		case viewQuality >= 8:
			explanation = append(explanation, fmt.Sprintf("✓ Excellent view (%d/10)", viewQuality))
		case viewQuality >= 6:
			explanation = append(explanation, fmt.Sprintf("✓ Good view (%d/10)", viewQuality))
		default:
			explanation = append(explanation, fmt.Sprintf("⚠️ Limited view (%d/10)", viewQuality))
		}
	}

	// Historical occupants. Only an explicit request raises the stakes; an
	// unsolicited famous seat still earns a small flat bonus.
	if prefs.WantsFamous() {
		maxScore += famousWeight
		if seat.FamousOccupant != "" {
			score += famousWeight
			explanation = append(explanation, "⭐ Historical: "+seat.FamousOccupant)
		} else {
			explanation = append(explanation, "No historical significance")
		}
	} else if seat.FamousOccupant != "" {
		score += famousSideBonus
		explanation = append(explanation, "Historical note: "+seat.FamousOccupant)
	}

	// Position within the row.
	if pos := prefs.PositionPreference; pos != "" {
		maxScore += positionWeight
		switch {
		case pos == models.PositionAisle && (seat.Position == 1 || seat.Position == 10):
			score += positionWeight
			explanation = append(explanation, "✓ Aisle seat (as requested)")
		case pos == models.PositionCenter && seat.Position >= 4 && seat.Position <= 7:
			score += positionWeight
			explanation = append(explanation, "✓ Center position (as requested)")
		case pos != models.PositionAisle && pos != models.PositionCenter:
			score += 5
			explanation = append(explanation, "Side position")
		default:
			score += 3
		}
	}

	// Section location, with partial credit for near misses.
	if loc := prefs.LocationPreference; loc != "" {
		maxScore += locationWeight
		points, fragment := locationCredit(loc, seat.NormalizedType(), seat.Layer)
		score += points
		if fragment != "" {
			explanation = append(explanation, fragment)
		}
	}

	// Pros and cons. The upside is capped at the factor weight; the downside
	// is unbounded below and only the final clamp catches it.
	maxScore += prosConsWeight
	if len(seat.Pros) > 0 {
		score += minInt(prosConsWeight, 2*len(seat.Pros))
	}
	score -= 2 * len(seat.Cons)

	normalized := 50
	if maxScore > 0 {
		normalized = int(math.Round(float64(score) / float64(maxScore) * 100))
	}
	return clampScore(normalized), explanation
}

// locationCredit implements the per-location partial-credit table: full
// credit for the requested section, partial for adjacent rows, small fallback
// otherwise.
func locationCredit(loc, seatType string, layer int) (int, string) {
	switch loc {
	case models.LocationFront:
		switch {
		case seatType == models.SeatTypePerpendicularFront:
			return 15, "✓ Premium front location (perfect match)"
		case seatType == models.SeatTypeRegularTop && layer <= 3:
			return 12, "✓ Front section"
		default:
			return 5, ""
		}
	case models.LocationMiddle:
		switch {
		case seatType == models.SeatTypeRegularTop && layer >= 3:
			return 15, "✓ Middle section"
		case seatType == models.SeatTypePerpendicularFront && layer >= 8:
			return 12, "✓ Middle-front section"
		default:
			return 8, ""
		}
	case models.LocationBack:
		switch {
		case seatType == models.SeatTypeRegularBottom && layer >= 13:
			return 15, "✓ Back section (as requested)"
		case seatType == models.SeatTypeRegularBottom:
			return 12, "✓ Back area"
		default:
			return 5, ""
		}
	}
	return 0, ""
}

// MatchQuality converts a normalized score to its qualitative band.
func MatchQuality(score int) string {
	switch {
	case score >= 85:
		return qualityExcellent
	case score >= 70:
		return qualityGreat
	case score >= 55:
		return qualityGood
	case score >= 40:
		return qualityFair
	default:
		return qualityPoor
	}
}

// Rank scores every available seat in the pool against the preferences and
// returns the top limit candidates, highest score first. The sort is stable:
// seats with equal scores keep the pool's relative order. An empty available
// pool yields an empty list with an explanatory summary, not an error.
// A negative limit is a programming error and panics.
func Rank(pool []models.Seat, prefs models.PreferenceRecord, limit int) models.Recommendations {
	if limit < 0 {
		panic(fmt.Sprintf("advisor: negative recommendation limit %d", limit))
	}

	available := availableSeats(pool)
	if len(available) == 0 {
		return models.Recommendations{
			Recommendations: []models.ScoredCandidate{},
			TotalAvailable:  0,
			PreferencesUsed: prefs,
			Summary:         "No available seats found",
		}
	}

	scored := make([]models.ScoredCandidate, 0, len(available))
	for _, seat := range available {
		score, explanation := ScoreSeat(seat, prefs)
		scored = append(scored, models.ScoredCandidate{
			Seat:         seat,
			Score:        score,
			Explanation:  explanation,
			MatchQuality: MatchQuality(score),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit < len(scored) {
		scored = scored[:limit]
	}

	return models.Recommendations{
		Recommendations: scored,
		TotalAvailable:  len(available),
		PreferencesUsed: prefs,
		Summary:         buildSummary(scored, prefs),
	}
}

// buildSummary assembles fixed clauses keyed on the top score's quality band
// plus budget, AC and historical matches among the returned set.
func buildSummary(recs []models.ScoredCandidate, prefs models.PreferenceRecord) string {
	if len(recs) == 0 {
		return "No seats match your criteria."
	}

	var parts []string
	best := recs[0].Score
	switch {
	case best >= 85:
		parts = append(parts, "We found excellent matches for you!")
	case best >= 70:
		parts = append(parts, "We found some great options for you!")
	case best >= 55:
		parts = append(parts, "We found several good options.")
	default:
		parts = append(parts, "Limited options available. Consider adjusting your preferences.")
	}

	if prefs.BudgetMax != nil {
		within := 0
		for _, r := range recs {
			if r.Seat.Price <= *prefs.BudgetMax {
				within++
			}
		}
		parts = append(parts, fmt.Sprintf("Found %d seats within your budget of $%s.", within, formatMoney(*prefs.BudgetMax)))
	}

	if prefs.ACImportance == models.ACRequired {
		parts = append(parts, "All top recommendations have air conditioning.")
	}

	if prefs.WantsFamous() {
		famous := 0
		for _, r := range recs {
			if r.Seat.FamousOccupant != "" {
				famous++
			}
		}
		if famous > 0 {
			parts = append(parts, fmt.Sprintf("Found %d seats with historical significance!", famous))
		}
	}

	out := parts[0]
	for _, p := range parts[1:] {
		out += " " + p
	}
	return out
}

// QuickFilter applies a hard conjunctive filter over available seats only,
// preserving pool order. It never scores or sorts, and an empty filter
// returns the available subset unchanged.
func QuickFilter(pool []models.Seat, filter models.SeatFilter) models.FilterResult {
	matches := make([]models.Seat, 0, len(pool))
	for _, seat := range availableSeats(pool) {
		if filter.PriceMax != nil && seat.Price > *filter.PriceMax {
			continue
		}
		if filter.PriceMin != nil && seat.Price < *filter.PriceMin {
			continue
		}
		if filter.HasAC != nil && seat.HasAC != *filter.HasAC {
			continue
		}
		if filter.ViewMin != nil && seat.EffectiveViewQuality() < *filter.ViewMin {
			continue
		}
		if filter.HasFamous != nil && *filter.HasFamous && seat.FamousOccupant == "" {
			continue
		}
		if filter.SeatType != nil && seat.NormalizedType() != *filter.SeatType {
			continue
		}
		matches = append(matches, seat)
	}
	return models.FilterResult{
		Matches:        matches,
		Count:          len(matches),
		FiltersApplied: filter,
	}
}

func availableSeats(pool []models.Seat) []models.Seat {
	out := make([]models.Seat, 0, len(pool))
	for _, seat := range pool {
		if seat.IsAvailable {
			out = append(out, seat)
		}
	}
	return out
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// formatMoney renders a price without trailing zeros ($250, $99.5).
func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
