package models

// Seat type constants. The legacy "regular" value from early seed data maps to
// the premium single-width front rows.
const (
	SeatTypeRegularTop         = "regular_top"
	SeatTypePerpendicularFront = "perpendicular_front"
	SeatTypeRegularBottom      = "regular_bottom"
	SeatTypeLegacyRegular      = "regular"
)

// Seat side constants. Single-width perpendicular rows carry no side.
const (
	SideLeft  = "left"
	SideRight = "right"
	SideNone  = ""
)

// Seat represents one physical seat in the venue. Seats are created once at
// seed time; only availability is toggled afterwards, so a seat pool handed to
// the recommender is treated as an immutable snapshot.
type Seat struct {
	ID             int      `bson:"id" json:"id"`
	Layer          int      `bson:"layer" json:"layer"`       // row index, 1-based
	Side           string   `bson:"side" json:"side"`         // "left", "right", or "" for perpendicular rows
	Position       int      `bson:"position" json:"position"` // 1..10 within the row
	Price          float64  `bson:"price" json:"price"`
	IsAvailable    bool     `bson:"is_available" json:"is_available"`
	SeatType       string   `bson:"seat_type" json:"seat_type"`
	HasAC          bool     `bson:"has_ac" json:"has_ac"`
	ViewQuality    int      `bson:"view_quality" json:"view_quality"` // 1-10
	FamousOccupant string   `bson:"famous_occupant,omitempty" json:"famous_occupant,omitempty"`
	Pros           []string `bson:"pros,omitempty" json:"pros,omitempty"`
	Cons           []string `bson:"cons,omitempty" json:"cons,omitempty"`
}

// NormalizedType resolves the legacy "regular" alias.
func (s Seat) NormalizedType() string {
	if s.SeatType == SeatTypeLegacyRegular {
		return SeatTypePerpendicularFront
	}
	return s.SeatType
}

// EffectiveViewQuality treats a missing view rating as the neutral midpoint.
func (s Seat) EffectiveViewQuality() int {
	if s.ViewQuality == 0 {
		return 5
	}
	return s.ViewQuality
}

// ScoredCandidate is one ranked recommendation entry.
type ScoredCandidate struct {
	Seat         Seat     `json:"seat"`
	Score        int      `json:"score"` // normalized, clamped to [0,100]
	Explanation  []string `json:"explanation"`
	MatchQuality string   `json:"match_quality"`
}

// Recommendations is the envelope returned by the ranking engine.
type Recommendations struct {
	Recommendations []ScoredCandidate `json:"recommendations"`
	TotalAvailable  int               `json:"total_available"`
	PreferencesUsed PreferenceRecord  `json:"preferences_used"`
	Summary         string            `json:"summary"`
}

// SeatFilter holds the hard conjunctive filter keys for quick searches.
// Nil fields are ignored.
type SeatFilter struct {
	PriceMax  *float64 `json:"price_max,omitempty"`
	PriceMin  *float64 `json:"price_min,omitempty"`
	HasAC     *bool    `json:"has_ac,omitempty"`
	ViewMin   *int     `json:"view_min,omitempty"`
	HasFamous *bool    `json:"has_famous,omitempty"`
	SeatType  *string  `json:"seat_type,omitempty"`
}

// IsZero reports whether no filter key is set.
func (f SeatFilter) IsZero() bool {
	return f.PriceMax == nil && f.PriceMin == nil && f.HasAC == nil &&
		f.ViewMin == nil && f.HasFamous == nil && f.SeatType == nil
}

// FilterResult is the envelope returned by the quick filter.
type FilterResult struct {
	Matches        []Seat     `json:"matches"`
	Count          int        `json:"count"`
	FiltersApplied SeatFilter `json:"filters_applied"`
}
