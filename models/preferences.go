package models

// AC importance tiers. An unset tier behaves like "optional" in the scorer.
const (
	ACRequired  = "required"
	ACPreferred = "preferred"
	ACOptional  = "optional"
)

// Seating position preferences.
const (
	PositionAisle  = "aisle"
	PositionCenter = "center"
)

// Section location preferences.
const (
	LocationFront  = "front"
	LocationMiddle = "middle"
	LocationBack   = "back"
)

// PreferenceRecord is a sparse, partial set of seating preferences. Every
// field is tri-state: pointer fields distinguish "not mentioned" from an
// explicit zero (budget_min of 0, famous_people false), and string fields use
// "" for unset. One extraction pass produces a delta record which is merged
// into the session's accumulated record.
type PreferenceRecord struct {
	BudgetMin          *float64 `bson:"budget_min,omitempty" json:"budget_min,omitempty"`
	BudgetMax          *float64 `bson:"budget_max,omitempty" json:"budget_max,omitempty"`
	ACImportance       string   `bson:"ac_importance,omitempty" json:"ac_importance,omitempty"`
	ViewImportance     *int     `bson:"view_importance,omitempty" json:"view_importance,omitempty"` // 0-10
	FamousPeople       *bool    `bson:"famous_people,omitempty" json:"famous_people,omitempty"`
	PositionPreference string   `bson:"position_preference,omitempty" json:"position_preference,omitempty"`
	LocationPreference string   `bson:"location_preference,omitempty" json:"location_preference,omitempty"`
}

// Merge applies delta on top of p with shallow per-key overwrite semantics:
// a key present in delta replaces the stored value entirely, keys absent from
// delta are untouched.
func (p *PreferenceRecord) Merge(delta PreferenceRecord) {
	if delta.BudgetMin != nil {
		p.BudgetMin = delta.BudgetMin
	}
	if delta.BudgetMax != nil {
		p.BudgetMax = delta.BudgetMax
	}
	if delta.ACImportance != "" {
		p.ACImportance = delta.ACImportance
	}
	if delta.ViewImportance != nil {
		p.ViewImportance = delta.ViewImportance
	}
	if delta.FamousPeople != nil {
		p.FamousPeople = delta.FamousPeople
	}
	if delta.PositionPreference != "" {
		p.PositionPreference = delta.PositionPreference
	}
	if delta.LocationPreference != "" {
		p.LocationPreference = delta.LocationPreference
	}
}

// FieldCount reports how many preference keys are set.
func (p PreferenceRecord) FieldCount() int {
	n := 0
	if p.BudgetMin != nil {
		n++
	}
	if p.BudgetMax != nil {
		n++
	}
	if p.ACImportance != "" {
		n++
	}
	if p.ViewImportance != nil {
		n++
	}
	if p.FamousPeople != nil {
		n++
	}
	if p.PositionPreference != "" {
		n++
	}
	if p.LocationPreference != "" {
		n++
	}
	return n
}

// IsEmpty reports whether no preference key is set.
func (p PreferenceRecord) IsEmpty() bool {
	return p.FieldCount() == 0
}

// WantsFamous reports whether historical seats were explicitly requested.
// Absence is not the same as an explicit "no".
func (p PreferenceRecord) WantsFamous() bool {
	return p.FamousPeople != nil && *p.FamousPeople
}

// Float64Ptr, IntPtr, BoolPtr build optional preference values in one call.
func Float64Ptr(v float64) *float64 { return &v }
func IntPtr(v int) *int             { return &v }
func BoolPtr(v bool) *bool          { return &v }
