package models

import "testing"

func TestPreferenceMergeOverwritesPerKey(t *testing.T) {
	var p PreferenceRecord

	p.Merge(PreferenceRecord{BudgetMax: Float64Ptr(400)})
	p.Merge(PreferenceRecord{ACImportance: ACRequired})
	p.Merge(PreferenceRecord{BudgetMax: Float64Ptr(280)})

	if p.BudgetMax == nil || *p.BudgetMax != 280 {
		t.Fatalf("budget_max = %v, want 280", p.BudgetMax)
	}
	if p.ACImportance != ACRequired {
		t.Fatalf("ac_importance = %q, want %q", p.ACImportance, ACRequired)
	}
	if p.FieldCount() != 2 {
		t.Fatalf("FieldCount = %d, want 2", p.FieldCount())
	}
}

func TestPreferenceMergeIgnoresUnsetKeys(t *testing.T) {
	p := PreferenceRecord{
		BudgetMax:          Float64Ptr(400),
		LocationPreference: LocationFront,
	}
	p.Merge(PreferenceRecord{ViewImportance: IntPtr(8)})

	if *p.BudgetMax != 400 || p.LocationPreference != LocationFront {
		t.Fatalf("unset delta keys clobbered existing values: %+v", p)
	}
	if p.ViewImportance == nil || *p.ViewImportance != 8 {
		t.Fatalf("view_importance = %v, want 8", p.ViewImportance)
	}
}

func TestWantsFamousDistinguishesExplicitNo(t *testing.T) {
	var p PreferenceRecord
	if p.WantsFamous() {
		t.Fatalf("unset famous_people reported as wanted")
	}
	p.FamousPeople = BoolPtr(false)
	if p.WantsFamous() {
		t.Fatalf("explicit false reported as wanted")
	}
	if p.IsEmpty() {
		t.Fatalf("explicit false should still count as a set field")
	}
	p.FamousPeople = BoolPtr(true)
	if !p.WantsFamous() {
		t.Fatalf("explicit true not reported")
	}
}

func TestTriStateZeroValues(t *testing.T) {
	// An explicit zero is a value, not an absence.
	p := PreferenceRecord{BudgetMin: Float64Ptr(0), ViewImportance: IntPtr(0)}
	if p.IsEmpty() {
		t.Fatalf("explicit zeros treated as unset")
	}
	if p.FieldCount() != 2 {
		t.Fatalf("FieldCount = %d, want 2", p.FieldCount())
	}
}
