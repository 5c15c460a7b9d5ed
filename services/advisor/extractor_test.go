package advisor

import (
	"reflect"
	"testing"

	"seatadvisor/models"
)

func TestExtractBudgetPrecedence(t *testing.T) {
	e := NewExtractor()

	cases := []struct {
		message string
		want    float64
	}{
		{"I can spend $250", 250},
		{"around 300 dollars", 300},
		{"something under 150", 150},
		{"cheap seats please", 200},
		{"I want something premium", 600},
		{"moderate pricing works", 400},
		{"$250 but definitely under 100 and cheap", 250},
		{"cheap seats under 150", 150},
	}
	for _, tc := range cases {
		res := e.Extract(tc.message)
		if res.Preferences.BudgetMax == nil {
			t.Fatalf("Extract(%q): no budget extracted", tc.message)
		}
		if got := *res.Preferences.BudgetMax; got != tc.want {
			t.Fatalf("Extract(%q): budget = %v, want %v", tc.message, got, tc.want)
		}
	}
}

func TestExtractACImportanceTiers(t *testing.T) {
	e := NewExtractor()

	cases := []struct {
		message string
		want    string
	}{
		{"I need AC, it gets hot", models.ACRequired},
		{"air conditioning is essential", models.ACRequired},
		{"I would like AC if possible", models.ACPreferred},
		{"keep me cool please", models.ACPreferred},
		{"I don't care about the AC", models.ACOptional},
		{"it's not that important to have AC honestly", models.ACOptional},
	}
	for _, tc := range cases {
		res := e.Extract(tc.message)
		if got := res.Preferences.ACImportance; got != tc.want {
			t.Fatalf("Extract(%q): ac importance = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestExtractViewImportance(t *testing.T) {
	e := NewExtractor()

	cases := []struct {
		message string
		want    int
	}{
		{"I need an excellent view of the stage", 10},
		{"a good view would be nice", 7},
		{"the view doesn't matter to me", 3},
		{"I want to see everything", 7},
	}
	for _, tc := range cases {
		res := e.Extract(tc.message)
		if res.Preferences.ViewImportance == nil {
			t.Fatalf("Extract(%q): no view importance extracted", tc.message)
		}
		if got := *res.Preferences.ViewImportance; got != tc.want {
			t.Fatalf("Extract(%q): view importance = %d, want %d", tc.message, got, tc.want)
		}
	}
}

func TestExtractPositionAndLocation(t *testing.T) {
	e := NewExtractor()

	res := e.Extract("an aisle seat near the front would be great")
	if res.Preferences.PositionPreference != models.PositionAisle {
		t.Fatalf("position = %q, want %q", res.Preferences.PositionPreference, models.PositionAisle)
	}
	if res.Preferences.LocationPreference != models.LocationFront {
		t.Fatalf("location = %q, want %q", res.Preferences.LocationPreference, models.LocationFront)
	}

	// "middle" belongs to both the position and the location vocabulary, so a
	// single mention fills both fields.
	res = e.Extract("somewhere in the middle")
	if res.Preferences.PositionPreference != models.PositionCenter {
		t.Fatalf("position = %q, want %q", res.Preferences.PositionPreference, models.PositionCenter)
	}
	if res.Preferences.LocationPreference != models.LocationMiddle {
		t.Fatalf("location = %q, want %q", res.Preferences.LocationPreference, models.LocationMiddle)
	}
}

func TestExtractFamous(t *testing.T) {
	e := NewExtractor()

	res := e.Extract("did anyone famous sit here?")
	if res.Preferences.FamousPeople == nil || !*res.Preferences.FamousPeople {
		t.Fatalf("famous_people not extracted from explicit mention")
	}
	res = e.Extract("just a normal seat")
	if res.Preferences.FamousPeople != nil {
		t.Fatalf("famous_people extracted from message with no mention")
	}
}

func TestExtractConfidenceSteps(t *testing.T) {
	e := NewExtractor()

	cases := []struct {
		message string
		fields  int
		want    float64
	}{
		{"hmm okay", 0, 0.0},
		{"$300", 1, 0.5},
		{"I want AC under $300", 2, 0.7},
		{"under 300, need AC, amazing view", 3, 0.85},
		{"under 300, need AC, amazing view, famous seats", 4, 0.9},
		{"under 300, need AC, amazing view, famous seats, on the aisle", 5, 0.95},
		{"under 300, need AC, amazing view, famous seats, aisle, near the front", 6, 1.0},
	}
	for _, tc := range cases {
		res := e.Extract(tc.message)
		if len(res.ExtractedFields) != tc.fields {
			t.Fatalf("Extract(%q): %d fields %v, want %d", tc.message, len(res.ExtractedFields), res.ExtractedFields, tc.fields)
		}
		if res.Confidence != tc.want {
			t.Fatalf("Extract(%q): confidence = %v, want %v", tc.message, res.Confidence, tc.want)
		}
	}
}

func TestExtractGreeting(t *testing.T) {
	e := NewExtractor()

	res := e.Extract("Hello there!")
	if !res.IsGreeting {
		t.Fatalf("plain greeting not flagged")
	}
	if !res.Preferences.IsEmpty() {
		t.Fatalf("greeting extracted preferences: %+v", res.Preferences)
	}

	// A greeting that also states a preference is a preference turn.
	res = e.Extract("hi, I need AC")
	if res.IsGreeting {
		t.Fatalf("greeting flag set despite extracted fields")
	}
	if res.Preferences.ACImportance != models.ACRequired {
		t.Fatalf("ac importance = %q, want %q", res.Preferences.ACImportance, models.ACRequired)
	}
}

func TestExtractDeterminism(t *testing.T) {
	e := NewExtractor()
	const msg = "under 300, need AC, amazing view, famous seats, on the aisle"

	first := e.Extract(msg)
	for i := 0; i < 5; i++ {
		if got := e.Extract(msg); !reflect.DeepEqual(got, first) {
			t.Fatalf("extraction not deterministic: %+v vs %+v", got, first)
		}
	}
}
