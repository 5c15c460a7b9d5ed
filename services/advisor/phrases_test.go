package advisor

import (
	"strings"
	"testing"

	"seatadvisor/models"
)

func TestAcknowledgeGreeting(t *testing.T) {
	r := NewResponder(fixedChooser{})
	e := NewExtractor()

	res := e.Extract("hello!")
	reply := r.Acknowledge(res, models.PreferenceRecord{})
	if reply != greetingPhrases[0] {
		t.Fatalf("greeting reply = %q", reply)
	}
}

func TestAcknowledgeMentionsBudgetAndFollowUp(t *testing.T) {
	r := NewResponder(fixedChooser{})
	e := NewExtractor()

	res := e.Extract("my max is $350")
	merged := res.Preferences
	reply := r.Acknowledge(res, merged)
	if !strings.Contains(reply, "$350") {
		t.Fatalf("reply does not echo the budget: %q", reply)
	}
	// A lone budget is already sufficient, so the ready phrasing follows.
	if !strings.Contains(reply, readyPhrases[0]) {
		t.Fatalf("reply missing ready follow-up: %q", reply)
	}
}

func TestAcknowledgeAsksForMore(t *testing.T) {
	r := NewResponder(fixedChooser{})
	e := NewExtractor()

	res := e.Extract("I need AC")
	reply := r.Acknowledge(res, res.Preferences)
	if !strings.Contains(reply, needMorePhrases[0]) {
		t.Fatalf("reply missing follow-up prompt: %q", reply)
	}
}

func TestAcknowledgeClarifiesWhenNothingExtracted(t *testing.T) {
	r := NewResponder(fixedChooser{})
	e := NewExtractor()

	res := e.Extract("hmm okay")
	reply := r.Acknowledge(res, models.PreferenceRecord{})
	if reply != clarifyPhrases[0] {
		t.Fatalf("clarification reply = %q", reply)
	}
}

func TestHasSufficientPreferences(t *testing.T) {
	cases := []struct {
		name string
		p    models.PreferenceRecord
		want bool
	}{
		{"empty", models.PreferenceRecord{}, false},
		{"budget alone", models.PreferenceRecord{BudgetMax: models.Float64Ptr(300)}, true},
		{"ac alone", models.PreferenceRecord{ACImportance: models.ACRequired}, false},
		{"ac plus location", models.PreferenceRecord{
			ACImportance:       models.ACRequired,
			LocationPreference: models.LocationFront,
		}, true},
		{"optional ac plus position", models.PreferenceRecord{
			ACImportance:       models.ACOptional,
			PositionPreference: models.PositionAisle,
		}, false},
	}
	for _, tc := range cases {
		if got := HasSufficientPreferences(tc.p); got != tc.want {
			t.Fatalf("%s: HasSufficientPreferences = %v, want %v", tc.name, got, tc.want)
		}
	}
}
