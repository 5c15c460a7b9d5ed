package seatRepo

import (
	"testing"

	"seatadvisor/models"
)

func TestGenerateVenueSeatsLayout(t *testing.T) {
	seats := GenerateVenueSeats()
	if len(seats) != 250 {
		t.Fatalf("generated %d seats, want 250", len(seats))
	}

	seen := make(map[int]bool, len(seats))
	byType := make(map[string]int)
	for _, s := range seats {
		if seen[s.ID] {
			t.Fatalf("duplicate seat id %d", s.ID)
		}
		seen[s.ID] = true
		byType[s.SeatType]++

		if s.Layer < 1 || s.Layer > 15 {
			t.Fatalf("seat %d has layer %d", s.ID, s.Layer)
		}
		if s.Position < 1 || s.Position > 10 {
			t.Fatalf("seat %d has position %d", s.ID, s.Position)
		}
		if s.ViewQuality < 1 || s.ViewQuality > 10 {
			t.Fatalf("seat %d has view quality %d", s.ID, s.ViewQuality)
		}
		if s.Price < 100 || s.Price > 600 {
			t.Fatalf("seat %d priced at %v", s.ID, s.Price)
		}
		if !s.IsAvailable {
			t.Fatalf("seat %d seeded unavailable", s.ID)
		}
		if s.SeatType == models.SeatTypePerpendicularFront && s.Side != models.SideNone {
			t.Fatalf("perpendicular seat %d carries side %q", s.ID, s.Side)
		}
	}

	if byType[models.SeatTypeRegularTop] != 100 {
		t.Fatalf("regular_top count = %d, want 100", byType[models.SeatTypeRegularTop])
	}
	if byType[models.SeatTypePerpendicularFront] != 50 {
		t.Fatalf("perpendicular_front count = %d, want 50", byType[models.SeatTypePerpendicularFront])
	}
	if byType[models.SeatTypeRegularBottom] != 100 {
		t.Fatalf("regular_bottom count = %d, want 100", byType[models.SeatTypeRegularBottom])
	}
}

func TestGenerateVenueSeatsMetadata(t *testing.T) {
	seats := GenerateVenueSeats()

	famous := 0
	for _, s := range seats {
		if s.FamousOccupant != "" {
			famous++
		}
		// AC always implies a pro entry, its absence a con entry.
		if s.HasAC && !contains(s.Pros, "Air conditioning coverage") {
			t.Fatalf("seat %d has AC but no matching pro", s.ID)
		}
		if !s.HasAC && !contains(s.Cons, "No direct AC coverage") {
			t.Fatalf("seat %d lacks AC but no matching con", s.ID)
		}
		if s.SeatType == models.SeatTypePerpendicularFront && !s.HasAC {
			t.Fatalf("premium seat %d without AC", s.ID)
		}
	}
	if famous != len(famousOccupants) {
		t.Fatalf("%d seats carry historical notes, want %d", famous, len(famousOccupants))
	}
}

func TestGenerateVenueSeatsDeterministic(t *testing.T) {
	first := GenerateVenueSeats()
	second := GenerateVenueSeats()
	for i := range first {
		if first[i].ID != second[i].ID || first[i].ViewQuality != second[i].ViewQuality ||
			first[i].Price != second[i].Price || first[i].HasAC != second[i].HasAC {
			t.Fatalf("seed generation not deterministic at index %d", i)
		}
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
