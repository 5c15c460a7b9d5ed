package models

import "testing"

func TestNormalizedTypeResolvesLegacyAlias(t *testing.T) {
	s := Seat{SeatType: SeatTypeLegacyRegular}
	if got := s.NormalizedType(); got != SeatTypePerpendicularFront {
		t.Fatalf("NormalizedType = %q, want %q", got, SeatTypePerpendicularFront)
	}
	s.SeatType = SeatTypeRegularBottom
	if got := s.NormalizedType(); got != SeatTypeRegularBottom {
		t.Fatalf("NormalizedType rewrote a non-legacy type to %q", got)
	}
}

func TestEffectiveViewQualityDefaultsToMidpoint(t *testing.T) {
	var s Seat
	if got := s.EffectiveViewQuality(); got != 5 {
		t.Fatalf("EffectiveViewQuality = %d, want neutral 5", got)
	}
	s.ViewQuality = 9
	if got := s.EffectiveViewQuality(); got != 9 {
		t.Fatalf("EffectiveViewQuality = %d, want 9", got)
	}
}

func TestSeatFilterIsZero(t *testing.T) {
	if !(SeatFilter{}).IsZero() {
		t.Fatalf("empty filter not reported as zero")
	}
	f := SeatFilter{HasAC: BoolPtr(true)}
	if f.IsZero() {
		t.Fatalf("filter with has_ac reported as zero")
	}
}
