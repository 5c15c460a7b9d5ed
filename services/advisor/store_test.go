package advisor

import (
	"fmt"
	"testing"
	"time"

	"seatadvisor/models"
)

// fakeClock drives the store's sliding expiry deterministically.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestStore(timeout time.Duration) (*SessionStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return NewSessionStore(timeout, clock.Now), clock
}

func TestSessionStoreCreateAndGet(t *testing.T) {
	store, _ := newTestStore(time.Minute)

	id := store.Create()
	sess, ok := store.Get(id)
	if !ok {
		t.Fatalf("Get(%q) missed a freshly created session", id)
	}
	if sess.ID != id {
		t.Fatalf("session id = %q, want %q", sess.ID, id)
	}
	if len(sess.History) != 0 {
		t.Fatalf("fresh session has %d history turns", len(sess.History))
	}

	if _, ok := store.Get("no-such-session"); ok {
		t.Fatalf("Get returned a session for an unknown id")
	}
}

func TestSessionStoreSlidingExpiry(t *testing.T) {
	store, clock := newTestStore(time.Minute)
	id := store.Create()

	// Exactly at the timeout boundary the session is still alive.
	clock.Advance(time.Minute)
	if _, ok := store.Get(id); !ok {
		t.Fatalf("session expired exactly at the timeout boundary")
	}

	// The Get above refreshed last-active, so another full minute is fine.
	clock.Advance(time.Minute)
	if _, ok := store.Get(id); !ok {
		t.Fatalf("sliding expiry did not refresh on access")
	}

	clock.Advance(time.Minute + time.Second)
	if _, ok := store.Get(id); ok {
		t.Fatalf("session survived past the timeout")
	}
}

func TestSessionStoreUpdateCreatesWhenAbsent(t *testing.T) {
	store, _ := newTestStore(time.Minute)

	id := store.Update("stale-id", "hi", "hello!", models.PreferenceRecord{})
	if id == "stale-id" {
		t.Fatalf("Update kept the unknown id instead of minting a new session")
	}
	sess, ok := store.Get(id)
	if !ok {
		t.Fatalf("Get missed the session minted by Update")
	}
	if len(sess.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(sess.History))
	}
	if sess.History[0].Role != models.RoleUser || sess.History[1].Role != models.RoleAssistant {
		t.Fatalf("history roles = %q/%q", sess.History[0].Role, sess.History[1].Role)
	}
}

func TestSessionStoreHistoryCap(t *testing.T) {
	store, _ := newTestStore(time.Minute)
	id := store.Create()

	for i := 1; i <= 11; i++ {
		store.Update(id, fmt.Sprintf("u%d", i), fmt.Sprintf("b%d", i), models.PreferenceRecord{})
	}

	sess, _ := store.Get(id)
	if len(sess.History) != models.MaxHistoryTurns {
		t.Fatalf("history length = %d, want %d", len(sess.History), models.MaxHistoryTurns)
	}
	// The first exchange fell off; the window starts at the second one.
	if sess.History[0].Content != "u2" {
		t.Fatalf("oldest retained turn = %q, want %q", sess.History[0].Content, "u2")
	}
	if last := sess.History[len(sess.History)-1].Content; last != "b11" {
		t.Fatalf("newest turn = %q, want %q", last, "b11")
	}
}

func TestSessionStorePreferenceMerge(t *testing.T) {
	store, _ := newTestStore(time.Minute)
	id := store.Create()

	store.Update(id, "u", "b", models.PreferenceRecord{BudgetMax: models.Float64Ptr(400)})
	store.Update(id, "u", "b", models.PreferenceRecord{ACImportance: models.ACRequired})
	store.Update(id, "u", "b", models.PreferenceRecord{BudgetMax: models.Float64Ptr(280)})

	sess, _ := store.Get(id)
	if sess.Prefs.BudgetMax == nil || *sess.Prefs.BudgetMax != 280 {
		t.Fatalf("budget_max = %v, want 280", sess.Prefs.BudgetMax)
	}
	if sess.Prefs.ACImportance != models.ACRequired {
		t.Fatalf("ac_importance = %q, want %q", sess.Prefs.ACImportance, models.ACRequired)
	}
}

func TestSessionStoreSnapshotIsolation(t *testing.T) {
	store, _ := newTestStore(time.Minute)
	id := store.Create()
	store.Update(id, "u1", "b1", models.PreferenceRecord{})

	sess, _ := store.Get(id)
	sess.History[0].Content = "mutated"

	again, _ := store.Get(id)
	if again.History[0].Content != "u1" {
		t.Fatalf("store state leaked through the returned snapshot")
	}
}

func TestSessionStoreClearAndActiveCount(t *testing.T) {
	store, clock := newTestStore(time.Minute)

	a := store.Create()
	store.Create()
	if n := store.ActiveCount(); n != 2 {
		t.Fatalf("ActiveCount = %d, want 2", n)
	}

	if !store.Clear(a) {
		t.Fatalf("Clear missed an existing session")
	}
	if store.Clear(a) {
		t.Fatalf("Clear reported success for an already removed session")
	}

	clock.Advance(2 * time.Minute)
	if n := store.ActiveCount(); n != 0 {
		t.Fatalf("ActiveCount = %d after expiry, want 0", n)
	}
}
