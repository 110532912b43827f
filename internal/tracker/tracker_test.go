package tracker

import (
	"context"
	"testing"
	"time"
)

func newTestTracker(t *testing.T, store Store) *Tracker {
	t.Helper()
	tr, err := New(context.Background(), store, DefaultRetryWindow)
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	return tr
}

func TestDecide(t *testing.T) {
	now := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, NewMemStore("resolved-game"))

	tests := []struct {
		name   string
		gameID string
		start  time.Time
		want   Action
	}{
		{"already resolved", "resolved-game", now.Add(-2 * time.Hour), ActionSkip},
		{"fresh game", "game-1", now.Add(-2 * time.Hour), ActionCheck},
		{"25 hours old", "game-2", now.Add(-25 * time.Hour), ActionGiveUp},
		{"just inside window", "game-3", now.Add(-23 * time.Hour), ActionCheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.Decide(tt.gameID, tt.start, now); got != tt.want {
				t.Errorf("Decide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMarkResolvedIsTerminalAndIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	tr := newTestTracker(t, store)
	now := time.Now()

	if err := tr.MarkResolved(ctx, "g1"); err != nil {
		t.Fatalf("mark resolved: %v", err)
	}
	if err := tr.MarkResolved(ctx, "g1"); err != nil {
		t.Fatalf("second mark resolved: %v", err)
	}

	if got := tr.Decide("g1", now, now); got != ActionSkip {
		t.Errorf("resolved game must skip, got %v", got)
	}

	ids, _ := store.Load(ctx)
	if len(ids) != 1 {
		t.Errorf("idempotent resolve appended %d records, want 1", len(ids))
	}
}

func TestBootstrapAmnesty(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(t, NewMemStore())
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	candidates := []Candidate{
		{GameID: "A", StartTime: base},
		{GameID: "B", StartTime: base.Add(1 * time.Hour)},
		{GameID: "C", StartTime: base.Add(2 * time.Hour)},
	}

	resolved, err := tr.Amnesty(ctx, candidates)
	if err != nil {
		t.Fatalf("amnesty: %v", err)
	}
	if len(resolved) != 2 {
		t.Fatalf("resolved %d games, want 2", len(resolved))
	}

	now := base.Add(3 * time.Hour)
	if tr.Decide("A", base, now) != ActionSkip || tr.Decide("B", base, now) != ActionSkip {
		t.Error("A and B must be resolved after amnesty")
	}
	if tr.Decide("C", base, now) != ActionCheck {
		t.Error("most recent game C must stay pending")
	}
}

func TestAmnestyOnlyOnce(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(t, NewMemStore())
	base := time.Now()

	if _, err := tr.Amnesty(ctx, []Candidate{{GameID: "A", StartTime: base}}); err != nil {
		t.Fatalf("amnesty: %v", err)
	}
	// Disarmed even though nothing was resolved; a later multi-game cycle
	// must not bulk-resolve.
	resolved, err := tr.Amnesty(ctx, []Candidate{
		{GameID: "B", StartTime: base},
		{GameID: "C", StartTime: base.Add(time.Hour)},
	})
	if err != nil {
		t.Fatalf("second amnesty: %v", err)
	}
	if len(resolved) != 0 {
		t.Errorf("amnesty re-triggered, resolved %v", resolved)
	}
}

func TestAmnestyNotArmedWithPopulatedSeenSet(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(t, NewMemStore("old-game"))
	base := time.Now()

	resolved, err := tr.Amnesty(ctx, []Candidate{
		{GameID: "A", StartTime: base},
		{GameID: "B", StartTime: base.Add(time.Hour)},
	})
	if err != nil {
		t.Fatalf("amnesty: %v", err)
	}
	if len(resolved) != 0 {
		t.Errorf("restart with populated seen-set must not amnesty, resolved %v", resolved)
	}
}

func TestActionString(t *testing.T) {
	if ActionSkip.String() != "skip" || ActionCheck.String() != "check" || ActionGiveUp.String() != "giveUpAndMarkSeen" {
		t.Error("action names drifted")
	}
}
