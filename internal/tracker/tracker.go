// Package tracker decides, per completed game, whether the notifier still
// needs to check it for a highlight. It is the one stateful component of the
// system: a durable seen-set of already-resolved games plus a time-bounded
// retry window.
//
// Per-game lifecycle: unseen → pending → resolved. Resolved is terminal —
// a game is never re-opened.
package tracker

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// DefaultRetryWindow bounds how long a finished game without a highlight
// stays eligible for re-checking.
const DefaultRetryWindow = 24 * time.Hour

// Action is the per-game decision for one polling cycle.
type Action int

const (
	// ActionSkip: game already resolved, nothing to do.
	ActionSkip Action = iota
	// ActionCheck: game still eligible for a highlight check.
	ActionCheck
	// ActionGiveUp: retry window exceeded; mark seen without a highlight.
	ActionGiveUp
)

func (a Action) String() string {
	switch a {
	case ActionSkip:
		return "skip"
	case ActionCheck:
		return "check"
	case ActionGiveUp:
		return "giveUpAndMarkSeen"
	default:
		return "unknown"
	}
}

// Candidate is a finished game under consideration.
type Candidate struct {
	GameID    string
	StartTime time.Time
}

// Tracker holds the in-memory mirror of the seen-set and the injected
// durable store. Single-writer: the polling loop is sequential.
type Tracker struct {
	store       Store
	seen        map[string]bool
	retryWindow time.Duration

	// amnestyArmed is keyed off "seen-set was empty at load", not "first
	// loop iteration" — a restart with a populated seen-set never
	// re-triggers the bulk resolve.
	amnestyArmed bool
}

// New loads the seen-set from the store and arms the cold-start amnesty if
// it came back empty.
func New(ctx context.Context, store Store, retryWindow time.Duration) (*Tracker, error) {
	if retryWindow <= 0 {
		retryWindow = DefaultRetryWindow
	}
	ids, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load seen-set: %w", err)
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	return &Tracker{
		store:        store,
		seen:         seen,
		retryWindow:  retryWindow,
		amnestyArmed: len(ids) == 0,
	}, nil
}

// Decide returns the action for one finished game at the given wall-clock
// time. Resolved games are skipped; games past the retry window give up;
// everything else remains eligible.
func (t *Tracker) Decide(gameID string, start time.Time, now time.Time) Action {
	if t.seen[gameID] {
		return ActionSkip
	}
	if now.Sub(start) > t.retryWindow {
		return ActionGiveUp
	}
	return ActionCheck
}

// MarkResolved transitions a game to the terminal resolved state and makes
// it durable. Idempotent: re-resolving a seen game is a no-op.
func (t *Tracker) MarkResolved(ctx context.Context, gameID string) error {
	if t.seen[gameID] {
		return nil
	}
	if err := t.store.Append(ctx, gameID); err != nil {
		return fmt.Errorf("append seen-set: %w", err)
	}
	if err := t.store.Flush(ctx); err != nil {
		return fmt.Errorf("flush seen-set: %w", err)
	}
	t.seen[gameID] = true
	return nil
}

// Resolved reports whether a game is in the terminal state.
func (t *Tracker) Resolved(gameID string) bool { return t.seen[gameID] }

// SeenCount returns the size of the seen-set.
func (t *Tracker) SeenCount() int { return len(t.seen) }

// Amnesty applies the one-time cold-start bulk resolve: with an empty
// seen-set and more than one finished candidate, every candidate except the
// most recent is resolved immediately, without a highlight check. This
// prevents a burst of historical notifications on first deployment.
//
// Returns the ids that were resolved. Disarms itself after the first call
// regardless of outcome.
func (t *Tracker) Amnesty(ctx context.Context, candidates []Candidate) ([]string, error) {
	if !t.amnestyArmed {
		return nil, nil
	}
	t.amnestyArmed = false
	if len(candidates) <= 1 {
		return nil, nil
	}

	sorted := append([]Candidate(nil), candidates...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	var resolved []string
	for _, c := range sorted[:len(sorted)-1] {
		if err := t.MarkResolved(ctx, c.GameID); err != nil {
			return resolved, fmt.Errorf("amnesty resolve %s: %w", c.GameID, err)
		}
		resolved = append(resolved, c.GameID)
	}
	return resolved, nil
}
