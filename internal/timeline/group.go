package timeline

import "sort"

// GroupOptions controls timeline assembly for one game.
type GroupOptions struct {
	// Sport selects the boundary marker kind: FOOTBALL gets half markers,
	// everything else period markers.
	Sport string
	// GameEnded enables the end-of-game goalkeeper cleanup suppression.
	GameEnded bool
}

// BuildTimeline merges normalized events into one display sequence, most
// recent first, with boundary markers introducing each period/half.
//
// The sequence is sorted chronologically, suppressed, reversed, and only
// then marker-interleaved: boundary detection needs one consistent walking
// direction, so markers are inserted on the reversed walk rather than by
// sorting in reverse directly.
func BuildTimeline(events []*Event, opts GroupOptions) []*Event {
	kept := make([]*Event, 0, len(events))
	for _, e := range events {
		if suppressed(e, opts) {
			continue
		}
		kept = append(kept, e)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Period != kept[j].Period {
			return kept[i].Period < kept[j].Period
		}
		return clockMinute(kept[i].Clock) < clockMinute(kept[j].Clock)
	})

	// Reverse for display: most recent event first.
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}

	marker := KindPeriodMarker
	if opts.Sport == "FOOTBALL" {
		marker = KindHalfMarker
	}

	// Walk the reversed sequence; whenever the period changes, introduce the
	// new period with a marker. The first marker is the last period played.
	// Periods with zero surviving events get no marker.
	out := make([]*Event, 0, len(kept)+4)
	lastPeriod := -1
	for _, e := range kept {
		if e.Period != lastPeriod {
			out = append(out, &Event{Kind: marker, Period: e.Period})
			lastPeriod = e.Period
		}
		out = append(out, e)
	}
	return out
}

// suppressed applies kind-specific noise filters.
//
// A goalkeeper entering in period 1 at the zero clock is the nominal starting
// goalkeeper, not a substitution. A goalkeeper leaving after the game ended
// is an end-of-game cleanup artifact. All other tracked kinds pass through.
func suppressed(e *Event, opts GroupOptions) bool {
	if e.Kind != KindGoalkeeperChange || e.Keeper == nil {
		return false
	}
	if e.Keeper.Entering && e.Period == 1 && clockMinute(e.Clock) == 0 {
		return true
	}
	if !e.Keeper.Entering && opts.GameEnded {
		return true
	}
	return false
}
