// Package highlight correlates scoring events with the independently-fetched
// highlight clip list using a tiered matching strategy.
package highlight

import (
	"fmt"
	"strings"

	"github.com/nordsport/matchfeed/internal/provider"
	"github.com/nordsport/matchfeed/internal/timeline"
)

// Minimum surname length for the title-substring fallback. Shorter names
// trigger too many false positives.
const minSurnameLen = 3

// FindClip maps one goal to zero-or-one clip from the game's clip list.
//
// Tier 1 (authoritative): exact match against a clip tagged with the goal's
// own post-goal score, "goal.<home>-<away>". First list match wins.
// Tier 2 (fallback): case-insensitive substring match of the scorer's
// surname against each clip's title. First match wins.
//
// A nil result is the expected steady state for goals the provider has not
// yet clipped — not an error. Pure function: correctness depends solely on
// the current goal and the current clip list.
func FindClip(goal *timeline.Event, clips []provider.VideoClip) *provider.VideoClip {
	if goal == nil || goal.Kind != timeline.KindGoal || goal.Goal == nil {
		return nil
	}

	if rs := goal.Goal.RunningScore; rs != nil {
		tag := fmt.Sprintf("goal.%d-%d", rs.Home, rs.Away)
		for i := range clips {
			if clips[i].HasTag(tag) {
				return &clips[i]
			}
		}
	}

	name := strings.ToLower(goal.Goal.Surname)
	if len(name) < minSurnameLen {
		return nil
	}
	for i := range clips {
		if strings.Contains(strings.ToLower(clips[i].Title), name) {
			return &clips[i]
		}
	}
	return nil
}

// Correlate maps every goal in a display sequence to its clip, keyed by
// position in the sequence. Goals without a clip are absent from the map.
func Correlate(events []*timeline.Event, clips []provider.VideoClip) map[int]*provider.VideoClip {
	matches := make(map[int]*provider.VideoClip)
	for i, e := range events {
		if e.Kind != timeline.KindGoal {
			continue
		}
		if clip := FindClip(e, clips); clip != nil {
			matches[i] = clip
		}
	}
	return matches
}
