package timeline

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/nordsport/matchfeed/internal/provider"
)

// ReconstructResult is the outcome of a running-score reconstruction.
type ReconstructResult struct {
	// Goals in recovered chronological order with RunningScore populated.
	Goals []*Event
	// Unresolved goals whose side could not be determined. They carry no
	// running score and did not increment either counter — a data-quality
	// signal for the caller, not a fatal condition.
	Unresolved []*Event
	// Final is the running score after the last resolvable goal.
	Final Score
}

// ReconstructScores recovers the true chronological order of a game's goals
// and computes the running score immediately after each one. The input order
// is the provider's; it is the tie-break for goals sharing identical
// (period, clock).
//
// Downstream consumers need running scores in scoring order even though the
// display later reverses the sequence.
func ReconstructScores(goals []*Event) ReconstructResult {
	sorted := make([]*Event, 0, len(goals))
	for _, g := range goals {
		if g.Kind == KindGoal {
			sorted = append(sorted, g)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Period != sorted[j].Period {
			return sorted[i].Period < sorted[j].Period
		}
		return clockMinute(sorted[i].Clock) < clockMinute(sorted[j].Clock)
	})

	var result ReconstructResult
	var running Score
	for _, g := range sorted {
		switch g.Side {
		case SideHome:
			running.Home++
		case SideAway:
			running.Away++
		default:
			// Excluded from the walk; totals stay in sync for later goals.
			result.Unresolved = append(result.Unresolved, g)
			continue
		}
		score := running
		g.Goal.RunningScore = &score
		result.Goals = append(result.Goals, g)
	}
	result.Final = running
	return result
}

// clockMinute extracts the leading integer minute from an in-period clock.
// Non-numeric or missing clocks sort as minute 0, first in their period.
func clockMinute(clock string) int {
	i := 0
	for i < len(clock) && clock[i] >= '0' && clock[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0
	}
	n, err := strconv.Atoi(clock[:i])
	if err != nil {
		return 0
	}
	return n
}

// FinalScore renders the final box score for display. Fallback chain:
// computed running score → provider's game-summary score → provider's
// per-team-info score → placeholder dash.
func FinalScore(res ReconstructResult, sum *provider.GameSummary) string {
	if len(res.Goals) > 0 {
		return fmt.Sprintf("%d-%d", res.Final.Home, res.Final.Away)
	}
	if sum != nil {
		if sum.HomeScore != nil && sum.AwayScore != nil {
			return fmt.Sprintf("%d-%d", *sum.HomeScore, *sum.AwayScore)
		}
		if sum.Home.Score != nil && sum.Away.Score != nil {
			return fmt.Sprintf("%d-%d", *sum.Home.Score, *sum.Away.Score)
		}
	}
	return "-"
}
