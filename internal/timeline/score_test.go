package timeline

import (
	"testing"

	"github.com/nordsport/matchfeed/internal/provider"
)

func goal(period int, clock string, side Side) *Event {
	return &Event{Kind: KindGoal, Period: period, Clock: clock, Side: side, Goal: &GoalDetail{}}
}

func intPtr(n int) *int { return &n }

func TestReconstructScenario(t *testing.T) {
	// Provider-arbitrary input order; expected running scores
	// [{1,0},{1,1},{2,1}] and final 2-1.
	goals := []*Event{
		goal(2, "3", SideHome),
		goal(1, "12", SideAway),
		goal(1, "5", SideHome),
	}

	res := ReconstructScores(goals)
	if len(res.Goals) != 3 {
		t.Fatalf("expected 3 goals, got %d", len(res.Goals))
	}

	want := []Score{{1, 0}, {1, 1}, {2, 1}}
	for i, g := range res.Goals {
		if *g.Goal.RunningScore != want[i] {
			t.Errorf("goal %d running score = %+v, want %+v", i, *g.Goal.RunningScore, want[i])
		}
	}
	if res.Final != (Score{2, 1}) {
		t.Errorf("final = %+v, want 2-1", res.Final)
	}
}

func TestReconstructMonotonicity(t *testing.T) {
	goals := []*Event{
		goal(3, "18", SideAway),
		goal(1, "2", SideHome),
		goal(2, "10", SideHome),
		goal(2, "1", SideAway),
		goal(1, "19", SideHome),
	}

	res := ReconstructScores(goals)
	prev := Score{}
	for i, g := range res.Goals {
		rs := *g.Goal.RunningScore
		if rs.Home < prev.Home || rs.Away < prev.Away {
			t.Errorf("goal %d: running score %+v decreased from %+v", i, rs, prev)
		}
		prev = rs
	}
	if prev.Home != 3 || prev.Away != 2 {
		t.Errorf("last running score %+v must equal box score 3-2", prev)
	}
}

func TestReconstructStableTieBreak(t *testing.T) {
	// Identical (period, clock): provider order decides.
	first := goal(2, "7", SideHome)
	second := goal(2, "7", SideAway)

	res := ReconstructScores([]*Event{first, second})
	if res.Goals[0] != first || res.Goals[1] != second {
		t.Fatal("tie-break must preserve provider order")
	}
	if *res.Goals[0].Goal.RunningScore != (Score{1, 0}) {
		t.Errorf("first tied goal score = %+v", *res.Goals[0].Goal.RunningScore)
	}
}

func TestReconstructUnresolvedSideExcluded(t *testing.T) {
	goals := []*Event{
		goal(1, "5", SideHome),
		goal(1, "10", SideUnknown),
		goal(2, "2", SideAway),
	}

	res := ReconstructScores(goals)
	if len(res.Goals) != 2 {
		t.Fatalf("expected 2 resolvable goals, got %d", len(res.Goals))
	}
	if len(res.Unresolved) != 1 {
		t.Fatalf("expected 1 flagged goal, got %d", len(res.Unresolved))
	}
	// Exclusion must not desynchronize later totals.
	if *res.Goals[1].Goal.RunningScore != (Score{1, 1}) {
		t.Errorf("post-exclusion score = %+v, want {1 1}", *res.Goals[1].Goal.RunningScore)
	}
	if res.Unresolved[0].Goal.RunningScore != nil {
		t.Error("unresolved goal must not carry a running score")
	}
}

func TestClockMinute(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"12'", 12},
		{"05:32", 5},
		{"45+2'", 45},
		{"", 0},
		{"OT", 0},
	}
	for _, tt := range tests {
		if got := clockMinute(tt.in); got != tt.want {
			t.Errorf("clockMinute(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFinalScoreFallbackChain(t *testing.T) {
	computed := ReconstructScores([]*Event{goal(1, "5", SideHome)})
	empty := ReconstructScores(nil)

	tests := []struct {
		name string
		res  ReconstructResult
		sum  *provider.GameSummary
		want string
	}{
		{"computed wins", computed, &provider.GameSummary{HomeScore: intPtr(9), AwayScore: intPtr(9)}, "1-0"},
		{"summary score", empty, &provider.GameSummary{HomeScore: intPtr(2), AwayScore: intPtr(1)}, "2-1"},
		{"team info score", empty, &provider.GameSummary{
			Home: provider.TeamInfo{Score: intPtr(3)},
			Away: provider.TeamInfo{Score: intPtr(2)},
		}, "3-2"},
		{"placeholder dash", empty, &provider.GameSummary{}, "-"},
		{"nil summary", empty, nil, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FinalScore(tt.res, tt.sum); got != tt.want {
				t.Errorf("FinalScore() = %q, want %q", got, tt.want)
			}
		})
	}
}
