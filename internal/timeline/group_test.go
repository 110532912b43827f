package timeline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/nordsport/matchfeed/internal/provider"
)

func keeper(period int, clock string, entering bool) *Event {
	return &Event{
		Kind:   KindGoalkeeperChange,
		Period: period,
		Clock:  clock,
		Keeper: &KeeperDetail{Entering: entering},
	}
}

func TestBuildTimelineReversalAndMarkers(t *testing.T) {
	events := []*Event{
		goal(1, "5", SideHome),
		goal(1, "12", SideAway),
		goal(3, "3", SideHome),
	}

	seq := BuildTimeline(events, GroupOptions{Sport: "HOCKEY"})

	// Reversed display: marker P3, goal P3, marker P1, goal 12', goal 5'.
	wantKinds := []Kind{KindPeriodMarker, KindGoal, KindPeriodMarker, KindGoal, KindGoal}
	if len(seq) != len(wantKinds) {
		t.Fatalf("sequence length = %d, want %d", len(seq), len(wantKinds))
	}
	for i, k := range wantKinds {
		if seq[i].Kind != k {
			t.Errorf("entry %d kind = %v, want %v", i, seq[i].Kind, k)
		}
	}
	if seq[0].Period != 3 {
		t.Errorf("first marker period = %d, want 3 (last played)", seq[0].Period)
	}
	if seq[2].Period != 1 {
		t.Errorf("second marker period = %d, want 1", seq[2].Period)
	}
	if seq[3].Clock != "12" || seq[4].Clock != "5" {
		t.Errorf("period 1 goals not in reverse chronological order: %q, %q", seq[3].Clock, seq[4].Clock)
	}

	// No marker for period 2: zero surviving events.
	for _, e := range seq {
		if e.IsMarker() && e.Period == 2 {
			t.Error("marker emitted for empty period 2")
		}
	}
}

func TestBuildTimelineHalfMarkersForFootball(t *testing.T) {
	seq := BuildTimeline([]*Event{goal(1, "30", SideHome)}, GroupOptions{Sport: "FOOTBALL"})
	if len(seq) != 2 || seq[0].Kind != KindHalfMarker {
		t.Fatalf("expected half marker first, got %+v", seq)
	}
}

func TestSuppressStartingGoalkeeper(t *testing.T) {
	tests := []struct {
		name string
		ev   *Event
		opts GroupOptions
		want bool // suppressed
	}{
		{"entering p1 at zero clock", keeper(1, "00:00", true), GroupOptions{}, true},
		{"entering p1 mid-period", keeper(1, "05:00", true), GroupOptions{}, false},
		{"entering p2 at zero clock", keeper(2, "00:00", true), GroupOptions{}, false},
		{"leaving after game end", keeper(3, "20:00", false), GroupOptions{GameEnded: true}, true},
		{"leaving mid-game", keeper(2, "10:00", false), GroupOptions{}, false},
		{"goal never suppressed", goal(1, "00:00", SideHome), GroupOptions{GameEnded: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := BuildTimeline([]*Event{tt.ev}, tt.opts)
			found := false
			for _, e := range seq {
				if !e.IsMarker() {
					found = true
				}
			}
			if found == tt.want {
				t.Errorf("suppressed = %v, want %v", !found, tt.want)
			}
		})
	}
}

func TestPipelineIdempotence(t *testing.T) {
	raws := []provider.Event{
		{Type: "goal", Period: 2, Time: "3", TeamCode: "HIFK"},
		{Type: "penalty", Period: 1, Time: "8", TeamCode: "KAL", Minutes: 2, Code: "tripping"},
		{Type: "goal", Period: 1, Time: "12", TeamCode: "KAL"},
		{Type: "goalkeeper", Period: 1, Time: "00:00", Entering: true, TeamCode: "HIFK"},
	}

	run := func() []byte {
		events := NormalizeAll(raws, "HIFK")
		ReconstructScores(events)
		seq := BuildTimeline(events, GroupOptions{Sport: "HOCKEY", GameEnded: true})
		data, err := json.Marshal(seq)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return data
	}

	first := run()
	second := run()
	if !bytes.Equal(first, second) {
		t.Error("pipeline output differs across identical runs")
	}
}
