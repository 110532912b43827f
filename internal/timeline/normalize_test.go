package timeline

import (
	"testing"

	"github.com/nordsport/matchfeed/internal/provider"
)

func boolPtr(b bool) *bool { return &b }

func TestNormalizeUntrackedKind(t *testing.T) {
	raw := &provider.Event{Type: "faceoff", Period: 1}
	if ev := Normalize(raw, "HIFK"); ev != nil {
		t.Fatalf("expected nil for untracked kind, got %+v", ev)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		player   *provider.Player
		teamCode string
		want     string
	}{
		{"structured pair", &provider.Player{FirstName: "Mikko", LastName: "Rantanen"}, "HIFK", "M. Rantanen"},
		{"surname only", &provider.Player{LastName: "Rantanen"}, "HIFK", "Rantanen"},
		{"legacy name field", &provider.Player{Name: "Rantanen"}, "HIFK", "Rantanen"},
		{"no player, team event", nil, "HIFK", "HIFK (Team)"},
		{"no player, no team", nil, "", "Unknown"},
		{"empty struct falls back to team", &provider.Player{}, "KAL", "KAL (Team)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displayName(tt.player, tt.teamCode); got != tt.want {
				t.Errorf("displayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12", "12'"},
		{"12'", "12'"},
		{"05:32", "05:32"},
		{"", ""},
		{"45+2'", "45+2'"},
	}

	for _, tt := range tests {
		if got := normalizeClock(tt.in); got != tt.want {
			t.Errorf("normalizeClock(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPenaltyMinutes(t *testing.T) {
	tests := []struct {
		name string
		raw  *provider.Event
		want int
	}{
		{"explicit field", &provider.Event{Minutes: 5}, 5},
		{"regex from description", &provider.Event{Description: "Major (5 min) fighting"}, 5},
		{"max of candidate fields", &provider.Event{Details: map[string]interface{}{
			"minorMinutes": 2.0, "majorMinutes": 5.0,
		}}, 5},
		{"wrapped candidate value", &provider.Event{Details: map[string]interface{}{
			"matchPenaltyMinutes": map[string]interface{}{"total": 25.0},
		}}, 25},
		{"default", &provider.Event{}, 2},
		{"explicit wins over description", &provider.Event{Minutes: 2, Description: "10 min misconduct"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := penaltyMinutes(tt.raw); got != tt.want {
				t.Errorf("penaltyMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolveSide(t *testing.T) {
	tests := []struct {
		name string
		raw  *provider.Event
		want Side
	}{
		{"explicit home flag", &provider.Event{IsHome: boolPtr(true)}, SideHome},
		{"explicit away flag", &provider.Event{IsHome: boolPtr(false)}, SideAway},
		{"code matches home", &provider.Event{TeamCode: "HIFK"}, SideHome},
		{"code differs", &provider.Event{TeamCode: "KAL"}, SideAway},
		{"flag wins over conflicting code", &provider.Event{IsHome: boolPtr(false), TeamCode: "HIFK"}, SideAway},
		{"nothing to resolve", &provider.Event{}, SideUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveSide(tt.raw, "HIFK"); got != tt.want {
				t.Errorf("resolveSide() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeGoalCarriesModifiers(t *testing.T) {
	raw := &provider.Event{
		Type:      "goal",
		Period:    2,
		Time:      "14",
		TeamCode:  "HIFK",
		Player:    &provider.Player{FirstName: "Teemu", LastName: "Hartikainen"},
		PowerPlay: true,
		EmptyNet:  true,
	}

	ev := Normalize(raw, "HIFK")
	if ev == nil || ev.Kind != KindGoal {
		t.Fatalf("expected goal event, got %+v", ev)
	}
	if ev.Clock != "14'" {
		t.Errorf("clock = %q, want %q", ev.Clock, "14'")
	}
	if ev.Side != SideHome {
		t.Errorf("side = %q, want home", ev.Side)
	}
	if ev.Goal.Surname != "Hartikainen" {
		t.Errorf("surname = %q", ev.Goal.Surname)
	}
	if !ev.Goal.PowerPlay || !ev.Goal.EmptyNet || ev.Goal.ShortHanded {
		t.Errorf("modifier flags wrong: %+v", ev.Goal)
	}
	if ev.Goal.RunningScore != nil {
		t.Error("running score must be unset on raw normalization")
	}
}

func TestNormalizeAllPreservesOrderAndDrops(t *testing.T) {
	raws := []provider.Event{
		{Type: "goal", Period: 1, Time: "5", TeamCode: "HIFK"},
		{Type: "faceoff", Period: 1},
		{Type: "penalty", Period: 1, Time: "8", TeamCode: "KAL", Minutes: 2},
	}

	events := NormalizeAll(raws, "HIFK")
	if len(events) != 2 {
		t.Fatalf("expected 2 tracked events, got %d", len(events))
	}
	if events[0].Kind != KindGoal || events[1].Kind != KindPenalty {
		t.Errorf("kinds = %v, %v", events[0].Kind, events[1].Kind)
	}
	if events[0].seq >= events[1].seq {
		t.Error("provider order not preserved in seq")
	}
}

func TestNormalizeShootingStage(t *testing.T) {
	raw := &provider.Event{Type: "shooting", Period: 3, Hits: 4, Shots: 5, TeamCode: "NOR"}
	ev := Normalize(raw, "NOR")
	if ev == nil || ev.Kind != KindShooting {
		t.Fatalf("expected shooting event, got %+v", ev)
	}
	if ev.Shooting.Hits != 4 || ev.Shooting.Shots != 5 {
		t.Errorf("shooting = %+v", ev.Shooting)
	}
}
