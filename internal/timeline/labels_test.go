package timeline

import "testing"

func TestGoalModifiers(t *testing.T) {
	tests := []struct {
		name string
		goal *GoalDetail
		want string
	}{
		{"none", &GoalDetail{}, ""},
		{"single", &GoalDetail{EmptyNet: true}, "EN"},
		{"priority order", &GoalDetail{GameWinning: true, PowerPlay: true}, "PP, GW"},
		{"all", &GoalDetail{PowerPlay: true, ShortHanded: true, EmptyNet: true, PenaltyShot: true, GameWinning: true}, "PP, SH, EN, PS, GW"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GoalModifiers(tt.goal); got != tt.want {
				t.Errorf("GoalModifiers() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPenaltyText(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"tripping", "Tripping"},
		{"high-sticking", "High Sticking"},
		{"too-many-men", "Too Many Men on the Ice"},
		{"abuse-of-officials", "Abuse Of Officials"}, // unknown code, title-cased
		{"spearing", "Spearing"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := PenaltyText(tt.code); got != tt.want {
			t.Errorf("PenaltyText(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
