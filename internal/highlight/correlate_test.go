package highlight

import (
	"testing"

	"github.com/nordsport/matchfeed/internal/provider"
	"github.com/nordsport/matchfeed/internal/timeline"
)

func scoredGoal(home, away int, surname string) *timeline.Event {
	return &timeline.Event{
		Kind: timeline.KindGoal,
		Goal: &timeline.GoalDetail{
			RunningScore: &timeline.Score{Home: home, Away: away},
			Surname:      surname,
		},
	}
}

func TestTagMatchPrecedence(t *testing.T) {
	goal := scoredGoal(2, 1, "Rantanen")
	clips := []provider.VideoClip{
		{ID: "title-clip", Title: "Rantanen doubles the lead"},
		{ID: "tag-clip", Tags: []string{"goal.2-1"}},
	}

	clip := FindClip(goal, clips)
	if clip == nil || clip.ID != "tag-clip" {
		t.Fatalf("expected tag-tagged clip to win, got %+v", clip)
	}
}

func TestTagMatchFirstInListWins(t *testing.T) {
	goal := scoredGoal(1, 0, "")
	clips := []provider.VideoClip{
		{ID: "first", Tags: []string{"goal.1-0"}},
		{ID: "second", Tags: []string{"goal.1-0"}},
	}

	if clip := FindClip(goal, clips); clip == nil || clip.ID != "first" {
		t.Fatalf("expected first tag match, got %+v", clip)
	}
}

func TestTitleFallback(t *testing.T) {
	goal := scoredGoal(1, 1, "Hartikainen")
	clips := []provider.VideoClip{
		{ID: "other", Tags: []string{"goal.3-1"}},
		{ID: "named", Title: "HARTIKAINEN equalizes late"},
	}

	if clip := FindClip(goal, clips); clip == nil || clip.ID != "named" {
		t.Fatalf("expected title fallback match, got %+v", clip)
	}
}

func TestShortSurnameNeverMatchesTitle(t *testing.T) {
	goal := scoredGoal(1, 0, "Wu")
	clips := []provider.VideoClip{
		{ID: "trap", Title: "Wu with a wonderful finish"},
	}

	if clip := FindClip(goal, clips); clip != nil {
		t.Fatalf("surname of length 2 must not trigger fallback, got %+v", clip)
	}
}

func TestNoMatchIsNil(t *testing.T) {
	goal := scoredGoal(4, 2, "Rantanen")
	clips := []provider.VideoClip{
		{ID: "a", Tags: []string{"goal.1-0"}, Title: "Opening goal"},
	}

	if clip := FindClip(goal, clips); clip != nil {
		t.Fatalf("expected no match, got %+v", clip)
	}
	if clip := FindClip(goal, nil); clip != nil {
		t.Fatal("empty clip list must yield no match")
	}
}

func TestNonGoalYieldsNil(t *testing.T) {
	penalty := &timeline.Event{Kind: timeline.KindPenalty}
	clips := []provider.VideoClip{{ID: "x", Tags: []string{"goal.0-0"}}}
	if clip := FindClip(penalty, clips); clip != nil {
		t.Fatal("non-goal events never correlate")
	}
}

func TestCorrelateIndexesByPosition(t *testing.T) {
	events := []*timeline.Event{
		{Kind: timeline.KindPeriodMarker, Period: 1},
		scoredGoal(1, 0, ""),
		{Kind: timeline.KindPenalty},
		scoredGoal(2, 0, ""),
	}
	clips := []provider.VideoClip{{ID: "c1", Tags: []string{"goal.2-0"}}}

	matches := Correlate(events, clips)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if clip, ok := matches[3]; !ok || clip.ID != "c1" {
		t.Fatalf("match at wrong position: %+v", matches)
	}
}
