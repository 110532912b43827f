// Package provider defines the wire shapes delivered by the upstream sports
// data feed: per-game event lists, game summaries, and highlight clip lists.
//
// The feed is loosely structured — hockey, football, and biathlon records
// share one event shape with optional, sport-specific fields. Kind-specific
// oddities live in the Details map and are resolved by the timeline package.
package provider

import "time"

// Game states as reported by the schedule endpoint.
const (
	StatePreGame  = "pre-game"
	StateLive     = "live"
	StatePostGame = "post-game"
)

// Player is the structured player reference attached to an event.
// LastName alone is common on football records; Name is a legacy
// single-surname field some leagues still send.
type Player struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Name      string `json:"name,omitempty"`
}

// Event is one raw match event as delivered by the feed.
// Type values observed: goal, penalty, card, substitution, goalkeeper,
// timeout, shooting. Anything else is untracked and dropped downstream.
type Event struct {
	Type     string  `json:"type"`
	Period   int     `json:"period,omitempty"` // hockey periods, biathlon stages
	Half     int     `json:"half,omitempty"`   // football halves
	Time     string  `json:"time,omitempty"`   // in-period clock, e.g. "12'" or "05:32"
	TeamCode string  `json:"teamCode,omitempty"`
	IsHome   *bool   `json:"isHome,omitempty"`
	Player   *Player `json:"player,omitempty"`

	// Penalty / card fields
	Minutes     int    `json:"minutes,omitempty"`
	Code        string `json:"code,omitempty"` // penalty or card code
	Description string `json:"description,omitempty"`

	// Goal modifier flags
	PowerPlay   bool `json:"powerPlay,omitempty"`
	ShortHanded bool `json:"shortHanded,omitempty"`
	EmptyNet    bool `json:"emptyNet,omitempty"`
	PenaltyShot bool `json:"penaltyShot,omitempty"`
	GameWinning bool `json:"gameWinning,omitempty"`

	// Goalkeeper change direction
	Entering bool `json:"entering,omitempty"`
	Leaving  bool `json:"leaving,omitempty"`

	// Substitution
	PlayerOut *Player `json:"playerOut,omitempty"`

	// Biathlon shooting stage
	Hits  int `json:"hits,omitempty"`
	Shots int `json:"shots,omitempty"`

	// Sport-specific leftovers the schema does not model. Penalty duration
	// candidates (minorMinutes, majorMinutes, matchPenaltyMinutes) arrive
	// here on some hockey feeds.
	Details map[string]interface{} `json:"details,omitempty"`
}

// PeriodIndex returns the 1-based period or half the event belongs to,
// whichever field the feed populated.
func (e *Event) PeriodIndex() int {
	if e.Period > 0 {
		return e.Period
	}
	if e.Half > 0 {
		return e.Half
	}
	return 1
}

// TeamInfo is the per-side block of a game summary.
type TeamInfo struct {
	Code  string `json:"code"`
	Name  string `json:"name,omitempty"`
	Score *int   `json:"score,omitempty"`
}

// GameSummary is the schedule record for one game.
type GameSummary struct {
	ID        string    `json:"id"`
	Sport     string    `json:"sport"` // HOCKEY, FOOTBALL, BIATHLON
	State     string    `json:"state"`
	StartTime time.Time `json:"startTime"`
	HomeScore *int      `json:"homeScore,omitempty"`
	AwayScore *int      `json:"awayScore,omitempty"`
	Home      TeamInfo  `json:"home"`
	Away      TeamInfo  `json:"away"`
}

// Finished reports whether the game has completed.
func (g *GameSummary) Finished() bool { return g.State == StatePostGame }

// VideoClip is one entry from the per-game highlight clip list.
// A goal clip carries a tag of the form "goal.<home>-<away>" with the
// score immediately after the goal it covers.
type VideoClip struct {
	ID    string   `json:"id"`
	Tags  []string `json:"tags,omitempty"`
	Title string   `json:"title,omitempty"`
}

// HasTag reports whether the clip carries the exact tag.
func (c *VideoClip) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
