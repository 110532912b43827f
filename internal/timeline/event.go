// Package timeline reconstructs an orderable, displayable match timeline from
// the feed's loosely-structured event records.
//
// Pipeline: normalize raw records → reconstruct running scores (goals only) →
// group into a display sequence with period/half boundary markers.
// Every stage is a pure function over immutable inputs; re-running the
// pipeline on identical input yields identical output.
package timeline

// --------------------------------------------------------------------------
// Constants
// --------------------------------------------------------------------------

// Kind discriminates the tagged-variant Event. Markers are synthesized by
// the grouper and never present in raw input.
type Kind string

const (
	KindGoal             Kind = "goal"
	KindPenalty          Kind = "penalty"
	KindCard             Kind = "card"
	KindSubstitution     Kind = "substitution"
	KindGoalkeeperChange Kind = "goalkeeperChange"
	KindTimeout          Kind = "timeout"
	KindShooting         Kind = "shootingStage"
	KindPeriodMarker     Kind = "periodMarker"
	KindHalfMarker       Kind = "halfMarker"
)

// Side identifies which team an event belongs to.
type Side string

const (
	SideHome    Side = "home"
	SideAway    Side = "away"
	SideUnknown Side = ""
)

// Default penalty duration in minutes when no source field resolves.
const defaultPenaltyMinutes = 2

// Name rendered when no player can be extracted from a record.
const unknownPlayer = "Unknown"

// --------------------------------------------------------------------------
// Types
// --------------------------------------------------------------------------

// Score is a home/away goal total.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Event is the common currency of the engine: one normalized match event.
// Exactly one of the kind-specific detail pointers is non-nil for kinds
// that carry extra payload; markers carry only Kind and Period.
type Event struct {
	Kind   Kind   `json:"kind"`
	Period int    `json:"period"`          // 1-based period, half, or stage
	Clock  string `json:"clock,omitempty"` // in-period time, display form
	Side   Side   `json:"side,omitempty"`
	Team   string `json:"team,omitempty"`   // team code
	Player string `json:"player,omitempty"` // display name, "F. Last"

	Goal     *GoalDetail     `json:"goal,omitempty"`
	Penalty  *PenaltyDetail  `json:"penalty,omitempty"`
	Keeper   *KeeperDetail   `json:"keeper,omitempty"`
	Sub      *SubDetail      `json:"substitution,omitempty"`
	Card     *CardDetail     `json:"card,omitempty"`
	Shooting *ShootingDetail `json:"shooting,omitempty"`

	// seq preserves the provider's list position; it is the tie-break for
	// goals sharing identical (period, clock).
	seq int
}

// GoalDetail carries goal-specific payload. RunningScore is populated
// exclusively by ReconstructScores and is the post-goal total.
type GoalDetail struct {
	RunningScore *Score `json:"runningScore,omitempty"`
	Surname      string `json:"surname,omitempty"` // correlator fallback surface
	PowerPlay    bool   `json:"powerPlay,omitempty"`
	ShortHanded  bool   `json:"shortHanded,omitempty"`
	EmptyNet     bool   `json:"emptyNet,omitempty"`
	PenaltyShot  bool   `json:"penaltyShot,omitempty"`
	GameWinning  bool   `json:"gameWinning,omitempty"`
}

// PenaltyDetail carries penalty-specific payload.
type PenaltyDetail struct {
	Minutes int    `json:"minutes"`
	Code    string `json:"code,omitempty"`
}

// KeeperDetail records the direction of a goalkeeper change.
type KeeperDetail struct {
	Entering bool `json:"entering"`
}

// SubDetail records the outgoing player of a substitution.
type SubDetail struct {
	PlayerOut string `json:"playerOut,omitempty"`
}

// CardDetail carries the card code (yellow, red, yellow-red).
type CardDetail struct {
	Code string `json:"code,omitempty"`
}

// ShootingDetail carries a biathlon shooting stage result.
type ShootingDetail struct {
	Hits  int `json:"hits"`
	Shots int `json:"shots"`
}

// IsMarker reports whether the event is a synthesized boundary marker.
func (e *Event) IsMarker() bool {
	return e.Kind == KindPeriodMarker || e.Kind == KindHalfMarker
}
