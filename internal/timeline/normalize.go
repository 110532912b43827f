package timeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nordsport/matchfeed/internal/provider"
)

// Feed event types mapped to tracked kinds. Anything else is untracked and
// Normalize returns nil for it.
var kindByType = map[string]Kind{
	"goal":         KindGoal,
	"penalty":      KindPenalty,
	"card":         KindCard,
	"substitution": KindSubstitution,
	"goalkeeper":   KindGoalkeeperChange,
	"timeout":      KindTimeout,
	"shooting":     KindShooting,
}

// minutesRe extracts a duration from free-text penalty descriptions like
// "2 min roughing" or "Major (5 min)".
var minutesRe = regexp.MustCompile(`(\d+)\s*min`)

// Candidate duration fields some hockey feeds put in Details instead of the
// structured minutes field. The maximum of the present values wins.
var penaltyMinuteKeys = []string{"minorMinutes", "majorMinutes", "matchPenaltyMinutes"}

// Normalize converts one raw feed record into a tracked Event, or nil if the
// record's type is not tracked. homeCode is the known home-team code used for
// side resolution. Markers are never produced here.
func Normalize(raw *provider.Event, homeCode string) *Event {
	kind, ok := kindByType[raw.Type]
	if !ok {
		return nil
	}

	ev := &Event{
		Kind:   kind,
		Period: raw.PeriodIndex(),
		Clock:  normalizeClock(raw.Time),
		Side:   resolveSide(raw, homeCode),
		Team:   raw.TeamCode,
		Player: displayName(raw.Player, raw.TeamCode),
	}

	switch kind {
	case KindGoal:
		ev.Goal = &GoalDetail{
			Surname:     surname(raw.Player),
			PowerPlay:   raw.PowerPlay,
			ShortHanded: raw.ShortHanded,
			EmptyNet:    raw.EmptyNet,
			PenaltyShot: raw.PenaltyShot,
			GameWinning: raw.GameWinning,
		}
	case KindPenalty:
		ev.Penalty = &PenaltyDetail{
			Minutes: penaltyMinutes(raw),
			Code:    raw.Code,
		}
	case KindCard:
		ev.Card = &CardDetail{Code: raw.Code}
	case KindSubstitution:
		ev.Sub = &SubDetail{PlayerOut: displayName(raw.PlayerOut, raw.TeamCode)}
	case KindGoalkeeperChange:
		ev.Keeper = &KeeperDetail{Entering: raw.Entering && !raw.Leaving}
	case KindShooting:
		ev.Shooting = &ShootingDetail{Hits: raw.Hits, Shots: raw.Shots}
	}

	return ev
}

// NormalizeAll runs Normalize over a full game's records, dropping untracked
// ones and preserving provider list order for downstream tie-breaking.
func NormalizeAll(raws []provider.Event, homeCode string) []*Event {
	events := make([]*Event, 0, len(raws))
	for i := range raws {
		ev := Normalize(&raws[i], homeCode)
		if ev == nil {
			continue
		}
		ev.seq = i
		events = append(events, ev)
	}
	return events
}

// --------------------------------------------------------------------------
// Field fallback chains
// --------------------------------------------------------------------------

// displayName renders a player reference as "F. Last", falling back to the
// bare surname, then "Unknown". Records with no player at all are team-level
// events and render as "<CODE> (Team)" instead of an unknown person.
func displayName(p *provider.Player, teamCode string) string {
	if p == nil {
		if teamCode != "" {
			return fmt.Sprintf("%s (Team)", teamCode)
		}
		return unknownPlayer
	}
	if p.FirstName != "" && p.LastName != "" {
		return fmt.Sprintf("%s. %s", string([]rune(p.FirstName)[0]), p.LastName)
	}
	if p.LastName != "" {
		return p.LastName
	}
	if p.Name != "" {
		return p.Name
	}
	if teamCode != "" {
		return fmt.Sprintf("%s (Team)", teamCode)
	}
	return unknownPlayer
}

// surname returns the bare surname used as the clip-title match surface.
func surname(p *provider.Player) string {
	if p == nil {
		return ""
	}
	if p.LastName != "" {
		return p.LastName
	}
	return p.Name
}

// normalizeClock appends the trailing minute marker when missing. Values are
// otherwise passed through unmodified — no elapsed-time arithmetic.
func normalizeClock(clock string) string {
	if clock == "" {
		return ""
	}
	if strings.ContainsAny(clock, "':") {
		return clock
	}
	return clock + "'"
}

// penaltyMinutes resolves a penalty duration. Order: explicit minutes field,
// regex-extracted number from the description, maximum of the candidate
// duration fields in Details, default 2.
func penaltyMinutes(raw *provider.Event) int {
	if raw.Minutes > 0 {
		return raw.Minutes
	}
	if m := minutesRe.FindStringSubmatch(raw.Description); m != nil {
		var n int
		fmt.Sscanf(m[1], "%d", &n)
		if n > 0 {
			return n
		}
	}
	max := 0
	for _, key := range penaltyMinuteKeys {
		if v, ok := provider.ExtractNumber(raw.Details[key]); ok && int(v) > max {
			max = int(v)
		}
	}
	if max > 0 {
		return max
	}
	return defaultPenaltyMinutes
}

// resolveSide maps a record to home or away. An explicit isHome flag is
// authoritative; team-code equality against the known home code is the
// derived heuristic used when the flag is absent.
func resolveSide(raw *provider.Event, homeCode string) Side {
	if raw.IsHome != nil {
		if *raw.IsHome {
			return SideHome
		}
		return SideAway
	}
	if raw.TeamCode == "" {
		return SideUnknown
	}
	if raw.TeamCode == homeCode {
		return SideHome
	}
	return SideAway
}
