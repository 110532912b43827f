package timeline

import "strings"

// Goal modifier abbreviations in fixed priority order. Each flag is
// independently settable; when several apply they are concatenated in this
// order, e.g. "PP, EN".
var goalModifierOrder = []struct {
	set   func(*GoalDetail) bool
	label string
}{
	{func(g *GoalDetail) bool { return g.PowerPlay }, "PP"},
	{func(g *GoalDetail) bool { return g.ShortHanded }, "SH"},
	{func(g *GoalDetail) bool { return g.EmptyNet }, "EN"},
	{func(g *GoalDetail) bool { return g.PenaltyShot }, "PS"},
	{func(g *GoalDetail) bool { return g.GameWinning }, "GW"},
}

// GoalModifiers renders the modifier tag string for a goal. Empty when no
// modifier applies. Computed at render time, never stored.
func GoalModifiers(g *GoalDetail) string {
	if g == nil {
		return ""
	}
	var labels []string
	for _, m := range goalModifierOrder {
		if m.set(g) {
			labels = append(labels, m.label)
		}
	}
	return strings.Join(labels, ", ")
}

// penaltyTexts maps feed penalty codes to human-readable text.
var penaltyTexts = map[string]string{
	"tripping":            "Tripping",
	"hooking":             "Hooking",
	"slashing":            "Slashing",
	"roughing":            "Roughing",
	"interference":        "Interference",
	"holding":             "Holding",
	"high-sticking":       "High Sticking",
	"cross-checking":      "Cross Checking",
	"boarding":            "Boarding",
	"charging":            "Charging",
	"elbowing":            "Elbowing",
	"kneeing":             "Kneeing",
	"delay-of-game":       "Delay of Game",
	"too-many-men":        "Too Many Men on the Ice",
	"unsportsmanlike":     "Unsportsmanlike Conduct",
	"goalie-interference": "Goaltender Interference",
	"holding-the-stick":   "Holding the Stick",
	"misconduct":          "Misconduct",
	"fighting":            "Fighting",
	"bench-minor":         "Bench Minor",
}

// PenaltyText maps a penalty code to display text. Unrecognized hyphenated
// codes fall back to title-casing each segment, so new feed codes degrade
// gracefully instead of rendering raw.
func PenaltyText(code string) string {
	if text, ok := penaltyTexts[code]; ok {
		return text
	}
	if code == "" {
		return ""
	}
	parts := strings.Split(code, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
