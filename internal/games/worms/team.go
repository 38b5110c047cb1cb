package worms

import "github.com/vovakirdan/tui-worms/internal/core"

// Team identifies one side of a duel.
type Team int

const (
	TeamRed Team = iota
	TeamBlue
)

// teamInfo holds the per-team constants.
type teamInfo struct {
	name     string
	label    string
	color    core.Color
	hurt     core.Color // worm color below a third of health
	spawnMin float64    // spawn band as a fraction of field width
	spawnMax float64
}

var teams = [...]teamInfo{
	TeamRed: {
		name:     "red",
		label:    "Red",
		color:    core.ColorRed,
		hurt:     core.ColorBrightRed,
		spawnMin: 0,
		spawnMax: 0.4,
	},
	TeamBlue: {
		name:     "blue",
		label:    "Blue",
		color:    core.ColorBlue,
		hurt:     core.ColorBrightBlue,
		spawnMin: 0.6,
		spawnMax: 1,
	},
}

// String returns the team name used in match records.
func (t Team) String() string { return teams[t].name }

// Label returns the display name.
func (t Team) Label() string { return teams[t].label }

// Color returns the team's render color.
func (t Team) Color() core.Color { return teams[t].color }

// Other returns the opposing team.
func (t Team) Other() Team {
	if t == TeamRed {
		return TeamBlue
	}
	return TeamRed
}

// spawnRange returns the integer x range [lo, hi] a team spawns in.
func (t Team) spawnRange(width, margin int) (int, int) {
	info := teams[t]
	lo := max(int(info.spawnMin*float64(width)), margin)
	hi := min(int(info.spawnMax*float64(width)), width-margin)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
