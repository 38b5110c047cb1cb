package worms

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-worms/internal/core"
)

// Visual characters for rendering
const (
	WormChar     = '●'
	GraveChar    = '✝'
	MissileChar  = '•'
	CrosshairChr = '+'
	DebrisSmall  = '·'
	DebrisLarge  = '▪'
	HalfUpper    = '▀'
	HalfLower    = '▄'
	FullBlock    = '█'
)

// Surface bands in field pixels.
const (
	grassDepth     = 3
	darkGrassDepth = 2
	deepSoilDepth  = 120
	shadeScale     = 0.015
	crosshairDist  = 30.0
)

// Minimum terminal size.
const (
	minScreenW = 40
	minScreenH = 12
	hudRows    = 1
)

// view maps field pixels to terminal cells. Each cell row covers two
// vertical sub-cells drawn with half blocks.
type view struct {
	fieldW, fieldH int
	cols, rows     int
}

func (v view) cellX(x float64) int {
	return int(math.Floor(x * float64(v.cols) / float64(v.fieldW)))
}

func (v view) cellY(y float64) int {
	return hudRows + int(math.Floor(y*float64(v.rows)/float64(v.fieldH)))
}

// columnX returns the field column sampled for cell column cx.
func (v view) columnX(cx int) int {
	return min((2*cx+1)*v.fieldW/(2*v.cols), v.fieldW-1)
}

// subRange returns the field rows [y0, y1) covered by sub-cell i.
func (v view) subRange(i int) (int, int) {
	y0 := i * v.fieldH / (2 * v.rows)
	y1 := max((i+1)*v.fieldH/(2*v.rows), y0+1)
	return y0, min(y1, v.fieldH)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}
	if g.field == nil {
		return
	}

	v := view{
		fieldW: g.field.Width(),
		fieldH: g.field.Height(),
		cols:   dst.Width(),
		rows:   dst.Height() - hudRows,
	}

	g.renderTerrain(dst, v)
	g.renderDebris(dst, v)
	g.renderWorms(dst, v)
	g.renderMissiles(dst, v)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderTerrain downsamples the mask into half blocks. A sub-cell is
// solid when at least half of its sampled pixels are.
func (g *Game) renderTerrain(dst *core.Screen, v view) {
	for cx := 0; cx < v.cols; cx++ {
		px := v.columnX(cx)
		surface := g.field.HeightAt(float64(px))
		for cy := 0; cy < v.rows; cy++ {
			upper, upperY := g.sample(px, v, 2*cy)
			lower, lowerY := g.sample(px, v, 2*cy+1)

			var glyph rune
			var y int
			switch {
			case upper && lower:
				glyph, y = FullBlock, upperY
			case upper:
				glyph, y = HalfUpper, upperY
			case lower:
				glyph, y = HalfLower, lowerY
			default:
				continue
			}
			dst.SetColored(cx, hudRows+cy, glyph, g.material(px, y, surface))
		}
	}
}

// sample reports whether sub-cell i of column px is solid and the first
// solid row in it.
func (g *Game) sample(px int, v view, i int) (bool, int) {
	y0, y1 := v.subRange(i)
	solid, first := 0, -1
	for y := y0; y < y1; y++ {
		if g.field.Solid(px, y) {
			solid++
			if first < 0 {
				first = y
			}
		}
	}
	return solid > 0 && 2*solid >= y1-y0, first
}

// material picks the color of a solid pixel from its depth below the
// column surface, with perlin noise breaking the soil into patches.
func (g *Game) material(x, y, surface int) core.Color {
	depth := y - surface
	switch {
	case depth < grassDepth:
		return core.ColorGrass
	case depth < grassDepth+darkGrassDepth:
		return core.ColorDarkGrass
	}

	n := g.shade.Noise2D(float64(x)*shadeScale, float64(y)*shadeScale)
	switch {
	case n > 0.2:
		return core.ColorRock
	case depth > deepSoilDepth || n < -0.25:
		return core.ColorDeepSoil
	default:
		return core.ColorSoil
	}
}

func (g *Game) renderDebris(dst *core.Screen, v view) {
	for _, d := range g.debris {
		glyph := DebrisSmall
		if d.Size == 3 {
			glyph = DebrisLarge
		}
		dst.SetColored(v.cellX(float64(d.X)), v.cellY(float64(d.Y)), glyph, core.ColorOrange)
	}
}

func (g *Game) renderWorms(dst *core.Screen, v view) {
	for _, w := range g.worms {
		x, y := v.cellX(w.X()), v.cellY(w.Y())
		if !w.Alive() {
			dst.SetColored(x, y, GraveChar, core.ColorGray)
			continue
		}

		color := w.Team.Color()
		if w.Health*3 < w.MaxHP {
			color = teams[w.Team].hurt
		}
		dst.SetColored(x, y, WormChar, color)

		label := fmt.Sprintf("%d", w.Health)
		dst.DrawTextColored(x-len(label)/2, max(y-1, hudRows), label, color)

		if w.Active() && !g.fired {
			rad := w.launchAngle() * math.Pi / 180
			ax := w.X() + math.Cos(rad)*crosshairDist
			ay := w.Y() - 5 + math.Sin(rad)*crosshairDist
			dst.SetColored(v.cellX(ax), v.cellY(ay), CrosshairChr, core.ColorYellow)
		}
	}
}

func (g *Game) renderMissiles(dst *core.Screen, v view) {
	for _, m := range g.missiles {
		dst.SetColored(v.cellX(m.X), v.cellY(m.Y), MissileChar, core.ColorOrange)
	}
}

// renderHUD draws the turn, timer and team health on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.Current()
	aim := fmt.Sprintf("Aim %+.0f°", w.Aim)

	if g.mode == ModeSandbox {
		dst.DrawText(1, 0, fmt.Sprintf("Sandbox  Destroyed: %d", g.destroyed))
		dst.DrawText(dst.Width()-len([]rune(aim))-1, 0, aim)
		return
	}

	turn := fmt.Sprintf("%s's turn", w.Name)
	dst.DrawTextColored(1, 0, turn, w.Team.Color())

	left := g.TurnTimeLeft()
	timer := fmt.Sprintf("%2ds", int(math.Ceil(left.Seconds())))
	timerColor := core.ColorWhite
	if left.Seconds() <= 5 {
		timerColor = core.ColorBrightRed
	}
	x := len(turn) + 3
	dst.DrawTextColored(x, 0, timer, timerColor)
	dst.DrawText(x+len(timer)+2, 0, aim)

	red := fmt.Sprintf("%s %d", TeamRed.Label(), g.TeamHealth(TeamRed))
	blue := fmt.Sprintf("%s %d", TeamBlue.Label(), g.TeamHealth(TeamBlue))
	bx := dst.Width() - len(blue) - 1
	dst.DrawTextColored(bx, 0, blue, TeamBlue.Color())
	dst.DrawTextColored(bx-len(red)-2, 0, red, TeamRed.Color())
}

// renderOverlay draws pause and game over messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	mid := dst.Height() / 2
	switch g.state {
	case StatePaused:
		dst.DrawTextCentered(mid, "PAUSED")
		dst.DrawTextCentered(mid+1, "Press P to resume")
	case StateGameOver:
		var msg string
		switch {
		case g.mode == ModeSandbox:
			msg = "Your worm is gone"
		case g.winner == "":
			msg = "Draw!"
		case g.winner == TeamRed.String():
			msg = TeamRed.Label() + " team wins!"
		default:
			msg = TeamBlue.Label() + " team wins!"
		}
		dst.DrawTextCentered(mid-1, msg)
		dst.DrawTextCentered(mid, fmt.Sprintf("Destroyed: %d px", g.destroyed))
		dst.DrawTextCentered(mid+1, "Press R to restart")
	}
}
