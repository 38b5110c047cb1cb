// Package worms implements the turn-based artillery match on destructible
// terrain: two teams of worms take turns walking, jumping and firing
// missiles that carve the field.
package worms

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-worms/internal/config"
	"github.com/vovakirdan/tui-worms/internal/core"
	"github.com/vovakirdan/tui-worms/internal/locomotion"
	"github.com/vovakirdan/tui-worms/internal/metrics"
	"github.com/vovakirdan/tui-worms/internal/registry"
	"github.com/vovakirdan/tui-worms/internal/terrain"
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeDuel    GameMode = iota // Two teams, turns and a timer
	ModeSandbox                 // One worm, unlimited time
)

// logger is shared by all game instances; set via CLI.
var logger = log.New(io.Discard)

// SetLogger sets the logger used by games and their terrain.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// fragment is a debris particle with an expiry tick.
type fragment struct {
	terrain.Debris
	until int
}

// Game implements the worms match logic.
type Game struct {
	mode GameMode

	// World
	field    *terrain.Field
	world    world
	worms    []*Worm
	missiles []*Missile
	debris   []fragment
	shade    *perlin.Perlin

	// Turn state
	turn      int // index of the worm holding the turn
	turns     int // turns started, the first included
	turnTicks int // ticks per turn
	turnLeft  int
	fired     bool
	endTurnAt int // tick the turn passes after firing, 0 when none
	passTurn  bool

	// Match state
	state     string
	winner    string // team name, empty for a draw
	destroyed int
	tickCount int

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.WormsConfig
	rng     *rand.Rand
}

// New creates a new duel.
func New() *Game {
	return &Game{mode: ModeDuel}
}

// NewSandbox creates a single-worm practice game.
func NewSandbox() *Game {
	return &Game{mode: ModeSandbox}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeSandbox {
		return "worms_sandbox"
	}
	return "worms"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeSandbox {
		return "Worms (Sandbox)"
	}
	return "Worms Duel"
}

// Reset initializes or restarts the game with a freshly generated field.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.start(runtime, loadConfig(), nil)
}

// start sets up a match. A nil field is generated from the runtime seed.
func (g *Game) start(runtime core.RuntimeConfig, cfg config.WormsConfig, field *terrain.Field) {
	g.runtime = runtime
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	if field == nil {
		field = g.generate(runtime.Seed)
	}
	g.field = field
	g.shade = perlin.NewPerlin(2, 2, 3, runtime.Seed)

	// generate may have swapped in the defaults
	phys := g.cfg.Physics
	g.world = world{
		mesh:    field.Mesh(),
		width:   float64(field.Width()),
		height:  float64(field.Height()),
		gravity: phys.Gravity,
		maxFall: phys.MaxFallSpeed,
		ledge:   phys.LedgeTolerance,
		dt:      runtime.DeltaSeconds(),
	}

	g.missiles = nil
	g.debris = nil
	g.state = StatePlaying
	g.winner = ""
	g.destroyed = 0
	g.tickCount = 0
	g.fired = false
	g.endTurnAt = 0
	g.passTurn = false
	g.turnTicks = runtime.TicksFor(g.cfg.Match.TurnTime)

	g.spawn()

	g.turn = 0
	g.turns = 1
	g.turnLeft = g.turnTicks
	g.worms[0].active = true

	logger.Info("match started", "mode", g.ID(), "seed", runtime.Seed, "worms", len(g.worms))
}

func (g *Game) generate(seed int64) *terrain.Field {
	opts := append(terrainOptions(g.cfg), terrain.WithLogger(logger))
	f, err := terrain.New(g.cfg.Terrain.Width, g.cfg.Terrain.Height, opts...)
	if err != nil {
		logger.Error("terrain config rejected, using defaults", "err", err)
		g.cfg = config.DefaultWormsConfig()
		f, err = terrain.New(g.cfg.Terrain.Width, g.cfg.Terrain.Height, terrain.WithLogger(logger))
		if err != nil {
			panic(fmt.Sprintf("worms: default terrain rejected: %v", err))
		}
	}
	f.Generate(seed)
	return f
}

// spawn places the worms above the surface. Duel order alternates teams so
// consecutive turns always change sides.
func (g *Game) spawn() {
	m := g.cfg.Match
	params := locomotionParams(g.cfg.Locomotion)
	width := g.field.Width()

	place := func(team Team, i, x int) *Worm {
		y := float64(g.field.HeightAt(float64(x)) - m.SpawnDrop)
		box := core.Box{
			CX: float64(x),
			CY: max(y, g.cfg.Physics.WormHeight/2),
			W:  g.cfg.Physics.WormWidth,
			H:  g.cfg.Physics.WormHeight,
		}
		w := newWorm(wormName(team, i), team, m.Health, box)
		w.ctrl = locomotion.New(w, g.field, params, g.runtime)
		if team == TeamBlue {
			w.ctrl.SetFacing(locomotion.Left)
		}
		return w
	}

	g.worms = g.worms[:0]
	if g.mode == ModeSandbox {
		g.worms = append(g.worms, place(TeamRed, 0, width/2))
		return
	}
	for i := 0; i < m.WormsPerTeam; i++ {
		for _, team := range []Team{TeamRed, TeamBlue} {
			lo, hi := team.spawnRange(width, m.SpawnMargin)
			g.worms = append(g.worms, place(team, i, lo+g.rng.Intn(hi-lo+1)))
		}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.handleInput(in)

	// Physics first, then the controllers see the new ground contact.
	for _, w := range g.worms {
		if w.Alive() {
			g.world.step(w)
		}
		w.ctrl.Update()
	}

	g.stepMissiles()
	g.expireDebris()

	g.checkGameEnd()
	if g.state == StatePlaying {
		g.advanceTurn()
	}

	return core.StepResult{State: g.State()}
}

// handleInput routes this tick's actions to the worm holding the turn.
func (g *Game) handleInput(in core.InputFrame) {
	w := g.Current()
	if w == nil || !w.Alive() || !w.Active() {
		return
	}
	if g.fired {
		w.ctrl.Move(locomotion.None)
		return
	}

	dir := locomotion.None
	switch {
	case in.Has(core.ActionLeft) && !in.Has(core.ActionRight):
		dir = locomotion.Left
	case in.Has(core.ActionRight) && !in.Has(core.ActionLeft):
		dir = locomotion.Right
	}
	w.ctrl.Move(dir)

	if in.Has(core.ActionJump) {
		w.ctrl.Jump()
	}

	weapon := g.cfg.Weapon
	if in.Has(core.ActionUp) {
		w.adjustAim(-weapon.AimStep, weapon.AimMin, weapon.AimMax)
	}
	if in.Has(core.ActionDown) {
		w.adjustAim(weapon.AimStep, weapon.AimMin, weapon.AimMax)
	}

	if in.Has(core.ActionFire) {
		g.fire(w)
	}
	if in.Has(core.ActionEndTurn) && g.mode == ModeDuel {
		g.passTurn = true
	}
}

// fire launches a missile from just above the worm.
func (g *Game) fire(w *Worm) {
	weapon := g.cfg.Weapon
	m := newMissile(w, w.X(), w.Y()-5, w.launchAngle(), weapon.LaunchSpeed, g.runtime.TicksFor(weapon.Fuse))
	g.missiles = append(g.missiles, m)
	g.fired = true
	w.SetVelocityX(0)

	if g.mode == ModeDuel {
		g.endTurnAt = g.tickCount + max(1, g.runtime.TicksFor(weapon.EndTurnDelay))
	}
	logger.Debug("fire", "worm", w.Name, "angle", w.launchAngle())
}

func (g *Game) stepMissiles() {
	gravity := g.cfg.Physics.Gravity + g.cfg.Weapon.ExtraGravity
	live := g.missiles[:0]
	for _, m := range g.missiles {
		if impact, hit := m.step(&g.world, gravity, g.worms); hit {
			logger.Debug("impact", "reason", impact.Reason, "x", impact.X, "y", impact.Y)
			g.explode(impact.X, impact.Y)
			continue
		}
		live = append(live, m)
	}
	g.missiles = live

	// Sandbox worms may fire again once the sky is clear.
	if g.mode == ModeSandbox && len(g.missiles) == 0 {
		g.fired = false
	}
}

// explode carves the field and applies splash to every worm in reach.
func (g *Game) explode(x, y float64) {
	blast, err := g.field.Explode(x, y, g.cfg.Blast.Radius)
	if err != nil {
		logger.Error("explode", "err", err)
		return
	}
	g.world.mesh = g.field.Mesh()
	g.destroyed += blast.Destroyed

	until := g.tickCount + g.runtime.TicksFor(g.cfg.Blast.DebrisTTL)
	for _, d := range blast.Debris {
		g.debris = append(g.debris, fragment{Debris: d, until: until})
	}

	g.splash(x, y)
}

// splash damages and knocks back worms closer than the splash reach.
// Both fall off linearly with distance.
func (g *Game) splash(x, y float64) {
	b := g.cfg.Blast
	reach := float64(b.Radius) * b.SplashFactor
	for _, w := range g.worms {
		if !w.Alive() {
			continue
		}
		d := core.Distance(x, y, w.X(), w.Y())
		if d >= reach {
			continue
		}
		k := 1 - d/reach
		force := b.Knockback * k
		angle := math.Atan2(w.Y()-y, w.X()-x)
		w.SetVelocityX(math.Cos(angle) * force)
		w.SetVelocityY(min(-b.MinLift, math.Sin(angle)*force))

		if w.TakeDamage(int(math.Floor(float64(b.MaxDamage) * k))) {
			logger.Info("worm died", "worm", w.Name, "team", w.Team)
		}
	}
}

func (g *Game) expireDebris() {
	live := g.debris[:0]
	for _, d := range g.debris {
		if d.until > g.tickCount {
			live = append(live, d)
		}
	}
	g.debris = live
}

// advanceTurn passes the turn after a shot, on request, when the timer
// runs out, or when the current worm died.
func (g *Game) advanceTurn() {
	if g.mode != ModeDuel {
		return
	}
	g.turnLeft--
	switch {
	case g.passTurn,
		g.endTurnAt > 0 && g.tickCount >= g.endTurnAt,
		g.turnLeft <= 0,
		!g.worms[g.turn].Alive():
		g.nextTurn()
	}
}

// nextTurn hands the turn to the next living worm in order.
func (g *Game) nextTurn() {
	cur := g.worms[g.turn]
	cur.active = false
	if cur.OnGround() {
		cur.SetVelocityX(0)
	}

	for i := 1; i <= len(g.worms); i++ {
		idx := (g.turn + i) % len(g.worms)
		if g.worms[idx].Alive() {
			g.turn = idx
			break
		}
	}

	g.worms[g.turn].active = true
	g.turns++
	g.turnLeft = g.turnTicks
	g.fired = false
	g.endTurnAt = 0
	g.passTurn = false
}

// checkGameEnd ends the match once a side has no living worm.
func (g *Game) checkGameEnd() {
	if g.mode == ModeSandbox {
		if !g.worms[0].Alive() {
			g.finish("")
		}
		return
	}

	red, blue := g.TeamAlive(TeamRed), g.TeamAlive(TeamBlue)
	switch {
	case red > 0 && blue > 0:
		return
	case red > 0:
		g.finish(TeamRed.String())
	case blue > 0:
		g.finish(TeamBlue.String())
	default:
		g.finish("")
	}
}

func (g *Game) finish(winner string) {
	g.state = StateGameOver
	g.winner = winner
	for _, w := range g.worms {
		w.active = false
	}

	if g.mode == ModeDuel {
		label := winner
		if label == "" {
			label = "draw"
		}
		metrics.MatchesFinished.WithLabelValues(label).Inc()
	}
	logger.Info("match finished", "mode", g.ID(), "winner", winner, "turns", g.turns, "destroyed", g.destroyed)
}

// Current returns the worm holding the turn.
func (g *Game) Current() *Worm {
	if len(g.worms) == 0 {
		return nil
	}
	return g.worms[g.turn]
}

// Worms returns all worms in turn order.
func (g *Game) Worms() []*Worm { return g.worms }

// Field returns the terrain.
func (g *Game) Field() *terrain.Field { return g.field }

// TeamAlive returns the number of living worms of a team.
func (g *Game) TeamAlive(t Team) int {
	n := 0
	for _, w := range g.worms {
		if w.Team == t && w.Alive() {
			n++
		}
	}
	return n
}

// TeamHealth returns the summed health of a team.
func (g *Game) TeamHealth(t Team) int {
	total := 0
	for _, w := range g.worms {
		if w.Team == t {
			total += w.Health
		}
	}
	return total
}

// TurnTimeLeft returns the remaining time of the current turn.
func (g *Game) TurnTimeLeft() time.Duration {
	return g.runtime.DurationOf(g.turnLeft)
}

// Winner returns the winning team name; empty while playing or on a draw.
func (g *Game) Winner() string { return g.winner }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.destroyed,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// MatchResult returns the record of a finished duel.
func (g *Game) MatchResult() (registry.MatchResult, bool) {
	if g.mode != ModeDuel || g.state != StateGameOver {
		return registry.MatchResult{}, false
	}
	return registry.MatchResult{
		Winner:    g.winner,
		Turns:     g.turns,
		Destroyed: g.destroyed,
		Duration:  g.runtime.DurationOf(g.tickCount),
	}, true
}

// Register games with the registry
func init() {
	registry.Register("worms", func() registry.Game { return New() })
	registry.Register("worms_sandbox", func() registry.Game { return NewSandbox() })
}
