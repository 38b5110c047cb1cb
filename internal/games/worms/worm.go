package worms

import (
	"fmt"

	"github.com/vovakirdan/tui-worms/internal/core"
	"github.com/vovakirdan/tui-worms/internal/locomotion"
)

// Worm is one combatant. It is the physics body its locomotion controller
// drives, so it implements locomotion.Body.
type Worm struct {
	Name   string
	Team   Team
	Health int
	MaxHP  int
	Aim    float64 // degrees relative to facing, negative is up

	box      core.Box
	vx, vy   float64
	onGround bool
	active   bool
	alive    bool

	ctrl *locomotion.Controller
}

func newWorm(name string, team Team, health int, box core.Box) *Worm {
	return &Worm{
		Name:   name,
		Team:   team,
		Health: health,
		MaxHP:  health,
		box:    box,
		alive:  true,
	}
}

// wormName returns the display name of the i-th worm of a team.
func wormName(team Team, i int) string {
	return fmt.Sprintf("%s %d", team.Label(), i+1)
}

// X returns the horizontal center.
func (w *Worm) X() float64 { return w.box.CX }

// Y returns the vertical center.
func (w *Worm) Y() float64 { return w.box.CY }

// Box returns the collision box.
func (w *Worm) Box() core.Box { return w.box }

// OnGround reports whether the worm rests on terrain or the field bottom.
func (w *Worm) OnGround() bool { return w.onGround }

// Active reports whether the worm holds the turn.
func (w *Worm) Active() bool { return w.active }

// Alive reports whether the worm still has health.
func (w *Worm) Alive() bool { return w.alive }

// Velocity returns the current velocity in pixels per second.
func (w *Worm) Velocity() (float64, float64) { return w.vx, w.vy }

// SetVelocityX sets the horizontal velocity.
func (w *Worm) SetVelocityX(vx float64) { w.vx = vx }

// SetVelocityY sets the vertical velocity.
func (w *Worm) SetVelocityY(vy float64) { w.vy = vy }

// Controller returns the worm's locomotion controller.
func (w *Worm) Controller() *locomotion.Controller { return w.ctrl }

// FacingRight reports the direction the worm looks and aims.
func (w *Worm) FacingRight() bool {
	if w.ctrl == nil {
		return true
	}
	return w.ctrl.FacingRight()
}

// TakeDamage subtracts amount from health, clamping at zero. It reports
// whether the hit killed the worm.
func (w *Worm) TakeDamage(amount int) bool {
	if !w.alive || amount <= 0 {
		return false
	}
	w.Health = max(w.Health-amount, 0)
	if w.Health == 0 {
		w.alive = false
		w.active = false
		w.vx = 0
		return true
	}
	return false
}

// adjustAim moves the aim by delta degrees within [lo, hi].
func (w *Worm) adjustAim(delta, lo, hi float64) {
	w.Aim = core.ClampF(w.Aim+delta, lo, hi)
}

// launchAngle returns the world angle in degrees the worm fires at.
func (w *Worm) launchAngle() float64 {
	if w.FacingRight() {
		return w.Aim
	}
	return 180 - w.Aim
}
