package worms

import (
	"math"

	"github.com/vovakirdan/tui-worms/internal/core"
)

// Missile is a fired projectile. It falls faster than a worm.
type Missile struct {
	X, Y   float64
	VX, VY float64
	Owner  *Worm
	fuse   int // ticks left
}

// Impact describes why and where a missile stopped.
type Impact struct {
	X, Y   float64
	Reason string
}

// Impact reasons.
const (
	HitTerrain = "terrain"
	HitWorm    = "worm"
	HitBounds  = "bounds"
	HitFuse    = "fuse"
)

// newMissile launches from (x, y) at angle degrees, y growing downward.
func newMissile(owner *Worm, x, y, angle, speed float64, fuse int) *Missile {
	rad := angle * math.Pi / 180
	return &Missile{
		X:     x,
		Y:     y,
		VX:    speed * math.Cos(rad),
		VY:    speed * math.Sin(rad),
		Owner: owner,
		fuse:  fuse,
	}
}

// step advances the missile one tick and returns its impact, if any. The
// path is walked in sub-pixel steps so it never tunnels through a thin
// ridge or a worm.
func (m *Missile) step(w *world, gravity float64, worms []*Worm) (Impact, bool) {
	m.fuse--
	if m.fuse <= 0 {
		return Impact{X: m.X, Y: m.Y, Reason: HitFuse}, true
	}

	m.VY += gravity * w.dt
	dx, dy := m.VX*w.dt, m.VY*w.dt
	n := max(1, int(math.Ceil(math.Hypot(dx, dy))))
	for i := 0; i < n; i++ {
		m.X += dx / float64(n)
		m.Y += dy / float64(n)
		if reason, hit := m.collide(w, worms); hit {
			return Impact{X: m.X, Y: m.Y, Reason: reason}, true
		}
	}
	return Impact{}, false
}

func (m *Missile) collide(w *world, worms []*Worm) (string, bool) {
	if m.X < 0 || m.X >= w.width || m.Y < 0 || m.Y >= w.height {
		return HitBounds, true
	}
	if w.mesh != nil && w.mesh.SolidAt(int(m.X), int(m.Y)) {
		return HitTerrain, true
	}
	for _, wm := range worms {
		if wm == m.Owner || !wm.Alive() {
			continue
		}
		if wm.Box().Overlaps(core.Box{CX: m.X, CY: m.Y, W: 1, H: 1}) {
			return HitWorm, true
		}
	}
	return "", false
}
