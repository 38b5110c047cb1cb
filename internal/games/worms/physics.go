package worms

import (
	"math"

	"github.com/vovakirdan/tui-worms/internal/core"
	"github.com/vovakirdan/tui-worms/internal/terrain"
)

// world moves bodies through the collision mesh. The field edges are walls.
type world struct {
	mesh    *terrain.Mesh
	width   float64
	height  float64
	gravity float64
	maxFall float64
	ledge   float64
	dt      float64
}

// blocked reports whether b overlaps terrain or leaves the field.
func (w *world) blocked(b core.Box) bool {
	if b.Left() < 0 || b.Right() > w.width || b.Top() < 0 || b.Bottom() > w.height {
		return true
	}
	return w.mesh != nil && w.mesh.Collides(b)
}

// step integrates one tick for a worm: gravity, then the x axis, then y.
// Axes are resolved separately in unit increments so thin walls are never
// skipped.
func (w *world) step(wm *Worm) {
	// Lift a body that starts embedded.
	for lift := 0.0; lift < w.ledge && w.blocked(wm.box) && wm.box.Top() >= 1; lift++ {
		wm.box = wm.box.Moved(0, -1)
	}

	wm.vy = min(wm.vy+w.gravity*w.dt, w.maxFall)

	var hit bool
	wm.box, hit = w.moveX(wm.box, wm.vx*w.dt)
	if hit {
		wm.vx = 0
	}
	wm.box, hit = w.moveY(wm.box, wm.vy*w.dt)
	if hit {
		wm.vy = 0
	}
	wm.onGround = w.blocked(wm.box.Moved(0, 1))

	// Idle worms stop sliding once they land.
	if wm.onGround && !wm.active {
		wm.vx = 0
	}
}

// moveX slides b horizontally. A wall no taller than the ledge tolerance is
// stepped onto instead of stopping the body.
func (w *world) moveX(b core.Box, dx float64) (core.Box, bool) {
	for dx != 0 {
		s := math.Copysign(min(1, math.Abs(dx)), dx)
		next := b.Moved(s, 0)
		if w.blocked(next) {
			stepped := false
			for lift := 1.0; lift <= w.ledge; lift++ {
				if up := next.Moved(0, -lift); !w.blocked(up) {
					next, stepped = up, true
					break
				}
			}
			if !stepped {
				return b, true
			}
		}
		b = next
		dx -= s
	}
	return b, false
}

// moveY slides b vertically until it hits something.
func (w *world) moveY(b core.Box, dy float64) (core.Box, bool) {
	for dy != 0 {
		s := math.Copysign(min(1, math.Abs(dy)), dy)
		next := b.Moved(0, s)
		if w.blocked(next) {
			return b, true
		}
		b = next
		dy -= s
	}
	return b, false
}
