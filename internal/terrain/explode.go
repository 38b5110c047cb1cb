package terrain

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-worms/internal/metrics"
)

// Falloff returns the probability in [0, 1] that a solid cell at distance
// from the blast center is destroyed.
type Falloff func(distance, radius float64) float64

// LinearFalloff destroys the center for sure and fades to zero at the rim.
func LinearFalloff(distance, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return 1 - distance/radius
}

// Debris is a cosmetic fragment emitted by a blast.
type Debris struct {
	X, Y int
	Size int // 1..3
}

// Blast describes one applied explosion.
type Blast struct {
	X, Y      int // floored center
	Radius    int
	Destroyed int // solid cells removed, settling included
	Debris    []Debris
}

// Explode removes solid cells within radius of (cx, cy), each with the
// falloff probability for its distance, then settles the surface and
// rebuilds the collision mesh. Cells outside the field are ignored. The
// settle pass only carves, so Destroyed equals the drop in SolidCount.
func (f *Field) Explode(cx, cy float64, radius int) (Blast, error) {
	if radius <= 0 {
		return Blast{}, fmt.Errorf("terrain: explode at (%.1f, %.1f) r=%d: %w", cx, cy, radius, ErrInvalidRadius)
	}

	before := f.solid
	x, y := int(math.Floor(cx)), int(math.Floor(cy))
	r := float64(radius)

	for py := max(0, y-radius); py <= min(f.height-1, y+radius); py++ {
		for px := max(0, x-radius); px <= min(f.width-1, x+radius); px++ {
			d := math.Hypot(float64(px-x), float64(py-y))
			if d > r {
				continue
			}
			if f.rng.Float64() < f.falloff(d, r) {
				f.set(px, py, Air)
			}
		}
	}

	f.settle()
	f.rebuild()

	blast := Blast{
		X:         x,
		Y:         y,
		Radius:    radius,
		Destroyed: before - f.solid,
		Debris:    f.debris(cx, cy, r),
	}

	metrics.ObserveBlast(blast.Destroyed)
	f.logger.Debug("blast", "x", x, "y", y, "radius", radius, "destroyed", blast.Destroyed, "debris", len(blast.Debris))
	return blast, nil
}

// debris scatters 2r fragments on a ring between 0.5r and 1.2r from the
// center, keeping only those that land inside the field.
func (f *Field) debris(cx, cy, r float64) []Debris {
	n := int(2 * r)
	out := make([]Debris, 0, n)
	for i := 0; i < n; i++ {
		angle := f.rng.Float64() * 2 * math.Pi
		dist := r * (0.5 + 0.7*f.rng.Float64())
		dx := int(math.Floor(cx + math.Cos(angle)*dist))
		dy := int(math.Floor(cy + math.Sin(angle)*dist))
		if dx < 0 || dx >= f.width || dy < 0 || dy >= f.height {
			continue
		}
		out = append(out, Debris{X: dx, Y: dy, Size: f.rng.Intn(3) + 1})
	}
	return out
}
