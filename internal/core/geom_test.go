package core

import (
	"math"
	"testing"
	"time"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestBoxEdgesAndOverlap(t *testing.T) {
	b := Box{CX: 10, CY: 20, W: 4, H: 6}

	if b.Left() != 8 || b.Right() != 12 || b.Top() != 17 || b.Bottom() != 23 {
		t.Errorf("unexpected edges: %v %v %v %v", b.Left(), b.Right(), b.Top(), b.Bottom())
	}

	if !b.Overlaps(b.Moved(3, 0)) {
		t.Error("boxes 3px apart with width 4 should overlap")
	}
	if b.Overlaps(b.Moved(4, 0)) {
		t.Error("touching boxes should not overlap")
	}
}

func TestBoxPixelBounds(t *testing.T) {
	tests := []struct {
		name           string
		box            Box
		x0, y0, x1, y1 int
	}{
		{"aligned", Box{CX: 5, CY: 5, W: 4, H: 4}, 3, 3, 6, 6},
		{"fractional", Box{CX: 5.5, CY: 5.5, W: 3, H: 3}, 4, 4, 6, 6},
		{"straddling", Box{CX: 5.25, CY: 0, W: 2, H: 2}, 4, -1, 6, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x0, y0, x1, y1 := tc.box.PixelBounds()
			if x0 != tc.x0 || y0 != tc.y0 || x1 != tc.x1 || y1 != tc.y1 {
				t.Errorf("PixelBounds() = (%d,%d,%d,%d), expected (%d,%d,%d,%d)",
					x0, y0, x1, y1, tc.x0, tc.y0, tc.x1, tc.y1)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); math.Abs(d-5) > 1e-9 {
		t.Errorf("Distance() = %f, expected 5", d)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(-5.5, 0, 10); got != 0 {
		t.Errorf("ClampF(-5.5) = %f, expected 0", got)
	}
	if got := ClampF(15.5, 0, 10); got != 10 {
		t.Errorf("ClampF(15.5) = %f, expected 10", got)
	}
}

func TestTicksFor(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 60}

	tests := []struct {
		d        time.Duration
		expected int
	}{
		{0, 0},
		{time.Second, 60},
		{150 * time.Millisecond, 9},
		{100 * time.Millisecond, 6},
		{time.Millisecond, 1},
		{30 * time.Second, 1800},
	}

	for _, tc := range tests {
		if got := cfg.TicksFor(tc.d); got != tc.expected {
			t.Errorf("TicksFor(%v) = %d, expected %d", tc.d, got, tc.expected)
		}
	}

	if got := (RuntimeConfig{}).TickDuration(); got != time.Second/60 {
		t.Errorf("zero tick rate should fall back to 60 TPS, got %v", got)
	}
	if got := cfg.DurationOf(1800); got != 30*time.Second {
		t.Errorf("DurationOf(1800) = %v, expected 30s", got)
	}
}
