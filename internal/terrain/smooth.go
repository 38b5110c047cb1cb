package terrain

import "math"

// SmoothParams configures the surface relaxation.
type SmoothParams struct {
	Iterations int     // relaxation sweeps over the surface
	Tolerance  float64 // deviation from the neighbour average left alone
	Keep       float64 // weight of the current height when relaxing
	FillGaps   bool    // run the gap fill pass after relaxation
}

// DefaultSmoothParams returns the standard smoothing setup.
func DefaultSmoothParams() SmoothParams {
	return SmoothParams{
		Iterations: 5,
		Tolerance:  3,
		Keep:       0.3,
		FillGaps:   true,
	}
}

// relax runs the surface relaxation over surface in place. Each point is
// compared with the average of its two neighbours on either side; the two
// outermost points at each end are never moved. For every adjusted column
// apply receives the old and new surface y.
func relax(surface []int, p SmoothParams, apply func(x, from, to int)) {
	for it := 0; it < p.Iterations; it++ {
		for i := 2; i < len(surface)-2; i++ {
			avg := float64(surface[i-2]+surface[i-1]+surface[i+1]+surface[i+2]) / 4
			current := surface[i]
			if math.Abs(float64(current)-avg) <= p.Tolerance {
				continue
			}
			next := int(math.Floor(float64(current)*p.Keep + avg*(1-p.Keep)))
			apply(i, current, next)
			surface[i] = next
		}
	}
}

// smoothSurface relaxes the surface and then closes small horizontal gaps.
func (f *Field) smoothSurface() {
	f.relaxSurface(f.Surface(), false)
	if f.smooth.FillGaps {
		f.fillGaps()
	}
}

// settle relaxes the surface without ever adding solid cells. It runs after
// destructive edits so the destroyed count stays monotone.
func (f *Field) settle() {
	f.relaxSurface(f.Surface(), true)
}

func (f *Field) relaxSurface(surface []int, carveOnly bool) {
	relax(surface, f.smooth, func(x, from, to int) {
		if to > from {
			if carveOnly {
				return
			}
			for y := from; y <= to; y++ {
				f.set(x, y, Solid)
			}
			return
		}
		for y := to + 1; y <= from; y++ {
			f.set(x, y, Air)
		}
	})
}

// fillGaps closes 1-2 cell horizontal holes: an Air cell becomes Solid
// when it has a solid cell directly on one side and a solid cell at most two
// cells away on the other. Columns are scanned left to right and updates
// are visible to later columns.
func (f *Field) fillGaps() {
	for x := 2; x < f.width-2; x++ {
		for y := 0; y < f.height; y++ {
			if f.At(x, y) != Air {
				continue
			}
			l2, l1 := f.Solid(x-2, y), f.Solid(x-1, y)
			r1, r2 := f.Solid(x+1, y), f.Solid(x+2, y)
			if (l1 && r1) || (l1 && r2) || (l2 && r1) {
				f.set(x, y, Solid)
			}
		}
	}
}
