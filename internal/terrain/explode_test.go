package terrain

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearFalloff(t *testing.T) {
	const r = 40.0
	assert.Equal(t, 1.0, LinearFalloff(0, r))
	assert.InDelta(t, 0.0, LinearFalloff(r, r), 1e-12)
	assert.Zero(t, LinearFalloff(5, 0))

	prev := LinearFalloff(0, r)
	for d := 4.0; d <= r; d += 4 {
		cur := LinearFalloff(d, r)
		assert.Less(t, cur, prev, "d=%.0f", d)
		prev = cur
	}
}

func TestExplodeRejectsRadius(t *testing.T) {
	f, err := NewFromHeights(20, 20, flatHeights(20, 5))
	require.NoError(t, err)

	for _, r := range []int{0, -4} {
		_, err := f.Explode(10, 10, r)
		assert.ErrorIs(t, err, ErrInvalidRadius)
	}
	assert.Equal(t, 20*15, f.SolidCount())
}

func TestExplodeMonotone(t *testing.T) {
	f, err := New(400, 300)
	require.NoError(t, err)
	f.Generate(21)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 25; i++ {
		before := f.SolidCount()
		cx := rng.Float64() * 400
		cy := float64(f.HeightAt(cx)) + rng.Float64()*20 - 10
		blast, err := f.Explode(cx, cy, 5+rng.Intn(40))
		require.NoError(t, err)

		assert.GreaterOrEqual(t, blast.Destroyed, 0)
		assert.Equal(t, before-f.SolidCount(), blast.Destroyed)
		assert.LessOrEqual(t, f.SolidCount(), before)
	}
}

func TestExplodeClearsCenter(t *testing.T) {
	f, err := NewFromHeights(100, 100, flatHeights(100, 0))
	require.NoError(t, err)

	blast, err := f.Explode(50.7, 50.2, 10)
	require.NoError(t, err)

	assert.Equal(t, 50, blast.X)
	assert.Equal(t, 50, blast.Y)
	assert.Equal(t, Air, f.At(50, 50))
	assert.Positive(t, blast.Destroyed)
	assert.True(t, f.Mesh().Equal(DefaultMeshBuilder().Rebuild(f)), "mesh must match the edited mask")
}

func TestExplodeClampsToField(t *testing.T) {
	f, err := NewFromHeights(30, 30, flatHeights(30, 0))
	require.NoError(t, err)

	tests := []struct {
		name   string
		cx, cy float64
	}{
		{"top left corner", -5, -5},
		{"bottom right corner", 35, 35},
		{"far outside", 500, -500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := f.SolidCount()
			blast, err := f.Explode(tt.cx, tt.cy, 12)
			require.NoError(t, err)
			assert.Equal(t, before-f.SolidCount(), blast.Destroyed)
		})
	}
}

func TestExplodeFalloffStatistics(t *testing.T) {
	const r = 30
	var inner, innerTotal, middle, middleTotal, outer, outerTotal int

	for seed := int64(1); seed <= 20; seed++ {
		f, err := NewFromHeights(200, 200, flatHeights(200, 0), WithRand(rand.New(rand.NewSource(seed))))
		require.NoError(t, err)
		_, err = f.Explode(100, 100, r)
		require.NoError(t, err)

		for y := 100 - r; y <= 100+r; y++ {
			for x := 100 - r; x <= 100+r; x++ {
				d := math.Hypot(float64(x-100), float64(y-100))
				cleared := 0
				if f.At(x, y) == Air {
					cleared = 1
				}
				switch {
				case d < r/3.0:
					inner += cleared
					innerTotal++
				case d < 2*r/3.0:
					middle += cleared
					middleTotal++
				case d <= r:
					outer += cleared
					outerTotal++
				}
			}
		}
	}

	fi := float64(inner) / float64(innerTotal)
	fm := float64(middle) / float64(middleTotal)
	fo := float64(outer) / float64(outerTotal)
	assert.Greater(t, fi, fm)
	assert.Greater(t, fm, fo)
	assert.InDelta(t, 0.78, fi, 0.08)
	assert.InDelta(t, 0.16, fo, 0.08)
}

func TestExplodeCustomFalloff(t *testing.T) {
	never := func(float64, float64) float64 { return 0 }
	f, err := NewFromHeights(60, 60, flatHeights(60, 0), WithFalloff(never))
	require.NoError(t, err)

	blast, err := f.Explode(30, 30, 15)
	require.NoError(t, err)
	assert.Zero(t, blast.Destroyed)
	assert.Equal(t, 60*60, f.SolidCount())
}

func TestExplodeDebris(t *testing.T) {
	f, err := NewFromHeights(300, 300, flatHeights(300, 150))
	require.NoError(t, err)

	const r = 20
	blast, err := f.Explode(150, 150, r)
	require.NoError(t, err)

	require.NotEmpty(t, blast.Debris)
	assert.LessOrEqual(t, len(blast.Debris), 2*r)
	for _, d := range blast.Debris {
		dist := math.Hypot(float64(d.X)-150, float64(d.Y)-150)
		assert.GreaterOrEqual(t, dist, 0.5*r-1.5)
		assert.LessOrEqual(t, dist, 1.2*r+1.5)
		assert.GreaterOrEqual(t, d.Size, 1)
		assert.LessOrEqual(t, d.Size, 3)
	}
}

func TestExplodeDebrisStaysInField(t *testing.T) {
	f, err := NewFromHeights(40, 40, flatHeights(40, 20))
	require.NoError(t, err)

	blast, err := f.Explode(2, 38, 30)
	require.NoError(t, err)
	assert.Less(t, len(blast.Debris), 60)
	for _, d := range blast.Debris {
		assert.True(t, d.X >= 0 && d.X < 40 && d.Y >= 0 && d.Y < 40, "debris %+v outside the field", d)
	}
}
