package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatHeights(width, top int) []int {
	heights := make([]int, width)
	for i := range heights {
		heights[i] = top
	}
	return heights
}

func TestNewRejectsDegenerateSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -3, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.w, tt.h)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, ErrInvalidSize)
		})
	}
}

func TestNewFromHeightsMismatch(t *testing.T) {
	_, err := NewFromHeights(10, 10, []int{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestNewFromHeightsFillsColumns(t *testing.T) {
	f, err := NewFromHeights(4, 10, []int{2, 5, 10, -3})
	require.NoError(t, err)

	assert.False(t, f.Solid(0, 1))
	assert.True(t, f.Solid(0, 2))
	assert.True(t, f.Solid(1, 9))
	assert.False(t, f.Solid(2, 9), "height at the bottom edge leaves the column empty")
	assert.True(t, f.Solid(3, 0))
	assert.Equal(t, 8+5+0+10, f.SolidCount())
}

func TestGenerateWellFormed(t *testing.T) {
	f, err := New(320, 240)
	require.NoError(t, err)
	f.Generate(99)

	for x := 0; x < f.Width(); x++ {
		assert.Less(t, f.HeightAt(float64(x)), f.Height(), "column %d has no solid cell", x)
		assert.True(t, f.Solid(x, f.Height()-1), "column %d does not reach the bottom", x)
	}
	assert.Equal(t, Air, f.At(0, f.Height()), "rows past the bottom are never stored")
	assert.Positive(t, f.Mesh().Len())
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := New(200, 150)
	require.NoError(t, err)
	b, err := New(200, 150)
	require.NoError(t, err)

	a.Generate(5)
	b.Generate(5)

	assert.Equal(t, a.cells, b.cells)
	assert.True(t, a.Mesh().Equal(b.Mesh()))
}

func TestSolidCountTracksMask(t *testing.T) {
	f, err := New(100, 80)
	require.NoError(t, err)
	f.Generate(3)

	count := 0
	for _, c := range f.cells {
		if c == Solid {
			count++
		}
	}
	assert.Equal(t, count, f.SolidCount())
}

func TestHeightAt(t *testing.T) {
	f, err := NewFromHeights(5, 20, []int{4, 6, 8, 20, 10})
	require.NoError(t, err)

	tests := []struct {
		name string
		x    float64
		want int
	}{
		{"column zero", 0, 4},
		{"fraction floors", 1.9, 6},
		{"left clamp", -50, 4},
		{"right clamp", 99, 10},
		{"empty column", 3, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.HeightAt(tt.x))
		})
	}
}

func TestSurfaceUsesBottomRowForEmptyColumns(t *testing.T) {
	f, err := NewFromHeights(3, 12, []int{5, 12, 7})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 11, 7}, f.Surface())
}

func TestRelaxSpikeConverges(t *testing.T) {
	surface := []int{50, 50, 60, 50, 50}
	relax(surface, DefaultSmoothParams(), func(int, int, int) {})

	assert.Less(t, surface[2], 60)
	assert.LessOrEqual(t, surface[2]-50, 3)
	assert.Equal(t, []int{50, 50}, surface[:2])
	assert.Equal(t, []int{50, 50}, surface[3:])
}

func TestRelaxLeavesSmoothSurface(t *testing.T) {
	surface := []int{50, 50, 53, 50, 50}
	calls := 0
	relax(surface, DefaultSmoothParams(), func(int, int, int) { calls++ })

	assert.Equal(t, []int{50, 50, 53, 50, 50}, surface)
	assert.Zero(t, calls)
}

func TestSettleNeverAddsSolids(t *testing.T) {
	heights := flatHeights(40, 20)
	for x := 18; x < 22; x++ {
		heights[x] = 35 // pit
	}
	heights[5] = 8 // spike
	f, err := NewFromHeights(40, 50, heights)
	require.NoError(t, err)

	before := f.SolidCount()
	f.settle()
	assert.LessOrEqual(t, f.SolidCount(), before)
}

func TestFillGaps(t *testing.T) {
	tests := []struct {
		name  string
		solid []int // solid x offsets on row 2 of a 9x5 field
		probe int
		want  Cell
	}{
		{"both direct neighbours", []int{3, 5}, 4, Solid},
		{"left and right two away", []int{3, 6}, 4, Solid},
		{"left two away and right", []int{2, 5}, 4, Solid},
		{"only one side", []int{3}, 4, Air},
		{"both neighbours air", []int{1, 7}, 4, Air},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(9, 5)
			require.NoError(t, err)
			for _, x := range tt.solid {
				f.set(x, 2, Solid)
			}
			f.fillGaps()
			assert.Equal(t, tt.want, f.At(tt.probe, 2))
		})
	}
}
