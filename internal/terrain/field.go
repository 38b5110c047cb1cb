package terrain

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-worms/internal/core"
	"github.com/vovakirdan/tui-worms/internal/metrics"
)

// Field is a width x height mask of Air/Solid cells with y growing downward.
// It owns the mask exclusively; callers mutate it only through Generate and
// Explode. A Field is not safe for concurrent use.
type Field struct {
	width  int
	height int
	cells  []Cell // row-major, index y*width + x
	solid  int

	noise   NoiseParams
	smooth  SmoothParams
	builder MeshBuilder
	falloff Falloff
	rng     *rand.Rand
	logger  *log.Logger

	mesh *Mesh
}

// New creates an all-Air field. Call Generate to synthesize hills.
func New(width, height int, opts ...Option) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("terrain: new %dx%d: %w", width, height, ErrInvalidSize)
	}

	f := &Field{
		width:   width,
		height:  height,
		cells:   make([]Cell, width*height),
		noise:   DefaultNoiseParams(),
		smooth:  DefaultSmoothParams(),
		builder: DefaultMeshBuilder(),
		falloff: LinearFalloff,
		rng:     rand.New(rand.NewSource(1)),
		logger:  discardLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.rebuild()
	return f, nil
}

// NewFromHeights creates a field whose column x is Solid from heights[x]
// down to the bottom edge. No smoothing is applied.
func NewFromHeights(width, height int, heights []int, opts ...Option) (*Field, error) {
	if len(heights) != width {
		return nil, fmt.Errorf("terrain: profile has %d columns, want %d: %w", len(heights), width, ErrInvalidSize)
	}
	f, err := New(width, height, opts...)
	if err != nil {
		return nil, err
	}
	for x, top := range heights {
		f.fillColumn(x, top)
	}
	f.rebuild()
	return f, nil
}

// Generate discards the current mask and synthesizes a new one from seed.
// Each column is filled from its profile height to the bottom edge, the
// surface is smoothed and the collision mesh is rebuilt.
func (f *Field) Generate(seed int64) {
	f.rng = rand.New(rand.NewSource(seed))

	for i := range f.cells {
		f.cells[i] = Air
	}
	f.solid = 0

	profile := HeightProfile(f.width, f.height, f.noise, f.rng)
	for x, h := range profile {
		f.fillColumn(x, int(math.Floor(h)))
	}

	f.smoothSurface()
	f.rebuild()

	metrics.TerrainGenerated.Inc()
	f.logger.Debug("terrain generated", "seed", seed, "width", f.width, "height", f.height, "solid", f.solid)
}

func (f *Field) fillColumn(x, top int) {
	for y := max(top, 0); y < f.height; y++ {
		f.set(x, y, Solid)
	}
}

// Width returns the field width in cells.
func (f *Field) Width() int { return f.width }

// Height returns the field height in cells.
func (f *Field) Height() int { return f.height }

// At returns the cell at (x, y). Out-of-range coordinates read as Air.
func (f *Field) At(x, y int) Cell {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Air
	}
	return f.cells[y*f.width+x]
}

// Solid reports whether (x, y) is a solid cell.
func (f *Field) Solid(x, y int) bool {
	return f.At(x, y) == Solid
}

// SolidCount returns the number of solid cells in the mask.
func (f *Field) SolidCount() int { return f.solid }

func (f *Field) set(x, y int, c Cell) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := y*f.width + x
	old := f.cells[i]
	if old == c {
		return
	}
	f.cells[i] = c
	if c == Solid {
		f.solid++
	} else {
		f.solid--
	}
}

// HeightAt returns the y of the topmost solid cell in column floor(x), with
// x clamped to the field. A column without solids reports Height(), one
// past the bottom row, so agents fall through it.
func (f *Field) HeightAt(x float64) int {
	col := 0
	if !math.IsNaN(x) {
		col = int(math.Floor(core.ClampF(x, 0, float64(f.width-1))))
	}
	if y, ok := f.top(col); ok {
		return y
	}
	return f.height
}

func (f *Field) top(x int) (int, bool) {
	for y := 0; y < f.height; y++ {
		if f.cells[y*f.width+x] == Solid {
			return y, true
		}
	}
	return 0, false
}

// Surface returns the surface point of every column: the topmost solid y,
// or the bottom row for an empty column.
func (f *Field) Surface() []int {
	surface := make([]int, f.width)
	for x := range surface {
		y, ok := f.top(x)
		if !ok {
			y = f.height - 1
		}
		surface[x] = y
	}
	return surface
}

// Mesh returns the collision mesh matching the current mask.
func (f *Field) Mesh() *Mesh { return f.mesh }

func (f *Field) rebuild() {
	start := time.Now()
	f.mesh = f.builder.Rebuild(f)
	metrics.ObserveRebuild(f.mesh.Len(), time.Since(start))
}
