package locomotion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-worms/internal/core"
)

type fakeBody struct {
	x        float64
	vx, vy   float64
	onGround bool
	inactive bool
	dead     bool
}

func (b *fakeBody) X() float64 { return b.x }
func (b *fakeBody) OnGround() bool { return b.onGround }
func (b *fakeBody) Active() bool { return !b.inactive }
func (b *fakeBody) Alive() bool { return !b.dead }
func (b *fakeBody) Velocity() (float64, float64) { return b.vx, b.vy }
func (b *fakeBody) SetVelocityX(vx float64) { b.vx = vx }
func (b *fakeBody) SetVelocityY(vy float64) { b.vy = vy }

// profile is a ground with a default height and per-column overrides.
type profile struct {
	base    int
	columns map[int]int
}

func (p profile) HeightAt(x float64) int {
	if h, ok := p.columns[int(math.Floor(x))]; ok {
		return h
	}
	return p.base
}

func newController(body *fakeBody, ground Ground) *Controller {
	return New(body, ground, DefaultParams(), core.DefaultConfig())
}

// step returns a ground that rises to top from column x+at onwards.
func step(x, at, top, base int) profile {
	columns := map[int]int{}
	for c := x + at; c <= x+20; c++ {
		columns[c] = top
	}
	return profile{base: base, columns: columns}
}

func TestCanClimbOverBound(t *testing.T) {
	tests := []struct {
		name   string
		ground profile
		dir    Direction
		want   bool
	}{
		{"5px step", step(100, 3, 95, 100), Right, true},
		{"20px cliff", step(100, 3, 80, 100), Right, false},
		{"8px step", step(100, 10, 92, 100), Right, true},
		{"9px step", step(100, 1, 91, 100), Right, false},
		{"step beyond scan", step(100, 11, 95, 100), Right, false},
		{"flat", profile{base: 100}, Right, false},
		{"drop ahead", step(100, 2, 104, 100), Right, false},
		{"wrong direction", step(100, 3, 95, 100), Left, false},
		{"no direction", step(100, 3, 95, 100), None, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := &fakeBody{x: 100, onGround: true}
			c := newController(body, tt.ground)
			assert.Equal(t, tt.want, c.CanClimbOver(tt.dir))
		})
	}
}

func TestCanClimbOverLeft(t *testing.T) {
	ground := profile{base: 100, columns: map[int]int{97: 96, 96: 96, 95: 96}}
	c := newController(&fakeBody{x: 100, onGround: true}, ground)
	assert.True(t, c.CanClimbOver(Left))
	assert.False(t, c.CanClimbOver(Right))
}

func TestClimbNearestOffsetWins(t *testing.T) {
	ground := profile{base: 100, columns: map[int]int{102: 97, 104: 60}}
	c := newController(&fakeBody{x: 100, onGround: true}, ground)

	offset, ok := c.climbOffset(Right)
	require.True(t, ok)
	assert.Equal(t, 2, offset)
}

func TestCanClimbOverRequiresGround(t *testing.T) {
	body := &fakeBody{x: 100}
	c := newController(body, step(100, 3, 95, 100))
	assert.False(t, c.CanClimbOver(Right))
}

func TestClimbDecay(t *testing.T) {
	body := &fakeBody{x: 100, onGround: true}
	c := newController(body, step(100, 3, 95, 100))

	c.Move(Right)
	require.Equal(t, Climbing, c.State())
	assert.Equal(t, 80.0, body.vx)
	assert.Equal(t, -50.0, body.vy)
	assert.Equal(t, 2, c.Pending())

	body.onGround = false
	// 150ms at 60 TPS is 9 ticks, the crawl step 6 ticks later
	for iter := 0; iter < 8; iter++ {
		c.Update()
		c.Move(Right)
	}
	assert.Equal(t, 80.0, body.vx)

	c.Update()
	assert.Equal(t, 40.0, body.vx)

	for iter := 0; iter < 5; iter++ {
		c.Update()
		c.Move(Right)
	}
	assert.Equal(t, 40.0, body.vx)

	c.Update()
	assert.InDelta(t, 24.0, body.vx, 1e-9)
	assert.Zero(t, c.Pending())
	assert.Equal(t, Climbing, c.State())

	body.onGround = true
	c.Update()
	assert.Equal(t, Grounded, c.State())
}

func TestClimbDecaySkipsStoppedBody(t *testing.T) {
	body := &fakeBody{x: 100, onGround: true}
	c := newController(body, step(100, 3, 95, 100))

	c.Move(Right)
	body.onGround = false
	c.Move(None)
	for iter := 0; iter < 20; iter++ {
		c.Update()
	}
	assert.Zero(t, body.vx)
}

func TestClimbDecayDroppedForDeadBody(t *testing.T) {
	body := &fakeBody{x: 100, onGround: true}
	c := newController(body, step(100, 3, 95, 100))

	c.Move(Right)
	body.onGround = false
	body.dead = true
	for iter := 0; iter < 20; iter++ {
		c.Update()
	}
	assert.Equal(t, 80.0, body.vx, "a destroyed body must not be touched")
	assert.Zero(t, c.Pending())
}

func TestMovePlain(t *testing.T) {
	tests := []struct {
		name   string
		ground Ground
		dir    Direction
		wantVX float64
	}{
		{"right on flat", profile{base: 100}, Right, 80},
		{"left on flat", profile{base: 100}, Left, -80},
		{"cliff is not climbed", step(100, 3, 80, 100), Right, 80},
		{"no terrain", nil, Right, 80},
		{"none stops", profile{base: 100}, None, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := &fakeBody{x: 100, vx: 33, onGround: true}
			c := newController(body, tt.ground)
			c.Move(tt.dir)

			assert.Equal(t, tt.wantVX, body.vx)
			assert.Zero(t, body.vy)
			assert.NotEqual(t, Climbing, c.State())
		})
	}
}

func TestMoveInactiveIsNoop(t *testing.T) {
	for _, body := range []*fakeBody{
		{x: 100, vx: 7, onGround: true, inactive: true},
		{x: 100, vx: 7, onGround: true, dead: true},
	} {
		c := newController(body, profile{base: 100})
		c.Move(Right)
		c.Move(None)
		assert.Equal(t, 7.0, body.vx)
		assert.False(t, c.Jump())
	}
}

func TestMoveUpdatesFacing(t *testing.T) {
	c := newController(&fakeBody{x: 50, onGround: true}, nil)
	assert.True(t, c.FacingRight())

	c.Move(Left)
	assert.Equal(t, Left, c.Facing())
	c.Move(None)
	assert.False(t, c.FacingRight())
}

func TestSlopeHug(t *testing.T) {
	tests := []struct {
		name   string
		ahead  int
		wantVY float64
	}{
		{"gentle downslope", 102, 20},
		{"steep drop", 103, 0},
		{"flat", 100, 0},
		{"uphill", 98, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ground := profile{base: 100, columns: map[int]int{105: tt.ahead}}
			// keep the climb scan away from the probe column
			params := DefaultParams()
			params.ClimbScan = 4

			body := &fakeBody{x: 100, onGround: true}
			c := New(body, ground, params, core.DefaultConfig())
			c.Move(Right)
			assert.Equal(t, tt.wantVY, body.vy)
		})
	}
}

func TestClimbDecayKeepsReversal(t *testing.T) {
	body := &fakeBody{x: 100, onGround: true}
	c := newController(body, step(100, 3, 95, 100))

	c.Move(Right)
	require.Equal(t, Climbing, c.State())

	c.Move(Left)
	assert.Equal(t, -80.0, body.vx)
	for iter := 0; iter < 20; iter++ {
		c.Update()
	}
	assert.Equal(t, -80.0, body.vx, "decay must not push a reversed agent back")
	assert.Zero(t, c.Pending())
}

func TestSlopeHugWhileClimbing(t *testing.T) {
	// rise at x+2 starts a climb; a shallow dip at the lookahead column
	ground := profile{base: 100, columns: map[int]int{102: 97, 103: 97, 104: 97, 105: 102}}
	body := &fakeBody{x: 100, onGround: true}
	c := newController(body, ground)

	c.Move(Right)
	require.Equal(t, Climbing, c.State())
	assert.Equal(t, 80.0, body.vx)
	assert.Equal(t, 20.0, body.vy)

	// held key on a later grounded tick still hugs the slope
	body.vy = 0
	c.Update()
	c.Move(Right)
	assert.Equal(t, 20.0, body.vy)
}

func TestJump(t *testing.T) {
	body := &fakeBody{x: 10, onGround: true}
	c := newController(body, profile{base: 100})

	require.True(t, c.Jump())
	assert.Equal(t, -250.0, body.vy)
	assert.Equal(t, Airborne, c.State())
	assert.True(t, c.Jumping())

	assert.False(t, c.Jump(), "already jumping")

	body.onGround = false
	c.Update()
	assert.False(t, c.Jump(), "airborne")

	body.onGround = true
	c.Update()
	assert.Equal(t, Grounded, c.State())
	assert.False(t, c.Jumping())
	assert.True(t, c.Jump())
}

func TestUpdateTracksGroundContact(t *testing.T) {
	body := &fakeBody{}
	c := newController(body, nil)
	assert.Equal(t, Airborne, c.State())

	body.onGround = true
	c.Update()
	assert.Equal(t, Grounded, c.State())

	body.onGround = false
	c.Update()
	assert.Equal(t, Airborne, c.State())
}

func TestSchedulerOrder(t *testing.T) {
	var s scheduler
	var got []int
	s.at(5, func() { got = append(got, 2) })
	s.at(3, func() { got = append(got, 1) })
	s.at(5, func() { got = append(got, 3) })
	s.at(9, func() { got = append(got, 4) })

	alive := func() bool { return true }
	s.run(4, alive)
	assert.Equal(t, []int{1}, got)
	s.run(5, alive)
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 1, s.pending())

	s.clear()
	s.run(100, alive)
	assert.Equal(t, []int{1, 2, 3}, got)
}
