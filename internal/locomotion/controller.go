package locomotion

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-worms/internal/core"
)

// Ground answers surface height queries. *terrain.Field satisfies it.
type Ground interface {
	HeightAt(x float64) int
}

// Body is the physics body an agent moves through. The controller only
// issues velocity commands; position and ground contact belong to the body.
type Body interface {
	X() float64
	OnGround() bool
	Active() bool
	Alive() bool
	Velocity() (vx, vy float64)
	SetVelocityX(vx float64)
	SetVelocityY(vy float64)
}

// Params tunes the controller. Velocities are in pixels per second with y
// growing downward.
type Params struct {
	Speed        float64
	JumpSpeed    float64
	ClimbImpulse float64
	ClimbScan    int // pixels scanned ahead for a climbable step
	ClimbMaxStep int // tallest step climbed without a jump

	ClimbSlowAfter   time.Duration
	ClimbSlowFactor  float64
	ClimbCrawlAfter  time.Duration // measured from the slow step
	ClimbCrawlFactor float64

	SlopeLookahead float64
	SlopeMaxDrop   int
	SlopeBias      float64
}

// DefaultParams returns the standard worm movement tuning.
func DefaultParams() Params {
	return Params{
		Speed:            80,
		JumpSpeed:        250,
		ClimbImpulse:     50,
		ClimbScan:        10,
		ClimbMaxStep:     8,
		ClimbSlowAfter:   150 * time.Millisecond,
		ClimbSlowFactor:  0.5,
		ClimbCrawlAfter:  100 * time.Millisecond,
		ClimbCrawlFactor: 0.3,
		SlopeLookahead:   5,
		SlopeMaxDrop:     3,
		SlopeBias:        20,
	}
}

// Controller is the per-agent locomotion state machine. Call Update once
// per simulation tick after the physics step.
type Controller struct {
	body   Body
	ground Ground
	params Params
	rt     core.RuntimeConfig

	state      State
	jumping    bool
	facing     Direction
	climbDir   Direction
	leftGround bool
	tick       int
	sched      scheduler
}

// New returns a controller for body. A nil ground disables climbing and
// slope assistance.
func New(body Body, ground Ground, params Params, rt core.RuntimeConfig) *Controller {
	c := &Controller{
		body:   body,
		ground: ground,
		params: params,
		rt:     rt,
		facing: Right,
	}
	if !body.OnGround() {
		c.state = Airborne
	}
	return c
}

// State returns the current locomotion state.
func (c *Controller) State() State { return c.state }

// Facing returns the last lateral direction requested.
func (c *Controller) Facing() Direction { return c.facing }

// FacingRight reports whether the agent looks to the right.
func (c *Controller) FacingRight() bool { return c.facing != Left }

// SetFacing turns the agent without moving it.
func (c *Controller) SetFacing(d Direction) {
	if d != None {
		c.facing = d
	}
}

// Jumping reports whether a jump is in progress.
func (c *Controller) Jumping() bool { return c.jumping }

// Pending returns the number of scheduled climb steps.
func (c *Controller) Pending() int { return c.sched.pending() }

// Move applies a movement request for this tick.
func (c *Controller) Move(dir Direction) {
	if !c.body.Active() || !c.body.Alive() {
		return
	}
	if dir == None {
		c.body.SetVelocityX(0)
		return
	}
	c.facing = dir

	switch {
	case c.state == Climbing && dir == c.climbDir:
		// holding the key keeps the decay profile
	case c.CanClimbOver(dir):
		c.climb(dir)
	default:
		c.body.SetVelocityX(dir.Sign() * c.params.Speed)
	}
	c.hugSlope()
}

// hugSlope pushes a grounded, moving agent onto a shallow descent ahead of
// it, climbing or not.
func (c *Controller) hugSlope() {
	vx, _ := c.body.Velocity()
	if c.ground == nil || vx == 0 || !c.body.OnGround() {
		return
	}
	x := c.body.X()
	here := c.ground.HeightAt(x)
	ahead := c.ground.HeightAt(x + math.Copysign(c.params.SlopeLookahead, vx))
	if here < ahead && ahead-here < c.params.SlopeMaxDrop {
		c.body.SetVelocityY(c.params.SlopeBias)
	}
}

// CanClimbOver reports whether a step of 1..ClimbMaxStep pixels rises within
// ClimbScan pixels ahead of a grounded agent.
func (c *Controller) CanClimbOver(dir Direction) bool {
	_, ok := c.climbOffset(dir)
	return ok
}

// climbOffset returns the nearest offset ahead with a climbable rise.
func (c *Controller) climbOffset(dir Direction) (int, bool) {
	if c.ground == nil || dir == None || !c.body.OnGround() {
		return 0, false
	}
	x := c.body.X()
	sign := dir.Sign()
	here := c.ground.HeightAt(x)
	for offset := 1; offset <= c.params.ClimbScan; offset++ {
		diff := here - c.ground.HeightAt(x+float64(offset)*sign)
		if diff > 0 && diff <= c.params.ClimbMaxStep {
			return offset, true
		}
	}
	return 0, false
}

func (c *Controller) climb(dir Direction) {
	sign := dir.Sign()
	c.state = Climbing
	c.climbDir = dir
	c.leftGround = false
	c.body.SetVelocityX(sign * c.params.Speed)
	c.body.SetVelocityY(-c.params.ClimbImpulse)

	c.sched.clear()
	slow := c.rt.TicksFor(c.params.ClimbSlowAfter)
	crawl := slow + c.rt.TicksFor(c.params.ClimbCrawlAfter)
	c.sched.at(c.tick+slow, c.decay(sign, c.params.ClimbSlowFactor))
	c.sched.at(c.tick+crawl, c.decay(sign, c.params.ClimbCrawlFactor))
}

// decay slows a climb still heading the way it started. A stopped or
// reversed agent keeps its velocity.
func (c *Controller) decay(sign, factor float64) func() {
	return func() {
		if vx, _ := c.body.Velocity(); vx*sign > 0 {
			c.body.SetVelocityX(sign * c.params.Speed * factor)
		}
	}
}

// Jump launches a grounded agent. It reports whether the jump happened.
func (c *Controller) Jump() bool {
	if !c.body.Active() || !c.body.Alive() {
		return false
	}
	if !c.body.OnGround() || c.jumping {
		return false
	}
	c.body.SetVelocityY(-c.params.JumpSpeed)
	c.jumping = true
	c.state = Airborne
	return true
}

// Update advances the controller clock, fires due climb steps and syncs the
// state with the body's ground contact.
func (c *Controller) Update() {
	c.tick++
	c.sched.run(c.tick, c.body.Alive)

	onGround := c.body.OnGround()
	if onGround {
		c.jumping = false
	}

	switch c.state {
	case Climbing:
		if !onGround {
			c.leftGround = true
			return
		}
		if c.leftGround || c.sched.pending() == 0 {
			c.state = Grounded
		}
	default:
		if onGround {
			c.state = Grounded
		} else {
			c.state = Airborne
		}
	}
}
