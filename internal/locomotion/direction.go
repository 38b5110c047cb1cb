// Package locomotion drives an agent across destructible terrain: walking,
// jumping, hugging gentle downslopes and auto-climbing short ledges.
package locomotion

// Direction is a requested horizontal movement.
type Direction int

const (
	None Direction = iota
	Left
	Right
)

// Sign returns -1, 0 or +1.
func (d Direction) Sign() float64 {
	switch d {
	case Left:
		return -1
	case Right:
		return 1
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// State is the locomotion state of an agent.
type State int

const (
	Grounded State = iota
	Airborne
	Climbing
)

func (s State) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	case Climbing:
		return "climbing"
	default:
		return "unknown"
	}
}
