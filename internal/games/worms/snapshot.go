package worms

// Snapshot is a compact copy of the match state for determinism checks and
// replays. Positions are stored in hundredths of a pixel.
type Snapshot struct {
	Tick      int
	State     string
	Turn      int
	Turns     int
	TurnLeft  int
	Destroyed int
	Solid     int
	Blocks    int
	Missiles  int

	// Each worm is 6 ints: X, Y, VX, VY, Health, Alive
	WormData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tickCount,
		State:     g.state,
		Turn:      g.turn,
		Turns:     g.turns,
		TurnLeft:  g.turnLeft,
		Destroyed: g.destroyed,
		Solid:     g.field.SolidCount(),
		Blocks:    g.field.Mesh().Len(),
		Missiles:  len(g.missiles),
		WormData:  make([]int, 0, len(g.worms)*6),
	}
	for _, w := range g.worms {
		alive := 0
		if w.Alive() {
			alive = 1
		}
		s.WormData = append(s.WormData,
			centi(w.box.CX), centi(w.box.CY), centi(w.vx), centi(w.vy), w.Health, alive)
	}
	return s
}

func centi(v float64) int { return int(v * 100) }

// Hash returns a deterministic hash of the snapshot.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Turn)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Turns)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TurnLeft)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Destroyed) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Solid)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Blocks)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Missiles)  //#nosec G115 -- hash computation

	for _, v := range snap.WormData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	return h
}
