package runner

import "github.com/almegatsro/filedeck/internal/games/loop"

// Snapshot captures the full observable state of a run for tests and
// debugging.
type Snapshot struct {
	Tick      uint64
	Phase     loop.Phase
	Score     int
	Lives     int
	AirTicks  int
	Obstacles []int
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]int, len(g.obstacles))
	copy(obstacles, g.obstacles)
	return Snapshot{
		Tick:      g.loop.Tick(),
		Phase:     g.loop.Phase(),
		Score:     g.score,
		Lives:     g.loop.Lives(),
		AirTicks:  g.airTicks,
		Obstacles: obstacles,
	}
}
