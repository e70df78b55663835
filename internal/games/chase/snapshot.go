package chase

import (
	"github.com/almegatsro/filedeck/internal/core"
	"github.com/almegatsro/filedeck/internal/games/loop"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Phase       loop.Phase
	Score       int
	Lives       int
	PelletsLeft int
	Player      core.Point
	Chasers     []core.Point
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	chasers := make([]core.Point, len(g.chasers))
	copy(chasers, g.chasers)

	return Snapshot{
		Tick:        g.loop.Tick(),
		Phase:       g.loop.Phase(),
		Score:       g.score,
		Lives:       g.loop.Lives(),
		PelletsLeft: g.pelletsLeft,
		Player:      g.player,
		Chasers:     chasers,
	}
}
