package chase

import (
	"math/rand"
	"testing"

	"github.com/almegatsro/filedeck/internal/config"
	"github.com/almegatsro/filedeck/internal/core"
	"github.com/almegatsro/filedeck/internal/games/loop"
)

// newTestGame builds a game on a crafted layout, bypassing config files.
func newTestGame(layout []string, chasers int, jitter float64, lives int, maxTurns uint64, seed int64) *Game {
	g := New()
	g.cfg = config.ChaseConfig{
		Grid:    config.ChaseGrid{Preset: "small"},
		Chasers: config.ChaseChasers{Count: chasers, JitterChance: jitter},
		Rules:   config.TurnRules{Lives: lives, MaxTurns: maxTurns},
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.screenW = 80
	g.screenH = 24
	g.loadLayout(layout)
	g.loop = loop.New(g, lives, maxTurns)
	return g
}

func move(g *Game, a core.Action) {
	in := core.NewInputFrame()
	in.Set(a)
	g.Step(in)
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs produce identical snapshots.
	cfg := core.RuntimeConfig{
		Seed:    12345,
		ScreenW: 80,
		ScreenH: 24,
	}

	script := []core.Action{
		core.ActionRight, core.ActionRight, core.ActionDown, core.ActionWait,
		core.ActionLeft, core.ActionUp, core.ActionWait, core.ActionRight,
	}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	for i := 0; i < 60; i++ {
		a := script[i%len(script)]
		move(g1, a)
		move(g2, a)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Tick != snap2.Tick {
		t.Errorf("Tick mismatch: %d vs %d", snap1.Tick, snap2.Tick)
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Score mismatch: %d vs %d", snap1.Score, snap2.Score)
	}
	if snap1.Player != snap2.Player {
		t.Errorf("Player mismatch: %v vs %v", snap1.Player, snap2.Player)
	}
	if len(snap1.Chasers) != len(snap2.Chasers) {
		t.Fatalf("Chaser count mismatch: %d vs %d", len(snap1.Chasers), len(snap2.Chasers))
	}
	for i := range snap1.Chasers {
		if snap1.Chasers[i] != snap2.Chasers[i] {
			t.Errorf("Chaser %d mismatch: %v vs %v", i, snap1.Chasers[i], snap2.Chasers[i])
		}
	}
}

func TestWallBlocksMove(t *testing.T) {
	g := newTestGame([]string{
		"#####",
		"#P  #",
		"#####",
	}, 0, 0, 3, 0, 1)

	before := g.Snapshot()
	move(g, core.ActionUp) // into the wall

	after := g.Snapshot()
	if after.Player != before.Player {
		t.Errorf("blocked move changed position: %v -> %v", before.Player, after.Player)
	}
	if after.Score != before.Score {
		t.Errorf("blocked move changed score: %d -> %d", before.Score, after.Score)
	}
	if after.Tick != before.Tick+1 {
		t.Errorf("a blocked move still consumes the turn, tick %d -> %d", before.Tick, after.Tick)
	}
}

func TestPelletScoringAndWin(t *testing.T) {
	g := newTestGame([]string{
		"#####",
		"#P  #",
		"#####",
	}, 0, 0, 3, 0, 1)

	if g.pelletsLeft != 2 {
		t.Fatalf("pelletsLeft = %d, expected 2", g.pelletsLeft)
	}

	move(g, core.ActionRight)
	if g.score != 1 {
		t.Errorf("score = %d, expected 1 after first pellet", g.score)
	}
	if g.grid[1][2] != CellEmpty {
		t.Error("consumed pellet cell should be empty")
	}
	if g.Phase() != loop.PhaseRunning {
		t.Errorf("phase = %v, expected still running", g.Phase())
	}

	// Consuming the last pellet wins on that same turn.
	move(g, core.ActionRight)
	if g.score != 2 {
		t.Errorf("score = %d, expected 2", g.score)
	}
	if g.Phase() != loop.PhaseWon {
		t.Errorf("phase = %v, expected PhaseWon on the clearing turn", g.Phase())
	}
}

func TestChaserClosesIn(t *testing.T) {
	g := newTestGame([]string{
		"#######",
		"#P   C#",
		"#######",
	}, 1, 0, 1, 0, 1)

	// With zero jitter the pursuit is strictly greedy: the chaser gains
	// one cell per waited turn and catches the player on turn 4.
	for turn := 1; turn <= 3; turn++ {
		move(g, core.ActionWait)
		want := core.Point{X: 5 - turn, Y: 1}
		if g.chasers[0] != want {
			t.Fatalf("turn %d: chaser at %v, expected %v", turn, g.chasers[0], want)
		}
	}

	move(g, core.ActionWait)
	if g.Phase() != loop.PhaseLost {
		t.Errorf("phase = %v, expected PhaseLost when caught on the last life", g.Phase())
	}
}

func TestLifeLossRespawnsPlayerOnly(t *testing.T) {
	g := newTestGame([]string{
		"#######",
		"#P  C #",
		"#######",
	}, 1, 0, 2, 0, 1)

	// Walk right into pellets while the chaser approaches; the two meet
	// mid-board.
	move(g, core.ActionRight) // player (2,1), chaser (3,1)
	scoreAtCollision := g.score
	for g.loop.Lives() == 2 && g.loop.Tick() < 10 {
		move(g, core.ActionRight)
	}

	if g.loop.Lives() != 1 {
		t.Fatalf("lives = %d, expected 1 after collision", g.loop.Lives())
	}
	if g.player != g.start {
		t.Errorf("player at %v, expected respawn at start %v", g.player, g.start)
	}
	if g.score < scoreAtCollision {
		t.Errorf("score dropped from %d to %d; life loss carries no penalty", scoreAtCollision, g.score)
	}
	if g.Phase() != loop.PhaseRunning {
		t.Errorf("phase = %v, expected PhaseRunning with a life left", g.Phase())
	}
}

func TestQuitToken(t *testing.T) {
	g := newTestGame([]string{
		"#####",
		"#P  #",
		"#####",
	}, 0, 0, 3, 0, 1)

	move(g, core.ActionQuit)
	if g.Phase() != loop.PhaseQuit {
		t.Errorf("phase = %v, expected PhaseQuit", g.Phase())
	}

	// Terminal; further input is ignored.
	move(g, core.ActionRight)
	if g.score != 0 {
		t.Error("no moves after quit")
	}
}

func TestTurnBudget(t *testing.T) {
	g := newTestGame([]string{
		"######",
		"#P   #",
		"######",
	}, 0, 0, 3, 3, 1)

	move(g, core.ActionWait)
	move(g, core.ActionWait)
	move(g, core.ActionWait)

	if g.Phase() != loop.PhaseTimedOut {
		t.Errorf("phase = %v, expected PhaseTimedOut at the budget", g.Phase())
	}
}

func TestNoTurnWithoutInput(t *testing.T) {
	g := newTestGame([]string{
		"#####",
		"#P  #",
		"#####",
	}, 0, 0, 3, 0, 1)

	g.Step(core.NewInputFrame())
	if g.loop.Tick() != 0 {
		t.Errorf("an empty frame must not consume a turn, tick = %d", g.loop.Tick())
	}

	move(g, core.ActionWait)
	if g.loop.Tick() != 1 {
		t.Errorf("a wait consumes exactly one turn, tick = %d", g.loop.Tick())
	}
}

func TestPresetsParse(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			preset := GetPreset(name)
			if preset == nil {
				t.Fatalf("preset %q missing", name)
			}

			g := newTestGame(preset.Layout, 4, 0.25, 3, 0, 7)
			if g.pelletsLeft == 0 {
				t.Error("layout has no pellets")
			}
			if !g.walkable(g.start) {
				t.Errorf("player start %v not walkable", g.start)
			}
			if len(g.chaserStarts) == 0 {
				t.Error("layout has no chaser starts")
			}
			for _, c := range g.chasers {
				if !g.walkable(c) {
					t.Errorf("chaser start %v not walkable", c)
				}
			}
			// Rows are rectangular
			for y, row := range preset.Layout {
				if len(row) != g.gridW {
					t.Errorf("row %d has width %d, expected %d", y, len(row), g.gridW)
				}
			}
		})
	}
}
