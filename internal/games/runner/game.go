// Package runner implements the single-lane obstacle runner. The player
// holds a fixed column while obstacles slide in from the far edge; a jump
// keeps the player airborne for a few turns, and every survived turn is
// worth a point. There is no win condition, only survival.
package runner

import (
	"fmt"
	"math/rand"

	"github.com/almegatsro/filedeck/internal/config"
	"github.com/almegatsro/filedeck/internal/core"
	"github.com/almegatsro/filedeck/internal/games/loop"
	"github.com/almegatsro/filedeck/internal/registry"
)

const (
	PlayerChar   = '@'
	ObstacleChar = '#'
	GroundChar   = '='
)

// Game is the obstacle runner. Unlike the pursuit game it is not gated on
// input: every Step consumes a turn, and an empty frame is a wait. Pacing
// is the caller's concern.
type Game struct {
	cfg config.RunnerConfig
	rng *rand.Rand

	loop *loop.Loop

	obstacles []int // obstacle columns, newest last
	airTicks  int   // turns of jump left, 0 when grounded
	hit       bool  // grounded collision this turn
	score     int
	paused    bool

	screenW, screenH int
	laneOffsetX      int
	laneY            int
	tooSmall         bool
}

// configPath overrides the config search path, settable from the CLI.
var configPath string

// SetConfigPath sets a config file used by every subsequent Reset.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}

// New creates an unstarted runner game. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// ID returns the registry identifier.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Lane Runner"
}

// Reset loads configuration and restarts the run with the given seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH

	g.obstacles = g.obstacles[:0]
	g.airTicks = 0
	g.hit = false
	g.score = 0
	g.paused = false

	g.loop = loop.New(g, cfg.Rules.Lives, cfg.Rules.MaxTurns)

	requiredW := cfg.Lane.Width + 2
	g.tooSmall = g.screenW < requiredW || g.screenH < 8
	g.laneOffsetX = (g.screenW - cfg.Lane.Width) / 2
	g.laneY = g.screenH / 2
}

// Step advances the run by one turn.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.loop.Phase().Terminal() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.loop.Phase().Terminal() {
		return core.StepResult{State: g.State()}
	}

	g.loop.Step(in)
	return core.StepResult{State: g.State()}
}

// ApplyMove implements loop.Rules. Jump is the only move; a grounded jump
// keeps the player airborne for JumpTicks turns, this one included.
// Jumping mid-air does nothing.
func (g *Game) ApplyMove(in core.InputFrame) {
	if g.airTicks > 0 {
		g.airTicks--
	} else if in.Has(core.ActionJump) || in.Has(core.ActionUp) {
		g.airTicks = g.cfg.Player.JumpTicks
	}
}

// AdvanceWorld implements loop.Rules: obstacles slide one cell toward the
// player and a new one may spawn at the far edge. A turn scores a point only
// when the player comes out of it unharmed.
func (g *Game) AdvanceWorld() {
	kept := g.obstacles[:0]
	for _, x := range g.obstacles {
		if x-1 >= 0 {
			kept = append(kept, x-1)
		}
	}
	g.obstacles = kept

	if g.canSpawn() && g.rng.Float64() < g.cfg.Obstacles.SpawnChance {
		g.obstacles = append(g.obstacles, g.cfg.Lane.Width-1)
	}

	g.hit = g.groundedHit()
	if !g.hit {
		g.score++
	}
}

// canSpawn reports whether the far edge is at least MinGap cells clear.
// The gap keeps every seeded run survivable with a well-timed jump.
func (g *Game) canSpawn() bool {
	edge := g.cfg.Lane.Width - 1
	for _, x := range g.obstacles {
		if edge-x < g.cfg.Obstacles.MinGap {
			return false
		}
	}
	return true
}

// Collided implements loop.Rules, reporting the hit resolved by this turn's
// AdvanceWorld.
func (g *Game) Collided() bool {
	return g.hit
}

// groundedHit reports whether a grounded player shares the fixed column with
// an obstacle. Airborne passes are free.
func (g *Game) groundedHit() bool {
	if g.airTicks > 0 {
		return false
	}
	for _, x := range g.obstacles {
		if x == g.cfg.Lane.PlayerX {
			return true
		}
	}
	return false
}

// Respawn implements loop.Rules: the lane is cleared so the next life does
// not start inside a wave. The score carries no penalty.
func (g *Game) Respawn() {
	g.obstacles = g.obstacles[:0]
	g.airTicks = 0
	g.hit = false
}

// Won implements loop.Rules. The runner has no win condition.
func (g *Game) Won() bool {
	return false
}

// Phase returns the turn-loop lifecycle phase.
func (g *Game) Phase() loop.Phase {
	return g.loop.Phase()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.loop.Lives(),
		GameOver: g.loop.Phase().Terminal(),
		Paused:   g.paused,
	}
}

// Render draws the lane to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Lane Runner — Score: %d  Lives: %d  Turn: %d",
		g.score, g.loop.Lives(), g.loop.Tick())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	groundY := g.laneY

	dst.DrawHLine(g.laneOffsetX, groundY+1, g.cfg.Lane.Width, GroundChar)

	for _, x := range g.obstacles {
		dst.SetCell(g.laneOffsetX+x, groundY, ObstacleChar, core.ColorRed)
	}

	playerY := groundY
	if g.airTicks > 0 {
		playerY = groundY - 1
	}
	dst.SetCell(g.laneOffsetX+g.cfg.Lane.PlayerX, playerY, PlayerChar, core.ColorYellow)

	switch g.loop.Phase() {
	case loop.PhaseLost:
		g.renderOverlay(dst, "Wiped out!", "Press R to restart")
	case loop.PhaseTimedOut:
		g.renderOverlay(dst, "Run complete", fmt.Sprintf("Final Score: %d", g.score))
	default:
		if g.paused {
			g.renderOverlay(dst, "Paused", "Press P to continue")
		}
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawText(boxX+(boxW-len(line1))/2, boxY+1, line1)
	dst.DrawText(boxX+(boxW-len(line2))/2, boxY+3, line2)
}
