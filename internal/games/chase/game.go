// Package chase implements the pursuit game: collect every pellet on a
// walled grid while greedy chasers close in.
package chase

import (
	"fmt"
	"math/rand"

	"github.com/almegatsro/filedeck/internal/config"
	"github.com/almegatsro/filedeck/internal/core"
	"github.com/almegatsro/filedeck/internal/games/loop"
	"github.com/almegatsro/filedeck/internal/registry"
)

// Cell is one grid position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellPellet
)

// Visual characters for rendering
const (
	WallChar   = '#'
	PelletChar = '·'
	PlayerChar = '@'
	ChaserChar = 'X'
)

// Game implements the pursuit game logic.
type Game struct {
	cfg  config.ChaseConfig
	rng  *rand.Rand
	loop *loop.Loop

	grid   [][]Cell
	gridW  int
	gridH  int
	player core.Point
	start  core.Point

	chasers      []core.Point
	chaserStarts []core.Point

	pelletsLeft int
	score       int
	paused      bool

	screenW    int
	screenH    int
	mapOffsetX int
	mapOffsetY int
	tooSmall   bool
}

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new pursuit game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("chase", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "chase"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pellet Chase"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadChase(configPath)
	if err != nil {
		cfg = config.DefaultChaseConfig()
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.score = 0
	g.paused = false
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH

	preset := GetPreset(cfg.Grid.Preset)
	if preset == nil {
		preset = GetPreset("medium")
	}
	g.loadLayout(preset.Layout)

	g.loop = loop.New(g, cfg.Rules.Lives, cfg.Rules.MaxTurns)
}

// loadLayout parses a layout into the grid and start positions.
// Every non-wall, non-start cell begins with a pellet.
func (g *Game) loadLayout(layout []string) {
	g.gridH = len(layout)
	g.gridW = 0
	for _, row := range layout {
		if len(row) > g.gridW {
			g.gridW = len(row)
		}
	}

	g.grid = make([][]Cell, g.gridH)
	g.chaserStarts = g.chaserStarts[:0]
	g.pelletsLeft = 0

	for y, row := range layout {
		g.grid[y] = make([]Cell, g.gridW)
		for x, ch := range row {
			p := core.Point{X: x, Y: y}
			switch ch {
			case '#':
				g.grid[y][x] = CellWall
			case 'P':
				g.grid[y][x] = CellEmpty
				g.start = p
			case 'C':
				g.grid[y][x] = CellEmpty
				g.chaserStarts = append(g.chaserStarts, p)
			default:
				g.grid[y][x] = CellPellet
				g.pelletsLeft++
			}
		}
	}

	g.player = g.start

	// The layout caps the chaser count.
	count := core.Min(g.cfg.Chasers.Count, len(g.chaserStarts))
	g.chasers = make([]core.Point, count)
	copy(g.chasers, g.chaserStarts[:count])

	// Check if screen fits the map plus HUD
	requiredW := g.gridW + 2
	requiredH := g.gridH + 3
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
	g.mapOffsetX = (g.screenW - g.gridW) / 2
	g.mapOffsetY = 2
}

// walkable reports whether a point is in bounds and not a wall.
func (g *Game) walkable(p core.Point) bool {
	if p.X < 0 || p.X >= g.gridW || p.Y < 0 || p.Y >= g.gridH {
		return false
	}
	return g.grid[p.Y][p.X] != CellWall
}

// Step advances the game by one tick.
// The pursuit variant is turn-based: the world only moves on player input.
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

	// No input, no turn. Any non-directional token passes the turn as a
	// wait inside ApplyMove.
	if !in.Empty() && !onlyMeta(in) {
		g.loop.Step(in)
	}

	return core.StepResult{State: g.State()}
}

// onlyMeta reports whether the frame holds nothing but pause/restart.
func onlyMeta(in core.InputFrame) bool {
	for a, set := range in.Actions {
		if !set {
			continue
		}
		if a != core.ActionPause && a != core.ActionRestart {
			return false
		}
	}
	return true
}

// ApplyMove implements loop.Rules. A blocked move leaves the player in
// place; landing on a pellet clears it and scores one point.
func (g *Game) ApplyMove(in core.InputFrame) {
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if !in.Has(a) {
			continue
		}
		dir, _ := a.Direction()
		candidate := g.player.Add(dir.DX, dir.DY)
		if !g.walkable(candidate) {
			return
		}
		g.player = candidate
		if g.grid[candidate.Y][candidate.X] == CellPellet {
			g.grid[candidate.Y][candidate.X] = CellEmpty
			g.pelletsLeft--
			g.score++
		}
		return
	}
	// Wait: no movement this turn.
}

// AdvanceWorld implements loop.Rules: greedy Manhattan pursuit with jitter.
// No pathfinding; a wall between chaser and player can trap the chaser into
// local-minimum oscillation.
func (g *Game) AdvanceWorld() {
	for i := range g.chasers {
		g.chasers[i] = g.chaserMove(g.chasers[i])
	}
}

// chaserMove picks the next cell for one chaser. Strictly closer candidates
// win; with JitterChance the chaser takes an equal-distance cell instead,
// drawn from the seeded stream so runs stay reproducible.
func (g *Game) chaserMove(c core.Point) core.Point {
	current := c.Manhattan(g.player)
	best := c
	bestDist := current
	var equals []core.Point

	for _, d := range core.Dirs {
		candidate := c.Add(d.DX, d.DY)
		if !g.walkable(candidate) {
			continue
		}
		dist := candidate.Manhattan(g.player)
		switch {
		case dist < bestDist:
			best = candidate
			bestDist = dist
		case dist == current:
			equals = append(equals, candidate)
		}
	}

	if len(equals) > 0 && g.rng.Float64() < g.cfg.Chasers.JitterChance {
		return equals[g.rng.Intn(len(equals))]
	}
	return best
}

// Collided implements loop.Rules.
func (g *Game) Collided() bool {
	for _, c := range g.chasers {
		if c == g.player {
			return true
		}
	}
	return false
}

// Respawn implements loop.Rules. Only the player resets; chasers keep
// their positions and the score carries no penalty.
func (g *Game) Respawn() {
	g.player = g.start
}

// Won implements loop.Rules: the board is cleared.
func (g *Game) Won() bool {
	return g.pelletsLeft == 0
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

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Pellet Chase — Score: %d  Lives: %d  Pellets: %d  Turn: %d",
		g.score, g.loop.Lives(), g.pelletsLeft, g.loop.Tick())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	for y := 0; y < g.gridH; y++ {
		for x := 0; x < g.gridW; x++ {
			px := g.mapOffsetX + x
			py := g.mapOffsetY + y
			switch g.grid[y][x] {
			case CellWall:
				dst.SetCell(px, py, WallChar, core.ColorGray)
			case CellPellet:
				dst.SetCell(px, py, PelletChar, core.ColorCyan)
			}
		}
	}

	for _, c := range g.chasers {
		dst.SetCell(g.mapOffsetX+c.X, g.mapOffsetY+c.Y, ChaserChar, core.ColorRed)
	}
	dst.SetCell(g.mapOffsetX+g.player.X, g.mapOffsetY+g.player.Y, PlayerChar, core.ColorYellow)

	switch g.loop.Phase() {
	case loop.PhaseWon:
		g.renderOverlay(dst, "Board cleared!", fmt.Sprintf("Final Score: %d", g.score))
	case loop.PhaseLost:
		g.renderOverlay(dst, "Caught!", "Press R to restart")
	case loop.PhaseTimedOut:
		g.renderOverlay(dst, "Out of turns", "Press R to restart")
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
