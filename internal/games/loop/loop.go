// Package loop implements the turn skeleton shared by the filedeck games:
// one discrete state transition per player input, with lives, respawn, and a
// tick budget. Variants plug their movement and collision rules in through
// the Rules interface; the loop itself performs no I/O and no rendering.
package loop

import "github.com/almegatsro/filedeck/internal/core"

// Phase is the lifecycle of one game round. Won, Lost, Quit and TimedOut are
// terminal: Step is a no-op once any of them is reached.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhaseWon
	PhaseLost
	PhaseQuit
	PhaseTimedOut
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseQuit:
		return "quit"
	case PhaseTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further turns are processed from this phase.
func (p Phase) Terminal() bool {
	switch p {
	case PhaseWon, PhaseLost, PhaseQuit, PhaseTimedOut:
		return true
	}
	return false
}

// Rules supplies the per-variant behavior plugged into the shared turn order.
type Rules interface {
	// ApplyMove processes the player's input for this turn. Unknown or
	// absent tokens are a wait, never an error.
	ApplyMove(in core.InputFrame)

	// AdvanceWorld moves adversaries or obstacles one step.
	AdvanceWorld()

	// Collided reports whether the player currently occupies a deadly cell.
	Collided() bool

	// Respawn resets the player position after a non-fatal collision.
	Respawn()

	// Won reports whether the variant's win condition is met.
	// Variants without one always return false.
	Won() bool
}

// Loop drives the shared turn order: quit, player move, world advance,
// collision and life loss, win check, tick budget.
type Loop struct {
	rules    Rules
	phase    Phase
	tick     uint64
	maxTicks uint64 // 0 disables the budget
	lives    int
}

// New creates a loop in PhaseReady with the given rules, life count, and
// tick budget.
func New(rules Rules, lives int, maxTicks uint64) *Loop {
	return &Loop{
		rules:    rules,
		phase:    PhaseReady,
		lives:    lives,
		maxTicks: maxTicks,
	}
}

// Phase returns the current lifecycle phase.
func (l *Loop) Phase() Phase {
	return l.phase
}

// Tick returns the number of turns processed so far.
func (l *Loop) Tick() uint64 {
	return l.tick
}

// Lives returns the remaining life count.
func (l *Loop) Lives() int {
	return l.lives
}

// Step advances the simulation by one turn and returns the resulting phase.
// Terminal phases are sticky.
func (l *Loop) Step(in core.InputFrame) Phase {
	if l.phase.Terminal() {
		return l.phase
	}
	l.phase = PhaseRunning
	l.tick++

	if in.Has(core.ActionQuit) {
		l.phase = PhaseQuit
		return l.phase
	}

	l.rules.ApplyMove(in)
	l.rules.AdvanceWorld()

	if l.rules.Collided() {
		l.lives--
		if l.lives <= 0 {
			l.phase = PhaseLost
			return l.phase
		}
		l.rules.Respawn()
	}

	if l.rules.Won() {
		l.phase = PhaseWon
		return l.phase
	}

	if l.maxTicks > 0 && l.tick >= l.maxTicks {
		l.phase = PhaseTimedOut
	}
	return l.phase
}
