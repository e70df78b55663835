// Package config provides YAML-based game configuration loading for the
// filedeck arcade games and the quiz.
package config

import "fmt"

// TurnRules are the loop parameters shared by both games.
type TurnRules struct {
	Lives    int    `yaml:"lives"`
	MaxTurns uint64 `yaml:"max_turns"` // 0 disables the turn budget
}

// ChaseConfig contains all configuration for the pursuit game.
type ChaseConfig struct {
	Grid    ChaseGrid    `yaml:"grid"`
	Chasers ChaseChasers `yaml:"chasers"`
	Rules   TurnRules    `yaml:"rules"`
}

// ChaseGrid selects the playfield layout.
type ChaseGrid struct {
	Preset string `yaml:"preset"` // "small", "medium" or "large"
}

// ChaseChasers defines the pursuing adversaries.
type ChaseChasers struct {
	Count int `yaml:"count"`
	// JitterChance is the probability of a chaser accepting an
	// equal-distance move instead of the greedy one. Drawn from the
	// seeded stream, so runs stay reproducible.
	JitterChance float64 `yaml:"jitter_chance"`
}

// Validate checks loaded chase values.
func (c ChaseConfig) Validate() error {
	switch c.Grid.Preset {
	case "small", "medium", "large":
	default:
		return fmt.Errorf("config: unknown chase grid preset %q", c.Grid.Preset)
	}
	if c.Chasers.Count < 0 {
		return fmt.Errorf("config: chaser count %d is negative", c.Chasers.Count)
	}
	if c.Chasers.JitterChance < 0 || c.Chasers.JitterChance > 1 {
		return fmt.Errorf("config: jitter chance %v outside [0,1]", c.Chasers.JitterChance)
	}
	if c.Rules.Lives < 1 {
		return fmt.Errorf("config: lives %d must be at least 1", c.Rules.Lives)
	}
	return nil
}

// RunnerConfig contains all configuration for the obstacle runner.
type RunnerConfig struct {
	Lane      RunnerLane      `yaml:"lane"`
	Obstacles RunnerObstacles `yaml:"obstacles"`
	Player    RunnerPlayer    `yaml:"player"`
	Rules     TurnRules       `yaml:"rules"`
}

// RunnerLane defines the single-row playfield.
type RunnerLane struct {
	Width   int `yaml:"width"`
	PlayerX int `yaml:"player_x"` // fixed player column
}

// RunnerObstacles defines obstacle spawning.
type RunnerObstacles struct {
	// SpawnChance is the per-turn probability of a new obstacle at the
	// far edge, drawn from the seeded stream.
	SpawnChance float64 `yaml:"spawn_chance"`
	// MinGap is the minimum empty cells behind the newest obstacle
	// before another may spawn. Keeps every run survivable.
	MinGap int `yaml:"min_gap"`
}

// RunnerPlayer defines jump behavior.
type RunnerPlayer struct {
	JumpTicks int `yaml:"jump_ticks"` // turns airborne per jump
}

// Validate checks loaded runner values.
func (c RunnerConfig) Validate() error {
	if c.Lane.Width < 8 {
		return fmt.Errorf("config: lane width %d too small", c.Lane.Width)
	}
	if c.Lane.PlayerX < 0 || c.Lane.PlayerX >= c.Lane.Width {
		return fmt.Errorf("config: player column %d outside lane", c.Lane.PlayerX)
	}
	if c.Obstacles.SpawnChance < 0 || c.Obstacles.SpawnChance > 1 {
		return fmt.Errorf("config: spawn chance %v outside [0,1]", c.Obstacles.SpawnChance)
	}
	if c.Obstacles.MinGap < 1 {
		return fmt.Errorf("config: min gap %d must be at least 1", c.Obstacles.MinGap)
	}
	if c.Player.JumpTicks < 1 {
		return fmt.Errorf("config: jump ticks %d must be at least 1", c.Player.JumpTicks)
	}
	if c.Rules.Lives < 1 {
		return fmt.Errorf("config: lives %d must be at least 1", c.Rules.Lives)
	}
	return nil
}

// QuizQuestion is one entry of a quiz bank.
type QuizQuestion struct {
	Prompt  string   `yaml:"prompt"`
	Choices []string `yaml:"choices"`
	Answer  int      `yaml:"answer"` // index into Choices
}

// QuizBank is a loadable set of questions.
type QuizBank struct {
	Questions []QuizQuestion `yaml:"questions"`
}

// Validate checks a loaded quiz bank.
func (b QuizBank) Validate() error {
	if len(b.Questions) == 0 {
		return fmt.Errorf("config: quiz bank has no questions")
	}
	for i, q := range b.Questions {
		if q.Prompt == "" {
			return fmt.Errorf("config: question %d has an empty prompt", i)
		}
		if len(q.Choices) < 2 {
			return fmt.Errorf("config: question %d needs at least 2 choices", i)
		}
		if q.Answer < 0 || q.Answer >= len(q.Choices) {
			return fmt.Errorf("config: question %d answer index %d out of range", i, q.Answer)
		}
	}
	return nil
}
