package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/quiz.yaml
var defaultQuizYAML []byte

// DefaultChaseConfig returns the default pursuit game configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Grid: ChaseGrid{Preset: "medium"},
		Chasers: ChaseChasers{
			Count:        3,
			JitterChance: 0.25,
		},
		Rules: TurnRules{
			Lives:    3,
			MaxTurns: 2000,
		},
	}
}

// DefaultRunnerConfig returns the default obstacle runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Lane: RunnerLane{
			Width:   40,
			PlayerX: 4,
		},
		Obstacles: RunnerObstacles{
			SpawnChance: 0.2,
			MinGap:      5,
		},
		Player: RunnerPlayer{JumpTicks: 3},
		Rules: TurnRules{
			Lives:    3,
			MaxTurns: 5000,
		},
	}
}
