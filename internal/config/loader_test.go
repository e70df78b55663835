package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadChaseDefaults(t *testing.T) {
	cfg, err := LoadChase("")
	if err != nil {
		t.Fatalf("LoadChase() failed: %v", err)
	}

	if cfg.Grid.Preset == "" {
		t.Error("default chase config has no grid preset")
	}
	if cfg.Chasers.Count < 1 {
		t.Errorf("default chaser count = %d, expected at least 1", cfg.Chasers.Count)
	}
	if cfg.Rules.Lives < 1 {
		t.Errorf("default lives = %d, expected at least 1", cfg.Rules.Lives)
	}
}

func TestLoadRunnerDefaults(t *testing.T) {
	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}

	if cfg.Lane.Width < 8 {
		t.Errorf("default lane width = %d, too small", cfg.Lane.Width)
	}
	if cfg.Lane.PlayerX >= cfg.Lane.Width {
		t.Error("default player column outside lane")
	}
}

func TestLoadChaseCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chase.yaml")
	content := []byte("grid:\n  preset: small\nchasers:\n  count: 1\n  jitter_chance: 0.5\nrules:\n  lives: 5\n  max_turns: 100\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("cannot write config fixture: %v", err)
	}

	cfg, err := LoadChase(path)
	if err != nil {
		t.Fatalf("LoadChase() failed: %v", err)
	}

	if cfg.Grid.Preset != "small" {
		t.Errorf("preset = %q, expected %q", cfg.Grid.Preset, "small")
	}
	if cfg.Chasers.Count != 1 || cfg.Rules.Lives != 5 {
		t.Errorf("custom values not applied: %+v", cfg)
	}
}

func TestLoadChaseMissingCustomPath(t *testing.T) {
	_, err := LoadChase(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Error("a missing explicit config path must be an error, not a silent fallback")
	}
}

func TestLoadChaseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"unknown preset",
			"grid:\n  preset: enormous\nchasers:\n  count: 3\n  jitter_chance: 0.2\nrules:\n  lives: 3\n",
		},
		{
			"jitter above one",
			"grid:\n  preset: small\nchasers:\n  count: 3\n  jitter_chance: 1.5\nrules:\n  lives: 3\n",
		},
		{
			"zero lives",
			"grid:\n  preset: small\nchasers:\n  count: 3\n  jitter_chance: 0.2\nrules:\n  lives: 0\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "chase.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("cannot write config fixture: %v", err)
			}
			if _, err := LoadChase(path); err == nil {
				t.Error("invalid config should be rejected")
			}
		})
	}
}

func TestLoadQuizBankDefaults(t *testing.T) {
	bank, err := LoadQuizBank("")
	if err != nil {
		t.Fatalf("LoadQuizBank() failed: %v", err)
	}

	if len(bank.Questions) == 0 {
		t.Fatal("default quiz bank is empty")
	}
	for i, q := range bank.Questions {
		if q.Answer < 0 || q.Answer >= len(q.Choices) {
			t.Errorf("question %d has answer index %d out of range", i, q.Answer)
		}
	}
}

func TestLoadQuizBankRejectsBadAnswerIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.yaml")
	content := []byte("questions:\n  - prompt: \"x?\"\n    choices: [\"a\", \"b\"]\n    answer: 7\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("cannot write quiz fixture: %v", err)
	}

	if _, err := LoadQuizBank(path); err == nil {
		t.Error("out-of-range answer index should be rejected")
	}
}
