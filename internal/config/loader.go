package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadChase loads the pursuit game configuration.
// Search order: customPath -> ~/.filedeck/configs/chase.yaml -> ./configs/chase.yaml -> embedded default
func LoadChase(customPath string) (ChaseConfig, error) {
	var cfg ChaseConfig
	if err := load("chase.yaml", customPath, defaultChaseYAML, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadRunner loads the obstacle runner configuration.
// Search order: customPath -> ~/.filedeck/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	var cfg RunnerConfig
	if err := load("runner.yaml", customPath, defaultRunnerYAML, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadQuizBank loads the quiz question bank.
// Search order: customPath -> ~/.filedeck/configs/quiz.yaml -> ./configs/quiz.yaml -> embedded default
func LoadQuizBank(customPath string) (QuizBank, error) {
	var bank QuizBank
	if err := load("quiz.yaml", customPath, defaultQuizYAML, &bank); err != nil {
		return bank, err
	}
	if err := bank.Validate(); err != nil {
		return bank, err
	}
	return bank, nil
}

// load implements the shared search order. A custom path is mandatory when
// given; the user and local config files are best-effort fallbacks.
func load(filename, customPath string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	if err := yaml.Unmarshal(embedded, out); err != nil {
		return fmt.Errorf("config: cannot parse embedded %s: %w", filename, err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".filedeck", "configs", filename)
}
