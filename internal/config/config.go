// Package config loads the optional provinha YAML configuration file.
// Defaults work out of the box; the file tunes the learner profile used
// by grading prompts and a few player knobs. Environment variables
// (PROVINHA_* and the LLM keys) always win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the decoded configuration file.
type Config struct {
	Learner struct {
		Name  string `yaml:"name"`
		Grade string `yaml:"grade"`
		Age   int    `yaml:"age"`
	} `yaml:"learner"`

	Player struct {
		// Seed fixes distractor shuffling. Zero means time-seeded.
		Seed uint64 `yaml:"seed"`
		// Effects toggles celebration rendering.
		Effects *bool `yaml:"effects"`
	} `yaml:"player"`

	Content struct {
		// Dir is where `provinha play <id>` resolves content files.
		Dir string `yaml:"dir"`
	} `yaml:"content"`
}

// EffectsEnabled defaults to on when the file leaves it unset.
func (c Config) EffectsEnabled() bool {
	if c.Player.Effects == nil {
		return true
	}
	return *c.Player.Effects
}

// DefaultPath resolves the config file location. PROVINHA_CONFIG wins,
// then XDG_CONFIG_HOME, then ~/.config.
func DefaultPath() (string, error) {
	if p := os.Getenv("PROVINHA_CONFIG"); p != "" {
		return p, nil
	}
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "provinha", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "provinha", "config.yaml"), nil
}

// Load reads the file at path. A missing file is not an error; the
// zero Config is fully usable.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Learner.Age < 0 {
		return cfg, fmt.Errorf("%s: learner.age must not be negative", path)
	}
	return cfg, nil
}

// LoadDefault loads from DefaultPath.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}
