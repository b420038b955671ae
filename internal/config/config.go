package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"unotrack/internal/apperrors"
	"unotrack/internal/card"
)

// Config holds the simulator settings.
type Config struct {
	Game GameConfig `yaml:"game"`
	Log  LogConfig  `yaml:"log"`
}

// GameConfig controls the simulated deals.
type GameConfig struct {
	Players  int    `yaml:"players"`   // total seats, observer included
	HandSize int    `yaml:"hand_size"` // cards dealt per player
	Rounds   int    `yaml:"rounds"`    // deals to simulate
	Seed     uint64 `yaml:"seed"`      // 0 means a fresh seed per run
	MaxTurns int    `yaml:"max_turns"` // safety stop per round
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads and validates the config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the standard four-player setup.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Game.Players == 0 {
		c.Game.Players = 4
	}
	if c.Game.HandSize == 0 {
		c.Game.HandSize = 7
	}
	if c.Game.Rounds == 0 {
		c.Game.Rounds = 1
	}
	if c.Game.MaxTurns == 0 {
		c.Game.MaxTurns = 40
	}
}

// Validate rejects settings the 108-card composition cannot satisfy.
func (c *Config) Validate() error {
	g := c.Game
	if g.Players < 2 || g.Players > 10 {
		return fmt.Errorf("players must be 2..10, got %d: %w", g.Players, apperrors.ErrInvalidArgument)
	}
	if g.HandSize < 1 {
		return fmt.Errorf("hand_size must be positive, got %d: %w", g.HandSize, apperrors.ErrInvalidArgument)
	}
	if g.Rounds < 1 {
		return fmt.Errorf("rounds must be positive, got %d: %w", g.Rounds, apperrors.ErrInvalidArgument)
	}
	// The deal takes players*hand_size cards plus the initial discard.
	if need := g.Players*g.HandSize + 1; need > card.DeckSize {
		return fmt.Errorf("deal needs %d cards, deck has %d: %w", need, card.DeckSize, apperrors.ErrInvalidArgument)
	}
	return nil
}
