package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/automata/internal/automaton"
)

const (
	DefaultWidth = 80
	DefaultRule  = 126
	DefaultDelay = 16 * time.Millisecond
	DefaultAlive = "█"
	DefaultDead  = " "
	DefaultTheme = "plain"

	// SeedMidpoint places the single live seed cell at width/2.
	SeedMidpoint = -1
)

type Config struct {
	Width        int           `yaml:"width"`
	Rule         int           `yaml:"rule"`
	Delay        time.Duration `yaml:"delay"`
	Generations  uint64        `yaml:"generations"`
	SeedPosition int           `yaml:"seed_position"`
	Glyphs       GlyphConfig   `yaml:"glyphs"`
	Theme        string        `yaml:"theme"`
}

type GlyphConfig struct {
	Alive string `yaml:"alive"`
	Dead  string `yaml:"dead"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:        DefaultWidth,
		Rule:         DefaultRule,
		Delay:        DefaultDelay,
		SeedPosition: SeedMidpoint,
		Glyphs: GlyphConfig{
			Alive: DefaultAlive,
			Dead:  DefaultDead,
		},
		Theme: DefaultTheme,
	}
}

// Load reads a yaml file over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads a yaml file over cfg. Keys absent from the file keep the
// values cfg already holds.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the values the engine would otherwise reject at
// construction, plus the driver-only settings.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width %d: %w", c.Width, automaton.ErrInvalidWidth)
	}
	if c.Rule < 0 || c.Rule > 255 {
		return fmt.Errorf("rule %d: %w", c.Rule, automaton.ErrInvalidRule)
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", c.Delay)
	}
	if c.SeedPosition < SeedMidpoint || c.SeedPosition >= c.Width {
		return fmt.Errorf("seed position %d outside [0, %d)", c.SeedPosition, c.Width)
	}
	return nil
}

// Seed resolves the seed cell for the configured width.
func (c *Config) Seed() int {
	if c.SeedPosition == SeedMidpoint {
		return c.Width / 2
	}
	return c.SeedPosition
}

// NewGrid builds a seeded grid from the configuration.
func (c *Config) NewGrid() (*automaton.Grid, error) {
	rule, err := automaton.NewRuleTable(c.Rule)
	if err != nil {
		return nil, err
	}
	grid, err := automaton.NewGrid(c.Width, rule)
	if err != nil {
		return nil, err
	}
	grid.Seed(c.Seed())
	return grid, nil
}
