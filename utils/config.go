package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/rules"
)

// ErrInvalidConfig marks configuration that must stop the program before the first step
var ErrInvalidConfig = errors.New("invalid config")

// Placement spawns a named pattern at (X, Y) on startup
type Placement struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// RulesConfig holds the four neighbor-count ranges as [start, end] pairs
type RulesConfig struct {
	Underpopulation [2]int `json:"underpopulation"`
	Same            [2]int `json:"same"`
	Alive           [2]int `json:"alive"`
	Overpopulation  [2]int `json:"overpopulation"`
}

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	RefreshInterval     int           `json:"refresh_interval"`
	UseParallel         bool          `json:"use_parallel"`
	Workers             int           `json:"workers"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	InjectionCount      int           `json:"injection_count"`
	Interactive         bool          `json:"interactive"`
	Seed                int64         `json:"seed"`
	Patterns            []Placement   `json:"patterns"`
	Rules               RulesConfig   `json:"rules"`
}

func rulesConfigFrom(rs rules.RuleSet) RulesConfig {
	pair := func(r rules.Range) [2]int { return [2]int{r.Start, r.End} }
	return RulesConfig{
		Underpopulation: pair(rs.Underpopulation),
		Same:            pair(rs.Same),
		Alive:           pair(rs.Alive),
		Overpopulation:  pair(rs.Overpopulation),
	}
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		RefreshInterval:     200,
		UseParallel:         true,
		UseMemoryPool:       true,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		InjectionCount:      3,
		Interactive:         false,
		Patterns: []Placement{
			{Name: model.Glider.Name, X: 5, Y: 5},
			{Name: model.Blinker.Name, X: 15, Y: 7},
		},
		Rules: rulesConfigFrom(rules.Default()),
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// RuleSet builds the configured rule set, failing if it is not a valid partition
func (c Config) RuleSet() (rules.RuleSet, error) {
	rng := func(p [2]int) rules.Range { return rules.Range{Start: p[0], End: p[1]} }
	rs, err := rules.New(rng(c.Rules.Underpopulation), rng(c.Rules.Same), rng(c.Rules.Alive), rng(c.Rules.Overpopulation))
	if err != nil {
		return rules.RuleSet{}, errors.Wrap(err, "[Config.RuleSet]")
	}
	return rs, nil
}

// Validate checks everything that must hold before the first generation
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] viewport must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] negative frame_rate %v", c.FrameRate)
	}
	if c.AutoRestart && c.StagnationThreshold <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] stagnation_threshold must be positive with auto_restart, got %d", c.StagnationThreshold)
	}
	if c.RefreshInterval < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] negative refresh_interval %d", c.RefreshInterval)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] random_density %v outside [0,1]", c.RandomDensity)
	}
	for _, p := range c.Patterns {
		if _, err := model.LookupPattern(p.Name); err != nil {
			return errors.Wrap(err, "[Config.Validate]")
		}
	}
	if _, err := c.RuleSet(); err != nil {
		return errors.Wrap(err, "[Config.Validate]")
	}
	return nil
}

// Viewport returns the configured window anchored at the origin
func (c Config) Viewport() model.Viewport {
	return model.Viewport{Width: c.Width, Height: c.Height}
}
