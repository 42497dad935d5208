// Package config loads match and agent configuration from HCL files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"

	"github.com/lox/badugibots/internal/bot"
	"github.com/lox/badugibots/internal/game"
	"github.com/lox/badugibots/internal/learn"
)

// Environment variables that override the match block.
const (
	EnvSeed     = "BADUGI_SEED"
	EnvHands    = "BADUGI_HANDS"
	EnvParallel = "BADUGI_PARALLEL"
)

// DefaultHands is the match length used when none is configured.
const DefaultHands = 10000

// Config represents a complete configuration file.
type Config struct {
	Match  *MatchConfig  `hcl:"match,block"`
	Agents []AgentConfig `hcl:"agent,block"`
}

// MatchConfig holds the table rules and how matches are run.
type MatchConfig struct {
	Hands         int   `hcl:"hands,optional"`
	Seed          int64 `hcl:"seed,optional"` // 0 means time based
	Ante          int   `hcl:"ante,optional"`
	RaiseCap      int   `hcl:"raise_cap,optional"`
	OpeningRaises []int `hcl:"opening_raises,optional"` // indexed by draws remaining
	Parallel      int   `hcl:"parallel,optional"`
	// SkipSameStrategy skips tournament pairings of two agents with the
	// same strategy.
	SkipSameStrategy bool `hcl:"skip_same_strategy,optional"`
}

// AgentConfig defines one tournament entry. Unset learning parameters keep
// the learner defaults.
type AgentConfig struct {
	Name          string   `hcl:"name,label"`
	Strategy      string   `hcl:"strategy"`
	Features      string   `hcl:"features,optional"`
	Normalize     *bool    `hcl:"normalize,optional"`
	Alpha         *float64 `hcl:"alpha,optional"`
	AlphaDecay    *float64 `hcl:"alpha_decay,optional"`
	Gamma         *float64 `hcl:"gamma,optional"`
	Epsilon       *float64 `hcl:"epsilon,optional"`
	EpsilonFactor *float64 `hcl:"epsilon_factor,optional"`
	EpsilonEvery  *int     `hcl:"epsilon_every,optional"`
	Temperature   *float64 `hcl:"temperature,optional"`
	RewardScale   *float64 `hcl:"reward_scale,optional"`
	ResetPerMatch *bool    `hcl:"reset_per_match,optional"`
}

// Default returns the configuration used when no file exists: a tabular
// learner against the probability player.
func Default() *Config {
	c := &Config{
		Agents: []AgentConfig{
			{Name: "sarsa", Strategy: "sarsa-table"},
			{Name: "simple", Strategy: "simple"},
		},
	}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults for missing values.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Match == nil {
		c.Match = &MatchConfig{}
	}
	m := c.Match
	if m.Hands == 0 {
		m.Hands = DefaultHands
	}
	if m.Ante == 0 {
		m.Ante = 1
	}
	if m.RaiseCap == 0 {
		m.RaiseCap = game.DefaultRaiseCap
	}
	if len(m.OpeningRaises) == 0 {
		m.OpeningRaises = slices.Clone(game.DefaultOpeningRaises[:])
	}
	if m.Parallel == 0 {
		m.Parallel = runtime.NumCPU()
	}
}

// ApplyEnv overrides match settings from BADUGI_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		c.Match.Seed = seed
	}
	if v := os.Getenv(EnvHands); v != "" {
		hands, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvHands, err)
		}
		c.Match.Hands = hands
	}
	if v := os.Getenv(EnvParallel); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvParallel, err)
		}
		c.Match.Parallel = n
	}
	return nil
}

// Validate checks the configuration against the strategies in reg.
func (c *Config) Validate(reg *bot.Registry) error {
	if err := c.Match.Validate(); err != nil {
		return err
	}
	if len(c.Agents) < 2 {
		return errors.New("at least two agents must be configured")
	}

	seen := make(map[string]bool, len(c.Agents))
	for _, a := range c.Agents {
		if seen[a.Name] {
			return fmt.Errorf("agent %s: duplicate name", a.Name)
		}
		seen[a.Name] = true
		if _, err := reg.Resolve(a.Strategy); err != nil {
			return fmt.Errorf("agent %s: %w", a.Name, err)
		}
		if _, err := a.LearnerConfig(); err != nil {
			return fmt.Errorf("agent %s: %w", a.Name, err)
		}
	}
	return nil
}

// Validate checks the match settings.
func (m *MatchConfig) Validate() error {
	if m.Hands <= 0 {
		return fmt.Errorf("hands must be positive: %d", m.Hands)
	}
	if m.Ante <= 0 {
		return fmt.Errorf("ante must be positive: %d", m.Ante)
	}
	if m.RaiseCap < 0 || m.RaiseCap > game.DefaultRaiseCap {
		return fmt.Errorf("raise cap must be between 0 and %d: %d", game.DefaultRaiseCap, m.RaiseCap)
	}
	if len(m.OpeningRaises) != 4 {
		return fmt.Errorf("opening_raises needs one size per street, got %d", len(m.OpeningRaises))
	}
	for i, r := range m.OpeningRaises {
		if r <= 0 {
			return fmt.Errorf("opening raise %d must be positive: %d", i, r)
		}
	}
	if m.Parallel <= 0 {
		return fmt.Errorf("parallel must be positive: %d", m.Parallel)
	}
	return nil
}

// HandOptions returns the table rules as hand options.
func (m *MatchConfig) HandOptions() []game.HandOption {
	var opening [4]int
	copy(opening[:], m.OpeningRaises)
	return []game.HandOption{
		game.WithAnte(m.Ante),
		game.WithRaiseCap(m.RaiseCap),
		game.WithOpeningRaises(opening),
	}
}

// LearnerConfig overlays the configured learning parameters on the learner
// defaults. Value and Policy are left to the strategy.
func (a AgentConfig) LearnerConfig() (bot.LearnerConfig, error) {
	cfg := bot.DefaultLearnerConfig()
	features, err := learn.ParseFeatureSet(a.Features)
	if err != nil {
		return cfg, err
	}
	cfg.Features = features

	set(&cfg.Normalize, a.Normalize)
	set(&cfg.Schedule.Alpha, a.Alpha)
	set(&cfg.Schedule.AlphaDecay, a.AlphaDecay)
	set(&cfg.Schedule.Gamma, a.Gamma)
	set(&cfg.Schedule.Epsilon, a.Epsilon)
	set(&cfg.Schedule.EpsilonFactor, a.EpsilonFactor)
	set(&cfg.Schedule.EpsilonEvery, a.EpsilonEvery)
	set(&cfg.Schedule.Temperature, a.Temperature)
	set(&cfg.RewardScale, a.RewardScale)
	set(&cfg.ResetPerMatch, a.ResetPerMatch)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Options builds the registry options for this agent.
func (a AgentConfig) Options(seed int64, logger zerolog.Logger) (bot.Options, error) {
	lc, err := a.LearnerConfig()
	if err != nil {
		return bot.Options{}, fmt.Errorf("agent %s: %w", a.Name, err)
	}
	return bot.Options{
		Name:    a.Name,
		Seed:    seed,
		Logger:  logger.With().Str("agent", a.Name).Logger(),
		Learner: &lc,
	}, nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
