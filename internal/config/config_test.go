package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/badugibots/internal/bot"
	"github.com/lox/badugibots/internal/game"
	"github.com/lox/badugibots/internal/learn"
)

const sample = `
match {
  hands          = 500
  seed           = 42
  opening_raises = [8, 4, 4, 2]
  parallel       = 2
}

agent "learner" {
  strategy    = "sarsa-linear"
  features    = "basic"
  normalize   = true
  alpha       = 0.1
  epsilon     = 0
  reward_scale = 10
}

agent "station" {
  strategy = "call"
}
`

func TestParse(t *testing.T) {
	t.Parallel()
	cfg, err := Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate(bot.Default))

	assert.Equal(t, 500, cfg.Match.Hands)
	assert.Equal(t, int64(42), cfg.Match.Seed)
	assert.Equal(t, 1, cfg.Match.Ante, "ante defaults to 1")
	assert.Equal(t, game.DefaultRaiseCap, cfg.Match.RaiseCap)
	assert.Equal(t, []int{8, 4, 4, 2}, cfg.Match.OpeningRaises)
	require.Len(t, cfg.Agents, 2)

	lc, err := cfg.Agents[0].LearnerConfig()
	require.NoError(t, err)
	assert.Equal(t, learn.BasicFeatures, lc.Features)
	assert.True(t, lc.Normalize)
	assert.Equal(t, 0.1, lc.Schedule.Alpha)
	assert.Zero(t, lc.Schedule.Epsilon, "explicit zero must not fall back to the default")
	assert.Equal(t, 10.0, lc.RewardScale)
	assert.Equal(t, learn.DefaultSchedule().Gamma, lc.Schedule.Gamma)

	station, err := cfg.Agents[1].LearnerConfig()
	require.NoError(t, err)
	assert.Equal(t, bot.DefaultLearnerConfig(), station)
}

func TestParseWithoutMatchBlock(t *testing.T) {
	t.Parallel()
	cfg, err := Parse([]byte(`
agent "a" { strategy = "random" }
agent "b" { strategy = "maniac" }
`), "agents.hcl")
	require.NoError(t, err)
	require.NotNil(t, cfg.Match)
	assert.Equal(t, DefaultHands, cfg.Match.Hands)
	assert.Equal(t, game.DefaultOpeningRaises[:], cfg.Match.OpeningRaises)
	assert.Positive(t, cfg.Match.Parallel)
	assert.NoError(t, cfg.Validate(bot.Default))
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte(`match {`), "broken.hcl")
	assert.ErrorContains(t, err, "failed to parse")

	_, err = Parse([]byte(`agent "x" {}`), "missing.hcl")
	assert.ErrorContains(t, err, "failed to decode")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate(bot.Default))
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "badugi.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "learner", cfg.Agents[0].Name)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "hands", mutate: func(c *Config) { c.Match.Hands = -1 }, wantErr: "hands must be positive"},
		{name: "ante", mutate: func(c *Config) { c.Match.Ante = -2 }, wantErr: "ante must be positive"},
		{name: "raise cap", mutate: func(c *Config) { c.Match.RaiseCap = -1 }, wantErr: "raise cap"},
		{name: "raise cap above four", mutate: func(c *Config) { c.Match.RaiseCap = 6 }, wantErr: "raise cap must be between 0 and 4"},
		{name: "opening length", mutate: func(c *Config) { c.Match.OpeningRaises = []int{1, 2} }, wantErr: "one size per street"},
		{name: "opening size", mutate: func(c *Config) { c.Match.OpeningRaises = []int{1, 0, 1, 1} }, wantErr: "opening raise 1"},
		{name: "parallel", mutate: func(c *Config) { c.Match.Parallel = -1 }, wantErr: "parallel"},
		{name: "one agent", mutate: func(c *Config) { c.Agents = c.Agents[:1] }, wantErr: "at least two agents"},
		{name: "duplicate", mutate: func(c *Config) { c.Agents[1].Name = c.Agents[0].Name }, wantErr: "duplicate name"},
		{name: "unknown strategy", mutate: func(c *Config) { c.Agents[1].Strategy = "oracle" }, wantErr: "unknown agent"},
		{name: "bad features", mutate: func(c *Config) { c.Agents[0].Features = "fancy" }, wantErr: "unknown feature set"},
		{name: "bad alpha", mutate: func(c *Config) { v := 2.0; c.Agents[0].Alpha = &v }, wantErr: "alpha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(bot.Default), tt.wantErr)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvHands, "123")
	t.Setenv(EnvParallel, "3")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, int64(7), cfg.Match.Seed)
	assert.Equal(t, 123, cfg.Match.Hands)
	assert.Equal(t, 3, cfg.Match.Parallel)

	t.Setenv(EnvHands, "lots")
	assert.ErrorContains(t, cfg.ApplyEnv(), EnvHands)
}

func TestOptionsAndHandOptions(t *testing.T) {
	t.Parallel()
	cfg := Default()
	opts, err := cfg.Agents[0].Options(99, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "sarsa", opts.Name)
	assert.Equal(t, int64(99), opts.Seed)
	require.NotNil(t, opts.Learner)

	agent, err := bot.Default.New(cfg.Agents[0].Strategy, opts)
	require.NoError(t, err)
	assert.Equal(t, "sarsa", agent.Name())

	assert.Len(t, cfg.Match.HandOptions(), 3)
}

func TestParseRejectsRaiseCapAboveFour(t *testing.T) {
	t.Parallel()
	cfg, err := Parse([]byte(`
match { raise_cap = 6 }
agent "learner" { strategy = "sarsa-table" }
agent "maniac" { strategy = "maniac" }
`), "cap.hcl")
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.Validate(bot.Default), "raise cap")
}
