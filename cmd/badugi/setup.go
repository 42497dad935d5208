package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/lox/badugibots/internal/bot"
	"github.com/lox/badugibots/internal/config"
	"github.com/lox/badugibots/internal/randutil"
)

// logger configures zerolog for console or JSON output.
func (g *Globals) logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if g.Debug {
		level = zerolog.DebugLevel
	}

	if g.JSONLogs {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		return zerolog.New(os.Stderr).
			Level(level).
			With().
			Timestamp().
			Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// load reads the configuration file, applies BADUGI_* overrides and the
// command line values, and fixes the seed.
func (g *Globals) load(hands int, seed int64) (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if hands > 0 {
		cfg.Match.Hands = hands
	}
	if seed != 0 {
		cfg.Match.Seed = seed
	}
	cfg.Match.Seed = randutil.Seed(cfg.Match.Seed)
	if err := cfg.Match.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// agentConfig returns the configured agent called name, or a default entry
// when name is a strategy without a block of its own.
func agentConfig(cfg *config.Config, name string) (config.AgentConfig, error) {
	for _, a := range cfg.Agents {
		if a.Name == name {
			return a, nil
		}
	}
	if _, err := bot.Default.Resolve(name); err != nil {
		return config.AgentConfig{}, fmt.Errorf("%s is neither a configured agent nor a strategy: %w", name, err)
	}
	return config.AgentConfig{Name: name, Strategy: name}, nil
}

// signalContext returns a context that is cancelled on interrupt signals.
func signalContext(logger zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info().Str("signal", sig.String()).Msg("Received signal, abandoning the current hand")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
