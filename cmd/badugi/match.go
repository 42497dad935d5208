package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/lox/badugibots/internal/bot"
	"github.com/lox/badugibots/internal/game"
	"github.com/lox/badugibots/internal/match"
	"github.com/lox/badugibots/internal/randutil"
	"github.com/lox/badugibots/internal/statistics"
)

type MatchCmd struct {
	A string `arg:"" help:"First agent: a configured agent name or a strategy"`
	B string `arg:"" help:"Second agent: a configured agent name or a strategy"`

	Hands    int    `short:"n" help:"Hands to play (overrides config)"`
	Seed     int64  `help:"Random seed (overrides config, 0 keeps it)"`
	Progress int    `default:"10000" help:"Log progress every N hands (0 disables)"`
	Plot     string `type:"path" help:"Write a learning curve of the first agent's running average to this file (png, svg, pdf)"`
	Window   int    `default:"100" help:"Running average window for --plot"`
	Shift    int    `default:"50" help:"Hands between plotted points"`
}

func (c *MatchCmd) Run(g *Globals) error {
	log := g.logger()
	cfg, err := g.load(c.Hands, c.Seed)
	if err != nil {
		return err
	}

	var agents [2]game.Agent
	for i, name := range []string{c.A, c.B} {
		ac, err := agentConfig(cfg, name)
		if err != nil {
			return err
		}
		opts, err := ac.Options(randutil.Derive(cfg.Match.Seed, i), log)
		if err != nil {
			return err
		}
		if agents[i], err = bot.Default.New(ac.Strategy, opts); err != nil {
			return err
		}
	}

	ctx, cancel := signalContext(log)
	defer cancel()

	log.Info().
		Str("a", agents[0].Name()).
		Str("b", agents[1].Name()).
		Int("hands", cfg.Match.Hands).
		Int64("seed", cfg.Match.Seed).
		Msg("Starting match")

	runner := match.NewRunner(match.Config{
		Hands:         cfg.Match.Hands,
		Seed:          cfg.Match.Seed,
		HandOptions:   cfg.Match.HandOptions(),
		Logger:        log,
		ProgressEvery: c.Progress,
	})
	res, err := runner.Play(ctx, agents[0], agents[1])
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Println(renderMatch(res))

	if c.Plot != "" {
		curve := statistics.RunningAverage(res.Scores, c.Window, c.Shift)
		curve.Name = res.Agents[0]
		title := fmt.Sprintf("%s vs %s", res.Agents[0], res.Agents[1])
		if err := statistics.SaveLearningCurve(c.Plot, title, curve); err != nil {
			return err
		}
		log.Info().Str("path", c.Plot).Int("points", len(curve.X)).Msg("Saved learning curve")
	}
	return nil
}
