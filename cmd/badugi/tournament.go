package main

import (
	"fmt"

	"github.com/lox/badugibots/internal/bot"
	"github.com/lox/badugibots/internal/game"
	"github.com/lox/badugibots/internal/match"
)

type TournamentCmd struct {
	Hands            int   `short:"n" help:"Hands per match (overrides config)"`
	Seed             int64 `help:"Random seed (overrides config, 0 keeps it)"`
	Parallel         int   `short:"p" help:"Matches to run at once (overrides config)"`
	SkipSameStrategy bool  `help:"Do not pair agents of the same strategy"`
}

func (c *TournamentCmd) Run(g *Globals) error {
	log := g.logger()
	cfg, err := g.load(c.Hands, c.Seed)
	if err != nil {
		return err
	}
	if c.Parallel > 0 {
		cfg.Match.Parallel = c.Parallel
	}
	if c.SkipSameStrategy {
		cfg.Match.SkipSameStrategy = true
	}
	if err := cfg.Validate(bot.Default); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	entries := make([]match.Entry, 0, len(cfg.Agents))
	for _, ac := range cfg.Agents {
		entries = append(entries, match.Entry{
			Name:     ac.Name,
			Strategy: ac.Strategy,
			New: func(seed int64) (game.Agent, error) {
				opts, err := ac.Options(seed, log)
				if err != nil {
					return nil, err
				}
				return bot.Default.New(ac.Strategy, opts)
			},
		})
	}

	ctx, cancel := signalContext(log)
	defer cancel()

	t := &match.Tournament{
		Match: match.Config{
			Hands:       cfg.Match.Hands,
			Seed:        cfg.Match.Seed,
			HandOptions: cfg.Match.HandOptions(),
			Logger:      log,
		},
		Parallel:         cfg.Match.Parallel,
		SkipSameStrategy: cfg.Match.SkipSameStrategy,
	}
	res, err := t.Run(ctx, entries)
	if err != nil {
		return err
	}

	fmt.Println(renderTournament(entries, res))
	return nil
}
