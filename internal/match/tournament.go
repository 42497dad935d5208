package match

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lox/badugibots/internal/game"
	"github.com/lox/badugibots/internal/randutil"
)

// Entry is one tournament participant. New is called once per pairing so
// that every match starts with fresh agents.
type Entry struct {
	Name     string
	Strategy string
	New      func(seed int64) (game.Agent, error)
}

// Pairing is the result of one heads-up match of a tournament.
type Pairing struct {
	A, B   int // entry indices
	Seed   int64
	Result *Result
}

// Standing is the tournament score of one entry.
type Standing struct {
	Name   string
	Points int
	Chips  int
	Wins   int
	Draws  int
	Losses int
}

// TournamentResult holds every pairing and the final standings.
type TournamentResult struct {
	Pairings  []Pairing
	Standings []Standing
}

// Tournament plays every entry against every other once.
type Tournament struct {
	Match    Config
	Parallel int
	// SkipSameStrategy skips pairings of two entries with the same strategy.
	SkipSameStrategy bool
}

// Run plays all pairings, at most Parallel at a time. Each pairing gets a
// seed derived from the match seed and its index, so results do not depend
// on scheduling. A win is worth 2 points and a drawn match 1 point each.
func (t *Tournament) Run(ctx context.Context, entries []Entry) (*TournamentResult, error) {
	if len(entries) < 2 {
		return nil, fmt.Errorf("tournament needs at least two entries, got %d", len(entries))
	}

	var pairings []Pairing
	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			if t.SkipSameStrategy && strings.EqualFold(entries[i].Strategy, entries[j].Strategy) {
				continue
			}
			pairings = append(pairings, Pairing{
				A:    i,
				B:    j,
				Seed: randutil.Derive(t.Match.Seed, len(pairings)),
			})
		}
	}

	log := t.Match.Logger
	log.Info().
		Int("entries", len(entries)).
		Int("pairings", len(pairings)).
		Int("parallel", t.Parallel).
		Msg("Starting tournament")

	g, ctx := errgroup.WithContext(ctx)
	if t.Parallel > 0 {
		g.SetLimit(t.Parallel)
	}

	for idx := range pairings {
		g.Go(func() error {
			p := pairings[idx]
			ea, eb := entries[p.A], entries[p.B]

			a, err := ea.New(randutil.Derive(p.Seed, 0))
			if err != nil {
				return fmt.Errorf("%s: %w", ea.Name, err)
			}
			b, err := eb.New(randutil.Derive(p.Seed, 1))
			if err != nil {
				return fmt.Errorf("%s: %w", eb.Name, err)
			}

			cfg := t.Match
			cfg.Seed = p.Seed
			cfg.Logger = log.With().Int("pairing", idx).Logger()
			res, err := NewRunner(cfg).Play(ctx, a, b)
			if err != nil {
				return fmt.Errorf("%s vs %s: %w", ea.Name, eb.Name, err)
			}

			pairings[idx].Result = res

			log.Info().
				Str("a", ea.Name).
				Str("b", eb.Name).
				Int("score", res.Score).
				Msg("Pairing finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &TournamentResult{
		Pairings:  pairings,
		Standings: standings(entries, pairings),
	}, nil
}

func standings(entries []Entry, pairings []Pairing) []Standing {
	table := make([]Standing, len(entries))
	for i, e := range entries {
		table[i].Name = e.Name
	}
	for _, p := range pairings {
		score := p.Result.Score
		a, b := &table[p.A], &table[p.B]
		a.Chips += score
		b.Chips -= score
		switch {
		case score > 0:
			a.Points += 2
			a.Wins++
			b.Losses++
		case score < 0:
			b.Points += 2
			b.Wins++
			a.Losses++
		default:
			a.Points++
			b.Points++
			a.Draws++
			b.Draws++
		}
	}
	slices.SortStableFunc(table, func(x, y Standing) int {
		if x.Points != y.Points {
			return y.Points - x.Points
		}
		return y.Chips - x.Chips
	})
	return table
}
