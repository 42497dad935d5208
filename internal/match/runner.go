// Package match plays heads-up badugi matches and round-robin tournaments.
package match

import (
	"context"
	"fmt"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/badugibots/badugi"
	"github.com/lox/badugibots/internal/game"
	"github.com/lox/badugibots/internal/randutil"
	"github.com/lox/badugibots/internal/statistics"
)

// Config holds configuration for running matches.
type Config struct {
	Hands int
	Seed  int64
	// HandOptions carry the table rules (ante, raise cap, opening raises).
	HandOptions []game.HandOption
	Logger      zerolog.Logger
	Clock       quartz.Clock
	// ProgressEvery logs a progress line every N hands; zero disables it.
	ProgressEvery int
}

// Result is the outcome of one heads-up match.
type Result struct {
	Agents [2]string
	// Score is the number of chips the first agent won from the second.
	Score int
	Hands int
	// Interrupted is set when the context ended the match early.
	Interrupted bool
	Duration    time.Duration

	Stats   [2]*statistics.Statistics
	Actions [2]statistics.Actions
	// Scores holds the first agent's result of every hand.
	Scores []float64
	// WeightNorms holds the value function weight norm of each agent after
	// every hand, for agents that report one.
	WeightNorms [2][]float64
}

// HandsPerSecond reports throughput.
func (r *Result) HandsPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Hands) / r.Duration.Seconds()
}

type weightNormer interface {
	WeightNorm() float64
}

// Runner plays matches.
type Runner struct {
	config Config
	clock  quartz.Clock
}

// NewRunner creates a runner with the given configuration.
func NewRunner(config Config) *Runner {
	clock := config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Runner{config: config, clock: clock}
}

// Play runs a match of the configured number of hands between a and b.
// The dealer button alternates every hand. Agent failures are absorbed by
// the hands; only cancellation ends a match early, returning the partial
// result together with the context error.
func (r *Runner) Play(ctx context.Context, a, b game.Agent) (*Result, error) {
	hands := r.config.Hands
	if hands <= 0 {
		return nil, fmt.Errorf("hands must be positive: %d", hands)
	}

	log := r.config.Logger.With().
		Str("a", a.Name()).
		Str("b", b.Name()).
		Logger()

	rng := randutil.New(r.config.Seed)
	deck := badugi.NewDeck(randutil.Split(rng))

	res := &Result{
		Agents: [2]string{a.Name(), b.Name()},
		Stats:  [2]*statistics.Statistics{{}, {}},
		Scores: make([]float64, 0, hands),
	}
	agents := [2]game.Agent{a, b}

	a.StartNewMatch(hands)
	b.StartNewMatch(hands)

	start := r.clock.Now()
	for handsToGo := hands; handsToGo > 0; handsToGo-- {
		if err := ctx.Err(); err != nil {
			res.Interrupted = true
			res.Duration = r.clock.Since(start)
			log.Warn().Int("hands", res.Hands).Msg("Match interrupted")
			finish(agents, res.Score)
			return res, err
		}

		// a deals when an odd number of hands is left, so the last hand of
		// every match is dealt by a.
		dealer := 0
		if handsToGo%2 == 0 {
			dealer = 1
		}
		sign := 1
		if dealer == 1 {
			sign = -1
		}
		seats := [2]game.Agent{agents[dealer], agents[1-dealer]}

		opts := append([]game.HandOption{
			game.WithDeck(deck),
			game.WithLogger(log),
			game.WithMatchState(handsToGo, sign*res.Score),
		}, r.config.HandOptions...)
		hand := game.NewHand(rng, opts...)

		out, err := hand.Play(ctx, seats)
		if err != nil {
			res.Interrupted = true
			res.Duration = r.clock.Since(start)
			finish(agents, res.Score)
			return res, fmt.Errorf("hand %d: %w", res.Hands+1, err)
		}

		net := sign * out.Net
		res.Score += net
		res.Hands++
		res.Scores = append(res.Scores, float64(net))

		for i := range agents {
			seat := i
			if dealer == 1 {
				seat = 1 - i
			}
			own := net
			if i == 1 {
				own = -net
			}
			res.Stats[i].Add(statistics.HandResult{
				Net:            float64(own),
				Position:       seat,
				WentToShowdown: out.EndedBy == game.EndShowdown,
				FinalPot:       out.Pot,
			})
			res.Actions[i].Add(out.Tallies[seat])
			if wn, ok := agents[i].(weightNormer); ok {
				res.WeightNorms[i] = append(res.WeightNorms[i], wn.WeightNorm())
			}
		}

		if every := r.config.ProgressEvery; every > 0 && res.Hands%every == 0 {
			log.Info().
				Int("hands", res.Hands).
				Int("score", res.Score).
				Float64("mean", res.Stats[0].Mean()).
				Msg("Match progress")
		}
	}
	res.Duration = r.clock.Since(start)
	finish(agents, res.Score)

	log.Info().
		Int("hands", res.Hands).
		Int("score", res.Score).
		Dur("duration", res.Duration).
		Msg("Match finished")
	return res, nil
}

func finish(agents [2]game.Agent, score int) {
	agents[0].FinishedMatch(score)
	agents[1].FinishedMatch(-score)
}
