package statistics

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// BigPotChips is the pot size from which a hand counts as a big pot.
const BigPotChips = 100

// HandResult represents the outcome of a single hand for one agent.
type HandResult struct {
	Net            float64 // chips won (negative when lost)
	Position       int     // 0 dealer, 1 other
	WentToShowdown bool
	FinalPot       int
}

// PositionStats tracks results from one seat.
type PositionStats struct {
	Hands int
	Sum   float64
}

// Statistics tracks per-agent match statistics in chips.
type Statistics struct {
	Hands  int
	Sum    float64
	Values []float64 // Every result, for variance and quantiles

	ShowdownWins     int
	NonShowdownWins  int     // hands won because the opponent folded or forfeited
	ShowdownChips    float64 // chips from showdowns, wins and losses
	NonShowdownChips float64
	AllChips         float64 // total, for the ledger check

	PositionResults [2]PositionStats

	MaxPot     int
	BigPots    int
	BigPotsNet float64
}

// Add incorporates a new hand result.
func (s *Statistics) Add(result HandResult) {
	net := result.Net
	s.Hands++
	s.Sum += net
	s.Values = append(s.Values, net)

	if net > 0 {
		if result.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}
	if result.WentToShowdown {
		s.ShowdownChips += net
	} else {
		s.NonShowdownChips += net
	}
	s.AllChips += net

	if pos := result.Position; pos >= 0 && pos < len(s.PositionResults) {
		s.PositionResults[pos].Hands++
		s.PositionResults[pos].Sum += net
	}

	s.MaxPot = max(s.MaxPot, result.FinalPot)
	if result.FinalPot >= BigPotChips {
		s.BigPots++
		s.BigPotsNet += net
	}
}

// Mean returns the average result per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Variance returns the sample variance of all results.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	_, v := stat.MeanVariance(s.Values, nil)
	return v
}

// StdDev returns the sample standard deviation of all results.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median result. For an even number of hands it is the
// lower of the two middle values.
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the empirical quantile at p. p is clamped to [0, 1].
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Values)
	slices.Sort(sorted)
	return stat.Quantile(min(max(p, 0), 1), stat.Empirical, sorted, nil)
}

// PositionMean returns the mean result from seat 0 (dealer) or 1.
func (s *Statistics) PositionMean(position int) float64 {
	if position < 0 || position >= len(s.PositionResults) {
		return 0
	}
	ps := s.PositionResults[position]
	if ps.Hands == 0 {
		return 0
	}
	return ps.Sum / float64(ps.Hands)
}

// IsLedgerBalanced checks that showdown and non-showdown chips add up.
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllChips-s.ShowdownChips-s.NonShowdownChips) <= 1e-6
}

// Validate performs consistency checks on the accumulated data.
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: all=%.6f, showdown=%.6f, non-showdown=%.6f",
			s.AllChips, s.ShowdownChips, s.NonShowdownChips)
	}
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values array length (%d) does not match hands count (%d)",
			len(s.Values), s.Hands)
	}
	if wins := s.ShowdownWins + s.NonShowdownWins; wins > s.Hands {
		return fmt.Errorf("total wins (%d) exceeds total hands (%d)", wins, s.Hands)
	}
	if seated := s.PositionResults[0].Hands + s.PositionResults[1].Hands; seated != s.Hands {
		return fmt.Errorf("position hands total (%d) does not match total hands (%d)", seated, s.Hands)
	}
	return nil
}
