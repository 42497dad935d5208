package learn

import (
	"errors"
	"math"
)

// minTemperature is the floor applied to the softmax temperature.
const minTemperature = 1e-3

// ScheduleConfig holds the starting hyperparameters and how they decay.
type ScheduleConfig struct {
	Alpha float64
	// AlphaDecay is the time constant, in hands, of the alpha decay
	// alpha0 * (1 - exp(-handsLeft/AlphaDecay)). Zero disables decay.
	AlphaDecay float64
	Gamma      float64

	Epsilon float64
	// EpsilonFactor multiplies epsilon every EpsilonEvery hands.
	EpsilonFactor float64
	EpsilonEvery  int

	// Temperature is the softmax temperature of the first hand; it decays
	// as Temperature/hand.
	Temperature float64
}

// DefaultSchedule returns the hyperparameters the learning agents start
// from unless configured otherwise.
func DefaultSchedule() ScheduleConfig {
	return ScheduleConfig{
		Alpha:         0.3,
		AlphaDecay:    2000,
		Gamma:         0.99,
		Epsilon:       0.3,
		EpsilonFactor: 0.5,
		EpsilonEvery:  5000,
		Temperature:   1,
	}
}

// Validate checks the configuration.
func (c ScheduleConfig) Validate() error {
	switch {
	case c.Alpha < 0 || c.Alpha > 1:
		return errors.New("alpha must be in [0, 1]")
	case c.AlphaDecay < 0:
		return errors.New("alpha decay must not be negative")
	case c.Gamma < 0 || c.Gamma > 1:
		return errors.New("gamma must be in [0, 1]")
	case c.Epsilon < 0 || c.Epsilon > 1:
		return errors.New("epsilon must be in [0, 1]")
	case c.EpsilonFactor < 0 || c.EpsilonFactor > 1:
		return errors.New("epsilon factor must be in [0, 1]")
	case c.EpsilonEvery < 0:
		return errors.New("epsilon interval must not be negative")
	case c.Temperature < 0 || c.Temperature > 1:
		return errors.New("temperature must be in [0, 1]")
	}
	return nil
}

// Schedule evolves the hyperparameters hand by hand. None of them increases
// within a match; StartMatch restores the starting values.
type Schedule struct {
	cfg     ScheduleConfig
	params  Params
	episode int
}

// NewSchedule returns a schedule at its starting values.
func NewSchedule(cfg ScheduleConfig) *Schedule {
	s := &Schedule{cfg: cfg}
	s.StartMatch()
	return s
}

// StartMatch resets every hyperparameter to its starting value.
func (s *Schedule) StartMatch() {
	s.episode = 0
	s.params = Params{
		Alpha:       s.cfg.Alpha,
		Gamma:       s.cfg.Gamma,
		Epsilon:     s.cfg.Epsilon,
		Temperature: max(s.cfg.Temperature, minTemperature),
	}
}

// StartEpisode advances the schedule to the next hand.
func (s *Schedule) StartEpisode(handsLeft int) {
	s.episode++

	if s.cfg.AlphaDecay > 0 {
		a := s.cfg.Alpha * (1 - math.Exp(-float64(max(handsLeft, 0))/s.cfg.AlphaDecay))
		s.params.Alpha = min(s.params.Alpha, a)
	}
	if s.cfg.EpsilonEvery > 0 && s.episode > 1 && (s.episode-1)%s.cfg.EpsilonEvery == 0 {
		s.params.Epsilon *= s.cfg.EpsilonFactor
	}
	t := s.cfg.Temperature / float64(s.episode)
	s.params.Temperature = min(s.params.Temperature, max(t, minTemperature))
}

// Params returns the current hyperparameters.
func (s *Schedule) Params() Params {
	return s.params
}

// Episode returns the number of hands started in this match.
func (s *Schedule) Episode() int {
	return s.episode
}
