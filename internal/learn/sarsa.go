package learn

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var errNoEpisode = errors.New("no episode in progress")

// Sarsa is an on-policy TD(0) learner over one ValueFunction. One hand is
// one episode: StartEpisode seeds the chain with a placeholder state and
// action, every Step links the next decision to the previous one, and
// Terminal closes the chain with the hand's result.
type Sarsa struct {
	vf       ValueFunction
	policy   Policy
	schedule *Schedule
	rng      *rand.Rand

	prevState  GameState
	prevAction Action
	open       bool

	decisions int
	explored  int
	values    []float64
}

// NewSarsa wires a learner together. rng drives exploration only.
func NewSarsa(vf ValueFunction, policy Policy, schedule *Schedule, rng *rand.Rand) *Sarsa {
	if rng == nil {
		panic("rng is required for sarsa")
	}
	return &Sarsa{
		vf:       vf,
		policy:   policy,
		schedule: schedule,
		rng:      rng,
		values:   make([]float64, 0, NumActions),
	}
}

// StartMatch resets the schedule and the exploration counters. The value
// function is only cleared when resetValues is true.
func (s *Sarsa) StartMatch(resetValues bool) {
	s.schedule.StartMatch()
	s.decisions, s.explored = 0, 0
	s.open = false
	if resetValues {
		s.vf.Reset()
	}
}

// StartEpisode begins a hand from a placeholder state with a random betting
// action as its placeholder action.
func (s *Sarsa) StartEpisode(initial GameState, handsLeft int) {
	s.schedule.StartEpisode(handsLeft)
	s.prevState = initial.Clone()
	s.prevAction = RandomAction(s.rng, Betting)
	s.open = true
}

// Choose selects an action for state without learning.
func (s *Sarsa) Choose(state GameState, phase Phase) (Action, error) {
	legal := Actions(phase)
	s.values = s.values[:0]
	for _, a := range legal {
		q, err := s.vf.Value(state, a)
		if err != nil {
			return 0, fmt.Errorf("value of %s: %w", a, err)
		}
		s.values = append(s.values, q)
	}
	idx, explored := s.policy.Select(s.rng, s.values, s.schedule.Params())
	s.decisions++
	if explored {
		s.explored++
	}
	return legal[idx], nil
}

// Step chooses the action for next, moves Q(prev, prevAction) toward
// reward + gamma*Q(next, action) and makes (next, action) the new previous
// pair. The chosen action is returned for the agent to play.
func (s *Sarsa) Step(next GameState, phase Phase, reward float64) (Action, error) {
	if !s.open {
		return 0, fmt.Errorf("sarsa step: %w", errNoEpisode)
	}
	a, err := s.Choose(next, phase)
	if err != nil {
		return 0, err
	}
	qNext, err := s.vf.Value(next, a)
	if err != nil {
		return 0, err
	}
	qPrev, err := s.vf.Value(s.prevState, s.prevAction)
	if err != nil {
		return 0, err
	}

	p := s.schedule.Params()
	if err := s.vf.Adjust(s.prevState, s.prevAction, p.Alpha*(reward+p.Gamma*qNext-qPrev)); err != nil {
		return 0, err
	}
	s.prevState = next.Clone()
	s.prevAction = a
	return a, nil
}

// Terminal applies the final update of the episode with the hand result as
// reward and no bootstrapped successor.
func (s *Sarsa) Terminal(reward float64) error {
	if !s.open {
		return fmt.Errorf("sarsa terminal update: %w", errNoEpisode)
	}
	s.open = false
	qPrev, err := s.vf.Value(s.prevState, s.prevAction)
	if err != nil {
		return err
	}
	return s.vf.Adjust(s.prevState, s.prevAction, s.schedule.Params().Alpha*(reward-qPrev))
}

// Params returns the current hyperparameters.
func (s *Sarsa) Params() Params {
	return s.schedule.Params()
}

// ValueFunction returns the underlying value function.
func (s *Sarsa) ValueFunction() ValueFunction {
	return s.vf
}

// Decisions returns the number of actions chosen this match.
func (s *Sarsa) Decisions() int {
	return s.decisions
}

// ExplorationRate is the fraction of this match's decisions that were
// exploratory.
func (s *Sarsa) ExplorationRate() float64 {
	if s.decisions == 0 {
		return 0
	}
	return float64(s.explored) / float64(s.decisions)
}

// WeightNorm returns the L2 norm of a linear value function's weights, and
// 0 for value functions without weights.
func (s *Sarsa) WeightNorm() float64 {
	if n, ok := s.vf.(interface{ Norm() float64 }); ok {
		return n.Norm()
	}
	return 0
}
