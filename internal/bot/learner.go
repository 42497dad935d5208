package bot

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/lox/badugibots/badugi"
	"github.com/lox/badugibots/internal/game"
	"github.com/lox/badugibots/internal/learn"
)

// ValueKind selects the value function representation of a Learner.
type ValueKind string

const (
	ValueTable  ValueKind = "table"
	ValueLinear ValueKind = "linear"
)

// PolicyKind selects the exploration policy of a Learner.
type PolicyKind string

const (
	PolicyEpsilonGreedy PolicyKind = "epsilon-greedy"
	PolicySoftmax       PolicyKind = "softmax"
)

// LearnerConfig configures a Learner.
type LearnerConfig struct {
	Value     ValueKind
	Policy    PolicyKind
	Features  learn.FeatureSet // zero picks the strategy's default
	Normalize bool
	Schedule  learn.ScheduleConfig
	// RewardScale divides the chip result before the terminal update.
	RewardScale float64
	// ResetPerMatch clears the value function at the start of every match.
	ResetPerMatch bool
}

// DefaultLearnerConfig returns a tabular epsilon-greedy configuration.
func DefaultLearnerConfig() LearnerConfig {
	return LearnerConfig{
		Value:         ValueTable,
		Policy:        PolicyEpsilonGreedy,
		Schedule:      learn.DefaultSchedule(),
		RewardScale:   1,
		ResetPerMatch: true,
	}
}

// Validate checks the configuration.
func (c LearnerConfig) Validate() error {
	switch c.Value {
	case ValueTable, ValueLinear:
	default:
		return fmt.Errorf("unknown value function %q", c.Value)
	}
	switch c.Policy {
	case PolicyEpsilonGreedy, PolicySoftmax:
	default:
		return fmt.Errorf("unknown policy %q", c.Policy)
	}
	if c.RewardScale <= 0 {
		return errors.New("reward scale must be positive")
	}
	return c.Schedule.Validate()
}

// Learner is a SARSA agent. It rebuilds a GameState for every decision,
// lets the learner pick and learn in one step, and applies the terminal
// update when the hand completes.
type Learner struct {
	name  string
	cfg   LearnerConfig
	sarsa *learn.Sarsa
	log   zerolog.Logger

	state learn.GameState
	// oppCounted marks draw rounds, by draws remaining, whose opponent count
	// is already in state.OpponentDrew.
	oppCounted [4]bool
	opponent   learn.OpponentStats
}

// NewLearner builds a learning agent. rng drives exploration.
func NewLearner(name string, cfg LearnerConfig, rng *rand.Rand, logger zerolog.Logger) (*Learner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var vf learn.ValueFunction
	if cfg.Value == ValueLinear {
		vf = learn.NewLinear(learn.NewEncoder(cfg.Features, cfg.Normalize))
	} else {
		vf = learn.NewTabular()
	}
	var policy learn.Policy = learn.EpsilonGreedy{}
	if cfg.Policy == PolicySoftmax {
		policy = learn.Softmax{}
	}

	return &Learner{
		name:  name,
		cfg:   cfg,
		sarsa: learn.NewSarsa(vf, policy, learn.NewSchedule(cfg.Schedule), rng),
		log:   logger.With().Str("agent", name).Logger(),
	}, nil
}

func (l *Learner) Name() string   { return l.name }
func (l *Learner) Author() string { return "sarsa" }

func (l *Learner) StartNewMatch(handsToGo int) {
	l.sarsa.StartMatch(l.cfg.ResetPerMatch)
	l.opponent = learn.OpponentStats{}
	l.log.Debug().Int("hands", handsToGo).Msg("Match started")
}

func (l *Learner) StartNewHand(position, handsToGo, _ int) {
	l.state = learn.InitialState(position)
	l.state.Opponent = l.opponent
	l.oppCounted = [4]bool{}
	l.sarsa.StartEpisode(l.state, handsToGo)
}

func (l *Learner) BettingAction(req game.BetRequest) (int, error) {
	// The count reported while betting comes from the draw that preceded
	// this street.
	if req.OpponentDrew >= 0 {
		l.countOpponentDraw(req.DrawsRemaining+1, req.OpponentDrew)
	}
	l.observe(req.DrawsRemaining, req.Hand, req.Pot)
	l.state.Raises = req.Raises
	l.state.ToCall = req.ToCall
	l.state.Street = learn.StreetTally{
		SelfRaises:     req.Self.Raises,
		SelfCalls:      req.Self.Calls,
		OpponentRaises: req.Opponent.Raises,
		OpponentCalls:  req.Opponent.Calls,
	}

	a, err := l.sarsa.Step(l.state, learn.Betting, 0)
	if err != nil {
		return req.ToCall - 1, fmt.Errorf("betting decision: %w", err)
	}
	return Chips(a, req), nil
}

func (l *Learner) DrawingAction(req game.DrawRequest) ([]badugi.Card, error) {
	if req.DealerDrew >= 0 {
		l.countOpponentDraw(req.DrawsRemaining, req.DealerDrew)
	}
	l.observe(req.DrawsRemaining, req.Hand, req.Pot)
	l.state.ToCall = 0
	l.state.Street = learn.StreetTally{}

	a, err := l.sarsa.Step(l.state, learn.Drawing, 0)
	if err != nil {
		return nil, fmt.Errorf("drawing decision: %w", err)
	}
	discards := Discards(a, req.Hand)
	l.state.AgentDrew = addDraws(l.state.AgentDrew, len(discards))
	return discards, nil
}

func (l *Learner) HandComplete(out game.Outcome) {
	l.opponent.Hands++
	l.opponent.Raises += out.Opponent.Raises
	l.opponent.Calls += out.Opponent.Calls
	if out.OpponentFolded() {
		l.opponent.Folds++
	}
	if err := l.sarsa.Terminal(float64(out.Result) / l.cfg.RewardScale); err != nil {
		l.log.Warn().Err(err).Msg("Terminal update failed")
	}
}

func (l *Learner) FinishedMatch(finalScore int) {
	p := l.sarsa.Params()
	l.log.Debug().
		Int("score", finalScore).
		Float64("alpha", p.Alpha).
		Float64("epsilon", p.Epsilon).
		Float64("exploration", l.sarsa.ExplorationRate()).
		Float64("weight_norm", l.sarsa.WeightNorm()).
		Msg("Match finished")
}

// WeightNorm reports the L2 norm of a linear learner's weights.
func (l *Learner) WeightNorm() float64 {
	return l.sarsa.WeightNorm()
}

// ExplorationRate reports the fraction of exploratory decisions this match.
func (l *Learner) ExplorationRate() float64 {
	return l.sarsa.ExplorationRate()
}

func (l *Learner) observe(drawsRemaining int, hand badugi.Hand, pot int) {
	l.state.DrawsRemaining = drawsRemaining
	l.state.Pot = pot
	l.state.ActiveRanks = hand.ActiveRanks()
	l.state.Opponent = l.opponent
}

func (l *Learner) countOpponentDraw(round, n int) {
	if round < 0 || round >= len(l.oppCounted) || l.oppCounted[round] {
		return
	}
	l.oppCounted[round] = true
	l.state.OpponentDrew = addDraws(l.state.OpponentDrew, n)
}

// addDraws adds n cards to a cumulative count that is -1 before any draw.
func addDraws(total, n int) int {
	return max(total, 0) + n
}

var _ game.Agent = (*Learner)(nil)
