package bot

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lox/badugibots/internal/game"
	"github.com/lox/badugibots/internal/learn"
	"github.com/lox/badugibots/internal/randutil"
)

// ErrUnknownAgent is returned when a strategy name is not registered.
var ErrUnknownAgent = errors.New("unknown agent")

// Options are passed to every Factory.
type Options struct {
	// Name is the display name; it defaults to the strategy name.
	Name   string
	Seed   int64
	Logger zerolog.Logger
	// Learner overrides the learning configuration of the sarsa strategies.
	// Its Value and Policy fields are set by the strategy.
	Learner *LearnerConfig
}

// Factory constructs a fresh agent.
type Factory func(opts Options) (game.Agent, error)

// Registry maps strategy names to constructors.
type Registry struct {
	factories map[string]Factory
	aliases   map[string]string
	help      map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		aliases:   make(map[string]string),
		help:      make(map[string]string),
	}
}

// Register adds a strategy. Names and aliases are case-insensitive.
func (r *Registry) Register(name, help string, f Factory, aliases ...string) {
	name = strings.ToLower(name)
	r.factories[name] = f
	r.help[name] = help
	for _, a := range aliases {
		r.aliases[strings.ToLower(a)] = name
	}
}

// Resolve returns the canonical name of a strategy or alias.
func (r *Registry) Resolve(name string) (string, error) {
	name = strings.ToLower(name)
	if _, ok := r.factories[name]; ok {
		return name, nil
	}
	if canonical, ok := r.aliases[name]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownAgent, name)
}

// New constructs an agent of the named strategy.
func (r *Registry) New(strategy string, opts Options) (game.Agent, error) {
	name, err := r.Resolve(strategy)
	if err != nil {
		return nil, err
	}
	if opts.Name == "" {
		opts.Name = name
	}
	agent, err := r.factories[name](opts)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	return agent, nil
}

// Names returns the registered strategies in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Help returns the description of a strategy and its aliases.
func (r *Registry) Help(name string) (string, []string) {
	var aliases []string
	for a, n := range r.aliases {
		if n == name {
			aliases = append(aliases, a)
		}
	}
	slices.Sort(aliases)
	return r.help[name], aliases
}

// Default holds every built-in strategy.
var Default = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("sarsa-table", "SARSA over an exact state table, epsilon-greedy",
		learner(ValueTable, PolicyEpsilonGreedy, learn.BasicFeatures), "table")
	r.Register("sarsa-linear", "SARSA with a linear value function over rich features, epsilon-greedy",
		learner(ValueLinear, PolicyEpsilonGreedy, learn.RichFeatures), "linear")
	r.Register("sarsa-softmax", "SARSA with a linear value function over rich features, softmax exploration",
		learner(ValueLinear, PolicySoftmax, learn.RichFeatures), "softmax")
	r.Register("calling-station", "always checks or calls",
		func(o Options) (game.Agent, error) { return NewCallingStation(o.Name), nil }, "calling", "cs", "call")
	r.Register("random", "uniformly random actions",
		func(o Options) (game.Agent, error) { return NewRandom(o.Name, randutil.New(o.Seed)), nil }, "rnd")
	r.Register("aggressive", "min-raises 70% of the time",
		func(o Options) (game.Agent, error) { return NewAggressive(o.Name, randutil.New(o.Seed)), nil }, "aggro")
	r.Register("maniac", "always raises the maximum",
		func(o Options) (game.Agent, error) { return NewManiac(o.Name), nil })
	r.Register("simple", "fixed call/raise probabilities, draws to low cards",
		func(o Options) (game.Agent, error) { return NewSimple(o.Name, randutil.New(o.Seed)), nil }, "probability")
	return r
}

func learner(value ValueKind, policy PolicyKind, features learn.FeatureSet) Factory {
	return func(o Options) (game.Agent, error) {
		cfg := DefaultLearnerConfig()
		if o.Learner != nil {
			cfg = *o.Learner
		}
		if cfg.Features == 0 {
			cfg.Features = features
		}
		cfg.Value, cfg.Policy = value, policy
		return NewLearner(o.Name, cfg, randutil.New(o.Seed), o.Logger)
	}
}
