package game

import (
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/lox/badugibots/badugi"
)

// Evaluator orders two hands at showdown: positive if a wins, negative if b
// wins, zero for a tie.
type Evaluator interface {
	Compare(a, b badugi.Hand) int
}

// HandOption configures a Hand during creation.
type HandOption func(*handConfig)

// handConfig holds all configuration for creating a hand.
type handConfig struct {
	rng *rand.Rand

	ante          int
	raiseCap      int
	openingRaises [4]int
	deck          *badugi.Deck // If provided, used instead of a deck built from rng
	evaluator     Evaluator
	logger        zerolog.Logger
	observer      Observer

	// Match context announced to agents at the start of the hand.
	handsToGo int
	score     int // seat 0 perspective
}

// NewHand creates a hand with a required RNG and optional configuration.
// The RNG is required to make randomness explicit and testing deterministic.
//
// Example usage:
//
//	h := NewHand(randutil.New(42),
//	    WithAnte(1),
//	    WithLogger(logger))
func NewHand(rng *rand.Rand, opts ...HandOption) *Hand {
	if rng == nil {
		panic("rng is required for hand creation")
	}

	cfg := handConfig{
		rng:           rng,
		ante:          1,
		raiseCap:      DefaultRaiseCap,
		openingRaises: DefaultOpeningRaises,
		evaluator:     badugi.Evaluator{},
		logger:        zerolog.Nop(),
		handsToGo:     1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.ante <= 0 {
		panic("ante must be positive")
	}
	if cfg.raiseCap < 0 || cfg.raiseCap > DefaultRaiseCap {
		panic("raise cap must be between 0 and 4")
	}

	deck := cfg.deck
	if deck == nil {
		deck = badugi.NewDeck(cfg.rng)
	}

	return &Hand{
		cfg:  cfg,
		deck: deck,
		log:  cfg.logger,
	}
}

// WithAnte sets the ante posted by both players. Default is 1.
func WithAnte(ante int) HandOption {
	return func(c *handConfig) {
		c.ante = ante
	}
}

// WithRaiseCap sets the number of bets and raises allowed per street.
func WithRaiseCap(n int) HandOption {
	return func(c *handConfig) {
		c.raiseCap = n
	}
}

// WithOpeningRaises sets the opening raise, in antes, per number of draws
// remaining.
func WithOpeningRaises(sizes [4]int) HandOption {
	return func(c *handConfig) {
		c.openingRaises = sizes
	}
}

// WithDeck sets a specific deck. The deck is shuffled when the hand starts,
// so this is mostly useful to share one deck across many hands.
func WithDeck(deck *badugi.Deck) HandOption {
	return func(c *handConfig) {
		c.deck = deck
	}
}

// WithEvaluator replaces the showdown evaluator.
func WithEvaluator(e Evaluator) HandOption {
	return func(c *handConfig) {
		c.evaluator = e
	}
}

// WithLogger sets the logger used for hand events and agent failures.
func WithLogger(logger zerolog.Logger) HandOption {
	return func(c *handConfig) {
		c.logger = logger
	}
}

// WithObserver registers a callback invoked after every hand event.
func WithObserver(o Observer) HandOption {
	return func(c *handConfig) {
		c.observer = o
	}
}

// WithMatchState sets the hands left in the match (including this one) and
// the dealer's score, which are passed to StartNewHand.
func WithMatchState(handsToGo, dealerScore int) HandOption {
	return func(c *handConfig) {
		c.handsToGo = handsToGo
		c.score = dealerScore
	}
}
