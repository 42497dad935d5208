package bot

import (
	"math/rand/v2"
	"slices"

	"github.com/lox/badugibots/badugi"
	"github.com/lox/badugibots/internal/game"
	"github.com/lox/badugibots/internal/learn"
)

// scripted provides identification and no-op notifications for agents that
// do not learn.
type scripted struct {
	name   string
	author string
}

func (s scripted) Name() string             { return s.name }
func (s scripted) Author() string           { return s.author }
func (scripted) StartNewMatch(int)          {}
func (scripted) StartNewHand(int, int, int) {}
func (scripted) HandComplete(game.Outcome)  {}
func (scripted) FinishedMatch(int)          {}

// pitchInactive discards every card that does not play.
func pitchInactive(req game.DrawRequest) ([]badugi.Card, error) {
	return req.Hand.Inactive(), nil
}

// CallingStation always checks or calls and draws to its best badugi.
type CallingStation struct {
	scripted
}

func NewCallingStation(name string) *CallingStation {
	return &CallingStation{scripted{name: name, author: "baseline"}}
}

func (*CallingStation) BettingAction(req game.BetRequest) (int, error) {
	return req.ToCall, nil
}

func (*CallingStation) DrawingAction(req game.DrawRequest) ([]badugi.Card, error) {
	return pitchInactive(req)
}

// Random picks uniformly among the five betting actions and the five
// drawing actions.
type Random struct {
	scripted
	rng *rand.Rand
}

func NewRandom(name string, rng *rand.Rand) *Random {
	return &Random{scripted: scripted{name: name, author: "baseline"}, rng: rng}
}

func (r *Random) BettingAction(req game.BetRequest) (int, error) {
	return Chips(learn.RandomAction(r.rng, learn.Betting), req), nil
}

func (r *Random) DrawingAction(req game.DrawRequest) ([]badugi.Card, error) {
	return Discards(learn.RandomAction(r.rng, learn.Drawing), req.Hand), nil
}

// Aggressive makes the minimum raise 70% of the time raising is possible
// and calls otherwise.
type Aggressive struct {
	scripted
	rng *rand.Rand
}

func NewAggressive(name string, rng *rand.Rand) *Aggressive {
	return &Aggressive{scripted: scripted{name: name, author: "baseline"}, rng: rng}
}

func (a *Aggressive) BettingAction(req game.BetRequest) (int, error) {
	if req.MaxRaise > req.ToCall && a.rng.Float64() < 0.7 {
		return req.MinRaise, nil
	}
	return req.ToCall, nil
}

func (*Aggressive) DrawingAction(req game.DrawRequest) ([]badugi.Card, error) {
	return pitchInactive(req)
}

// Maniac always makes the largest raise allowed.
type Maniac struct {
	scripted
}

func NewManiac(name string) *Maniac {
	return &Maniac{scripted{name: name, author: "baseline"}}
}

func (*Maniac) BettingAction(req game.BetRequest) (int, error) {
	return req.MaxRaise, nil
}

func (*Maniac) DrawingAction(req game.DrawRequest) ([]badugi.Card, error) {
	return pitchInactive(req)
}

// Simple plays a fixed probability strategy: on the last street it calls,
// otherwise it calls 10% of the time, raises 20% of the time and checks or
// folds the rest. It draws away inactive cards and high active cards,
// keeping a made badugi late when the dealer is drawing.
type Simple struct {
	scripted
	rng    *rand.Rand
	pCall  float64
	pRaise float64
}

func NewSimple(name string, rng *rand.Rand) *Simple {
	return &Simple{
		scripted: scripted{name: name, author: "baseline"},
		rng:      rng,
		pCall:    0.1,
		pRaise:   0.2,
	}
}

func (s *Simple) BettingAction(req game.BetRequest) (int, error) {
	if req.DrawsRemaining == 0 {
		return req.ToCall, nil
	}
	d := s.rng.Float64()
	switch {
	case d < s.pCall:
		return req.ToCall, nil
	case d <= s.pCall+s.pRaise:
		span := float64(req.MaxRaise - req.MinRaise)
		return req.MaxRaise - int(span*(s.rng.Float64()*0.7+0.3)), nil
	}
	return 0, nil
}

func (s *Simple) DrawingAction(req game.DrawRequest) ([]badugi.Card, error) {
	inactive := req.Hand.Inactive()
	if len(inactive) == 0 && req.DrawsRemaining < 2 && req.DealerDrew > 0 {
		return nil, nil
	}
	limit := 12 + req.DealerDrew - req.DrawsRemaining
	var pitch []badugi.Card
	for _, c := range req.Hand {
		if int(c.Rank) > limit || slices.Contains(inactive, c) {
			pitch = append(pitch, c)
		}
	}
	return pitch, nil
}

var (
	_ game.Agent = (*CallingStation)(nil)
	_ game.Agent = (*Random)(nil)
	_ game.Agent = (*Aggressive)(nil)
	_ game.Agent = (*Maniac)(nil)
	_ game.Agent = (*Simple)(nil)
)
