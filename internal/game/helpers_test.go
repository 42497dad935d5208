package game

import (
	"math/rand/v2"

	"github.com/lox/badugibots/badugi"
)

// scriptedAgent is a test agent whose decisions are supplied as functions.
// Nil functions call and stand pat.
type scriptedAgent struct {
	name string
	bet  func(BetRequest) (int, error)
	draw func(DrawRequest) ([]badugi.Card, error)

	positions []int
	scores    []int
	betReqs   []BetRequest
	drawReqs  []DrawRequest
	outcomes  []Outcome
}

func (a *scriptedAgent) Name() string {
	if a.name == "" {
		return "scripted"
	}
	return a.name
}

func (a *scriptedAgent) Author() string         { return "test" }
func (a *scriptedAgent) StartNewMatch(int)      {}
func (a *scriptedAgent) FinishedMatch(int)      {}
func (a *scriptedAgent) HandComplete(o Outcome) { a.outcomes = append(a.outcomes, o) }

func (a *scriptedAgent) StartNewHand(position, _, score int) {
	a.positions = append(a.positions, position)
	a.scores = append(a.scores, score)
}

func (a *scriptedAgent) BettingAction(req BetRequest) (int, error) {
	a.betReqs = append(a.betReqs, req)
	if a.bet == nil {
		return req.ToCall, nil
	}
	return a.bet(req)
}

func (a *scriptedAgent) DrawingAction(req DrawRequest) ([]badugi.Card, error) {
	a.drawReqs = append(a.drawReqs, req)
	if a.draw == nil {
		return nil, nil
	}
	return a.draw(req)
}

// randomAgent picks uniformly among fold, call and a raise inside the
// bounds, and discards a random number of inactive cards.
func randomAgent(rng *rand.Rand) *scriptedAgent {
	return &scriptedAgent{
		name: "random",
		bet: func(req BetRequest) (int, error) {
			switch rng.IntN(5) {
			case 0:
				return req.ToCall - 1, nil
			case 1, 2:
				return req.ToCall, nil
			default:
				return req.MinRaise + rng.IntN(req.MaxRaise-req.MinRaise+1), nil
			}
		},
		draw: func(req DrawRequest) ([]badugi.Card, error) {
			inactive := req.Hand.Inactive()
			return inactive[:rng.IntN(len(inactive)+1)], nil
		},
	}
}

func standPat() *scriptedAgent { return &scriptedAgent{} }
