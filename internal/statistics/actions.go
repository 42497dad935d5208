package statistics

import "github.com/lox/badugibots/internal/game"

// Actions accumulates the betting decisions an agent made over a match.
type Actions struct {
	Raises int
	Calls  int
	Folds  int
}

// Add merges the tally of one hand.
func (a *Actions) Add(t game.Tally) {
	a.Raises += t.Raises
	a.Calls += t.Calls
	a.Folds += t.Folds
}

// Aggression is raises per call. An agent that never called reports its
// raise count.
func (a Actions) Aggression() float64 {
	if a.Calls == 0 {
		return float64(a.Raises)
	}
	return float64(a.Raises) / float64(a.Calls)
}

// Stickiness is voluntary actions (raises and calls) per fold. An agent that
// never folded reports its voluntary action count.
func (a Actions) Stickiness() float64 {
	voluntary := float64(a.Raises + a.Calls)
	if a.Folds == 0 {
		return voluntary
	}
	return voluntary / float64(a.Folds)
}
