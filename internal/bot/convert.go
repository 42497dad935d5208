package bot

import (
	"github.com/lox/badugibots/badugi"
	"github.com/lox/badugibots/internal/game"
	"github.com/lox/badugibots/internal/learn"
)

// Chips converts a betting action into the amount to push into the pot.
func Chips(a learn.Action, req game.BetRequest) int {
	switch a {
	case learn.Fold:
		return req.ToCall - 1
	case learn.MinRaise:
		return req.MinRaise
	case learn.MidRaise:
		if req.MinRaise == req.MaxRaise {
			return req.MinRaise
		}
		return req.MinRaise + (req.MaxRaise-req.MinRaise)/2
	case learn.MaxRaise:
		return req.MaxRaise
	default:
		return req.ToCall
	}
}

// Discards converts a drawing action into the cards to replace: the
// highest inactive cards, never more than the hand has inactive.
func Discards(a learn.Action, hand badugi.Hand) []badugi.Card {
	inactive := hand.Inactive()
	return inactive[:min(a.Discards(), len(inactive))]
}
