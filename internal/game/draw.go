package game

import (
	"fmt"

	"github.com/lox/badugibots/badugi"
)

// MaxDiscards is the largest number of cards that can be replaced in one draw.
const MaxDiscards = badugi.HandSize

// DrawRound encapsulates the state of one drawing round. The dealer draws
// first; the non-dealer is told how many cards the dealer replaced.
type DrawRound struct {
	DrawsRemaining int
	// Counts holds the number of cards each seat replaced, -1 until it drew.
	Counts [2]int
}

// NewDrawRound creates a drawing round.
func NewDrawRound(drawsRemaining int) *DrawRound {
	return &DrawRound{DrawsRemaining: drawsRemaining, Counts: [2]int{-1, -1}}
}

// Request builds the draw request for seat.
func (dr *DrawRound) Request(seat int, hand badugi.Hand, pot int) DrawRequest {
	dealerDrew := -1
	if seat != Dealer {
		dealerDrew = dr.Counts[Dealer]
	}
	return DrawRequest{
		DrawsRemaining: dr.DrawsRemaining,
		Hand:           hand,
		Pot:            pot,
		DealerDrew:     dealerDrew,
	}
}

// Apply validates the discards of seat and replaces them from the deck.
// Validation happens before any card is replaced, so a rejected request
// leaves the hand untouched.
func (dr *DrawRound) Apply(deck *badugi.Deck, hand *badugi.Hand, seat int, discards []badugi.Card) error {
	if err := ValidateDiscard(*hand, discards); err != nil {
		return err
	}
	for _, c := range discards {
		if err := deck.Replace(hand, c); err != nil {
			return fmt.Errorf("replace %v: %w", c, err)
		}
	}
	dr.Counts[seat] = len(discards)
	return nil
}

// ValidateDiscard checks that discards names at most four distinct cards of
// hand. The returned error wraps ErrInvalidDiscard.
func ValidateDiscard(hand badugi.Hand, discards []badugi.Card) error {
	if len(discards) > MaxDiscards {
		return fmt.Errorf("%w: %d cards requested", ErrInvalidDiscard, len(discards))
	}
	var seen [badugi.HandSize]bool
	for _, c := range discards {
		idx := hand.Index(c)
		if idx < 0 {
			return fmt.Errorf("%w: %v not in hand %v", ErrInvalidDiscard, c, hand)
		}
		if seen[idx] {
			return fmt.Errorf("%w: %v requested twice", ErrInvalidDiscard, c)
		}
		seen[idx] = true
	}
	return nil
}
