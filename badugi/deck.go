package badugi

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrDeckExhausted is returned when a deal or replacement needs more cards
// than remain in the deck.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck represents a standard 52-card deck. Discarded cards are never
// shuffled back in within a hand.
type Deck struct {
	cards [52]Card // Fixed size array
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}
	d := &Deck{rng: rng}

	i := 0
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	d.Shuffle()
	return d
}

// Shuffle restores all cards and shuffles using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck
func (d *Deck) Deal(n int) ([]Card, error) {
	if d.next+n > len(d.cards) {
		return nil, ErrDeckExhausted
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// DealHand deals a fresh four-card hand.
func (d *Deck) DealHand() (Hand, error) {
	cards, err := d.Deal(HandSize)
	if err != nil {
		return Hand{}, err
	}
	return NewHand(cards...)
}

// Replace swaps card c in h for the next card of the deck.
func (d *Deck) Replace(h *Hand, c Card) error {
	idx := h.Index(c)
	if idx < 0 {
		return fmt.Errorf("card %v not in hand %v", c, *h)
	}
	if d.next >= len(d.cards) {
		return ErrDeckExhausted
	}
	h[idx] = d.cards[d.next]
	d.next++
	return nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
