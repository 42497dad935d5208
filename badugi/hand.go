package badugi

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// HandSize is the number of cards each player holds.
const HandSize = 4

// Hand is a four-card badugi hand. It is a value type, so handing a Hand to
// an agent gives the agent its own copy.
type Hand [HandSize]Card

var errDuplicateCard = errors.New("duplicate card")

// NewHand builds a hand from exactly four distinct, valid cards.
func NewHand(cards ...Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, fmt.Errorf("hand needs %d cards, got %d", HandSize, len(cards))
	}
	for i, c := range cards {
		if !c.Valid() {
			return h, fmt.Errorf("invalid card %v", c)
		}
		if slices.Contains(cards[:i], c) {
			return h, fmt.Errorf("%w: %v", errDuplicateCard, c)
		}
		h[i] = c
	}
	return h, nil
}

// MustHand parses a hand such as "As2d3h4c" and panics on error. Intended for tests.
func MustHand(s string) Hand {
	h, err := NewHand(MustParseCards(s)...)
	if err != nil {
		panic(err)
	}
	return h
}

// Cards returns the cards as a fresh slice.
func (h Hand) Cards() []Card {
	return slices.Clone(h[:])
}

// Index returns the slot holding c, or -1.
func (h Hand) Index(c Card) int {
	return slices.Index(h[:], c)
}

// Contains reports whether c is in the hand.
func (h Hand) Contains(c Card) bool {
	return h.Index(c) >= 0
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// activeMask returns the bitmask (over hand slots) of the best badugi subset:
// the largest subset with pairwise distinct ranks and suits, breaking ties by
// the lowest ranks compared from the highest card down.
func (h Hand) activeMask() uint8 {
	best := uint8(0)
	var bestRanks []int
	for mask := uint8(1); mask < 1<<HandSize; mask++ {
		if !h.isBadugi(mask) {
			continue
		}
		ranks := h.ranksOf(mask)
		if best == 0 || len(ranks) > len(bestRanks) ||
			(len(ranks) == len(bestRanks) && slices.Compare(ranks, bestRanks) < 0) {
			best, bestRanks = mask, ranks
		}
	}
	return best
}

func (h Hand) isBadugi(mask uint8) bool {
	var ranks, suits uint16
	for i, c := range h {
		if mask&(1<<i) == 0 {
			continue
		}
		rb, sb := uint16(1)<<c.Rank, uint16(1)<<c.Suit
		if ranks&rb != 0 || suits&sb != 0 {
			return false
		}
		ranks |= rb
		suits |= sb
	}
	return true
}

// ranksOf returns the ranks of the masked cards in descending order.
func (h Hand) ranksOf(mask uint8) []int {
	ranks := make([]int, 0, HandSize)
	for i, c := range h {
		if mask&(1<<i) != 0 {
			ranks = append(ranks, int(c.Rank))
		}
	}
	slices.SortFunc(ranks, func(a, b int) int { return b - a })
	return ranks
}

func (h Hand) cardsOf(mask uint8, want bool) []Card {
	cards := make([]Card, 0, HandSize)
	for i, c := range h {
		if (mask&(1<<i) != 0) == want {
			cards = append(cards, c)
		}
	}
	slices.SortStableFunc(cards, func(a, b Card) int { return int(b.Rank) - int(a.Rank) })
	return cards
}

// Active returns the cards that count toward the badugi, highest rank first.
func (h Hand) Active() []Card {
	return h.cardsOf(h.activeMask(), true)
}

// Inactive returns the cards that do not count toward the badugi, highest rank first.
func (h Hand) Inactive() []Card {
	return h.cardsOf(h.activeMask(), false)
}

// ActiveRanks returns the ranks of the active cards in descending order.
func (h Hand) ActiveRanks() []int {
	return h.ranksOf(h.activeMask())
}

// Compare orders two hands: positive if a beats b, negative if b beats a,
// zero when they tie. More active cards win; otherwise the lower active
// ranks, compared from the highest card down, win.
func Compare(a, b Hand) int {
	ra, rb := a.ActiveRanks(), b.ActiveRanks()
	if len(ra) != len(rb) {
		return len(ra) - len(rb)
	}
	return -slices.Compare(ra, rb)
}

// Evaluator is the default hand evaluator.
type Evaluator struct{}

// Compare implements the hand ordering used at showdown.
func (Evaluator) Compare(a, b Hand) int {
	return Compare(a, b)
}
