package badugi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/badugibots/internal/randutil"
)

func TestDeckDealsDistinctCards(t *testing.T) {
	t.Parallel()
	d := NewDeck(randutil.New(42))

	seen := make(map[Card]bool)
	cards, err := d.Deal(52)
	require.NoError(t, err)
	for _, c := range cards {
		assert.True(t, c.Valid(), "card %v should be valid", c)
		assert.False(t, seen[c], "card %v dealt twice", c)
		seen[c] = true
	}
	assert.Len(t, seen, 52)
	assert.Zero(t, d.CardsRemaining())

	_, err = d.Deal(1)
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func TestDeckDeterministicWithSeed(t *testing.T) {
	t.Parallel()
	a := NewDeck(randutil.New(7))
	b := NewDeck(randutil.New(7))

	ha, err := a.DealHand()
	require.NoError(t, err)
	hb, err := b.DealHand()
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
}

func TestDeckReplace(t *testing.T) {
	t.Parallel()
	d := NewDeck(randutil.New(3))
	h, err := d.DealHand()
	require.NoError(t, err)
	before := d.CardsRemaining()

	old := h[2]
	require.NoError(t, d.Replace(&h, old))
	assert.False(t, h.Contains(old), "replaced card must leave the hand")
	assert.Equal(t, before-1, d.CardsRemaining())

	err = d.Replace(&h, old)
	assert.Error(t, err, "replacing a card that is not held must fail")
}

func TestDeckShuffleRestores(t *testing.T) {
	t.Parallel()
	d := NewDeck(randutil.New(11))
	_, err := d.Deal(40)
	require.NoError(t, err)
	d.Shuffle()
	assert.Equal(t, 52, d.CardsRemaining())
}
