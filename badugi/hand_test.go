package badugi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandValidation(t *testing.T) {
	t.Parallel()

	_, err := NewHand(MustParseCards("As2d3h")...)
	assert.Error(t, err, "three cards is not a hand")

	_, err = NewHand(MustParseCards("As2d3hAs")...)
	assert.ErrorIs(t, err, errDuplicateCard)

	_, err = NewHand(NewCard(Ace, Spades), NewCard(Two, Diamonds), NewCard(Three, Hearts), Card{})
	assert.Error(t, err, "zero card is invalid")

	h, err := NewHand(MustParseCards("As2d3h4c")...)
	require.NoError(t, err)
	assert.Equal(t, "As 2d 3h 4c", h.String())
}

func TestActivePartition(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		hand         string
		wantRanks    []int
		wantActive   string
		wantInactive string
	}{
		{
			name:       "four card badugi",
			hand:       "As2d3h4c",
			wantRanks:  []int{4, 3, 2, 1},
			wantActive: "4c3h2dAs",
		},
		{
			name:         "suited pair keeps the lower card",
			hand:         "As2s3h4c",
			wantRanks:    []int{4, 3, 1},
			wantActive:   "4c3hAs",
			wantInactive: "2s",
		},
		{
			name:         "rank pair drops one duplicate",
			hand:         "AsAd2h3c",
			wantRanks:    []int{3, 2, 1},
			wantActive:   "3c2hAs",
			wantInactive: "Ad",
		},
		{
			name:         "four of a suit is a one card hand",
			hand:         "As2s3s4s",
			wantRanks:    []int{1},
			wantActive:   "As",
			wantInactive: "4s3s2s",
		},
		{
			name:         "quad kings",
			hand:         "KsKdKhKc",
			wantRanks:    []int{13},
			wantActive:   "Ks",
			wantInactive: "KdKhKc",
		},
		{
			name:         "prefers lower three card badugi",
			hand:         "Ks2s3h4c",
			wantRanks:    []int{4, 3, 2},
			wantActive:   "4c3h2s",
			wantInactive: "Ks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := MustHand(tt.hand)
			assert.Equal(t, tt.wantRanks, h.ActiveRanks())
			assert.Equal(t, MustParseCards(tt.wantActive), h.Active())
			if tt.wantInactive == "" {
				assert.Empty(t, h.Inactive())
			} else {
				assert.Equal(t, MustParseCards(tt.wantInactive), h.Inactive())
			}
			assert.Len(t, append(h.Active(), h.Inactive()...), HandSize)
		})
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b string
		want int // sign only
	}{
		{name: "four cards beat three", a: "KsQdJhTc", b: "As2s3h4c", want: 1},
		{name: "lower top card wins", a: "4s3d2hAc", b: "5s3d2hAc", want: 1},
		{name: "second card decides", a: "5s3d2hAc", b: "5s4d2hAc", want: 1},
		{name: "identical ranks tie", a: "4s3d2hAc", b: "4c3h2dAs", want: 0},
		{name: "three beats two", a: "As2d3h4h", b: "AsAd2s2d", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, b := MustHand(tt.a), MustHand(tt.b)
			got := Evaluator{}.Compare(a, b)
			assert.Equal(t, tt.want, sign(got), "Compare(%s, %s)", tt.a, tt.b)
			assert.Equal(t, -tt.want, sign(Compare(b, a)), "Compare must be antisymmetric")
		})
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
