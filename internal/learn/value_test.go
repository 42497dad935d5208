package learn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestTabularValues(t *testing.T) {
	t.Parallel()
	tab := NewTabular()
	s := sampleState()

	q, err := tab.Value(s, Call)
	require.NoError(t, err)
	assert.Zero(t, q, "unseen state is worth zero")

	require.NoError(t, tab.Adjust(s, Call, 1.5))
	require.NoError(t, tab.Adjust(s, Call, -0.5))
	q, err = tab.Value(s, Call)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, q, 1e-12)

	k := MustEncode(s.KeyFields())
	assert.Equal(t, 2, tab.Visits(k, Call))
	assert.Zero(t, tab.Visits(k, Fold))
	assert.Equal(t, 1, tab.Len())

	tab.Set(k, Fold, -3)
	assert.Equal(t, -3.0, tab.Get(k, Fold))
	assert.Equal(t, 1, tab.Visits(k, Fold))

	tab.Reset()
	assert.Zero(t, tab.Len())
}

func TestTabularSharesClippedKeys(t *testing.T) {
	t.Parallel()
	tab := NewTabular()
	a, b := sampleState(), sampleState()
	a.OpponentDrew, b.OpponentDrew = 5, 9
	a.Pot = 1000

	require.NoError(t, tab.Adjust(a, MaxRaise, 2))
	q, err := tab.Value(b, MaxRaise)
	require.NoError(t, err)
	assert.Equal(t, 2.0, q, "states that differ only beyond the key share an entry")
}

func TestTabularRejectsUnencodableState(t *testing.T) {
	t.Parallel()
	tab := NewTabular()
	bad := sampleState()
	bad.Raises = 7

	_, err := tab.Value(bad, Call)
	assert.ErrorIs(t, err, ErrEncoding)
	assert.ErrorIs(t, tab.Adjust(bad, Call, 1), ErrEncoding)
}

func TestLinearAdjust(t *testing.T) {
	t.Parallel()
	enc := NewEncoder(BasicFeatures, false)
	lin := NewLinear(enc)
	s := sampleState()

	require.NoError(t, lin.Adjust(s, MinRaise, 2))

	phi := enc.StateFeatures(s)
	want := 2 * floats.Dot(phi, phi)
	q, err := lin.Value(s, MinRaise)
	require.NoError(t, err)
	assert.InDelta(t, want, q, 1e-12)

	other, err := lin.Value(s, Call)
	require.NoError(t, err)
	assert.Zero(t, other, "other actions keep their own weights")

	assert.InDelta(t, 2*floats.Norm(phi, 2), lin.Norm(), 1e-12)
	assert.Len(t, lin.Weights(), enc.Len())

	lin.Reset()
	assert.Zero(t, lin.Norm())
}
