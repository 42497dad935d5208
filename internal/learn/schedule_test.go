package learn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleNeverIncreasesWithinMatch(t *testing.T) {
	t.Parallel()
	cfg := DefaultSchedule()
	cfg.EpsilonEvery = 100
	s := NewSchedule(cfg)

	const hands = 2000
	prev := s.Params()
	for left := hands; left > 0; left-- {
		s.StartEpisode(left)
		p := s.Params()
		require.LessOrEqual(t, p.Alpha, prev.Alpha, "alpha at hand %d", hands-left)
		require.LessOrEqual(t, p.Epsilon, prev.Epsilon, "epsilon at hand %d", hands-left)
		require.LessOrEqual(t, p.Temperature, prev.Temperature, "temperature at hand %d", hands-left)
		require.GreaterOrEqual(t, p.Temperature, minTemperature)
		prev = p
	}
	assert.Less(t, prev.Alpha, 0.01, "alpha decays toward zero as the match ends")
	assert.InDelta(t, cfg.Epsilon/(1<<19), prev.Epsilon, 1e-12)

	s.StartMatch()
	assert.Equal(t, cfg.Alpha, s.Params().Alpha)
	assert.Equal(t, cfg.Epsilon, s.Params().Epsilon)
	assert.Equal(t, cfg.Temperature, s.Params().Temperature)
	assert.Zero(t, s.Episode())
}

func TestScheduleEpsilonSteps(t *testing.T) {
	t.Parallel()
	s := NewSchedule(ScheduleConfig{Alpha: 0.1, Epsilon: 0.4, EpsilonFactor: 0.25, EpsilonEvery: 3, Temperature: 1})
	var got []float64
	for i := 0; i < 7; i++ {
		s.StartEpisode(100)
		got = append(got, s.Params().Epsilon)
	}
	assert.Equal(t, []float64{0.4, 0.4, 0.4, 0.1, 0.1, 0.1, 0.025}, got)
	assert.Equal(t, 0.1, s.Params().Alpha, "alpha is constant without decay")
	assert.InDelta(t, 1.0/7, s.Params().Temperature, 1e-12)
}

func TestScheduleConfigValidate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, DefaultSchedule().Validate())

	bad := DefaultSchedule()
	bad.Gamma = 1.5
	assert.Error(t, bad.Validate())

	bad = DefaultSchedule()
	bad.EpsilonFactor = 2
	assert.Error(t, bad.Validate())
}
