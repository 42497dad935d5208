package match

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/badugibots/internal/bot"
	"github.com/lox/badugibots/internal/game"
	"github.com/lox/badugibots/internal/randutil"
)

// recorder calls everything and remembers what the match told it.
type recorder struct {
	*bot.CallingStation
	matchHands int
	positions  []int
	handsToGo  []int
	scores     []int
	results    []int
	final      *int
	onComplete func()
}

func newRecorder(name string) *recorder {
	return &recorder{CallingStation: bot.NewCallingStation(name)}
}

func (r *recorder) StartNewMatch(handsToGo int) { r.matchHands = handsToGo }

func (r *recorder) StartNewHand(position, handsToGo, currentScore int) {
	r.positions = append(r.positions, position)
	r.handsToGo = append(r.handsToGo, handsToGo)
	r.scores = append(r.scores, currentScore)
}

func (r *recorder) HandComplete(out game.Outcome) {
	r.results = append(r.results, out.Result)
	if r.onComplete != nil {
		r.onComplete()
	}
}

func (r *recorder) FinishedMatch(finalScore int) { r.final = &finalScore }

func TestPlayAlternatesDealerAndReportsScores(t *testing.T) {
	t.Parallel()
	a, b := newRecorder("a"), newRecorder("b")
	runner := NewRunner(Config{Hands: 6, Seed: 3, Logger: zerolog.Nop()})

	res, err := runner.Play(context.Background(), a, b)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Hands)
	assert.False(t, res.Interrupted)

	assert.Equal(t, 6, a.matchHands)
	assert.Equal(t, []int{6, 5, 4, 3, 2, 1}, a.handsToGo)
	assert.Equal(t, []int{game.Other, game.Dealer, game.Other, game.Dealer, game.Other, game.Dealer}, a.positions)
	assert.Equal(t, []int{game.Dealer, game.Other, game.Dealer, game.Other, game.Dealer, game.Other}, b.positions)

	// Each agent is told its own running score before every hand.
	running := 0
	for i, r := range a.results {
		assert.Equal(t, running, a.scores[i], "hand %d", i)
		assert.Equal(t, -running, b.scores[i], "hand %d", i)
		assert.Equal(t, -r, b.results[i], "results are zero sum")
		assert.Equal(t, float64(r), res.Scores[i])
		running += r
	}
	assert.Equal(t, running, res.Score)
	require.NotNil(t, a.final)
	require.NotNil(t, b.final)
	assert.Equal(t, res.Score, *a.final)
	assert.Equal(t, -res.Score, *b.final)
}

func TestPlayStatistics(t *testing.T) {
	t.Parallel()
	a := bot.NewRandom("random", randutil.New(1))
	b := bot.NewManiac("maniac")
	res, err := NewRunner(Config{Hands: 200, Seed: 9}).Play(context.Background(), a, b)
	require.NoError(t, err)

	for i := range res.Stats {
		require.NoError(t, res.Stats[i].Validate())
		assert.Equal(t, 100, res.Stats[i].PositionResults[0].Hands)
		assert.Equal(t, 100, res.Stats[i].PositionResults[1].Hands)
	}
	assert.InDelta(t, float64(res.Score), res.Stats[0].Sum, 1e-9)
	assert.InDelta(t, -res.Stats[0].Sum, res.Stats[1].Sum, 1e-9)
	assert.Zero(t, res.Actions[1].Folds, "the maniac never folds")
	assert.Positive(t, res.Actions[1].Raises)
	assert.Empty(t, res.WeightNorms[0], "scripted agents report no weight norm")
}

func TestPlayIsDeterministic(t *testing.T) {
	t.Parallel()
	play := func() *Result {
		a := bot.NewRandom("x", randutil.New(5))
		b := bot.NewRandom("y", randutil.New(6))
		res, err := NewRunner(Config{Hands: 100, Seed: 77}).Play(context.Background(), a, b)
		require.NoError(t, err)
		return res
	}
	assert.Equal(t, play().Scores, play().Scores)
}

func TestPlayTracksLearnerWeights(t *testing.T) {
	t.Parallel()
	learner, err := bot.Default.New("sarsa-linear", bot.Options{Seed: 1})
	require.NoError(t, err)
	res, err := NewRunner(Config{Hands: 50, Seed: 2}).Play(context.Background(), learner, bot.NewCallingStation("cs"))
	require.NoError(t, err)
	assert.Len(t, res.WeightNorms[0], 50)
	assert.Empty(t, res.WeightNorms[1])
}

func TestPlayMeasuresDurationWithClock(t *testing.T) {
	t.Parallel()
	clock := quartz.NewMock(t)
	a, b := newRecorder("a"), newRecorder("b")
	a.onComplete = func() { clock.Advance(time.Second) }

	res, err := NewRunner(Config{Hands: 4, Clock: clock}).Play(context.Background(), a, b)
	require.NoError(t, err)
	assert.Equal(t, 4*time.Second, res.Duration)
	assert.InDelta(t, 1.0, res.HandsPerSecond(), 1e-9)
}

func TestPlayStopsOnCancel(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	a, b := newRecorder("a"), newRecorder("b")
	a.onComplete = func() {
		if len(a.results) == 3 {
			cancel()
		}
	}

	res, err := NewRunner(Config{Hands: 10}).Play(ctx, a, b)
	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, res.Interrupted)
	assert.Equal(t, 3, res.Hands)
	require.NotNil(t, a.final, "agents are told the match ended")
	assert.Equal(t, res.Score, *a.final)
}

func TestPlayRejectsEmptyMatch(t *testing.T) {
	t.Parallel()
	_, err := NewRunner(Config{}).Play(context.Background(), newRecorder("a"), newRecorder("b"))
	assert.Error(t, err)
}

// cancelMidHand cancels the match from inside its second hand.
type cancelMidHand struct {
	*recorder
	cancel context.CancelFunc
}

func (c *cancelMidHand) BettingAction(req game.BetRequest) (int, error) {
	if len(c.results) == 1 && req.DrawsRemaining == 2 {
		c.cancel()
	}
	return c.recorder.BettingAction(req)
}

func TestPlayDropsHandCancelledMidway(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	a := &cancelMidHand{recorder: newRecorder("a"), cancel: cancel}
	b := newRecorder("b")

	res, err := NewRunner(Config{Hands: 5}).Play(ctx, a, b)
	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, res.Interrupted)
	assert.Equal(t, 1, res.Hands, "the abandoned hand is not scored")
	assert.Len(t, res.Scores, 1)
	assert.Len(t, a.results, 1, "no outcome is delivered for the abandoned hand")
	require.NotNil(t, b.final)
	assert.Equal(t, -res.Score, *b.final)
}
