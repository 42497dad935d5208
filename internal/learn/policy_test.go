package learn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/badugibots/internal/randutil"
)

func TestEpsilonGreedyExplorationFrequency(t *testing.T) {
	t.Parallel()
	const epsilon = 0.2
	values := []float64{0.1, 0.5, 0.3, -1, 0.5}

	for _, n := range []int{1_000, 10_000, 100_000} {
		rng := randutil.New(int64(n))
		explored := 0
		for i := 0; i < n; i++ {
			idx, e := EpsilonGreedy{}.Select(rng, values, Params{Epsilon: epsilon})
			if e {
				explored++
			} else {
				assert.Equal(t, 1, idx, "greedy choice breaks ties by first index")
			}
		}
		freq := float64(explored) / float64(n)
		assert.InDelta(t, epsilon, freq, 3/math.Sqrt(float64(n)), "n=%d", n)
	}
}

func TestEpsilonGreedyZeroEpsilonIsGreedy(t *testing.T) {
	t.Parallel()
	rng := randutil.New(1)
	for i := 0; i < 100; i++ {
		idx, explored := EpsilonGreedy{}.Select(rng, []float64{0, 0, 2, 1}, Params{})
		assert.Equal(t, 2, idx)
		assert.False(t, explored)
	}
}

func TestSoftmaxDistribution(t *testing.T) {
	t.Parallel()
	values := []float64{0, 0.5, 1}
	const temp = 0.5
	want := softmax(values, temp)
	assert.InDelta(t, 1.0, want[0]+want[1]+want[2], 1e-12)
	assert.InDelta(t, math.Exp(1), want[1]/want[0], 1e-9)

	const n = 50_000
	rng := randutil.New(7)
	counts := make([]int, len(values))
	for i := 0; i < n; i++ {
		idx, _ := Softmax{}.Select(rng, values, Params{Temperature: temp})
		counts[idx]++
	}
	for i, c := range counts {
		assert.InDelta(t, want[i], float64(c)/n, 3/math.Sqrt(n), "action %d", i)
	}
}

func TestSoftmaxColdIsGreedy(t *testing.T) {
	t.Parallel()
	rng := randutil.New(3)
	for i := 0; i < 100; i++ {
		idx, explored := Softmax{}.Select(rng, []float64{1, 3, 2}, Params{Temperature: minTemperature})
		assert.Equal(t, 1, idx)
		assert.False(t, explored)
	}
	w := softmax([]float64{1000, 0}, 1)
	assert.False(t, math.IsNaN(w[0]), "large values must not overflow")
}
