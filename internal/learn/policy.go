package learn

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// Params are the hyperparameters a policy reads at decision time.
type Params struct {
	Alpha       float64
	Gamma       float64
	Epsilon     float64
	Temperature float64
}

// Policy picks an index into values, the action values of the legal actions
// in canonical order. explored reports whether the choice was exploratory.
type Policy interface {
	Select(rng *rand.Rand, values []float64, p Params) (index int, explored bool)
}

// EpsilonGreedy picks a uniformly random action with probability Epsilon
// and the highest-valued action otherwise.
type EpsilonGreedy struct{}

func (EpsilonGreedy) Select(rng *rand.Rand, values []float64, p Params) (int, bool) {
	if rng.Float64() < p.Epsilon {
		return rng.IntN(len(values)), true
	}
	return argmax(values), false
}

// Softmax samples an action with probability proportional to
// exp(Q/Temperature). A choice other than the greedy one counts as
// exploration.
type Softmax struct{}

func (Softmax) Select(rng *rand.Rand, values []float64, p Params) (int, bool) {
	probs := softmax(values, p.Temperature)
	floats.CumSum(probs, probs)

	u := rng.Float64() * probs[len(probs)-1]
	idx := len(probs) - 1
	for i, c := range probs {
		if u < c {
			idx = i
			break
		}
	}
	return idx, idx != argmax(values)
}

// softmax returns Boltzmann weights for values at temperature t. The
// maximum is subtracted before exponentiating.
func softmax(values []float64, t float64) []float64 {
	if t <= 0 {
		t = minTemperature
	}
	hi := floats.Max(values)
	w := make([]float64, len(values))
	for i, v := range values {
		w[i] = math.Exp((v - hi) / t)
	}
	floats.Scale(1/floats.Sum(w), w)
	return w
}

// argmax returns the first index holding the largest value.
func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
