package learn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ValueFunction estimates action values. Adjust moves Q(s, a) by delta;
// the SARSA rule decides what delta is.
type ValueFunction interface {
	Value(s GameState, a Action) (float64, error)
	Adjust(s GameState, a Action, delta float64) error
	// Reset forgets everything learned.
	Reset()
}

// qEntry stores per-action values and visit counts for one key.
type qEntry struct {
	values [NumActions]float64
	visits [NumActions]int
}

// Tabular is an exact action-value table keyed by StateKey.
type Tabular struct {
	entries map[StateKey]*qEntry
}

// NewTabular returns an empty table.
func NewTabular() *Tabular {
	return &Tabular{entries: make(map[StateKey]*qEntry)}
}

// Get returns the stored value, 0 for unseen keys.
func (t *Tabular) Get(k StateKey, a Action) float64 {
	if e, ok := t.entries[k]; ok {
		return e.values[a]
	}
	return 0
}

// Set overwrites the stored value and counts a visit.
func (t *Tabular) Set(k StateKey, a Action, v float64) {
	e, ok := t.entries[k]
	if !ok {
		e = &qEntry{}
		t.entries[k] = e
	}
	e.values[a] = v
	e.visits[a]++
}

// Visits returns how often (k, a) has been updated.
func (t *Tabular) Visits(k StateKey, a Action) int {
	if e, ok := t.entries[k]; ok {
		return e.visits[a]
	}
	return 0
}

// Len returns the number of keys with at least one update.
func (t *Tabular) Len() int {
	return len(t.entries)
}

func (t *Tabular) Value(s GameState, a Action) (float64, error) {
	k, err := EncodeKey(s.KeyFields())
	if err != nil {
		return 0, err
	}
	return t.Get(k, a), nil
}

func (t *Tabular) Adjust(s GameState, a Action, delta float64) error {
	k, err := EncodeKey(s.KeyFields())
	if err != nil {
		return err
	}
	t.Set(k, a, t.Get(k, a)+delta)
	return nil
}

func (t *Tabular) Reset() {
	clear(t.entries)
}

// Linear approximates Q(s, a) as the inner product of a weight vector and
// the encoder's features.
type Linear struct {
	enc     *Encoder
	weights *mat.VecDense
	buf     []float64
}

// NewLinear returns a linear value function with zero weights.
func NewLinear(enc *Encoder) *Linear {
	return &Linear{
		enc:     enc,
		weights: mat.NewVecDense(enc.Len(), nil),
		buf:     make([]float64, enc.Len()),
	}
}

func (l *Linear) features(s GameState, a Action) *mat.VecDense {
	l.enc.Encode(s, a, l.buf)
	return mat.NewVecDense(len(l.buf), l.buf)
}

func (l *Linear) Value(s GameState, a Action) (float64, error) {
	if a < 0 || a >= NumActions {
		return 0, fmt.Errorf("%w: action %d", ErrEncoding, a)
	}
	return mat.Dot(l.weights, l.features(s, a)), nil
}

// Adjust adds delta times the features of (s, a) to the weights.
func (l *Linear) Adjust(s GameState, a Action, delta float64) error {
	if a < 0 || a >= NumActions {
		return fmt.Errorf("%w: action %d", ErrEncoding, a)
	}
	l.weights.AddScaledVec(l.weights, delta, l.features(s, a))
	return nil
}

func (l *Linear) Reset() {
	l.weights.Zero()
}

// Weights returns a copy of the weight vector.
func (l *Linear) Weights() []float64 {
	return mat.Col(nil, 0, l.weights)
}

// Norm returns the L2 norm of the weights.
func (l *Linear) Norm() float64 {
	return mat.Norm(l.weights, 2)
}
