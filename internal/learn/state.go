package learn

import "slices"

// OpponentStats summarises what an agent has observed of its opponent
// during the current match.
type OpponentStats struct {
	Raises int
	Calls  int
	Folds  int // hands the opponent folded or forfeited
	Hands  int
}

// Aggression is the opponent's raises per call, or its raise count when it
// has never called.
func (o OpponentStats) Aggression() float64 {
	if o.Calls == 0 {
		return float64(o.Raises)
	}
	return float64(o.Raises) / float64(o.Calls)
}

// Tightness is the fraction of completed hands that ended with the
// opponent folding.
func (o OpponentStats) Tightness() float64 {
	if o.Hands == 0 {
		return 0
	}
	return float64(o.Folds) / float64(o.Hands)
}

// StreetTally counts raises and calls on the current street by actor.
type StreetTally struct {
	SelfRaises     int
	SelfCalls      int
	OpponentRaises int
	OpponentCalls  int
}

// GameState is the snapshot an agent decides on. It is rebuilt for every
// decision and owned by the agent that built it.
type GameState struct {
	Position       int // 0 dealer, 1 other
	DrawsRemaining int // 3, 2, 1, 0
	Raises         int // bets and raises on this street, 0..4
	// Cumulative cards replaced this hand; -1 until the first draw is known.
	OpponentDrew int
	AgentDrew    int
	Pot          int
	ToCall       int
	// ActiveRanks are the ranks of the active badugi cards, highest first.
	ActiveRanks []int

	Street   StreetTally
	Opponent OpponentStats
}

// InitialState is the placeholder state an episode starts from before the
// agent has seen its cards: the opening street with a lone king.
func InitialState(position int) GameState {
	return GameState{
		Position:       position,
		DrawsRemaining: 3,
		OpponentDrew:   -1,
		AgentDrew:      -1,
		ActiveRanks:    []int{13},
	}
}

// Clone returns a deep copy of the state.
func (s GameState) Clone() GameState {
	s.ActiveRanks = slices.Clone(s.ActiveRanks)
	return s
}

// KeyFields projects the state onto the fields of the discrete key.
func (s GameState) KeyFields() KeyFields {
	f := KeyFields{
		Position:       s.Position,
		DrawsRemaining: s.DrawsRemaining,
		Raises:         s.Raises,
		ActiveLen:      len(s.ActiveRanks),
		OpponentDrew:   s.OpponentDrew,
		AgentDrew:      s.AgentDrew,
	}
	if len(s.ActiveRanks) > 0 {
		f.FirstRank = s.ActiveRanks[0]
	}
	return f
}
