package learn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// FeatureSet selects which state features an Encoder derives. The zero
// value leaves the choice to the caller's default.
type FeatureSet int

const (
	// BasicFeatures are nine scaled state fields plus a bias.
	BasicFeatures FeatureSet = iota + 1
	// RichFeatures add pot odds, individual ranks, rank density, opponent
	// statistics and cross terms.
	RichFeatures
)

func (fs FeatureSet) String() string {
	switch fs {
	case BasicFeatures:
		return "basic"
	case RichFeatures:
		return "rich"
	}
	return "default"
}

// ParseFeatureSet parses "basic" or "rich". The empty string yields the
// zero FeatureSet.
func ParseFeatureSet(s string) (FeatureSet, error) {
	switch s {
	case "":
		return 0, nil
	case "basic":
		return BasicFeatures, nil
	case "rich":
		return RichFeatures, nil
	}
	return 0, fmt.Errorf("unknown feature set %q", s)
}

const (
	basicLen = 9
	richLen  = 28

	// maxFeatureDraws caps cumulative draw counts in the continuous encoding.
	maxFeatureDraws = 12
	// potScale is the pot size that maps to one half in the squashed pot
	// features.
	potScale = 64.0
)

// Encoder turns a state and candidate action into a feature vector. The
// vector holds one block per action; only the candidate action's block is
// non-zero, so a linear value function learns separate weights per action.
type Encoder struct {
	set       FeatureSet
	normalize bool
	block     int
}

// NewEncoder returns an encoder for the feature set. When normalize is true
// the state block is scaled to unit L2 length.
func NewEncoder(set FeatureSet, normalize bool) *Encoder {
	block := basicLen
	if set == RichFeatures {
		block = richLen
	}
	return &Encoder{set: set, normalize: normalize, block: block}
}

// Len returns the length of the encoded vector.
func (e *Encoder) Len() int {
	return e.block * NumActions
}

// BlockLen returns the number of state features per action.
func (e *Encoder) BlockLen() int {
	return e.block
}

// Encode writes the features of (s, a) into dst, which must have length
// Len(). Entries outside a's block are zeroed.
func (e *Encoder) Encode(s GameState, a Action, dst []float64) {
	if len(dst) != e.Len() {
		panic("feature buffer has wrong length")
	}
	clear(dst)
	block := dst[int(a)*e.block : (int(a)+1)*e.block]
	if e.set == RichFeatures {
		richState(s, block)
	} else {
		basicState(s, block)
	}
	if e.normalize {
		if n := floats.Norm(block, 2); n > 0 {
			floats.Scale(1/n, block)
		}
	}
}

// StateFeatures returns the state block alone.
func (e *Encoder) StateFeatures(s GameState) []float64 {
	dst := make([]float64, e.Len())
	e.Encode(s, Fold, dst)
	return dst[:e.block]
}

func basicState(s GameState, f []float64) {
	first := 0
	if len(s.ActiveRanks) > 0 {
		first = s.ActiveRanks[0]
	}
	f[0] = 0.1
	f[1] = (float64(s.Position) - 0.5) / 10
	f[2] = float64(s.DrawsRemaining) / 10
	f[3] = float64(s.Raises) / 10
	f[4] = float64(clipFeatureDraws(s.OpponentDrew)) / 20
	f[5] = float64(clipFeatureDraws(s.AgentDrew)) / 20
	f[6] = squash(float64(s.Pot))
	f[7] = float64(len(s.ActiveRanks)) / 10
	f[8] = float64(first) / 20
}

func richState(s GameState, f []float64) {
	active := float64(len(s.ActiveRanks)) / 4
	draws := float64(s.DrawsRemaining) / 3
	raises := float64(s.Raises) / 4
	pot := squash(float64(s.Pot))
	toCall := squash(float64(s.ToCall))
	odds := potOdds(s.ToCall, s.Pot)
	aggr := s.Opponent.Aggression()
	aggr = aggr / (1 + aggr)
	tight := s.Opponent.Tightness()
	oppDrew := float64(clipFeatureDraws(s.OpponentDrew)) / maxFeatureDraws
	selfDrew := float64(clipFeatureDraws(s.AgentDrew)) / maxFeatureDraws

	var ranks [4]float64
	for i, r := range s.ActiveRanks {
		if i == len(ranks) {
			break
		}
		ranks[i] = float64(r) / 13
	}

	f[0] = 1
	f[1] = float64(s.Position)
	f[2] = draws
	f[3] = raises
	f[4] = pot
	f[5] = toCall
	f[6] = odds
	f[7] = active
	f[8] = active * active
	copy(f[9:13], ranks[:])
	f[13] = rankDensity(s.ActiveRanks)
	f[14] = aggr
	f[15] = tight
	f[16] = oppDrew
	f[17] = selfDrew
	f[18] = float64(s.Street.OpponentRaises) / 4
	f[19] = float64(s.Street.SelfRaises) / 4
	f[20] = active * draws
	f[21] = ranks[0] * draws
	f[22] = active * aggr
	f[23] = active * odds
	f[24] = ranks[0] * raises
	f[25] = oppDrew * active
	f[26] = float64(s.Position) * raises
	f[27] = tight * active
}

func clipFeatureDraws(n int) int {
	return min(max(n, 0), maxFeatureDraws)
}

// squash maps a non-negative chip amount into [0, 1).
func squash(v float64) float64 {
	return v / (v + potScale)
}

// potOdds is the price of a call relative to the pot, 0 for an empty pot.
func potOdds(toCall, pot int) float64 {
	if pot == 0 {
		return 0
	}
	return float64(toCall) / float64(pot)
}

// rankDensity is the product of the gaps between consecutive active ranks,
// scaled into [0, 1]. It is zero for fewer than two ranks or when any gap
// is not positive.
func rankDensity(ranks []int) float64 {
	if len(ranks) < 2 {
		return 0
	}
	d := 1.0
	for i := 1; i < len(ranks); i++ {
		gap := ranks[i-1] - ranks[i]
		if gap <= 0 {
			return 0
		}
		d *= float64(gap) / 12
	}
	return math.Min(d, 1)
}
