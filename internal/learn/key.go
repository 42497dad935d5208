package learn

import (
	"errors"
	"fmt"
)

// ErrEncoding is returned for state fields outside the range the discrete
// key can represent.
var ErrEncoding = errors.New("state encoding")

// MaxKeyDraws is the largest draw count the key stores; larger counts clip.
const MaxKeyDraws = 4

// KeyFields are the state fields packed into a StateKey.
type KeyFields struct {
	Position       int // 0..1
	DrawsRemaining int // 0..3
	Raises         int // 0..4
	ActiveLen      int // 1..4
	FirstRank      int // 1..13
	OpponentDrew   int // -1.., clipped to 0..4
	AgentDrew      int // -1.., clipped to 0..4
}

// Clipped returns the fields as the key stores them: draw counts above
// MaxKeyDraws become MaxKeyDraws and -1 becomes 0.
func (f KeyFields) Clipped() KeyFields {
	f.OpponentDrew = clipDraws(f.OpponentDrew)
	f.AgentDrew = clipDraws(f.AgentDrew)
	return f
}

func clipDraws(n int) int {
	switch {
	case n == -1:
		return 0
	case n > MaxKeyDraws:
		return MaxKeyDraws
	}
	return n
}

// KeyField names one packed field of a StateKey.
type KeyField int

const (
	FieldPosition KeyField = iota
	FieldDrawsRemaining
	FieldRaises
	FieldActiveLen // stored as length-1
	FieldFirstRank // stored as rank-1
	FieldOpponentDrew
	FieldAgentDrew
)

// bit layout: offset and width per field.
var keyLayout = [...]struct{ shift, width uint }{
	FieldPosition:       {0, 1},
	FieldDrawsRemaining: {1, 2},
	FieldRaises:         {3, 3},
	FieldActiveLen:      {6, 2},
	FieldFirstRank:      {8, 4},
	FieldOpponentDrew:   {12, 3},
	FieldAgentDrew:      {15, 3},
}

// StateKey is the discrete encoding of a GameState. It is an immutable,
// comparable value and is used directly as a map key.
type StateKey struct {
	bits uint32
}

// EncodeKey packs the fields into a key, applying the two draw-count clip
// rules. Any other out-of-range field returns an error wrapping ErrEncoding.
func EncodeKey(f KeyFields) (StateKey, error) {
	if err := checkRange("position", f.Position, 0, 1); err != nil {
		return StateKey{}, err
	}
	if err := checkRange("draws remaining", f.DrawsRemaining, 0, 3); err != nil {
		return StateKey{}, err
	}
	if err := checkRange("raises", f.Raises, 0, 4); err != nil {
		return StateKey{}, err
	}
	if err := checkRange("active length", f.ActiveLen, 1, 4); err != nil {
		return StateKey{}, err
	}
	if err := checkRange("first rank", f.FirstRank, 1, 13); err != nil {
		return StateKey{}, err
	}
	if f.OpponentDrew < -1 {
		return StateKey{}, fmt.Errorf("%w: opponent drew %d", ErrEncoding, f.OpponentDrew)
	}
	if f.AgentDrew < -1 {
		return StateKey{}, fmt.Errorf("%w: agent drew %d", ErrEncoding, f.AgentDrew)
	}
	f = f.Clipped()

	var k StateKey
	k.set(FieldPosition, f.Position)
	k.set(FieldDrawsRemaining, f.DrawsRemaining)
	k.set(FieldRaises, f.Raises)
	k.set(FieldActiveLen, f.ActiveLen-1)
	k.set(FieldFirstRank, f.FirstRank-1)
	k.set(FieldOpponentDrew, f.OpponentDrew)
	k.set(FieldAgentDrew, f.AgentDrew)
	return k, nil
}

// MustEncode is like EncodeKey but panics on error.
func MustEncode(f KeyFields) StateKey {
	k, err := EncodeKey(f)
	if err != nil {
		panic(err)
	}
	return k
}

func checkRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s %d outside [%d, %d]", ErrEncoding, name, v, lo, hi)
	}
	return nil
}

func (k *StateKey) set(f KeyField, v int) {
	l := keyLayout[f]
	k.bits |= (uint32(v) & (1<<l.width - 1)) << l.shift
}

// Field returns the raw stored value of a field, before the length and rank
// offsets are undone.
func (k StateKey) Field(f KeyField) int {
	l := keyLayout[f]
	return int(k.bits>>l.shift) & (1<<l.width - 1)
}

// Decode unpacks the key. Draw counts come back clipped.
func (k StateKey) Decode() KeyFields {
	return KeyFields{
		Position:       k.Field(FieldPosition),
		DrawsRemaining: k.Field(FieldDrawsRemaining),
		Raises:         k.Field(FieldRaises),
		ActiveLen:      k.Field(FieldActiveLen) + 1,
		FirstRank:      k.Field(FieldFirstRank) + 1,
		OpponentDrew:   k.Field(FieldOpponentDrew),
		AgentDrew:      k.Field(FieldAgentDrew),
	}
}

// Uint32 returns the packed representation.
func (k StateKey) Uint32() uint32 {
	return k.bits
}

func (k StateKey) String() string {
	f := k.Decode()
	return fmt.Sprintf("%d/%d/%d/%d/%d/%d/%d", f.Position, f.DrawsRemaining, f.Raises, f.ActiveLen, f.FirstRank, f.OpponentDrew, f.AgentDrew)
}
