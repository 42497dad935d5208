package game

// ActionKind classifies an amount pushed into the pot.
type ActionKind int

const (
	Fold ActionKind = iota
	Call
	Raise
)

func (k ActionKind) String() string {
	return [...]string{"fold", "call", "raise"}[k]
}

// DefaultRaiseCap is the number of bets and raises allowed per street.
const DefaultRaiseCap = 4

// DefaultOpeningRaises holds the opening raise size per street in antes,
// indexed by the number of draws remaining: the final street opens at four
// antes and the first street at one.
var DefaultOpeningRaises = [4]int{4, 2, 2, 1}

// Classify returns the kind of action an amount represents once it has been
// normalised against the street's bounds.
func Classify(amount, toCall int) ActionKind {
	switch {
	case amount < toCall:
		return Fold
	case amount == toCall:
		return Call
	default:
		return Raise
	}
}

// Normalize applies the bet-sizing rules: an amount strictly between toCall
// and minRaise becomes a call, and an amount above maxRaise is clamped to
// maxRaise. Folding amounts are returned unchanged.
func Normalize(amount, toCall, minRaise, maxRaise int) int {
	if amount > toCall && amount < minRaise {
		amount = toCall
	}
	if amount > maxRaise {
		amount = maxRaise
	}
	return amount
}

// BettingRound encapsulates the state of one betting street.
type BettingRound struct {
	DrawsRemaining int
	HighestRaise   int
	Raises         int
	RaiseCap       int

	// calls counts consecutive calls; it starts at -1 so that a check by
	// each player at the street's first opportunity ends the street.
	calls   int
	tallies [2]Tally
}

// NewBettingRound creates a betting street whose raises open at openingRaise.
func NewBettingRound(drawsRemaining, openingRaise, raiseCap int) *BettingRound {
	return &BettingRound{
		DrawsRemaining: drawsRemaining,
		HighestRaise:   openingRaise,
		RaiseCap:       raiseCap,
		calls:          -1,
	}
}

// Bounds returns the minimum and maximum legal raise for a player facing
// toCall with the given pot. Once the raise cap is reached both collapse to
// toCall.
func (br *BettingRound) Bounds(pot, toCall int) (minRaise, maxRaise int) {
	if br.Raises >= br.RaiseCap {
		return toCall, toCall
	}
	return max(br.HighestRaise, 2*toCall), max(br.HighestRaise, pot+2*toCall)
}

// Record applies a classified action by seat. amount is the normalised
// number of chips pushed in.
func (br *BettingRound) Record(seat int, kind ActionKind, amount, toCall int) {
	switch kind {
	case Fold:
		br.tallies[seat].Folds++
	case Call:
		br.tallies[seat].Calls++
		br.calls++
	case Raise:
		br.tallies[seat].Raises++
		br.Raises++
		br.calls = 0
		br.HighestRaise = max(br.HighestRaise, amount-toCall)
	}
}

// Complete reports whether the street is over: a call followed a raise, or
// both players checked.
func (br *BettingRound) Complete() bool {
	return br.calls >= 1
}

// Tally returns the actions seat has taken on this street.
func (br *BettingRound) Tally(seat int) Tally {
	return br.tallies[seat]
}
