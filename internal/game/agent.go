package game

import "github.com/lox/badugibots/badugi"

// Seats. The dealer acts first on every street and draws first.
const (
	Dealer = 0
	Other  = 1
)

// Tally counts the betting actions of one seat.
type Tally struct {
	Raises int
	Calls  int
	Folds  int
}

// Add returns the element-wise sum of two tallies.
func (t Tally) Add(o Tally) Tally {
	return Tally{Raises: t.Raises + o.Raises, Calls: t.Calls + o.Calls, Folds: t.Folds + o.Folds}
}

// BetRequest is everything an agent is told when it is asked to bet.
type BetRequest struct {
	DrawsRemaining int
	Hand           badugi.Hand
	Pot            int
	Raises         int // bets and raises made so far on this street
	ToCall         int
	MinRaise       int
	MaxRaise       int
	// OpponentDrew is the number of cards the opponent replaced in the most
	// recent drawing round, or -1 before the first draw.
	OpponentDrew int

	// Betting so far on this street.
	Self     Tally
	Opponent Tally
}

// DrawRequest is everything an agent is told when it is asked to discard.
type DrawRequest struct {
	DrawsRemaining int
	Hand           badugi.Hand
	Pot            int
	// DealerDrew is the dealer's draw count for this round when the
	// non-dealer is asked, and -1 when the dealer is asked.
	DealerDrew int
}

// EndReason records how a hand finished.
type EndReason int

const (
	EndShowdown EndReason = iota
	EndFold
	EndForfeit
)

func (r EndReason) String() string {
	return [...]string{"showdown", "fold", "forfeit"}[r]
}

// Outcome is delivered to each agent when a hand finishes.
type Outcome struct {
	Hand badugi.Hand
	// OpponentHand is only meaningful when OpponentShown is true, which is
	// the case only when the hand reached showdown.
	OpponentHand  badugi.Hand
	OpponentShown bool
	// Result is the signed number of chips won by the receiving agent.
	Result  int
	EndedBy EndReason
	// Opponent counts the opponent's betting actions over the whole hand.
	Opponent Tally
}

// OpponentFolded reports whether the hand ended because the opponent folded
// or forfeited.
func (o Outcome) OpponentFolded() bool {
	return o.EndedBy != EndShowdown && o.Result > 0
}

// Agent is a badugi player. Implementations are driven sequentially by one
// goroutine; they do not need to be safe for concurrent use.
type Agent interface {
	Name() string
	Author() string

	// StartNewMatch resets per-match state before the first hand.
	StartNewMatch(handsToGo int)
	// StartNewHand announces the seat (Dealer or Other), the number of hands
	// left in the match including this one, and the agent's score so far.
	StartNewHand(position, handsToGo, currentScore int)

	// BettingAction returns the number of chips to push into the pot.
	// Anything below ToCall folds, amounts strictly between ToCall and
	// MinRaise call, and amounts above MaxRaise are clamped.
	BettingAction(req BetRequest) (int, error)
	// DrawingAction returns the cards to replace, a subset of req.Hand.
	DrawingAction(req DrawRequest) ([]badugi.Card, error)

	HandComplete(out Outcome)
	FinishedMatch(finalScore int)
}
