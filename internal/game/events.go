package game

// EventType identifies what happened in a hand.
type EventType string

const (
	EventAnte     EventType = "ante"
	EventBet      EventType = "bet"
	EventDraw     EventType = "draw"
	EventFold     EventType = "fold"
	EventForfeit  EventType = "forfeit"
	EventShowdown EventType = "showdown"
)

func (et EventType) String() string {
	return string(et)
}

// Event is emitted after every change to the hand state. Pot and Committed
// describe the state after the event was applied.
type Event struct {
	Type           EventType
	Seat           int // -1 for events that concern both seats
	DrawsRemaining int
	Kind           ActionKind // bet events only
	Amount         int        // chips pushed in by a bet event
	Discards       int        // cards replaced by a draw event
	Pot            int
	Committed      [2]int
}

// Observer receives hand events synchronously.
type Observer func(Event)
