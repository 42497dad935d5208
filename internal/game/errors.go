package game

import "errors"

// ErrInvalidDiscard is returned when an agent asks to discard more than four
// cards, a card it does not hold, or the same card twice. The offending agent
// forfeits the hand.
var ErrInvalidDiscard = errors.New("invalid discard")
