package game

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lox/badugibots/badugi"
)

// State is a phase of the hand state machine.
type State int

const (
	StateAnte State = iota
	StateBetting
	StateDraw
	StateShowdown
	StateTerminal
)

func (s State) String() string {
	return [...]string{"ante", "betting", "draw", "showdown", "terminal"}[s]
}

// Result summarises a finished hand.
type Result struct {
	// Net is the number of chips won by seat 0 from seat 1.
	Net     int
	EndedBy EndReason
	// Loser is the seat that folded, forfeited or lost at showdown; -1 on a tie.
	Loser     int
	Pot       int
	Committed [2]int
	Hands     [2]badugi.Hand
	// Draws is the total number of cards each seat replaced.
	Draws   [2]int
	Tallies [2]Tally
}

// Hand plays one hand of heads-up badugi. A Hand is single use.
type Hand struct {
	cfg  handConfig
	deck *badugi.Deck
	log  zerolog.Logger

	agents    [2]Agent
	state     State
	hands     [2]badugi.Hand
	committed [2]int
	pot       int
	lastDrew  [2]int
	draws     [2]int
	tallies   [2]Tally
}

// State returns the current phase of the hand.
func (h *Hand) State() State {
	return h.state
}

// Pot returns the chips in the pot. It always equals the sum of both seats'
// commitments.
func (h *Hand) Pot() int {
	return h.pot
}

// Play runs the hand to completion with agents[0] as the dealer. Agent
// failures never surface as errors; an error is returned only when ctx is
// cancelled between streets or the deck cannot supply cards.
func (h *Hand) Play(ctx context.Context, agents [2]Agent) (Result, error) {
	if agents[0] == nil || agents[1] == nil {
		panic("two agents are required to play a hand")
	}
	if h.state != StateAnte {
		panic("hand already played")
	}
	h.agents = agents
	h.lastDrew = [2]int{-1, -1}

	if err := h.postAntes(); err != nil {
		return Result{}, err
	}

	for seat := range agents {
		score := h.cfg.score
		if seat != Dealer {
			score = -score
		}
		h.guard(seat, "start_new_hand", func() {
			agents[seat].StartNewHand(seat, h.cfg.handsToGo, score)
		})
	}

	for drawsRemaining := 3; drawsRemaining >= 0; drawsRemaining-- {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("hand interrupted: %w", err)
		}
		if folder, folded := h.bettingStreet(drawsRemaining); folded {
			return h.finish(EndFold, folder), nil
		}
		if drawsRemaining == 0 {
			break
		}
		forfeit, err := h.drawRound(drawsRemaining)
		if err != nil {
			return Result{}, err
		}
		if forfeit >= 0 {
			return h.finish(EndForfeit, forfeit), nil
		}
	}

	return h.showdown(), nil
}

func (h *Hand) postAntes() error {
	h.deck.Shuffle()
	for seat := range h.hands {
		hand, err := h.deck.DealHand()
		if err != nil {
			return fmt.Errorf("deal seat %d: %w", seat, err)
		}
		h.hands[seat] = hand
		h.committed[seat] = h.cfg.ante
	}
	h.pot = 2 * h.cfg.ante
	h.log.Debug().
		Int("ante", h.cfg.ante).
		Stringer("dealer_hand", h.hands[Dealer]).
		Stringer("other_hand", h.hands[Other]).
		Msg("Antes posted")
	h.emit(Event{Type: EventAnte, Seat: -1, DrawsRemaining: 3})
	return nil
}

// bettingStreet runs one street and reports the folding seat, if any.
func (h *Hand) bettingStreet(drawsRemaining int) (int, bool) {
	h.state = StateBetting
	br := NewBettingRound(drawsRemaining, h.cfg.ante*h.cfg.openingRaises[drawsRemaining], h.cfg.raiseCap)

	for seat := Dealer; !br.Complete(); seat = 1 - seat {
		other := 1 - seat
		toCall := h.committed[other] - h.committed[seat]
		minRaise, maxRaise := br.Bounds(h.pot, toCall)

		req := BetRequest{
			DrawsRemaining: drawsRemaining,
			Hand:           h.hands[seat],
			Pot:            h.pot,
			Raises:         br.Raises,
			ToCall:         toCall,
			MinRaise:       minRaise,
			MaxRaise:       maxRaise,
			OpponentDrew:   h.lastDrew[other],
			Self:           br.Tally(seat),
			Opponent:       br.Tally(other),
		}
		amount := Normalize(h.askBet(seat, req), toCall, minRaise, maxRaise)
		kind := Classify(amount, toCall)
		br.Record(seat, kind, amount, toCall)

		if kind == Fold {
			h.tallies[seat].Folds++
			h.log.Debug().Str("agent", h.agents[seat].Name()).Int("draws_remaining", drawsRemaining).Msg("Fold")
			h.emit(Event{Type: EventFold, Seat: seat, DrawsRemaining: drawsRemaining, Kind: Fold})
			return seat, true
		}
		if kind == Raise {
			h.tallies[seat].Raises++
		} else {
			h.tallies[seat].Calls++
		}

		h.committed[seat] += amount
		h.pot += amount
		h.log.Debug().
			Str("agent", h.agents[seat].Name()).
			Stringer("action", kind).
			Int("amount", amount).
			Int("to_call", toCall).
			Int("pot", h.pot).
			Msg("Bet")
		h.emit(Event{Type: EventBet, Seat: seat, DrawsRemaining: drawsRemaining, Kind: kind, Amount: amount})
	}
	return -1, false
}

// drawRound runs one drawing round and returns the forfeiting seat, or -1.
func (h *Hand) drawRound(drawsRemaining int) (int, error) {
	h.state = StateDraw
	dr := NewDrawRound(drawsRemaining)

	for seat := Dealer; seat <= Other; seat++ {
		discards := h.askDraw(seat, dr.Request(seat, h.hands[seat], h.pot))
		if err := dr.Apply(h.deck, &h.hands[seat], seat, discards); err != nil {
			if !isInvalidDiscard(err) {
				return -1, err
			}
			h.log.Warn().Err(err).Str("agent", h.agents[seat].Name()).Msg("Discard rejected, hand forfeited")
			h.tallies[seat].Folds++
			h.emit(Event{Type: EventForfeit, Seat: seat, DrawsRemaining: drawsRemaining})
			return seat, nil
		}
		h.draws[seat] += len(discards)
		h.log.Debug().
			Str("agent", h.agents[seat].Name()).
			Int("discards", len(discards)).
			Stringer("hand", h.hands[seat]).
			Msg("Draw")
		h.emit(Event{Type: EventDraw, Seat: seat, DrawsRemaining: drawsRemaining, Discards: len(discards)})
	}
	h.lastDrew = dr.Counts
	return -1, nil
}

func (h *Hand) showdown() Result {
	h.state = StateShowdown
	cmp := h.cfg.evaluator.Compare(h.hands[Dealer], h.hands[Other])
	res := h.result(EndShowdown)
	switch {
	case cmp > 0:
		res.Loser, res.Net = Other, h.committed[Other]
	case cmp < 0:
		res.Loser, res.Net = Dealer, -h.committed[Dealer]
	default:
		res.Loser = -1
	}
	h.log.Debug().
		Stringer("dealer_hand", h.hands[Dealer]).
		Stringer("other_hand", h.hands[Other]).
		Int("net", res.Net).
		Msg("Showdown")
	h.emit(Event{Type: EventShowdown, Seat: res.Loser})
	h.notify(res, true)
	return res
}

// finish ends the hand early with loser paying its commitment to the other seat.
func (h *Hand) finish(reason EndReason, loser int) Result {
	res := h.result(reason)
	res.Loser = loser
	res.Net = h.committed[loser]
	if loser == Dealer {
		res.Net = -res.Net
	}
	h.notify(res, false)
	return res
}

func (h *Hand) result(reason EndReason) Result {
	return Result{
		EndedBy:   reason,
		Pot:       h.pot,
		Committed: h.committed,
		Hands:     h.hands,
		Draws:     h.draws,
		Tallies:   h.tallies,
	}
}

func (h *Hand) notify(res Result, shown bool) {
	h.state = StateTerminal
	for seat := range h.agents {
		net := res.Net
		if seat != Dealer {
			net = -net
		}
		out := Outcome{
			Hand:          h.hands[seat],
			OpponentShown: shown,
			Result:        net,
			EndedBy:       res.EndedBy,
			Opponent:      res.Tallies[1-seat],
		}
		if shown {
			out.OpponentHand = h.hands[1-seat]
		}
		h.guard(seat, "hand_complete", func() {
			h.agents[seat].HandComplete(out)
		})
	}
}

func (h *Hand) emit(e Event) {
	if h.cfg.observer == nil {
		return
	}
	e.Pot = h.pot
	e.Committed = h.committed
	h.cfg.observer(e)
}
