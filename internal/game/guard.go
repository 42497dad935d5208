package game

import (
	"errors"
	"fmt"

	"github.com/lox/badugibots/badugi"
)

// askBet asks seat for a betting amount. An error or panic becomes a fold.
func (h *Hand) askBet(seat int, req BetRequest) (amount int) {
	fold := req.ToCall - 1
	defer func() {
		if r := recover(); r != nil {
			h.agentFailed(seat, "betting_action", fmt.Errorf("panic: %v", r))
			amount = fold
		}
	}()
	amount, err := h.agents[seat].BettingAction(req)
	if err != nil {
		h.agentFailed(seat, "betting_action", err)
		return fold
	}
	return amount
}

// askDraw asks seat for its discards. An error or panic discards nothing.
func (h *Hand) askDraw(seat int, req DrawRequest) (discards []badugi.Card) {
	defer func() {
		if r := recover(); r != nil {
			h.agentFailed(seat, "drawing_action", fmt.Errorf("panic: %v", r))
			discards = nil
		}
	}()
	discards, err := h.agents[seat].DrawingAction(req)
	if err != nil {
		h.agentFailed(seat, "drawing_action", err)
		return nil
	}
	return discards
}

// guard runs a notification callback, recovering and logging any panic.
func (h *Hand) guard(seat int, phase string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			h.agentFailed(seat, phase, fmt.Errorf("panic: %v", r))
		}
	}()
	fn()
}

func (h *Hand) agentFailed(seat int, phase string, err error) {
	h.log.Warn().
		Err(err).
		Str("agent", h.agents[seat].Name()).
		Int("seat", seat).
		Str("phase", phase).
		Msg("Agent call failed")
}

func isInvalidDiscard(err error) bool {
	return errors.Is(err, ErrInvalidDiscard)
}
