// Package game implements the hand state machine for heads-up four-card
// fixed-limit badugi.
//
// A Hand posts antes, deals two four-card hands and runs four betting
// streets with a drawing round after each of the first three, ending at a
// fold, a forfeited draw or a showdown:
//
//	rng := randutil.New(42)
//	h := game.NewHand(rng, game.WithLogger(logger))
//	res, err := h.Play(ctx, [2]game.Agent{dealer, other})
//
// # Architecture
//
// Hand delegates responsibilities to specialized components:
//   - BettingRound: raise bounds, bet normalisation and street completion
//   - DrawRound: discard validation and card replacement
//   - Evaluator: showdown ordering (badugi.Evaluator by default)
//
// Agents never see shared state: every request carries a copy of the
// acting agent's hand. Agent errors and panics are recovered and turned into
// the most conservative legal action so that a misbehaving agent can never
// abort a match.
package game
