package learn

import (
	"fmt"
	"math/rand/v2"
)

// Action is one of the ten discrete decisions an agent can make.
type Action int

const (
	Fold Action = iota
	Call
	MinRaise
	MidRaise
	MaxRaise
	DrawZero
	DrawOne
	DrawTwo
	DrawThree
	DrawFour
)

// NumActions is the number of discrete actions across both phases.
const NumActions = 10

var actionNames = [NumActions]string{
	"fold", "call", "min_raise", "mid_raise", "max_raise",
	"draw_0", "draw_1", "draw_2", "draw_3", "draw_4",
}

func (a Action) String() string {
	if a < 0 || a >= NumActions {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// Phase selects which group of actions is legal.
type Phase int

const (
	Betting Phase = iota
	Drawing
)

func (p Phase) String() string {
	if p == Drawing {
		return "drawing"
	}
	return "betting"
}

var (
	betActions  = []Action{Fold, Call, MinRaise, MidRaise, MaxRaise}
	drawActions = []Action{DrawZero, DrawOne, DrawTwo, DrawThree, DrawFour}
)

// Phase returns the phase the action belongs to.
func (a Action) Phase() Phase {
	if a >= DrawZero {
		return Drawing
	}
	return Betting
}

// Discards returns the number of cards a drawing action asks to replace.
func (a Action) Discards() int {
	if a.Phase() != Drawing {
		return 0
	}
	return int(a - DrawZero)
}

// Actions returns the legal actions of a phase in their canonical order.
// The returned slice must not be modified.
func Actions(p Phase) []Action {
	if p == Drawing {
		return drawActions
	}
	return betActions
}

// RandomAction returns a uniformly random legal action for the phase.
func RandomAction(rng *rand.Rand, p Phase) Action {
	legal := Actions(p)
	return legal[rng.IntN(len(legal))]
}
