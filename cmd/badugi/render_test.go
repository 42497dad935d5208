package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lox/badugibots/internal/match"
	"github.com/lox/badugibots/internal/statistics"
)

func TestRenderMatch(t *testing.T) {
	res := &match.Result{
		Agents:   [2]string{"sarsa", "simple"},
		Score:    12,
		Hands:    2,
		Duration: time.Second,
		Stats:    [2]*statistics.Statistics{{}, {}},
	}
	res.Stats[0].Add(statistics.HandResult{Net: 15, Position: 0, WentToShowdown: true, FinalPot: 30})
	res.Stats[0].Add(statistics.HandResult{Net: -3, Position: 1, FinalPot: 6})
	res.Stats[1].Add(statistics.HandResult{Net: -15, Position: 1, WentToShowdown: true, FinalPot: 30})
	res.Stats[1].Add(statistics.HandResult{Net: 3, Position: 0, FinalPot: 6})
	res.WeightNorms[0] = []float64{0.5, 1.25}

	out := renderMatch(res)
	assert.Contains(t, out, "sarsa vs simple: 2 hands")
	assert.Contains(t, out, "1.250")
	assert.Contains(t, out, "median")
	assert.Contains(t, out, "-3.000 / 15.000", "percentiles of the first agent")
	assert.Contains(t, out, "largest pot 30")
	assert.NotContains(t, out, "interrupted")
}

func TestRenderTournament(t *testing.T) {
	entries := []match.Entry{{Name: "a"}, {Name: "b"}}
	res := &match.TournamentResult{
		Pairings:  []match.Pairing{{A: 0, B: 1, Result: &match.Result{Score: -4}}},
		Standings: []match.Standing{{Name: "b", Points: 2, Wins: 1, Chips: 4}, {Name: "a", Losses: 1, Chips: -4}},
	}
	out := renderTournament(entries, res)
	assert.Contains(t, out, "[a] vs. [b]:")
	assert.Contains(t, out, "Standings")
}
