package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/badugibots/internal/match"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func signed(v int) string {
	s := fmt.Sprintf("%+d", v)
	switch {
	case v > 0:
		return winStyle.Render(s)
	case v < 0:
		return lossStyle.Render(s)
	}
	return s
}

func decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func renderMatch(res *match.Result) string {
	var b strings.Builder

	title := fmt.Sprintf("%s vs %s: %d hands in %s", res.Agents[0], res.Agents[1], res.Hands, res.Duration.Round(time.Millisecond))
	if res.Interrupted {
		title += " (interrupted)"
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("agent", "chips", "mean", "95% CI", "median", "p5 / p95", "showdown won", "uncontested won", "dealer", "other", "raises", "calls", "folds", "aggression", "weight norm")
	for i, name := range res.Agents {
		stats, acts := res.Stats[i], res.Actions[i]
		lo, hi := stats.ConfidenceInterval95()
		norm := "-"
		if n := res.WeightNorms[i]; len(n) > 0 {
			norm = decimal(n[len(n)-1])
		}
		t.Row(
			nameStyle.Render(name),
			signed(int(stats.Sum)),
			decimal(stats.Mean()),
			fmt.Sprintf("[%s, %s]", decimal(lo), decimal(hi)),
			decimal(stats.Median()),
			fmt.Sprintf("%s / %s", decimal(stats.Percentile(0.05)), decimal(stats.Percentile(0.95))),
			strconv.Itoa(stats.ShowdownWins),
			strconv.Itoa(stats.NonShowdownWins),
			decimal(stats.PositionMean(0)),
			decimal(stats.PositionMean(1)),
			strconv.Itoa(acts.Raises),
			strconv.Itoa(acts.Calls),
			strconv.Itoa(acts.Folds),
			fmt.Sprintf("%s / %s", decimal(acts.Aggression()), decimal(acts.Stickiness())),
			norm,
		)
	}
	b.WriteString(t.String())
	fmt.Fprintf(&b, "\n%.0f hands/sec, largest pot %d", res.HandsPerSecond(), res.Stats[0].MaxPot)
	return b.String()
}

func renderTournament(entries []match.Entry, res *match.TournamentResult) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Pairings"))
	b.WriteString("\n")
	for _, p := range res.Pairings {
		fmt.Fprintf(&b, "[%s] vs. [%s]: %s\n", entries[p.A].Name, entries[p.B].Name, signed(p.Result.Score))
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Standings"))
	b.WriteString("\n")
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "agent", "points", "won", "drawn", "lost", "chips")
	for i, s := range res.Standings {
		t.Row(
			strconv.Itoa(i+1),
			nameStyle.Render(s.Name),
			strconv.Itoa(s.Points),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Draws),
			strconv.Itoa(s.Losses),
			signed(s.Chips),
		)
	}
	b.WriteString(t.String())
	return b.String()
}
