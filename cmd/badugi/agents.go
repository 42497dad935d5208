package main

import (
	"fmt"
	"strings"

	"github.com/lox/badugibots/internal/bot"
)

type AgentsCmd struct{}

func (c *AgentsCmd) Run(g *Globals) error {
	for _, name := range bot.Default.Names() {
		help, aliases := bot.Default.Help(name)
		line := nameStyle.Render(name)
		if len(aliases) > 0 {
			line += dimStyle.Render(" (" + strings.Join(aliases, ", ") + ")")
		}
		fmt.Printf("%s\n    %s\n", line, help)
	}
	return nil
}
