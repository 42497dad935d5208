package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"badugi.hcl" type:"path" help:"HCL configuration file"`
	Debug    bool   `help:"Enable debug logging (every action of every hand)"`
	JSONLogs bool   `name:"json-logs" help:"Log JSON instead of console output"`
}

type CLI struct {
	Globals

	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Match      MatchCmd         `cmd:"" help:"Play a heads-up match between two agents"`
	Tournament TournamentCmd    `cmd:"" help:"Play every configured agent against every other"`
	Agents     AgentsCmd        `cmd:"" help:"List the built-in strategies"`
}

func main() {
	// A missing .env is fine; BADUGI_* variables may come from the shell.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("badugi"),
		kong.Description("Heads-up fixed-limit badugi with learning agents"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
