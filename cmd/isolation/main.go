package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/bkktimber/AIND-Isolation/cmd/internal/analyze"
	"github.com/bkktimber/AIND-Isolation/cmd/internal/play"
	"github.com/bkktimber/AIND-Isolation/cmd/internal/selfplay"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
