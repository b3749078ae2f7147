package play

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/bkktimber/AIND-Isolation/cli"
	"github.com/bkktimber/AIND-Isolation/cmd/internal/opt"
	"github.com/bkktimber/AIND-Isolation/isolation"
)

type Command struct {
	player1 string
	player2 string
	width   int
	height  int
	limit   time.Duration

	unicode bool

	agent opt.Agent
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Isolation from the command line" }
func (*Command) Usage() string {
	return `play

Play Isolation on the command line, against a human or AI.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.player1, "player1", "human", "player1: human, alphabeta, minimax[:depth], random")
	flags.StringVar(&c.player2, "player2", "alphabeta", "player2: human, alphabeta, minimax[:depth], random")
	flags.IntVar(&c.width, "width", 7, "board width")
	flags.IntVar(&c.height, "height", 7, "board height")
	flags.DurationVar(&c.limit, "limit", 150*time.Millisecond, "ai time budget per move")

	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")

	c.agent.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := bufio.NewReader(os.Stdin)
	st := &cli.CLI{
		Config:  isolation.Config{Width: c.width, Height: c.height},
		Out:     os.Stdout,
		Player1: c.parsePlayer(in, c.player1),
		Player2: c.parsePlayer(in, c.player2),
		Glyphs:  glyphs(c.unicode),
	}
	st.Play()
	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

func (c *Command) parsePlayer(in *bufio.Reader, s string) cli.Player {
	if s == "human" {
		return cli.NewCLIPlayer(os.Stdout, in)
	}
	p, err := c.agent.BuildPlayer(s)
	if err != nil {
		log.Fatalf("player %q: %v", s, err)
	}
	return &cli.TimedPlayer{Limit: c.limit, AI: p}
}
