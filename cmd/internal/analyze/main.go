package analyze

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/pkg/errors"

	"github.com/bkktimber/AIND-Isolation/ai"
	"github.com/bkktimber/AIND-Isolation/cli"
	"github.com/bkktimber/AIND-Isolation/cmd/internal/opt"
	"github.com/bkktimber/AIND-Isolation/isolation"
)

type Command struct {
	width  int
	height int

	blocked string
	p1      string
	p2      string
	move    int

	engine string
	depth  int
	limit  time.Duration

	evaluate bool
	quiet    bool

	agent opt.Agent
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Analyze a single position" }
func (*Command) Usage() string {
	return `analyze [flags]

Reconstruct a position from flags, search it, and print the chosen
move together with its value and search statistics.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.width, "width", 7, "board width")
	flags.IntVar(&c.height, "height", 7, "board height")

	flags.StringVar(&c.blocked, "blocked", "", "blocked cells, e.g. \"0,0;1,2;3,3\"")
	flags.StringVar(&c.p1, "p1", "", "player1 position as \"ROW,COL\"")
	flags.StringVar(&c.p2, "p2", "", "player2 position as \"ROW,COL\"")
	flags.IntVar(&c.move, "move", 0, "ply count (player1 moves on even plies)")

	flags.StringVar(&c.engine, "engine", "alphabeta", "engine: alphabeta or minimax")
	flags.IntVar(&c.depth, "depth", 0, "minimax depth")
	flags.DurationVar(&c.limit, "limit", time.Second, "time budget for the search")

	flags.BoolVar(&c.evaluate, "evaluate", false, "only show the static evaluation")
	flags.BoolVar(&c.quiet, "quiet", false, "don't print the board diagram")

	c.agent.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := c.parsePosition()
	if err != nil {
		log.Printf("parse position: %v", err)
		return subcommands.ExitUsageError
	}
	if !c.quiet {
		cli.RenderBoard(nil, os.Stdout, b)
	}

	eval, err := c.agent.Evaluator()
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	if c.evaluate {
		fmt.Printf("evaluation (%s): %v\n", c.agent.Eval, eval(b, b.ToMove()))
		return subcommands.ExitSuccess
	}

	deadline := time.Now().Add(c.limit)
	left := func() float64 {
		return float64(time.Until(deadline)) / float64(time.Millisecond)
	}

	var m isolation.Move
	var v float64
	var st ai.Stats
	switch c.engine {
	case "alphabeta":
		a := ai.NewAlphaBeta(ai.AlphaBetaConfig{
			Timeout:  c.agent.Timeout,
			Debug:    c.agent.Debug,
			Evaluate: eval,
		})
		m, v, st = a.Analyze(b, left)
	case "minimax":
		a := ai.NewMinimax(ai.MinimaxConfig{
			Depth:    c.depth,
			Timeout:  c.agent.Timeout,
			Debug:    c.agent.Debug,
			Evaluate: eval,
		})
		m, v, st = a.Analyze(b, left)
	default:
		log.Printf("unknown engine: %q", c.engine)
		return subcommands.ExitUsageError
	}

	fmt.Printf("move=%s value=%v depth=%d visited=%d evaluated=%d terminal=%d cuts=%d\n",
		m, v, st.Depth, st.Visited, st.Evaluated, st.Terminal, st.CutNodes)
	return subcommands.ExitSuccess
}

func (c *Command) parsePosition() (*isolation.Board, error) {
	blocked, err := parseCells(c.blocked)
	if err != nil {
		return nil, errors.Wrap(err, "blocked")
	}
	p1, err := parseLoc(c.p1)
	if err != nil {
		return nil, errors.Wrap(err, "p1")
	}
	p2, err := parseLoc(c.p2)
	if err != nil {
		return nil, errors.Wrap(err, "p2")
	}
	cfg := isolation.Config{Width: c.width, Height: c.height}
	return isolation.FromPosition(cfg, blocked, p1, p2, c.move)
}

func parseLoc(s string) (isolation.Move, error) {
	if s == "" {
		return isolation.NoMove, nil
	}
	return cli.ParseMove(s)
}

func parseCells(s string) ([]isolation.Move, error) {
	if s == "" {
		return nil, nil
	}
	var out []isolation.Move
	for _, cell := range strings.Split(s, ";") {
		m, err := cli.ParseMove(cell)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
