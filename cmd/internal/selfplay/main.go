package selfplay

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"

	"github.com/bkktimber/AIND-Isolation/ai"
	"github.com/bkktimber/AIND-Isolation/cmd/internal/opt"
	"github.com/bkktimber/AIND-Isolation/isolation"
	"github.com/bkktimber/AIND-Isolation/logs"
)

type Command struct {
	p1 string
	p2 string

	games  int
	cutoff int
	swap   bool

	width  int
	height int

	limit   time.Duration
	threads int

	db      string
	verbose bool

	agent opt.Agent
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "alphabeta", "player1 spec")
	flags.StringVar(&c.p2, "p2", "minimax:3", "player2 spec")

	flags.IntVar(&c.games, "games", 10, "number of games to play")
	flags.IntVar(&c.cutoff, "cutoff", 200, "cut games off after this many plies")
	flags.BoolVar(&c.swap, "swap", true, "alternate who moves first")

	flags.IntVar(&c.width, "width", 7, "board width")
	flags.IntVar(&c.height, "height", 7, "board height")

	flags.DurationVar(&c.limit, "limit", 150*time.Millisecond, "time budget per move")
	flags.IntVar(&c.threads, "threads", 4, "number of parallel games")

	flags.StringVar(&c.db, "db", "", "record results to this sqlite database")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")

	c.agent.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := &Config{
		Games:   c.games,
		Swap:    c.swap,
		Threads: c.threads,
		Cutoff:  c.cutoff,
		Limit:   c.limit,
		Board:   isolation.Config{Width: c.width, Height: c.height},
		Verbose: c.verbose,
		P1:      c.factory(c.p1),
		P2:      c.factory(c.p2),
	}
	st, err := Simulate(ctx, cfg)
	if err != nil {
		log.Printf("simulate: %v", err)
		return subcommands.ExitFailure
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "\twins\tfirst\tsecond\tforfeits\n")
	fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", c.p1,
		st.Players[0].Wins, st.Players[0].FirstWins,
		st.Players[0].SecondWins, st.Players[0].Forfeits)
	fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", c.p2,
		st.Players[1].Wins, st.Players[1].FirstWins,
		st.Players[1].SecondWins, st.Players[1].Forfeits)
	w.Flush()
	if st.Cutoff != 0 {
		fmt.Printf("cutoff: %d\n", st.Cutoff)
	}

	if c.db != "" {
		if err := c.record(&st); err != nil {
			log.Printf("record results: %v", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func (c *Command) factory(spec string) func() ai.Player {
	return func() ai.Player {
		p, err := c.agent.BuildPlayer(spec)
		if err != nil {
			log.Fatalf("player %q: %v", spec, err)
		}
		return p
	}
}

func (c *Command) record(st *Stats) error {
	repo, err := logs.Open(c.db)
	if err != nil {
		return err
	}
	defer repo.Close()

	games := make([]*logs.Game, 0, len(st.Games))
	now := time.Now().UTC()
	for _, r := range st.Games {
		g := &logs.Game{
			Timestamp: now,
			Width:     c.width,
			Height:    c.height,
			Player1:   c.p1,
			Player2:   c.p2,
			Reason:    r.Reason,
			Moves:     r.Moves,
		}
		switch r.Winner {
		case 1:
			g.Winner = "player1"
		case 2:
			g.Winner = "player2"
		}
		games = append(games, g)
	}
	return repo.InsertGames(games)
}
