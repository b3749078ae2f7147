package selfplay

import (
	"log"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"

	"github.com/bkktimber/AIND-Isolation/ai"
	"github.com/bkktimber/AIND-Isolation/isolation"
)

type Config struct {
	Games   int
	Swap    bool
	Threads int
	Cutoff  int
	Limit   time.Duration
	Board   isolation.Config
	Verbose bool

	// Agents keep per-search state, so each worker builds its own
	// pair from these factories.
	P1, P2 func() ai.Player
}

type Result struct {
	ID      int
	P1First bool
	Moves   int
	// Winner is the 1-based agent index, or 0 when the game hit
	// the ply cutoff.
	Winner int
	Reason string // "isolated", "forfeit", or "cutoff"
}

type Stats struct {
	Players [2]struct {
		Wins       int
		FirstWins  int
		SecondWins int
		Forfeits   int
	}
	Cutoff int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.Players[0].Wins + s.Players[1].Wins + s.Cutoff
}

type gameSpec struct {
	i       int
	p1first bool
}

// Simulate plays the configured number of games between the two
// agents, in parallel, and aggregates the outcomes.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	if c.Threads == 0 {
		c.Threads = 1
	}
	if c.Cutoff == 0 {
		c.Cutoff = 200
	}

	specs := make(chan gameSpec)
	results := make(chan Result)

	grp, gctx := errgroup.WithContext(ctx)
	for i := 0; i < c.Threads; i++ {
		grp.Go(func() error {
			return worker(gctx, c, specs, results)
		})
	}
	go func() {
		defer close(specs)
		for g := 0; g < c.Games; g++ {
			spec := gameSpec{i: g, p1first: !c.Swap || g%2 == 0}
			select {
			case specs <- spec:
			case <-gctx.Done():
				return
			}
		}
	}()

	done := make(chan Stats)
	go func() {
		var st Stats
		for r := range results {
			if c.Verbose {
				log.Printf("game n=%d plies=%d p1first=%v winner=%d reason=%s",
					r.ID, r.Moves, r.P1First, r.Winner, r.Reason)
			}
			if r.Winner == 0 {
				st.Cutoff++
			} else {
				pst := &st.Players[r.Winner-1]
				pst.Wins++
				wonFirst := (r.Winner == 1) == r.P1First
				if wonFirst {
					pst.FirstWins++
				} else {
					pst.SecondWins++
				}
				if r.Reason == "forfeit" {
					pst.Forfeits++
				}
			}
			st.Games = append(st.Games, r)
		}
		done <- st
	}()

	err := grp.Wait()
	close(results)
	st := <-done
	return st, err
}

func worker(ctx context.Context, c *Config, specs <-chan gameSpec, out chan<- Result) error {
	a1, a2 := c.P1(), c.P2()
	for spec := range specs {
		r := playGame(c, a1, a2, spec)
		select {
		case out <- r:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func playGame(c *Config, a1, a2 ai.Player, spec gameSpec) Result {
	first, second := a1, a2
	if !spec.p1first {
		first, second = second, first
	}
	b := isolation.New(c.Board)
	r := Result{ID: spec.i, P1First: spec.p1first}
	for {
		if b.MoveCount() >= c.Cutoff {
			r.Reason = "cutoff"
			break
		}
		if over, winner := b.GameOver(); over {
			r.Winner = agentIndex(winner, spec.p1first)
			r.Reason = "isolated"
			break
		}
		agent := first
		if b.ToMove() == isolation.Player2 {
			agent = second
		}
		deadline := time.Now().Add(c.Limit)
		m := agent.GetMove(b, func() float64 {
			return float64(time.Until(deadline)) / float64(time.Millisecond)
		})
		if m.Equal(isolation.NoMove) {
			r.Winner = agentIndex(b.Opponent(b.ToMove()), spec.p1first)
			r.Reason = "forfeit"
			break
		}
		next, err := b.Apply(m)
		if err != nil {
			// an illegal move forfeits the game
			log.Printf("game n=%d: illegal move %s: %v", spec.i, m, err)
			r.Winner = agentIndex(b.Opponent(b.ToMove()), spec.p1first)
			r.Reason = "forfeit"
			break
		}
		b = next
	}
	r.Moves = b.MoveCount()
	return r
}

// agentIndex maps a board seat back to the 1-based agent number,
// accounting for color swaps.
func agentIndex(seat isolation.Player, p1first bool) int {
	if (seat == isolation.Player1) == p1first {
		return 1
	}
	return 2
}
