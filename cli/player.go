package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/bkktimber/AIND-Isolation/ai"
	"github.com/bkktimber/AIND-Isolation/isolation"
)

func NewCLIPlayer(out io.Writer, in *bufio.Reader) Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *cliPlayer) GetMove(b *isolation.Board) isolation.Move {
	for {
		fmt.Fprintf(c.out, "%s> ", b.ToMove())
		line, err := c.in.ReadString('\n')
		if err != nil {
			panic(err)
		}
		m, err := ParseMove(line)
		if err != nil {
			fmt.Fprintln(c.out, "parse error:", err)
			continue
		}
		return m
	}
}

// ParseMove reads a move written as "ROW COL" or "ROW,COL".
func ParseMove(s string) (isolation.Move, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(fields) != 2 {
		return isolation.NoMove, errors.Errorf("want ROW COL, got %q", strings.TrimSpace(s))
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return isolation.NoMove, errors.Wrap(err, "row")
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return isolation.NoMove, errors.Wrap(err, "col")
	}
	return isolation.Move{Row: row, Col: col}, nil
}

// TimedPlayer adapts a search agent to the game loop, translating a
// fixed wall-clock budget per move into the milliseconds-remaining
// callback the agent polls.
type TimedPlayer struct {
	Limit time.Duration
	AI    ai.Player
}

func (t *TimedPlayer) GetMove(b *isolation.Board) isolation.Move {
	deadline := time.Now().Add(t.Limit)
	left := func() float64 {
		return float64(time.Until(deadline)) / float64(time.Millisecond)
	}
	return t.AI.GetMove(b, left)
}
