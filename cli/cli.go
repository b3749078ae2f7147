package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bkktimber/AIND-Isolation/isolation"
)

// Player is a source of moves for the game loop. Search agents plug
// in through TimedPlayer; humans through NewCLIPlayer.
type Player interface {
	GetMove(b *isolation.Board) isolation.Move
}

type Glyphs struct {
	Empty   string
	Blocked string
	Player1 string
	Player2 string
}

var DefaultGlyphs = Glyphs{
	Empty:   "-",
	Blocked: "X",
	Player1: "1",
	Player2: "2",
}

var UnicodeGlyphs = Glyphs{
	Empty:   "·",
	Blocked: "▓",
	Player1: "♞",
	Player2: "♘",
}

type CLI struct {
	moves []isolation.Move
	b     *isolation.Board

	Config  isolation.Config
	Glyphs  *Glyphs
	Out     io.Writer
	Player1 Player
	Player2 Player
}

// Play runs a full game and returns the final position. A player who
// has no legal move loses; a player whose move source returns the
// forfeit sentinel loses on the spot.
func (c *CLI) Play() *isolation.Board {
	c.moves = nil
	c.b = isolation.New(c.Config)
	for {
		c.render()
		if over, winner := c.b.GameOver(); over {
			fmt.Fprintf(c.Out, "Game over! %s is isolated; %s wins after %d moves.\n",
				c.b.ToMove(), winner, c.b.MoveCount())
			return c.b
		}
		var m isolation.Move
		if c.b.ToMove() == isolation.Player1 {
			m = c.Player1.GetMove(c.b)
		} else {
			m = c.Player2.GetMove(c.b)
		}
		if m.Equal(isolation.NoMove) {
			fmt.Fprintf(c.Out, "Game over! %s forfeits; %s wins after %d moves.\n",
				c.b.ToMove(), c.b.Opponent(c.b.ToMove()), c.b.MoveCount())
			return c.b
		}
		b, e := c.b.Apply(m)
		if e != nil {
			fmt.Fprintln(c.Out, "illegal move:", e)
			continue
		}
		fmt.Fprintf(c.Out, "%d. %s %s\n", c.b.MoveCount()+1, c.b.ToMove(), m)
		c.b = b
		c.moves = append(c.moves, m)
	}
}

func (c *CLI) Moves() []isolation.Move {
	return c.moves
}

func (c *CLI) render() {
	RenderBoard(c.Glyphs, c.Out, c.b)
}

func RenderBoard(g *Glyphs, out io.Writer, b *isolation.Board) {
	if g == nil {
		g = &DefaultGlyphs
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "[%s to play]\n", b.ToMove())
	w := tabwriter.NewWriter(out, 2, 4, 1, ' ', 0)
	fmt.Fprintf(w, "\t")
	for c := 0; c < b.Width(); c++ {
		fmt.Fprintf(w, "%d\t", c)
	}
	fmt.Fprintf(w, "\n")
	for r := 0; r < b.Height(); r++ {
		fmt.Fprintf(w, "%d\t", r)
		for c := 0; c < b.Width(); c++ {
			m := isolation.Move{Row: r, Col: c}
			var glyph string
			switch {
			case b.Location(isolation.Player1).Equal(m):
				glyph = g.Player1
			case b.Location(isolation.Player2).Equal(m):
				glyph = g.Player2
			case b.Blocked(m):
				glyph = g.Blocked
			default:
				glyph = g.Empty
			}
			fmt.Fprintf(w, "%s\t", glyph)
		}
		fmt.Fprintf(w, "\n")
	}
	w.Flush()
}
