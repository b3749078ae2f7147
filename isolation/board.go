package isolation

import "github.com/pkg/errors"

type Player byte

const (
	Player1 Player = iota
	Player2
)

func (p Player) String() string {
	if p == Player1 {
		return "player1"
	}
	return "player2"
}

type Config struct {
	Width  int
	Height int
}

const defaultSize = 7

// knight jump offsets, in the order legal moves are generated.
// Callers rely on this order for deterministic tie-breaking.
var directions = [8]Move{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// A Board is one ply of an Isolation game: the set of blocked cells,
// both players' positions, and the move count. Boards are never
// mutated in place; Apply returns a fresh Board and leaves the
// receiver intact, so a search may hold references at every level of
// the tree.
type Board struct {
	cfg   *Config
	cells []bool
	loc   [2]Move
	move  int
}

func New(g Config) *Board {
	if g.Width == 0 {
		g.Width = defaultSize
	}
	if g.Height == 0 {
		g.Height = defaultSize
	}
	return &Board{
		cfg:   &g,
		cells: make([]bool, g.Width*g.Height),
		loc:   [2]Move{NoMove, NoMove},
	}
}

// FromPosition constructs a Board in an arbitrary mid-game state:
// blocked cells, player locations, and ply count. Player locations
// count as blocked; pass NoMove for a player who has not entered the
// board yet. The ply count determines whose turn it is (player1 moves
// on even plies).
func FromPosition(g Config, blocked []Move, p1, p2 Move, move int) (*Board, error) {
	b := New(g)
	b.move = move
	for _, m := range blocked {
		if !b.inBounds(m) {
			return nil, errors.Errorf("blocked cell out of bounds: %s", m)
		}
		b.cells[b.index(m)] = true
	}
	b.loc[Player1] = p1
	b.loc[Player2] = p2
	for p, l := range b.loc {
		if l.Equal(NoMove) {
			continue
		}
		if !b.inBounds(l) {
			return nil, errors.Errorf("%s out of bounds: %s", Player(p), l)
		}
		b.cells[b.index(l)] = true
	}
	return b, nil
}

func (b *Board) Width() int  { return b.cfg.Width }
func (b *Board) Height() int { return b.cfg.Height }

// MoveCount reports the number of plies played so far. A count of
// zero means no move has been made by either player.
func (b *Board) MoveCount() int {
	return b.move
}

func (b *Board) ToMove() Player {
	if b.move%2 == 0 {
		return Player1
	}
	return Player2
}

func (b *Board) Opponent(p Player) Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Location reports where p currently stands, or NoMove if p has not
// entered the board.
func (b *Board) Location(p Player) Move {
	return b.loc[p]
}

// Blocked reports whether the cell is occupied or used up. Both
// players' current cells count as blocked.
func (b *Board) Blocked(m Move) bool {
	return b.cells[b.index(m)]
}

// Center is the middle cell of the board, the opening-book move.
// It is only meaningful on odd-dimension boards, where a true center
// exists.
func (b *Board) Center() Move {
	return Move{b.cfg.Height / 2, b.cfg.Width / 2}
}

// LegalMoves enumerates the moves available to p, in a fixed order: a
// player not yet on the board may enter any open cell, scanned
// row-major; otherwise the knight jumps from p's cell, in direction
// order, that land in bounds on an open cell.
func (b *Board) LegalMoves(p Player) []Move {
	at := b.loc[p]
	if at.Equal(NoMove) {
		var ms []Move
		for r := 0; r < b.cfg.Height; r++ {
			for c := 0; c < b.cfg.Width; c++ {
				m := Move{r, c}
				if !b.Blocked(m) {
					ms = append(ms, m)
				}
			}
		}
		return ms
	}
	var ms []Move
	for _, d := range directions {
		m := Move{at.Row + d.Row, at.Col + d.Col}
		if b.inBounds(m) && !b.Blocked(m) {
			ms = append(ms, m)
		}
	}
	return ms
}

// Apply plays m for the player to move and returns the resulting
// board. The receiver is unchanged.
func (b *Board) Apply(m Move) (*Board, error) {
	p := b.ToMove()
	if !b.legal(p, m) {
		return nil, errors.Errorf("illegal move for %s: %s", p, m)
	}
	next := &Board{
		cfg:   b.cfg,
		cells: make([]bool, len(b.cells)),
		loc:   b.loc,
		move:  b.move + 1,
	}
	copy(next.cells, b.cells)
	next.cells[next.index(m)] = true
	next.loc[p] = m
	return next, nil
}

// GameOver reports whether the player to move has been isolated, and
// if so who won.
func (b *Board) GameOver() (bool, Player) {
	p := b.ToMove()
	if len(b.LegalMoves(p)) == 0 {
		return true, b.Opponent(p)
	}
	return false, Player1
}

func (b *Board) IsLoser(p Player) bool {
	return p == b.ToMove() && len(b.LegalMoves(p)) == 0
}

func (b *Board) legal(p Player, m Move) bool {
	if !b.inBounds(m) || b.Blocked(m) {
		return false
	}
	at := b.loc[p]
	if at.Equal(NoMove) {
		return true
	}
	dr, dc := m.Row-at.Row, m.Col-at.Col
	for _, d := range directions {
		if dr == d.Row && dc == d.Col {
			return true
		}
	}
	return false
}

func (b *Board) inBounds(m Move) bool {
	return m.Row >= 0 && m.Row < b.cfg.Height &&
		m.Col >= 0 && m.Col < b.cfg.Width
}

func (b *Board) index(m Move) int {
	return m.Row*b.cfg.Width + m.Col
}
