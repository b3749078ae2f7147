package isolation

import "fmt"

// A Move is a board coordinate, row-major from the top-left corner.
type Move struct {
	Row, Col int
}

// NoMove is the forfeit sentinel: an agent with no legal move (or no
// time left to find one) surrenders by returning it.
var NoMove = Move{-1, -1}

func (m Move) Equal(rhs Move) bool {
	return m.Row == rhs.Row && m.Col == rhs.Col
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}
