package ai

import (
	"errors"

	"github.com/bkktimber/AIND-Isolation/isolation"
)

// TimeLeft reports the wall-clock milliseconds remaining for the
// current move. The game harness supplies one per GetMove call;
// returning with the clock below zero forfeits the game.
type TimeLeft func() float64

// Player is anything that can pick a move for a position under a time
// budget. An agent with no legal move, or no time left to find one,
// returns isolation.NoMove.
type Player interface {
	GetMove(b *isolation.Board, left TimeLeft) isolation.Move
}

// ErrSearchTimeout aborts a search when the clock runs below the
// agent's configured threshold. It propagates out of every recursive
// frame and is handled once, inside GetMove; callers never see it.
var ErrSearchTimeout = errors.New("search timeout")

// Stats counts work done by a single search.
type Stats struct {
	Depth     int
	Visited   uint64
	Evaluated uint64
	Terminal  uint64
	CutNodes  uint64
}
