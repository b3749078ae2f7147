package ai

import (
	"math/rand"

	"github.com/bkktimber/AIND-Isolation/isolation"
)

// RandomAI plays a uniformly random legal move. Useful as a tournament
// baseline and for generating test positions.
type RandomAI struct {
	r *rand.Rand
}

func NewRandom(seed int64) *RandomAI {
	return &RandomAI{
		r: rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomAI) GetMove(b *isolation.Board, _ TimeLeft) isolation.Move {
	moves := b.LegalMoves(b.ToMove())
	if len(moves) == 0 {
		return isolation.NoMove
	}
	return moves[r.r.Int31n(int32(len(moves)))]
}
