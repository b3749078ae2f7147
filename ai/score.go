package ai

import (
	"math"

	"github.com/bkktimber/AIND-Isolation/isolation"
)

// An EvaluationFunc estimates how favorable a position is for the
// given player. Larger is better for that player.
type EvaluationFunc func(b *isolation.Board, who isolation.Player) float64

// MoveDifference scores a position by mobility edge: the number of
// who's legal moves minus the opponent's. Zero on a symmetric
// position, bounded by the board size.
func MoveDifference(b *isolation.Board, who isolation.Player) float64 {
	own := len(b.LegalMoves(who))
	opp := len(b.LegalMoves(b.Opponent(who)))
	return float64(own - opp)
}

// MoveRatio scores a position by the ratio of who's legal moves to
// the opponent's. A player with no moves has lost, so the decided
// cases short-circuit to exact IEEE infinities before the division.
func MoveRatio(b *isolation.Board, who isolation.Player) float64 {
	own := len(b.LegalMoves(who))
	opp := len(b.LegalMoves(b.Opponent(who)))
	switch {
	case opp == 0:
		return math.Inf(1)
	case own == 0:
		return math.Inf(-1)
	}
	return float64(own) / float64(opp)
}

// LogMoveRatio is MoveRatio compressed through the natural logarithm:
// near-even positions score near zero, and small mobility edges stay
// salient instead of being dwarfed by lopsided ratios. The decided
// cases short-circuit to the same infinities, so a zero denominator
// never reaches the logarithm.
func LogMoveRatio(b *isolation.Board, who isolation.Player) float64 {
	own := len(b.LegalMoves(who))
	opp := len(b.LegalMoves(b.Opponent(who)))
	switch {
	case opp == 0:
		return math.Inf(1)
	case own == 0:
		return math.Inf(-1)
	}
	return math.Log(float64(own) / float64(opp))
}
