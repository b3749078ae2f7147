package ai

import (
	"math"
	"math/rand"
	"testing"

	"github.com/bkktimber/AIND-Isolation/isolation"
)

// noDeadline is a clock that never expires.
func noDeadline() float64 { return math.MaxFloat64 }

// expired is a clock that is already past every threshold.
func expired() float64 { return 0 }

// randomPosition plays out up to plies random moves from an empty
// board, for property tests that need varied mid-game states.
func randomPosition(t *testing.T, seed int64, plies int) *isolation.Board {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	b := isolation.New(isolation.Config{})
	for i := 0; i < plies; i++ {
		moves := b.LegalMoves(b.ToMove())
		if len(moves) == 0 {
			return b
		}
		next, err := b.Apply(moves[r.Int31n(int32(len(moves)))])
		if err != nil {
			t.Fatal(err)
		}
		b = next
	}
	return b
}

// cornersFixture is the pinned scenario: a 3x3 board, center blocked,
// players on opposite corners, player1 to move.
func cornersFixture(t *testing.T) *isolation.Board {
	t.Helper()
	b, err := isolation.FromPosition(isolation.Config{Width: 3, Height: 3},
		[]isolation.Move{{Row: 1, Col: 1}},
		isolation.Move{Row: 0, Col: 0},
		isolation.Move{Row: 2, Col: 2},
		2)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// isolatedFixture is a position where the player to move has no legal
// move at all.
func isolatedFixture(t *testing.T) *isolation.Board {
	t.Helper()
	b, err := isolation.FromPosition(isolation.Config{Width: 7, Height: 7},
		[]isolation.Move{{Row: 1, Col: 2}, {Row: 2, Col: 1}},
		isolation.Move{Row: 0, Col: 0},
		isolation.Move{Row: 4, Col: 4},
		4)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func countingEval(calls *int, fn EvaluationFunc) EvaluationFunc {
	return func(b *isolation.Board, who isolation.Player) float64 {
		*calls++
		return fn(b, who)
	}
}

func contains(ms []isolation.Move, m isolation.Move) bool {
	for _, c := range ms {
		if c.Equal(m) {
			return true
		}
	}
	return false
}

// Pruning must never change the answer: at equal depth with the same
// evaluator, alpha-beta and plain minimax agree on the root value, and
// alpha-beta visits no more nodes.
func TestAlphaBetaMatchesMinimax(t *testing.T) {
	evals := map[string]EvaluationFunc{
		"diff":     MoveDifference,
		"ratio":    MoveRatio,
		"logratio": LogMoveRatio,
	}
	for seed := int64(1); seed <= 6; seed++ {
		b := randomPosition(t, seed, 4+int(seed)*2)
		if over, _ := b.GameOver(); over {
			continue
		}
		for name, eval := range evals {
			for depth := 1; depth <= 3; depth++ {
				var mmStats, abStats Stats
				mm := &searchContext{
					left: noDeadline, evaluate: eval,
					who: b.ToMove(), st: &mmStats,
				}
				ab := &searchContext{
					left: noDeadline, evaluate: eval,
					who: b.ToMove(), st: &abStats,
				}
				_, mmv, err := mm.minimaxRoot(b, depth)
				if err != nil {
					t.Fatal(err)
				}
				_, abv, err := ab.alphaBetaRoot(b, depth)
				if err != nil {
					t.Fatal(err)
				}
				if mmv != abv {
					t.Errorf("seed=%d eval=%s depth=%d: minimax=%v alphabeta=%v",
						seed, name, depth, mmv, abv)
				}
				if abStats.Visited > mmStats.Visited {
					t.Errorf("seed=%d eval=%s depth=%d: alphabeta visited %d > minimax %d",
						seed, name, depth, abStats.Visited, mmStats.Visited)
				}
			}
		}
	}
}
