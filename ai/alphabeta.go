package ai

import (
	"log"
	"math"
	"time"

	"github.com/bkktimber/AIND-Isolation/isolation"
)

type AlphaBetaConfig struct {
	// Timeout is the margin left on the clock when search gives up,
	// so the result can be returned before the hard deadline.
	Timeout time.Duration
	Debug   int

	Evaluate EvaluationFunc
}

// AlphaBetaAI picks moves by iterative-deepening minimax with
// alpha-beta pruning. It deepens until the clock runs out and answers
// with the deepest fully-completed iteration, so any budget long
// enough for a depth-1 pass yields a genuine move.
type AlphaBetaAI struct {
	cfg AlphaBetaConfig
	st  Stats
}

func NewAlphaBeta(cfg AlphaBetaConfig) *AlphaBetaAI {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Evaluate == nil {
		cfg.Evaluate = MoveDifference
	}
	return &AlphaBetaAI{cfg: cfg}
}

func (a *AlphaBetaAI) GetMove(b *isolation.Board, left TimeLeft) isolation.Move {
	mv, _, _ := a.Analyze(b, left)
	return mv
}

// Analyze deepens until the deadline trips and reports the last
// completed depth's move and value, plus statistics accumulated
// across all iterations.
func (a *AlphaBetaAI) Analyze(b *isolation.Board, left TimeLeft) (isolation.Move, float64, Stats) {
	a.st = Stats{}

	// Opening book: the first move of the game always takes the
	// center cell, no search needed.
	if b.MoveCount() == 0 {
		if len(b.LegalMoves(b.ToMove())) == 0 {
			return isolation.NoMove, math.Inf(-1), a.st
		}
		return b.Center(), 0, a.st
	}
	if len(b.LegalMoves(b.ToMove())) == 0 {
		return isolation.NoMove, math.Inf(-1), a.st
	}

	s := &searchContext{
		left:      left,
		threshold: float64(a.cfg.Timeout) / float64(time.Millisecond),
		evaluate:  a.cfg.Evaluate,
		who:       b.ToMove(),
		st:        &a.st,
	}
	best := isolation.NoMove
	bestValue := math.Inf(-1)
	top := time.Now()
	for depth := 1; ; depth++ {
		a.st.Depth = depth
		start := time.Now()
		mv, v, err := s.alphaBetaRoot(b, depth)
		if err != nil {
			if a.cfg.Debug > 0 {
				log.Printf("[alphabeta] timeout: depth=%d total=%s visited=%d cuts=%d",
					depth, time.Since(top), a.st.Visited, a.st.CutNodes)
			}
			break
		}
		best, bestValue = mv, v
		if a.cfg.Debug > 0 {
			log.Printf("[alphabeta] deepen: depth=%d val=%v m=%s time=%s total=%s evaluated=%d cuts=%d",
				depth, v, mv, time.Since(start), time.Since(top),
				a.st.Evaluated, a.st.CutNodes)
		}
	}
	return best, bestValue, a.st
}

// alphaBetaRoot is the maximizing top ply, kept separate from the
// min/max helpers so it can track which move produced the best value.
// Fail-hard: siblings are pruned once the running best meets beta.
func (s *searchContext) alphaBetaRoot(b *isolation.Board, depth int) (isolation.Move, float64, error) {
	if err := s.checkDeadline(); err != nil {
		return isolation.NoMove, 0, err
	}
	moves := b.LegalMoves(b.ToMove())
	if len(moves) == 0 {
		return isolation.NoMove, math.Inf(-1), nil
	}
	α, β := math.Inf(-1), math.Inf(1)
	best := isolation.NoMove
	bestValue := math.Inf(-1)
	for _, m := range moves {
		v, err := s.minABValue(apply(b, m), depth-1, α, β)
		if err != nil {
			return isolation.NoMove, 0, err
		}
		if v > bestValue {
			best, bestValue = m, v
			if v > α {
				α = v
			}
			if bestValue >= β {
				s.st.CutNodes++
				break
			}
		}
	}
	return best, bestValue, nil
}

func (s *searchContext) maxABValue(b *isolation.Board, depth int, α, β float64) (float64, error) {
	if err := s.checkDeadline(); err != nil {
		return 0, err
	}
	moves := b.LegalMoves(b.ToMove())
	if v, done := s.leaf(b, depth, moves); done {
		return v, nil
	}
	s.st.Visited++
	best := math.Inf(-1)
	for _, m := range moves {
		v, err := s.minABValue(apply(b, m), depth-1, α, β)
		if err != nil {
			return 0, err
		}
		if v > best {
			best = v
		}
		if best >= β {
			s.st.CutNodes++
			return best, nil
		}
		if best > α {
			α = best
		}
	}
	return best, nil
}

func (s *searchContext) minABValue(b *isolation.Board, depth int, α, β float64) (float64, error) {
	if err := s.checkDeadline(); err != nil {
		return 0, err
	}
	moves := b.LegalMoves(b.ToMove())
	if v, done := s.leaf(b, depth, moves); done {
		return v, nil
	}
	s.st.Visited++
	best := math.Inf(1)
	for _, m := range moves {
		v, err := s.maxABValue(apply(b, m), depth-1, α, β)
		if err != nil {
			return 0, err
		}
		if v < best {
			best = v
		}
		if best <= α {
			s.st.CutNodes++
			return best, nil
		}
		if best < β {
			β = best
		}
	}
	return best, nil
}
