package ai

import (
	"log"
	"math"
	"time"

	"github.com/bkktimber/AIND-Isolation/isolation"
)

const (
	defaultDepth   = 3
	defaultTimeout = 10 * time.Millisecond
)

type MinimaxConfig struct {
	// Depth is the fixed search depth in plies.
	Depth int
	// Timeout is the margin left on the clock when search gives up,
	// so the result can be returned before the hard deadline.
	Timeout time.Duration
	Debug   int

	Evaluate EvaluationFunc
}

// MinimaxAI picks moves by exhaustive fixed-depth minimax. It makes a
// single attempt at its configured depth: if the clock expires
// mid-search it forfeits rather than falling back to a shallower
// answer. That asymmetry with AlphaBetaAI is deliberate.
type MinimaxAI struct {
	cfg MinimaxConfig
	st  Stats
}

func NewMinimax(cfg MinimaxConfig) *MinimaxAI {
	if cfg.Depth == 0 {
		cfg.Depth = defaultDepth
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Evaluate == nil {
		cfg.Evaluate = MoveDifference
	}
	return &MinimaxAI{cfg: cfg}
}

func (m *MinimaxAI) GetMove(b *isolation.Board, left TimeLeft) isolation.Move {
	mv, _, _ := m.Analyze(b, left)
	return mv
}

// Analyze runs one fixed-depth search and reports the chosen move,
// its minimax value, and search statistics. On timeout the move is
// the forfeit sentinel.
func (m *MinimaxAI) Analyze(b *isolation.Board, left TimeLeft) (isolation.Move, float64, Stats) {
	m.st = Stats{Depth: m.cfg.Depth}
	s := &searchContext{
		left:      left,
		threshold: float64(m.cfg.Timeout) / float64(time.Millisecond),
		evaluate:  m.cfg.Evaluate,
		who:       b.ToMove(),
		st:        &m.st,
	}
	start := time.Now()
	best, v, err := s.minimaxRoot(b, m.cfg.Depth)
	if err != nil {
		if m.cfg.Debug > 0 {
			log.Printf("[minimax] timeout: depth=%d time=%s visited=%d",
				m.cfg.Depth, time.Since(start), m.st.Visited)
		}
		return isolation.NoMove, math.Inf(-1), m.st
	}
	if m.cfg.Debug > 0 {
		log.Printf("[minimax] depth=%d val=%v m=%s time=%s visited=%d evaluated=%d",
			m.cfg.Depth, v, best, time.Since(start), m.st.Visited, m.st.Evaluated)
	}
	return best, v, m.st
}

// minimaxRoot is the maximizing top ply, kept separate from the
// min/max helpers so it can track which move produced the best value.
func (s *searchContext) minimaxRoot(b *isolation.Board, depth int) (isolation.Move, float64, error) {
	if err := s.checkDeadline(); err != nil {
		return isolation.NoMove, 0, err
	}
	moves := b.LegalMoves(b.ToMove())
	if len(moves) == 0 {
		return isolation.NoMove, math.Inf(-1), nil
	}
	best := isolation.NoMove
	bestValue := math.Inf(-1)
	for _, m := range moves {
		v, err := s.minValue(apply(b, m), depth-1)
		if err != nil {
			return isolation.NoMove, 0, err
		}
		if v > bestValue {
			best, bestValue = m, v
		}
	}
	return best, bestValue, nil
}

func (s *searchContext) maxValue(b *isolation.Board, depth int) (float64, error) {
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
		v, err := s.minValue(apply(b, m), depth-1)
		if err != nil {
			return 0, err
		}
		if v > best {
			best = v
		}
	}
	return best, nil
}

func (s *searchContext) minValue(b *isolation.Board, depth int) (float64, error) {
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
		v, err := s.maxValue(apply(b, m), depth-1)
		if err != nil {
			return 0, err
		}
		if v < best {
			best = v
		}
	}
	return best, nil
}
