package ai

import (
	"fmt"

	"github.com/bkktimber/AIND-Isolation/isolation"
)

// searchContext is the transient state for one GetMove call: the
// harness clock, the abort threshold, the evaluator, and the identity
// of the agent the search is scoring for. It is threaded explicitly
// through the recursion and discarded when the call returns.
type searchContext struct {
	left      TimeLeft
	threshold float64 // milliseconds
	evaluate  EvaluationFunc
	who       isolation.Player
	st        *Stats
}

// checkDeadline polls the clock. Every recursive entry point calls it
// first, so the longest the search can overrun is a single node.
func (s *searchContext) checkDeadline() error {
	if s.left() < s.threshold {
		return ErrSearchTimeout
	}
	return nil
}

// leaf reports whether the node is a frontier or terminal node, and
// scores it from the searching agent's perspective if so.
func (s *searchContext) leaf(b *isolation.Board, depth int, moves []isolation.Move) (float64, bool) {
	if depth > 0 && len(moves) > 0 {
		return 0, false
	}
	s.st.Evaluated++
	if len(moves) == 0 {
		s.st.Terminal++
	}
	return s.evaluate(b, s.who), true
}

// apply plays a move the board itself generated, so failure means the
// board collaborator is broken; that is fatal, not a search result.
func apply(b *isolation.Board, m isolation.Move) *isolation.Board {
	child, err := b.Apply(m)
	if err != nil {
		panic(fmt.Sprintf("apply %s: %v", m, err))
	}
	return child
}
