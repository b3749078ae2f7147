package selfplay

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bkktimber/AIND-Isolation/ai"
	"github.com/bkktimber/AIND-Isolation/isolation"
)

func TestSimulateRandomAgents(t *testing.T) {
	var seed int64
	cfg := &Config{
		Games:   6,
		Swap:    true,
		Threads: 2,
		Limit:   10 * time.Millisecond,
		Board:   isolation.Config{Width: 5, Height: 5},
		P1: func() ai.Player {
			return ai.NewRandom(atomic.AddInt64(&seed, 1))
		},
		P2: func() ai.Player {
			return ai.NewRandom(atomic.AddInt64(&seed, 1) + 100)
		},
	}
	st, err := Simulate(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := st.Count(); got != 6 {
		t.Errorf("games played: got %d, want 6", got)
	}
	if len(st.Games) != 6 {
		t.Errorf("results recorded: got %d, want 6", len(st.Games))
	}
	for _, r := range st.Games {
		if r.Winner < 0 || r.Winner > 2 {
			t.Errorf("game %d: bad winner %d", r.ID, r.Winner)
		}
		if r.Moves == 0 {
			t.Errorf("game %d: no moves recorded", r.ID)
		}
	}
}

func TestSimulateSearchAgents(t *testing.T) {
	if testing.Short() {
		t.Skip("plays full games")
	}
	cfg := &Config{
		Games: 2,
		Swap:  true,
		Limit: 20 * time.Millisecond,
		Board: isolation.Config{Width: 5, Height: 5},
		P1: func() ai.Player {
			return ai.NewAlphaBeta(ai.AlphaBetaConfig{})
		},
		P2: func() ai.Player {
			return ai.NewMinimax(ai.MinimaxConfig{Depth: 2})
		},
	}
	st, err := Simulate(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := st.Count(); got != 2 {
		t.Errorf("games played: got %d, want 2", got)
	}
}

func TestAgentIndex(t *testing.T) {
	cases := []struct {
		seat    isolation.Player
		p1first bool
		want    int
	}{
		{isolation.Player1, true, 1},
		{isolation.Player2, true, 2},
		{isolation.Player1, false, 2},
		{isolation.Player2, false, 1},
	}
	for _, tc := range cases {
		if got := agentIndex(tc.seat, tc.p1first); got != tc.want {
			t.Errorf("agentIndex(%s, %v): got %d, want %d",
				tc.seat, tc.p1first, got, tc.want)
		}
	}
}
