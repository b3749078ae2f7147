package ai

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkktimber/AIND-Isolation/isolation"
)

func symmetricFixture(t *testing.T) *isolation.Board {
	t.Helper()
	b, err := isolation.FromPosition(isolation.Config{Width: 7, Height: 7},
		nil,
		isolation.Move{Row: 2, Col: 2},
		isolation.Move{Row: 4, Col: 4},
		2)
	require.NoError(t, err)
	return b
}

func TestMoveDifferenceSymmetric(t *testing.T) {
	b := symmetricFixture(t)
	assert.Equal(t, 0.0, MoveDifference(b, isolation.Player1))
	assert.Equal(t, 0.0, MoveDifference(b, isolation.Player2))
}

func TestRatioInfinities(t *testing.T) {
	// player1 cornered with both escapes blocked
	b, err := isolation.FromPosition(isolation.Config{Width: 7, Height: 7},
		[]isolation.Move{{Row: 1, Col: 2}, {Row: 2, Col: 1}},
		isolation.Move{Row: 0, Col: 0},
		isolation.Move{Row: 4, Col: 4},
		4)
	require.NoError(t, err)

	// Exact IEEE infinities, not merely large values: downstream
	// alpha-beta comparisons depend on them.
	assert.True(t, math.IsInf(MoveRatio(b, isolation.Player1), -1))
	assert.True(t, math.IsInf(MoveRatio(b, isolation.Player2), 1))
	assert.True(t, math.IsInf(LogMoveRatio(b, isolation.Player1), -1))
	assert.True(t, math.IsInf(LogMoveRatio(b, isolation.Player2), 1))
}

func TestRatioFinite(t *testing.T) {
	b := symmetricFixture(t)
	assert.Equal(t, 1.0, MoveRatio(b, isolation.Player1))
	assert.Equal(t, 0.0, LogMoveRatio(b, isolation.Player1))
}

func TestLogRatioCompresses(t *testing.T) {
	// player1 at (1,1) near the corner, player2 in the open center
	b, err := isolation.FromPosition(isolation.Config{Width: 7, Height: 7},
		nil,
		isolation.Move{Row: 1, Col: 1},
		isolation.Move{Row: 3, Col: 3},
		2)
	require.NoError(t, err)

	ratio := MoveRatio(b, isolation.Player1)
	logRatio := LogMoveRatio(b, isolation.Player1)
	require.False(t, math.IsInf(ratio, 0))
	assert.InDelta(t, math.Log(ratio), logRatio, 1e-12)
	assert.Less(t, ratio, 1.0, "the cornered player should be behind")
	assert.Less(t, logRatio, 0.0)
}
