package logs

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	repo, err := Open(filepath.Join(t.TempDir(), "games.db"))
	require.NoError(t, err)
	defer repo.Close()

	now := time.Now().Truncate(time.Second).UTC()
	games := []*Game{
		{
			Timestamp: now,
			Width:     7, Height: 7,
			Player1: "alphabeta", Player2: "minimax:3",
			Winner: "player1", Reason: "isolated", Moves: 31,
		},
		{
			Timestamp: now.Add(time.Minute),
			Width:     7, Height: 7,
			Player1: "alphabeta", Player2: "random",
			Winner: "player2", Reason: "forfeit", Moves: 12,
		},
	}
	require.NoError(t, repo.InsertGames(games))

	got, err := repo.Games()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alphabeta", got[0].Player1)
	assert.Equal(t, "player1", got[0].Winner)
	assert.Equal(t, 31, got[0].Moves)
	assert.Equal(t, "forfeit", got[1].Reason)
	assert.NotZero(t, got[0].ID)
	assert.True(t, got[1].ID > got[0].ID, "ids should be assigned in order")
}

func TestPlayerView(t *testing.T) {
	repo, err := Open(filepath.Join(t.TempDir(), "games.db"))
	require.NoError(t, err)
	defer repo.Close()

	require.NoError(t, repo.InsertGame(&Game{
		Timestamp: time.Now().UTC(),
		Width:     7, Height: 7,
		Player1: "p1", Player2: "p2",
		Winner: "player2", Reason: "isolated", Moves: 20,
	}))

	var wins []string
	err = repo.db.Select(&wins,
		`SELECT win FROM player_games WHERE player = 'p2'`)
	require.NoError(t, err)
	require.Equal(t, []string{"win"}, wins)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.db")
	repo, err := Open(path)
	require.NoError(t, err)
	repo.Close()

	repo, err = Open(path)
	require.NoError(t, err)
	repo.Close()
}
