package logs

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

type Repository struct {
	db *sqlx.DB
}

type Game struct {
	ID        int       `db:"id"`
	Timestamp time.Time `db:"time"`
	Width     int       `db:"width"`
	Height    int       `db:"height"`
	Player1   string    `db:"player1"`
	Player2   string    `db:"player2"`
	Winner    string    `db:"winner"`
	Reason    string    `db:"reason"`
	Moves     int       `db:"moves"`
}

func Open(db string) (*Repository, error) {
	sql, err := sqlx.Open("sqlite3", db)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	if _, err := sql.Exec(createGameTable); err != nil {
		sql.Close()
		return nil, errors.Wrap(err, "create game table")
	}
	if _, err := sql.Exec(createPlayerView); err != nil {
		sql.Close()
		return nil, errors.Wrap(err, "create player_games view")
	}
	return &Repository{db: sql}, nil
}

func (r *Repository) InsertGame(g *Game) error {
	_, err := r.db.NamedExec(insertStmt, g)
	return err
}

func (r *Repository) InsertGames(gs []*Game) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	for _, g := range gs {
		if _, err := txn.NamedExec(insertStmt, g); err != nil {
			return err
		}
	}
	return txn.Commit()
}

// Games returns every recorded game, oldest first.
func (r *Repository) Games() ([]Game, error) {
	var out []Game
	if err := r.db.Select(&out, selectGames); err != nil {
		return nil, errors.Wrap(err, "select games")
	}
	return out, nil
}

func (r *Repository) Close() {
	r.db.Close()
}
