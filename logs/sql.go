package logs

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  id integer primary key autoincrement,
  time datetime,
  width int,
  height int,
  player1 varchar,
  player2 varchar,
  winner string,
  reason string,
  moves int
)`

const createPlayerView = `
CREATE VIEW IF NOT EXISTS player_games (
  id, player, opponent, seat, win, reason, moves
) AS
SELECT id, player2, player1, 'player2',
       CASE winner WHEN 'player1' THEN 'lose' WHEN 'player2' THEN 'win' ELSE 'tie' END,
       reason, moves
 FROM games
UNION
SELECT id, player1, player2, 'player1',
       CASE winner WHEN 'player1' THEN 'win' WHEN 'player2' THEN 'lose' ELSE 'tie' END,
       reason, moves
 FROM games
`

const insertStmt = `
INSERT INTO games (time, width, height, player1, player2, winner, reason, moves)
VALUES (:time, :width, :height, :player1, :player2, :winner, :reason, :moves)
`

const selectGames = `
SELECT id, time, width, height, player1, player2, winner, reason, moves
  FROM games ORDER BY id
`
