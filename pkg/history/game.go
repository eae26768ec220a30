package history

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"holdem-engine/pkg/db"
	"holdem-engine/pkg/holdem"
)

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"

// ErrDuplicateKey happens when an insert violates a unique constraint
var ErrDuplicateKey = errors.New("duplicate key constraint violation")

const gameColumns = `
games.id,
games.small_blind,
games.big_blind,
games.created`

// Game is a record in the `games` table
type Game struct {
	ID         string    `json:"id"`
	SmallBlind int       `json:"smallBlind"`
	BigBlind   int       `json:"bigBlind"`
	Created    time.Time `json:"created"`
}

// GamePlayer is a record in the `game_players` table
type GamePlayer struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	IsAI     bool   `json:"isAI"`
	Seat     int    `json:"seat"`
}

func getGameByRow(row db.Scanner) (*Game, error) {
	var game Game
	if err := row.Scan(&game.ID, &game.SmallBlind, &game.BigBlind, &game.Created); err != nil {
		return nil, err
	}

	return &game, nil
}

// CreateGame records a new game and its seating order
func CreateGame(ctx context.Context, id string, smallBlind, bigBlind int, players []*holdem.Player) (*Game, error) {
	const query = `
INSERT INTO games (id, small_blind, big_blind)
VALUES ($1, $2, $3)
RETURNING ` + gameColumns

	row := db.Instance().QueryRowContext(ctx, query, id, smallBlind, bigBlind)
	game, err := getGameByRow(row)
	if err != nil {
		return nil, translateError(err)
	}

	const playerQuery = `
INSERT INTO game_players (game_id, player_id, name, is_ai, seat)
VALUES ($1, $2, $3, $4, $5)`

	for seat, player := range players {
		if _, err := db.Instance().ExecContext(ctx, playerQuery, id, player.ID, player.Name, player.AI, seat); err != nil {
			return nil, translateError(err)
		}
	}

	return game, nil
}

// GetGameByID returns the game with the given id
func GetGameByID(ctx context.Context, id string) (*Game, error) {
	const query = `
SELECT ` + gameColumns + `
FROM games
WHERE id = $1`

	row := db.Instance().QueryRowContext(ctx, query, id)
	return getGameByRow(row)
}

// Players returns the seating order for the game
func (g *Game) Players(ctx context.Context) ([]*GamePlayer, error) {
	const query = `
SELECT game_id, player_id, name, is_ai, seat
FROM game_players
WHERE game_id = $1
ORDER BY seat`

	rows, err := db.Instance().QueryContext(ctx, query, g.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []*GamePlayer
	for rows.Next() {
		var player GamePlayer
		if err := rows.Scan(&player.GameID, &player.PlayerID, &player.Name, &player.IsAI, &player.Seat); err != nil {
			return nil, err
		}

		players = append(players, &player)
	}

	return players, rows.Err()
}

func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqDuplicateKeyErrorCode {
		return ErrDuplicateKey
	}

	return err
}
