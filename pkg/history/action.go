package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"holdem-engine/pkg/db"
	"holdem-engine/pkg/holdem"
)

// ErrNoActions is returned when a game has no recorded actions yet
var ErrNoActions = errors.New("game has no recorded actions")

const actionColumns = `
game_actions.game_id,
game_actions.sequence_number,
game_actions.player_id,
game_actions.player_name,
game_actions.action,
game_actions.amount,
game_actions.phase,
game_actions.reason,
game_actions.game_state,
game_actions.created`

// Action is a record in the `game_actions` table. GameState is the full state
// snapshot taken after the action applied; replaying a game is reading these
// back in sequence order.
type Action struct {
	GameID         string          `json:"gameId"`
	SequenceNumber int             `json:"sequenceNumber"`
	PlayerID       string          `json:"playerId"`
	PlayerName     string          `json:"playerName"`
	Action         string          `json:"action"`
	Amount         int             `json:"amount"`
	Phase          string          `json:"phase"`
	Reason         string          `json:"reason,omitempty"`
	GameState      json.RawMessage `json:"gameState"`
	Created        time.Time       `json:"created"`
}

// Record is the input for RecordAction. Phase is the betting phase the action
// happened in; when empty it is taken from the snapshot, which for a
// round-closing action is already the next phase.
type Record struct {
	PlayerID   string
	PlayerName string
	Action     string
	Amount     int
	Phase      string
	Reason     string
	State      *holdem.State
}

func getActionByRow(row db.Scanner) (*Action, error) {
	var action Action
	err := row.Scan(&action.GameID, &action.SequenceNumber, &action.PlayerID, &action.PlayerName,
		&action.Action, &action.Amount, &action.Phase, &action.Reason, &action.GameState, &action.Created)
	if err != nil {
		return nil, err
	}

	return &action, nil
}

// RecordAction appends an action to the game's log. The sequence number is
// assigned in the database as one past the current maximum; a concurrent
// writer losing that race gets an ErrDuplicateKey and may retry.
func RecordAction(ctx context.Context, gameID string, record Record) (*Action, error) {
	state, err := json.Marshal(record.State)
	if err != nil {
		return nil, err
	}

	phase := record.Phase
	if phase == "" {
		phase = record.State.Phase.String()
	}

	const query = `
INSERT INTO game_actions (game_id, sequence_number, player_id, player_name, action, amount, phase, reason, game_state)
SELECT $1, COALESCE(MAX(sequence_number), 0) + 1, $2, $3, $4, $5, $6, $7, $8
FROM game_actions
WHERE game_id = $1
RETURNING ` + actionColumns

	row := db.Instance().QueryRowContext(ctx, query, gameID, record.PlayerID, record.PlayerName,
		record.Action, record.Amount, phase, record.Reason, state)

	action, err := getActionByRow(row)
	if err != nil {
		return nil, translateError(err)
	}

	return action, nil
}

// GetActions returns the game's actions in sequence order
func GetActions(ctx context.Context, gameID string) ([]*Action, error) {
	const query = `
SELECT ` + actionColumns + `
FROM game_actions
WHERE game_id = $1
ORDER BY sequence_number`

	rows, err := db.Instance().QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actions []*Action
	for rows.Next() {
		action, err := getActionByRow(rows)
		if err != nil {
			return nil, err
		}

		actions = append(actions, action)
	}

	return actions, rows.Err()
}

// LatestState returns the state snapshot from the game's last recorded action
func LatestState(ctx context.Context, gameID string) (*holdem.State, error) {
	const query = `
SELECT game_state
FROM game_actions
WHERE game_id = $1
ORDER BY sequence_number DESC
LIMIT 1`

	var raw json.RawMessage
	if err := db.Instance().QueryRowContext(ctx, query, gameID).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoActions
		}

		return nil, err
	}

	var state holdem.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}

	return &state, nil
}
