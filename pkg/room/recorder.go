package room

import (
	"context"

	"holdem-engine/pkg/history"
	"holdem-engine/pkg/holdem"
)

// Recorder receives the game's action log as it happens.
// A nil Recorder on the dealer disables persistence.
type Recorder interface {
	CreateGame(ctx context.Context, id string, smallBlind, bigBlind int, players []*holdem.Player) error
	RecordAction(ctx context.Context, gameID string, record history.Record) error
}

// DatabaseRecorder persists the action log through the history package
type DatabaseRecorder struct{}

// CreateGame records the game and its seating order
func (DatabaseRecorder) CreateGame(ctx context.Context, id string, smallBlind, bigBlind int, players []*holdem.Player) error {
	_, err := history.CreateGame(ctx, id, smallBlind, bigBlind, players)
	return err
}

// RecordAction appends to the game's action log
func (DatabaseRecorder) RecordAction(ctx context.Context, gameID string, record history.Record) error {
	_, err := history.RecordAction(ctx, gameID, record)
	return err
}
