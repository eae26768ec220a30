package room

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem-engine/pkg/ai"
	"holdem-engine/pkg/history"
	"holdem-engine/pkg/holdem"
	"holdem-engine/pkg/holdem/action"
)

// ErrGameNotStarted is returned when acting on a dealer before StartGame
var ErrGameNotStarted = errors.New("the game has not started")

// ErrGameOver is returned when fewer than two players still have chips
var ErrGameOver = errors.New("the game is over")

// ErrHandInProgress is returned when NextHand is called mid-hand
var ErrHandInProgress = errors.New("the hand is still in progress")

// Dealer runs a table: it owns the current hand state, lets the human act,
// asks the provider for the AI seats, and feeds the action log to the
// recorder. All methods are safe for concurrent use.
type Dealer struct {
	logger   logrus.FieldLogger
	provider ai.Provider
	recorder Recorder
	opts     holdem.Options

	lock   sync.Mutex
	gameID string
	state  *holdem.State

	// generation increments on every state change; an AI decision made
	// against an older generation is discarded instead of applied
	generation int
	aiActing   bool
}

// NewDealer creates a dealer for the given seats.
// The recorder may be nil to disable persistence.
func NewDealer(provider ai.Provider, recorder Recorder, logger logrus.FieldLogger, opts holdem.Options) *Dealer {
	return &Dealer{
		logger:   logger,
		provider: provider,
		recorder: recorder,
		opts:     opts,
	}
}

// GameID returns the identifier the game is recorded under
func (d *Dealer) GameID() string {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.gameID
}

// State returns the current hand state.
// States are immutable snapshots; callers may hold one across actions.
func (d *Dealer) State() *holdem.State {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.state
}

// StartGame deals the first hand and plays any AI seats before the first
// human turn. The players slice determines the seating order.
func (d *Dealer) StartGame(ctx context.Context, players []*holdem.Player) error {
	state, err := holdem.NewHand(players, 0, d.opts)
	if err != nil {
		return err
	}

	d.lock.Lock()
	d.gameID = uuid.New().String()
	d.state = state
	d.generation++
	gameID := d.gameID
	d.lock.Unlock()

	d.logger.WithFields(logrus.Fields{
		"gameID":  gameID,
		"players": len(players),
	}).Info("game started")

	if d.recorder != nil {
		if err := d.recorder.CreateGame(ctx, gameID, d.opts.SmallBlind, d.opts.BigBlind, state.Players); err != nil {
			return err
		}
	}

	d.recordBlinds(ctx, state)
	d.runAITurns(ctx)
	return nil
}

// NextHand starts the following hand once the current one is finished
func (d *Dealer) NextHand(ctx context.Context) error {
	d.lock.Lock()

	if d.state == nil {
		d.lock.Unlock()
		return ErrGameNotStarted
	}

	if !d.state.Finished {
		d.lock.Unlock()
		return ErrHandInProgress
	}

	state, err := holdem.NextHand(d.state, d.opts)
	if err != nil {
		d.lock.Unlock()
		if errors.Is(err, holdem.ErrNotEnoughPlayers) {
			return ErrGameOver
		}

		return err
	}

	d.state = state
	d.generation++
	d.lock.Unlock()

	d.recordBlinds(ctx, state)
	d.runAITurns(ctx)
	return nil
}

// HumanAction applies an action for a human seat and then plays any AI seats
// whose turn follows. The returned state is the snapshot after the human's
// action but before the AI turns; use State for the latest.
func (d *Dealer) HumanAction(ctx context.Context, playerID string, act action.Action, amount int) (*holdem.State, error) {
	d.lock.Lock()

	if d.state == nil {
		d.lock.Unlock()
		return nil, ErrGameNotStarted
	}

	before := d.state
	next, err := before.Apply(playerID, act, amount)
	if err != nil {
		d.lock.Unlock()
		return nil, err
	}

	d.state = next
	d.generation++
	d.lock.Unlock()

	d.record(ctx, playerID, before, next, "")
	d.runAITurns(ctx)

	return next, nil
}

// EndGame abandons the current hand. A pending AI decision is discarded.
func (d *Dealer) EndGame() {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.state = nil
	d.gameID = ""
	d.generation++
}

// runAITurns plays AI seats until the hand waits on a human or finishes.
// The provider is consulted without holding the lock; if the state moved on
// in the meantime, the decision is thrown away and the loop starts over.
func (d *Dealer) runAITurns(ctx context.Context) {
	for {
		d.lock.Lock()

		if d.state == nil || d.aiActing {
			d.lock.Unlock()
			return
		}

		state := d.state
		current := state.CurrentPlayer()
		if current == nil || !current.AI {
			d.lock.Unlock()
			return
		}

		playerID := current.ID
		generation := d.generation
		d.aiActing = true
		d.lock.Unlock()

		decision, err := d.provider.Decide(ctx, state, playerID)
		if err != nil {
			d.logger.WithError(err).WithField("player", playerID).Warn("provider failed; playing passively")
			decision = &ai.Decision{}
		}

		decision = ai.Normalize(state, playerID, decision)

		d.lock.Lock()
		d.aiActing = false

		if d.generation != generation {
			d.logger.WithField("player", playerID).Warn("discarding stale decision")
			d.lock.Unlock()
			continue
		}

		next, err := state.Apply(playerID, decision.Action, decision.Amount)
		if err != nil {
			// a normalized decision should always apply; fold rather than stall
			d.logger.WithError(err).WithField("player", playerID).Error("decision did not apply")
			if next, err = state.Apply(playerID, action.Fold, 0); err != nil {
				d.lock.Unlock()
				return
			}
		}

		d.state = next
		d.generation++
		d.lock.Unlock()

		d.record(ctx, playerID, state, next, decision.Reason)
	}
}

// record writes one applied action to the recorder
func (d *Dealer) record(ctx context.Context, playerID string, before, after *holdem.State, reason string) {
	if d.recorder == nil {
		return
	}

	actor := after.PlayerByID(playerID)

	// chips the action moved into the pot; winnings paid back out in the same
	// transition must not offset it
	committed := before.PlayerByID(playerID).Stack - actor.Stack
	if after.Winner != nil && after.Winner.PlayerID == playerID {
		committed += after.Winner.Winnings
	}

	err := d.recorder.RecordAction(ctx, d.GameID(), history.Record{
		PlayerID:   playerID,
		PlayerName: actor.Name,
		Action:     actor.LastAction,
		Amount:     committed,
		Phase:      before.Phase.String(),
		Reason:     reason,
		State:      after,
	})
	if err != nil {
		d.logger.WithError(err).Error("could not record action")
	}
}

// recordBlinds writes the forced bets that open a hand
func (d *Dealer) recordBlinds(ctx context.Context, state *holdem.State) {
	if d.recorder == nil {
		return
	}

	n := len(state.Players)
	for _, index := range []int{(state.DealerIndex + 1) % n, (state.DealerIndex + 2) % n} {
		p := state.Players[index]
		err := d.recorder.RecordAction(ctx, d.GameID(), history.Record{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Action:     p.LastAction,
			Amount:     p.Contribution,
			Phase:      state.Phase.String(),
			State:      state,
		})
		if err != nil {
			d.logger.WithError(err).Error("could not record blind")
		}
	}
}
