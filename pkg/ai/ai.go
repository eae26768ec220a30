package ai

import (
	"context"

	"holdem-engine/pkg/holdem"
	"holdem-engine/pkg/holdem/action"
)

// Decision is what a provider wants the player to do. Amount is the new total
// contribution for bets and raises and is ignored for everything else.
type Decision struct {
	Action action.Action `json:"action"`
	Amount int           `json:"amount,omitempty"`
	Reason string        `json:"reason,omitempty"`
}

// Provider decides an action for the player whose turn it is.
// Implementations may return decisions that are not strictly legal in the
// current state; callers should run them through Normalize before applying.
type Provider interface {
	Decide(ctx context.Context, state *holdem.State, playerID string) (*Decision, error)
}
