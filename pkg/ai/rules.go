package ai

import (
	"context"
	"fmt"

	"holdem-engine/internal/rng"
	"holdem-engine/pkg/holdem"
	"holdem-engine/pkg/holdem/action"
)

// Rules is a Provider that plays simple pot-odds poker without a model.
// It is the fallback when no API key is configured, and it is useful in tests.
type Rules struct {
	rng rng.Generator
}

// NewRules returns a rule-based provider
func NewRules(r rng.Generator) *Rules {
	return &Rules{rng: r}
}

// Decide plays passively: it checks when it can, calls bets that are small
// relative to the pot, and occasionally bets half the pot.
func (r *Rules) Decide(_ context.Context, state *holdem.State, playerID string) (*Decision, error) {
	p := state.PlayerByID(playerID)
	if p == nil {
		return nil, fmt.Errorf("no player with id %s", playerID)
	}

	toCall := state.CurrentBet - p.Contribution
	if toCall <= 0 {
		if state.CurrentBet == 0 && r.rng.Intn(4) == 0 {
			amount := state.Pot / 2
			if amount > p.Stack {
				amount = p.Stack
			}

			if amount > 0 {
				return &Decision{
					Action: action.Bet,
					Amount: amount,
					Reason: "Betting half the pot to apply pressure",
				}, nil
			}
		}

		return &Decision{Action: action.Check, Reason: "Checking to see the next card"}, nil
	}

	if toCall >= p.Stack {
		if r.rng.Intn(2) == 0 {
			return &Decision{Action: action.AllIn, Reason: "Committing the whole stack"}, nil
		}

		return &Decision{Action: action.Fold, Reason: "Not risking the whole stack here"}, nil
	}

	if toCall*2 <= state.Pot || r.rng.Intn(3) > 0 {
		return &Decision{Action: action.Call, Reason: "The pot odds justify a call"}, nil
	}

	return &Decision{Action: action.Fold, Reason: "The bet is too large for this hand"}, nil
}
