package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-engine/internal/rng"
	"holdem-engine/pkg/holdem/action"
)

func TestRules_Decide(t *testing.T) {
	a := assert.New(t)

	ctx := context.Background()

	// whatever the dice say, the decision must survive normalization untouched
	for seed := int64(0); seed < 25; seed++ {
		provider := NewRules(rng.NewSeeded(seed))

		preFlop := preFlopState(t, 1000, 1000, 1000)
		decision, err := provider.Decide(ctx, preFlop, "player-0")
		a.NoError(err)
		a.True(decision.Action.IsValid())
		a.NotEmpty(decision.Reason)
		a.Equal(decision, Normalize(preFlop, "player-0", decision))

		flop := flopState(t, 1000, 1000, 1000)
		decision, err = provider.Decide(ctx, flop, "player-1")
		a.NoError(err)
		a.Contains([]action.Action{action.Check, action.Bet}, decision.Action)
		a.Equal(decision, Normalize(flop, "player-1", decision))
	}

	_, err := NewRules(rng.NewSeeded(0)).Decide(ctx, preFlopState(t, 1000, 1000, 1000), "nobody")
	a.EqualError(err, "no player with id nobody")
}

func TestRules_Decide_facingAllIn(t *testing.T) {
	a := assert.New(t)

	s := preFlopState(t, 1000, 1000, 50)
	s, err := s.Apply("player-0", action.Raise, 500)
	a.NoError(err)

	for seed := int64(0); seed < 25; seed++ {
		provider := NewRules(rng.NewSeeded(seed))

		// player-1 covers the shove and either calls or folds
		decision, err := provider.Decide(context.Background(), s, "player-1")
		a.NoError(err)
		a.Contains([]action.Action{action.Fold, action.Call}, decision.Action)

		// player-2 cannot cover it and never flat-calls
		decision, err = provider.Decide(context.Background(), s, "player-2")
		a.NoError(err)
		a.Contains([]action.Action{action.Fold, action.AllIn}, decision.Action)
	}
}
