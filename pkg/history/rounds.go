package history

import "context"

// Round is a run of consecutive actions within one betting phase
type Round struct {
	Phase   string    `json:"phase"`
	Actions []*Action `json:"actions"`
}

// GroupRounds splits an ordered action log into rounds, one per run of
// consecutive actions sharing a phase. A phase that is returned to in a later
// hand starts a new round rather than joining the earlier one.
func GroupRounds(actions []*Action) []Round {
	var rounds []Round
	for _, action := range actions {
		if len(rounds) == 0 || rounds[len(rounds)-1].Phase != action.Phase {
			rounds = append(rounds, Round{Phase: action.Phase})
		}

		last := &rounds[len(rounds)-1]
		last.Actions = append(last.Actions, action)
	}

	return rounds
}

// GetRounds returns the game's action log grouped into betting rounds
func GetRounds(ctx context.Context, gameID string) ([]Round, error) {
	actions, err := GetActions(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return GroupRounds(actions), nil
}
