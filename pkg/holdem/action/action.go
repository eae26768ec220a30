package action

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Action represents an action a player can take
type Action string

// action constants
const (
	Fold  Action = "fold"
	Check Action = "check"
	Call  Action = "call"
	Bet   Action = "bet"
	Raise Action = "raise"
	AllIn Action = "all-in"
)

var allowedActions = map[Action]bool{
	Fold:  true,
	Check: true,
	Call:  true,
	Bet:   true,
	Raise: true,
	AllIn: true,
}

// FromString returns an action for the given string.
// Input is normalized at this boundary only: case is ignored and the common
// all-in spellings ("ALL_IN", "allin") are accepted.
func FromString(s string) (Action, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case "all_in", "allin":
		normalized = string(AllIn)
	}

	if _, ok := allowedActions[Action(normalized)]; ok {
		return Action(normalized), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	switch a {
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Bet:
		return "Bet"
	case Raise:
		return "Raise"
	case AllIn:
		return "All-in"
	}

	panic("unknown action")
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

// LogMessage returns a message formatted for the log
func (a Action) LogMessage(amount int) string {
	switch a {
	case Fold:
		return "folded"
	case Check:
		return "checked"
	case Call:
		return fmt.Sprintf("called ${%d}", amount)
	case Bet:
		return fmt.Sprintf("bet ${%d}", amount)
	case Raise:
		return fmt.Sprintf("raised to ${%d}", amount)
	case AllIn:
		return fmt.Sprintf("went all-in for ${%d}", amount)
	}

	return ""
}
