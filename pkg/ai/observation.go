package ai

import (
	"fmt"

	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/holdem"
)

// observation is the table state from one player's point of view, shaped for
// the model. Opponent hole cards are never included.
type observation struct {
	Phase        string         `json:"phase"`
	HoleCards    []string       `json:"holeCards"`
	Community    []string       `json:"communityCards"`
	Pot          int            `json:"pot"`
	CurrentBet   int            `json:"currentBet"`
	ToCall       int            `json:"toCall"`
	Stack        int            `json:"stack"`
	Contribution int            `json:"contribution"`
	MaxRaiseTo   int            `json:"maxRaiseTo"`
	Opponents    []opponentView `json:"opponents"`
	LegalActions []string       `json:"legalActions"`
}

type opponentView struct {
	Name       string `json:"name"`
	Stack      int    `json:"chips"`
	Folded     bool   `json:"folded"`
	LastAction string `json:"lastAction,omitempty"`
}

func buildObservation(s *holdem.State, playerID string) (*observation, error) {
	p := s.PlayerByID(playerID)
	if p == nil {
		return nil, fmt.Errorf("no player with id %s", playerID)
	}

	toCall := s.CurrentBet - p.Contribution
	if toCall < 0 {
		toCall = 0
	}

	opponents := make([]opponentView, 0, len(s.Players)-1)
	for _, other := range s.Players {
		if other.ID == playerID {
			continue
		}

		opponents = append(opponents, opponentView{
			Name:       other.Name,
			Stack:      other.Stack,
			Folded:     other.Folded,
			LastAction: other.LastAction,
		})
	}

	return &observation{
		Phase:        s.Phase.String(),
		HoleCards:    cardNames(p.HoleCards),
		Community:    cardNames(s.Community),
		Pot:          s.Pot,
		CurrentBet:   s.CurrentBet,
		ToCall:       toCall,
		Stack:        p.Stack,
		Contribution: p.Contribution,
		MaxRaiseTo:   p.Stack + p.Contribution,
		Opponents:    opponents,
		LegalActions: legalActions(s, p),
	}, nil
}

func cardNames(hand deck.Hand) []string {
	names := make([]string, len(hand))
	for i, card := range hand {
		names[i] = card.String()
	}

	return names
}

// legalActions lists the actions the player could take without being rejected.
func legalActions(s *holdem.State, p *holdem.Player) []string {
	actions := []string{"fold"}

	toCall := s.CurrentBet - p.Contribution
	if toCall <= 0 {
		actions = append(actions, "check")
	} else if toCall <= p.Stack {
		actions = append(actions, "call")
	}

	if s.CurrentBet == 0 && p.Stack > 0 {
		actions = append(actions, "bet")
	}

	if s.CurrentBet > 0 && p.Stack > toCall {
		actions = append(actions, "raise")
	}

	if p.Stack > 0 {
		actions = append(actions, "all-in")
	}

	return actions
}
