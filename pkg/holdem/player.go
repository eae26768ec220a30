package holdem

import "holdem-engine/pkg/deck"

// Player is a seat at the table.
// Contribution and Checked are per-phase and reset when the phase advances.
type Player struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Stack        int       `json:"chips"`
	HoleCards    deck.Hand `json:"cards"`
	Folded       bool      `json:"folded"`
	AI           bool      `json:"isAI"`
	Contribution int       `json:"contribution"`
	Checked      bool      `json:"checked"`
	LastAction   string    `json:"lastAction,omitempty"`
}

func (p *Player) clone() *Player {
	cp := *p
	cp.HoleCards = p.HoleCards.Clone()
	return &cp
}

// CanAct returns true if the player can still make betting decisions:
// they have not folded and have chips behind
func (p *Player) CanAct() bool {
	return !p.Folded && p.Stack > 0
}

// AllIn returns true if the player is still in the hand with an empty stack
func (p *Player) AllIn() bool {
	return !p.Folded && p.Stack == 0 && len(p.HoleCards) > 0
}
