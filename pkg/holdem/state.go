package holdem

import (
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/poker"
)

// WinnerInfo describes how the hand ended
type WinnerInfo struct {
	PlayerID    string             `json:"playerId"`
	Description string             `json:"description"`
	Hand        *poker.HandResult  `json:"hand,omitempty"`
	Winnings    int                `json:"winnings"`
}

// State is an immutable snapshot of a hand in progress.
// Apply returns a new State; callers must not mutate a snapshot they hold.
type State struct {
	Players     []*Player   `json:"players"`
	DealerIndex int         `json:"dealerIndex"`
	ActorIndex  int         `json:"actorIndex"`
	Phase       Phase       `json:"phase"`
	Pot         int         `json:"pot"`
	CurrentBet  int         `json:"currentBet"`
	Community   deck.Hand   `json:"communityCards"`
	Deck        *deck.Deck  `json:"deck"`
	Finished    bool        `json:"finished"`
	Winner      *WinnerInfo `json:"winner,omitempty"`
}

func (s *State) clone() *State {
	players := make([]*Player, len(s.Players))
	for i, p := range s.Players {
		players[i] = p.clone()
	}

	cp := *s
	cp.Players = players
	cp.Community = s.Community.Clone()
	if s.Deck != nil {
		cp.Deck = s.Deck.Clone()
	}
	if s.Winner != nil {
		winner := *s.Winner
		cp.Winner = &winner
	}

	return &cp
}

// CurrentPlayer returns the player whose turn it is, or nil when no one is to act
func (s *State) CurrentPlayer() *Player {
	if s.ActorIndex < 0 || s.ActorIndex >= len(s.Players) {
		return nil
	}

	return s.Players[s.ActorIndex]
}

// PlayerByID returns the player with the given id, or nil
func (s *State) PlayerByID(id string) *Player {
	for _, p := range s.Players {
		if p.ID == id {
			return p
		}
	}

	return nil
}

// ActivePlayers returns the players who have not folded
func (s *State) ActivePlayers() []*Player {
	active := make([]*Player, 0, len(s.Players))
	for _, p := range s.Players {
		if !p.Folded {
			active = append(active, p)
		}
	}

	return active
}

// roundComplete determines whether the current betting round is finished:
// every player who can still act has matched the current bet, or everyone
// has explicitly checked while there is no bet
func (s *State) roundComplete() bool {
	for _, p := range s.Players {
		if !p.CanAct() {
			continue
		}

		if s.CurrentBet > 0 {
			if p.Contribution != s.CurrentBet {
				return false
			}
		} else if !p.Checked {
			return false
		}
	}

	return true
}

func (s *State) playerHands() []poker.PlayerHand {
	hands := make([]poker.PlayerHand, len(s.Players))
	for i, p := range s.Players {
		hands[i] = poker.PlayerHand{
			ID:     p.ID,
			Cards:  p.HoleCards,
			Folded: p.Folded,
		}
	}

	return hands
}
