package poker

import "holdem-engine/pkg/deck"

// PlayerHand is a player's hole cards plus their folded state
type PlayerHand struct {
	ID     string    `json:"id"`
	Cards  deck.Hand `json:"cards"`
	Folded bool      `json:"folded"`
}

// WinnerResult identifies the winning player and the hand they won with
// Hand may be nil for a fold-out win before five cards are on the table
type WinnerResult struct {
	WinnerID string      `json:"winnerId"`
	Hand     *HandResult `json:"hand"`
}

// DetermineWinner picks the winner among the non-folded players by combining
// each player's hole cards with the community cards and comparing hand ranks.
// Returns nil if no players remain (defensive; folding out is handled before
// showdown by the state machine).
//
// Ties in category are broken by stable input order: the first player holding
// the top category wins. Kicker comparison between equal categories and split
// pots are intentionally not implemented.
func DetermineWinner(players []PlayerHand, community deck.Hand) *WinnerResult {
	active := make([]PlayerHand, 0, len(players))
	for _, p := range players {
		if !p.Folded {
			active = append(active, p)
		}
	}

	if len(active) == 0 {
		return nil
	}

	if len(active) == 1 {
		// last player standing wins regardless of their cards;
		// the hand is still evaluated for display
		return &WinnerResult{
			WinnerID: active[0].ID,
			Hand:     Evaluate(append(active[0].Cards.Clone(), community...)),
		}
	}

	var winner *WinnerResult
	for _, p := range active {
		result := Evaluate(append(p.Cards.Clone(), community...))
		if result == nil {
			continue
		}

		if winner == nil || result.Rank > winner.Hand.Rank {
			winner = &WinnerResult{WinnerID: p.ID, Hand: result}
		}
	}

	return winner
}
