package ai

import (
	"holdem-engine/pkg/holdem"
	"holdem-engine/pkg/holdem/action"
)

// Normalize coerces a decision into one the state will accept, keeping as much
// of the original intent as possible. A fold always stands. Anything else is
// mapped onto the closest legal action: a call with no bet becomes a check, a
// check facing a bet becomes a call, a bet into a live bet becomes a raise,
// and anything the stack cannot cover becomes an all-in. The original reason
// is preserved.
func Normalize(s *holdem.State, playerID string, d *Decision) *Decision {
	p := s.PlayerByID(playerID)
	if p == nil || d == nil {
		return d
	}

	out := &Decision{Action: d.Action, Amount: d.Amount, Reason: d.Reason}
	toCall := s.CurrentBet - p.Contribution

	switch out.Action {
	case action.Fold, action.AllIn:
		out.Amount = 0
		return out

	case action.Check:
		if toCall > 0 {
			out.Action = action.Call
		}

	case action.Call:
		if toCall <= 0 {
			out.Action = action.Check
			out.Amount = 0
			return out
		}

	case action.Bet:
		if s.CurrentBet > 0 {
			out.Action = action.Raise
			if out.Amount <= s.CurrentBet {
				out.Action = action.Call
				out.Amount = 0
				return out
			}
		} else if out.Amount <= 0 {
			out.Action = action.Check
			out.Amount = 0
			return out
		}

	case action.Raise:
		if s.CurrentBet == 0 {
			out.Action = action.Bet
			if out.Amount <= 0 {
				out.Action = action.Check
				out.Amount = 0
				return out
			}
		} else if out.Amount <= s.CurrentBet {
			out.Action = action.Call
			out.Amount = 0
			return out
		}

	default:
		// an unparseable action plays passively rather than folding
		if toCall > 0 {
			out.Action = action.Call
		} else {
			out.Action = action.Check
		}
		out.Amount = 0
	}

	// downgrade to all-in whatever the stack cannot cover
	switch out.Action {
	case action.Call:
		if toCall > p.Stack {
			out.Action = action.AllIn
		}
		out.Amount = 0

	case action.Bet:
		if out.Amount > p.Stack {
			out.Action = action.AllIn
			out.Amount = 0
		}

	case action.Raise:
		if out.Amount-p.Contribution > p.Stack {
			out.Action = action.AllIn
			out.Amount = 0
		}
	}

	return out
}
