package holdem

import "encoding/json"

// Phase represents the stage of a hand
type Phase int

// constants for Phase, in strict forward order
const (
	PhasePreFlop Phase = iota
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseShowdown
)

func (p Phase) String() string {
	switch p {
	case PhasePreFlop:
		return "pre-flop"
	case PhaseFlop:
		return "flop"
	case PhaseTurn:
		return "turn"
	case PhaseRiver:
		return "river"
	case PhaseShowdown:
		return "showdown"
	}

	return ""
}

// CommunityDealCount returns how many community cards are dealt entering the phase
func (p Phase) CommunityDealCount() int {
	switch p {
	case PhaseFlop:
		return 3
	case PhaseTurn, PhaseRiver:
		return 1
	}

	return 0
}

// MarshalJSON encodes JSON
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(p),
		Name: p.String(),
	})
}

// UnmarshalJSON decodes JSON
// Needed so persisted snapshots can be replayed
func (p *Phase) UnmarshalJSON(data []byte) error {
	var v struct {
		ID int `json:"id"`
	}

	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*p = Phase(v.ID)
	return nil
}
