package holdem

import (
	"fmt"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/holdem/action"
	"holdem-engine/pkg/poker"
)

// Options configures how a hand of Texas Hold'em is played
type Options struct {
	SmallBlind int
	BigBlind   int

	// Seed is passed to the shuffle; 0 uses a time-based seed
	Seed int64
}

// DefaultOptions returns the default options for Texas Hold'em
func DefaultOptions() Options {
	return Options{
		SmallBlind: 10,
		BigBlind:   20,
	}
}

// NewHand deals a fresh hand: every seat gets two hole cards from a shuffled
// deck, the blinds are posted, and the first actor is left of the big blind.
// Every provided player must have chips; busted players are dropped by NextHand.
func NewHand(players []*Player, dealerIndex int, opts Options) (*State, error) {
	if len(players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	seats := make([]*Player, len(players))
	for i, p := range players {
		if p.Stack <= 0 {
			return nil, fmt.Errorf("player %s has no chips", p.ID)
		}

		seat := p.clone()
		seat.HoleCards = make(deck.Hand, 0, 2)
		seat.Folded = false
		seat.Contribution = 0
		seat.Checked = false
		seat.LastAction = ""
		seats[i] = seat
	}

	if dealerIndex < 0 || dealerIndex >= len(seats) {
		dealerIndex = 0
	}

	d := deck.New()
	d.Shuffle(opts.Seed)

	hands, err := d.DealHoleCards(len(seats), 2)
	if err != nil {
		return nil, err
	}

	for i, hand := range hands {
		seats[i].HoleCards = hand
	}

	s := &State{
		Players:     seats,
		DealerIndex: dealerIndex,
		Phase:       PhasePreFlop,
		Community:   make(deck.Hand, 0, 5),
		Deck:        d,
	}

	n := len(seats)
	smallBlindIndex := (dealerIndex + 1) % n
	bigBlindIndex := (dealerIndex + 2) % n

	sb := s.postBlind(smallBlindIndex, opts.SmallBlind)
	bb := s.postBlind(bigBlindIndex, opts.BigBlind)
	seats[smallBlindIndex].LastAction = fmt.Sprintf("Small Blind (%d)", sb)
	seats[bigBlindIndex].LastAction = fmt.Sprintf("Big Blind (%d)", bb)

	s.CurrentBet = opts.BigBlind

	// first to act is left of the big blind; skip seats the blinds put all-in
	s.ActorIndex = -1
	for i := 1; i <= n; i++ {
		index := (bigBlindIndex + i) % n
		if seats[index].CanAct() {
			s.ActorIndex = index
			break
		}
	}

	if s.ActorIndex < 0 {
		s.advancePhase()
	}

	return s, nil
}

// NextHand starts the next hand from a finished one: busted players leave the
// rotation, the dealer button moves one seat, and stacks carry over.
func NextHand(prev *State, opts Options) (*State, error) {
	remaining := make([]*Player, 0, len(prev.Players))
	for _, p := range prev.Players {
		if p.Stack > 0 {
			remaining = append(remaining, p)
		}
	}

	if len(remaining) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	return NewHand(remaining, (prev.DealerIndex+1)%len(remaining), opts)
}

// postBlind moves up to {amount} from the seat's stack into the pot.
// A short stack posts what it has.
func (s *State) postBlind(index, amount int) int {
	p := s.Players[index]
	if amount > p.Stack {
		amount = p.Stack
	}

	p.Stack -= amount
	p.Contribution = amount
	s.Pot += amount

	return amount
}

// Apply performs a player action and returns the resulting state.
// The receiver is never mutated; on error the returned state is nil.
//
// RAISE amounts are the new total contribution target for the phase, not an
// increment: with a current bet of 50 and no prior contribution, RAISE(120)
// moves 120 chips and makes the current bet 120.
func (s *State) Apply(playerID string, act action.Action, amount int) (*State, error) {
	if s.Finished {
		return nil, ErrHandIsOver
	}

	current := s.CurrentPlayer()
	if current == nil {
		return nil, ErrHandIsOver
	}

	if current.ID != playerID {
		return nil, ErrNotPlayersTurn
	}

	next := s.clone()
	p := next.Players[next.ActorIndex]

	switch act {
	case action.Fold:
		p.Folded = true
		p.LastAction = "Folded"

	case action.Check:
		if p.Contribution != next.CurrentBet {
			return nil, ErrCannotCheck
		}

		p.Checked = true
		p.LastAction = "Checked"

	case action.Call:
		if next.CurrentBet == 0 {
			return nil, ErrNothingToCall
		}

		required := next.CurrentBet - p.Contribution
		if required > p.Stack {
			return nil, InsufficientChipsError{Required: required, Stack: p.Stack}
		}

		p.Stack -= required
		p.Contribution = next.CurrentBet
		next.Pot += required
		p.LastAction = fmt.Sprintf("Called %d", next.CurrentBet)

	case action.Bet:
		if next.CurrentBet > 0 {
			return nil, ErrBetAlreadyMade
		}

		if amount <= 0 {
			return nil, InvalidAmountError{Amount: amount, Reason: "bet must be positive"}
		}

		if amount > p.Stack {
			return nil, InsufficientChipsError{Required: amount, Stack: p.Stack}
		}

		p.Stack -= amount
		p.Contribution = amount
		next.CurrentBet = amount
		next.Pot += amount
		p.LastAction = fmt.Sprintf("Bet %d", amount)

	case action.Raise:
		if next.CurrentBet == 0 {
			return nil, ErrNothingToRaise
		}

		if amount <= next.CurrentBet {
			return nil, InvalidAmountError{Amount: amount, Reason: "raise must exceed the current bet"}
		}

		required := amount - p.Contribution
		if required > p.Stack {
			return nil, InsufficientChipsError{Required: required, Stack: p.Stack}
		}

		p.Stack -= required
		p.Contribution = amount
		next.CurrentBet = amount
		next.Pot += required
		p.LastAction = fmt.Sprintf("Raised to %d", amount)

	case action.AllIn:
		if p.Stack == 0 {
			return nil, ErrNoChips
		}

		allIn := p.Stack
		p.Stack = 0
		p.Contribution += allIn
		next.Pot += allIn
		if p.Contribution > next.CurrentBet {
			next.CurrentBet = p.Contribution
		}
		p.LastAction = fmt.Sprintf("All-in (%d)", allIn)

	default:
		return nil, fmt.Errorf("unknown action: %s", act)
	}

	// the hand ends immediately once only one player remains
	if active := next.ActivePlayers(); len(active) == 1 {
		next.settleFoldWin(active[0])
		return next, nil
	}

	next.advanceAfterAction()
	return next, nil
}

// advanceAfterAction moves the turn to the next eligible seat, or completes
// the betting round when everyone has matched or checked. When no eligible
// actor exists at all, the phase is forced to complete rather than looping.
func (s *State) advanceAfterAction() {
	if s.roundComplete() {
		s.advancePhase()
		return
	}

	n := len(s.Players)
	for i := 1; i < n; i++ {
		index := (s.ActorIndex + i) % n
		if s.Players[index].CanAct() {
			s.ActorIndex = index
			return
		}
	}

	// everyone else is folded or all-in
	s.advancePhase()
}

// advancePhase deals the next tranche of community cards and resets the
// per-phase betting state. When no one can act (all remaining players are
// all-in), phases keep advancing until showdown.
func (s *State) advancePhase() {
	s.CurrentBet = 0
	for _, p := range s.Players {
		p.Contribution = 0
		p.Checked = false
	}

	for {
		s.Phase++
		if s.Phase >= PhaseShowdown {
			s.settleShowdown()
			return
		}

		community, err := s.Deck.DealCommunity(s.Phase.CommunityDealCount())
		if err != nil {
			// a 52-card deck cannot run out with at most 23 cards drawn
			panic(err)
		}
		s.Community = append(s.Community, community...)

		n := len(s.Players)
		for i := 1; i <= n; i++ {
			index := (s.DealerIndex + i) % n
			if s.Players[index].CanAct() {
				s.ActorIndex = index
				return
			}
		}
	}
}

func (s *State) settleShowdown() {
	s.Phase = PhaseShowdown
	s.ActorIndex = -1
	s.Finished = true

	result := poker.DetermineWinner(s.playerHands(), s.Community)
	if result == nil {
		// defensive; at least one active player always remains
		return
	}

	winner := s.PlayerByID(result.WinnerID)
	winner.Stack += s.Pot
	winner.LastAction = fmt.Sprintf("Won %d", s.Pot)

	description := ""
	if result.Hand != nil {
		description = result.Hand.Description
	}

	s.Winner = &WinnerInfo{
		PlayerID:    result.WinnerID,
		Description: description,
		Hand:        result.Hand,
		Winnings:    s.Pot,
	}
}

// settleFoldWin ends the hand early because everyone else folded.
// The winning hand is still evaluated for display when possible.
func (s *State) settleFoldWin(winner *Player) {
	s.ActorIndex = -1
	s.Finished = true

	winner.Stack += s.Pot
	winner.LastAction = fmt.Sprintf("Won %d", s.Pot)

	var hand *poker.HandResult
	if result := poker.DetermineWinner(s.playerHands(), s.Community); result != nil {
		hand = result.Hand
	}

	s.Winner = &WinnerInfo{
		PlayerID:    winner.ID,
		Description: "Last player standing",
		Hand:        hand,
		Winnings:    s.Pot,
	}
}
