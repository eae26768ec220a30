package holdem

import (
	"errors"
	"fmt"
)

// ErrNotPlayersTurn is returned when a player acts out of turn
var ErrNotPlayersTurn = errors.New("not player's turn")

// ErrHandIsOver is returned when an action is attempted after the hand finished
var ErrHandIsOver = errors.New("the hand is over")

// ErrNothingToCall happens when a player calls and there is no bet to match
var ErrNothingToCall = errors.New("there is no bet to call")

// ErrCannotCheck happens when a player checks without having matched the current bet
var ErrCannotCheck = errors.New("cannot check when there is a bet to match")

// ErrBetAlreadyMade happens when a player bets into an existing bet; they must raise instead
var ErrBetAlreadyMade = errors.New("a bet has already been made; raise instead")

// ErrNothingToRaise happens when a player raises without an existing bet; they must bet instead
var ErrNothingToRaise = errors.New("there is no bet to raise; bet instead")

// ErrNoChips happens when a player with an empty stack tries to go all-in
var ErrNoChips = errors.New("no chips left to go all-in with")

// ErrNotEnoughPlayers is returned when a hand is started with fewer than two funded players
var ErrNotEnoughPlayers = errors.New("there must be at least two players with chips")

// InsufficientChipsError is returned when a player's stack cannot cover an action.
// The action does not partially apply.
type InsufficientChipsError struct {
	Required int
	Stack    int
}

func (e InsufficientChipsError) Error() string {
	return fmt.Sprintf("insufficient chips: need %d, have %d", e.Required, e.Stack)
}

// InvalidAmountError is returned for a bet or raise with a bad amount
type InvalidAmountError struct {
	Amount int
	Reason string
}

func (e InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %d: %s", e.Amount, e.Reason)
}
