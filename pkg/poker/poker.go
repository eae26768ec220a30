package poker

import (
	"fmt"
	"holdem-engine/pkg/deck"
)

// HandRank is a poker hand category, i.e., royal flush
type HandRank int

// Constants for HandRank, ordered weakest to strongest
const (
	HighCard HandRank = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a hand rank
func (h HandRank) String() string {
	switch h {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		panic(fmt.Sprintf("unknown hand rank: %d", h))
	}
}

// HandResult is the outcome of evaluating a set of cards
// BestHand always contains the exact five cards forming the hand
type HandResult struct {
	Rank        HandRank  `json:"rank"`
	Description string    `json:"description"`
	BestHand    deck.Hand `json:"bestHand"`
}
