package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("A♠", (&Card{Rank: Ace, Suit: Spades}).String())
	a.Equal("K♡", (&Card{Rank: King, Suit: Hearts}).String())
	a.Equal("Q♢", (&Card{Rank: Queen, Suit: Diamonds}).String())
	a.Equal("J♣", (&Card{Rank: Jack, Suit: Clubs}).String())
	a.Equal("2♣", (&Card{Rank: 2, Suit: Clubs}).String())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	card := CardFromString("14s")
	a.Equal(Ace, card.Rank)
	a.Equal(Spades, card.Suit)

	card = CardFromString("2c")
	a.Equal(2, card.Rank)
	a.Equal(Clubs, card.Suit)

	a.Nil(CardFromString(""))

	a.PanicsWithValue("could not parse card: 15s", func() {
		CardFromString("15s")
	})

	a.PanicsWithValue("could not parse card: 5x", func() {
		CardFromString("5x")
	})
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("2c,13h,14d")
	a.Len(cards, 3)
	a.Equal(2, cards[0].Rank)
	a.Equal(King, cards[1].Rank)
	a.Equal(Hearts, cards[1].Suit)
	a.Equal(Ace, cards[2].Rank)

	a.Len(CardsFromString(""), 0)
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("2c,13h,14d")
	assert.Equal(t, "2c,13h,14d", CardsToString(cards))
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("5c").Equal(CardFromString("5c")))
	a.False(CardFromString("5c").Equal(CardFromString("5d")))
	a.False(CardFromString("5c").Equal(CardFromString("6c")))
}

func TestCard_AceLowRank(t *testing.T) {
	a := assert.New(t)
	a.Equal(LowAce, CardFromString("14c").AceLowRank())
	a.Equal(King, CardFromString("13c").AceLowRank())
}

func TestRankLongName(t *testing.T) {
	a := assert.New(t)
	a.Equal("Ace", RankLongName(Ace))
	a.Equal("Ace", RankLongName(LowAce))
	a.Equal("King", RankLongName(King))
	a.Equal("Queen", RankLongName(Queen))
	a.Equal("Jack", RankLongName(Jack))
	a.Equal("5", RankLongName(5))
}
