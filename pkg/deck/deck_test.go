package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	d := New()
	a.Equal(52, d.CardsLeft())

	// the deck must be a permutation of the canonical 52 cards
	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		a.False(seen[*card], "no duplicates")
		seen[*card] = true
	}
	a.Len(seen, 52)
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Shuffle(1)
	a.Equal(52, d.CardsLeft())

	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		seen[*card] = true
	}
	a.Len(seen, 52, "still a permutation after shuffling")

	// same seed, same order
	d2 := New()
	d2.Shuffle(1)
	for i, card := range d.Cards {
		a.True(card.Equal(d2.Cards[i]))
	}

	// different seed, different order
	d3 := New()
	d3.Shuffle(2)
	same := true
	for i, card := range d.Cards {
		if !card.Equal(d3.Cards[i]) {
			same = false
			break
		}
	}
	a.False(same)

	a.Panics(func() {
		d.Shuffle(-1)
	})
}

func TestFromCards(t *testing.T) {
	a := assert.New(t)

	d, err := FromCards(CardsFromString("2c,3c,4c"))
	a.NoError(err)
	a.Equal(3, d.CardsLeft())

	d, err = FromCards(CardsFromString("2c,3c,2c"))
	a.EqualError(err, "duplicate card in deck: 2♣")
	a.Nil(d)
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)

	d, err := FromCards(CardsFromString("2c,3c"))
	a.NoError(err)

	a.True(d.CanDraw(2))
	a.False(d.CanDraw(3))

	card, err := d.Draw()
	a.NoError(err)
	a.Equal(2, card.Rank)

	card, err = d.Draw()
	a.NoError(err)
	a.Equal(3, card.Rank)

	card, err = d.Draw()
	a.Equal(ErrEndOfDeck, err)
	a.Nil(card)
}

func TestDeck_DealHoleCards(t *testing.T) {
	a := assert.New(t)

	d, err := FromCards(CardsFromString("2c,3c,4c,5c,6c"))
	a.NoError(err)

	// cards are dealt one per player per pass
	hands, err := d.DealHoleCards(2, 2)
	a.NoError(err)
	a.Len(hands, 2)
	a.Equal("2c,4c", hands[0].String())
	a.Equal("3c,5c", hands[1].String())
	a.Equal(1, d.CardsLeft())

	hands, err = d.DealHoleCards(2, 2)
	a.Equal(ErrEndOfDeck, err)
	a.Nil(hands)
	a.Equal(1, d.CardsLeft(), "failed deal must not consume cards")
}

func TestDeck_DealCommunity(t *testing.T) {
	a := assert.New(t)

	d, err := FromCards(CardsFromString("2c,3c,4c,5c"))
	a.NoError(err)

	flop, err := d.DealCommunity(3)
	a.NoError(err)
	a.Equal("2c,3c,4c", flop.String())

	turn, err := d.DealCommunity(1)
	a.NoError(err)
	a.Equal("5c", turn.String())

	river, err := d.DealCommunity(1)
	a.Equal(ErrEndOfDeck, err)
	a.Nil(river)
}

func TestDeck_Clone(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Shuffle(1)

	clone := d.Clone()
	_, _ = clone.Draw()

	a.Equal(52, d.CardsLeft())
	a.Equal(51, clone.CardsLeft())
}
