package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrEndOfDeck is an error when a draw is attempted and there are not enough cards
var ErrEndOfDeck = errors.New("end of deck reached")

// DuplicateCardError is an invariant error for a deck constructed with repeated cards
type DuplicateCardError struct {
	Card *Card
}

func (d DuplicateCardError) Error() string {
	return fmt.Sprintf("duplicate card in deck: %s", d.Card)
}

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
	rng   *rand.Rand
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.buildDeck()
	return d
}

// FromCards returns a deck made up of the provided cards
// Returns a DuplicateCardError if the same card appears more than once
func FromCards(cards []*Card) (*Deck, error) {
	seen := make(map[Card]bool, len(cards))
	for _, card := range cards {
		if seen[*card] {
			return nil, DuplicateCardError{Card: card}
		}

		seen[*card] = true
	}

	newCards := make([]*Card, len(cards))
	copy(newCards, cards)

	return &Deck{
		Cards: newCards,
		seed:  -1,
	}, nil
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed))
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards using a Fisher-Yates shuffle
// You can manually specify the seed, or you can leave it as 0 for a time-based seed.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	// we always want to shuffle from an unshuffled deck.
	// this check here is to make sure we aren't double building the deck
	if len(d.Cards) != 52 || d.seed != -1 {
		d.buildDeck()
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d.SetSeed(seed)

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// Clone returns a copy of the deck with the remaining cards
func (d *Deck) Clone() *Deck {
	cards := make([]*Card, len(d.Cards))
	copy(cards, d.Cards)

	return &Deck{
		Cards: cards,
		seed:  d.seed,
		rng:   d.rng,
	}
}

// DealHoleCards deals {cardsPerPlayer} cards to each of {n} players, one card
// per player per pass. Returns ErrEndOfDeck if not enough cards remain.
func (d *Deck) DealHoleCards(n, cardsPerPlayer int) ([]Hand, error) {
	if !d.CanDraw(n * cardsPerPlayer) {
		return nil, ErrEndOfDeck
	}

	hands := make([]Hand, n)
	for i := range hands {
		hands[i] = make(Hand, 0, cardsPerPlayer)
	}

	for i := 0; i < cardsPerPlayer; i++ {
		for p := 0; p < n; p++ {
			card, err := d.Draw()
			if err != nil {
				return nil, err
			}

			hands[p].AddCard(card)
		}
	}

	return hands, nil
}

// DealCommunity deals {count} community cards from the front of the deck
func (d *Deck) DealCommunity(count int) (Hand, error) {
	if !d.CanDraw(count) {
		return nil, ErrEndOfDeck
	}

	cards := make(Hand, 0, count)
	for i := 0; i < count; i++ {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}

		cards.AddCard(card)
	}

	return cards, nil
}
