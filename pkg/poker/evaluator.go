package poker

import (
	"fmt"
	"holdem-engine/pkg/deck"
	"sort"
)

// Evaluate returns the best five-card hand the provided cards can make.
// Input is any set of cards, typically 5–7 (two hole cards plus up to five
// community cards). Returns nil when fewer than five valid cards are supplied,
// which is an expected state mid-deal.
//
// Categories are checked strictly in descending order; the first match wins.
func Evaluate(cards []*deck.Card) *HandResult {
	valid := make([]*deck.Card, 0, len(cards))
	for _, card := range cards {
		if card != nil {
			valid = append(valid, card)
		}
	}

	if len(valid) < 5 {
		return nil
	}

	sorted := make([]*deck.Card, len(valid))
	copy(sorted, valid)
	sort.Stable(sort.Reverse(sortByRank(sorted)))

	if best := checkStraightFlush(sorted); best != nil {
		if best[0].Rank == deck.Ace {
			return &HandResult{Rank: RoyalFlush, Description: RoyalFlush.String(), BestHand: best}
		}

		return &HandResult{Rank: StraightFlush, Description: StraightFlush.String(), BestHand: best}
	}

	if best := checkFourOfAKind(sorted); best != nil {
		return &HandResult{Rank: FourOfAKind, Description: FourOfAKind.String(), BestHand: best}
	}

	if best := checkFullHouse(sorted); best != nil {
		return &HandResult{Rank: FullHouse, Description: FullHouse.String(), BestHand: best}
	}

	if best := checkFlush(sorted); best != nil {
		return &HandResult{Rank: Flush, Description: Flush.String(), BestHand: best}
	}

	if best := checkStraight(sorted); best != nil {
		return &HandResult{
			Rank:        Straight,
			Description: fmt.Sprintf("Straight (%s high)", deck.RankLongName(best[0].Rank)),
			BestHand:    best,
		}
	}

	if best := checkThreeOfAKind(sorted); best != nil {
		return &HandResult{Rank: ThreeOfAKind, Description: ThreeOfAKind.String(), BestHand: best}
	}

	if best := checkTwoPair(sorted); best != nil {
		return &HandResult{Rank: TwoPair, Description: TwoPair.String(), BestHand: best}
	}

	if best := checkPair(sorted); best != nil {
		return &HandResult{Rank: Pair, Description: Pair.String(), BestHand: best}
	}

	best := make(deck.Hand, 5)
	copy(best, sorted[:5])

	return &HandResult{
		Rank:        HighCard,
		Description: fmt.Sprintf("High Card %s", deck.RankLongName(sorted[0].Rank)),
		BestHand:    best,
	}
}

type sortByRank []*deck.Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i].Rank < s[j].Rank
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// rankGroup is the cards of a single rank, i.e. all the nines in the hand
type rankGroup struct {
	rank  int
	cards []*deck.Card
}

// groupByRank returns the rank groups in descending rank order
// The input must already be sorted by descending rank
func groupByRank(sorted []*deck.Card) []rankGroup {
	groups := make([]rankGroup, 0, len(sorted))
	for _, card := range sorted {
		if n := len(groups); n > 0 && groups[n-1].rank == card.Rank {
			groups[n-1].cards = append(groups[n-1].cards, card)
			continue
		}

		groups = append(groups, rankGroup{rank: card.Rank, cards: []*deck.Card{card}})
	}

	return groups
}

// groupBySuit preserves the descending rank order within each suit
func groupBySuit(sorted []*deck.Card) map[deck.Suit][]*deck.Card {
	groups := make(map[deck.Suit][]*deck.Card)
	for _, card := range sorted {
		groups[card.Suit] = append(groups[card.Suit], card)
	}

	return groups
}

// kickers returns up to {count} highest cards whose rank is not in {exclude}
func kickers(sorted []*deck.Card, count int, exclude ...int) []*deck.Card {
	excluded := make(map[int]bool, len(exclude))
	for _, rank := range exclude {
		excluded[rank] = true
	}

	picked := make([]*deck.Card, 0, count)
	for _, card := range sorted {
		if excluded[card.Rank] {
			continue
		}

		picked = append(picked, card)
		if len(picked) == count {
			return picked
		}
	}

	return nil
}

// straightIn finds the best five-card straight among the cards, including the
// ace-low wheel. Duplicate ranks are tolerated; one card per rank is used.
// The input must be sorted by descending rank. Returns nil if there is none.
func straightIn(sorted []*deck.Card) []*deck.Card {
	byRank := make(map[int]*deck.Card, len(sorted))
	ranks := make([]int, 0, len(sorted))
	for _, card := range sorted {
		if _, ok := byRank[card.Rank]; ok {
			continue
		}

		byRank[card.Rank] = card
		ranks = append(ranks, card.Rank)
	}

	// an ace also plays low for the wheel
	if ace, ok := byRank[deck.Ace]; ok {
		byRank[deck.LowAce] = ace
		ranks = append(ranks, deck.LowAce)
	}

	streak := 1
	for i := 1; i < len(ranks); i++ {
		if ranks[i-1] == ranks[i]+1 {
			streak++
		} else {
			streak = 1
		}

		if streak == 5 {
			cards := make([]*deck.Card, 5)
			for j := 0; j < 5; j++ {
				cards[j] = byRank[ranks[i]+4-j]
			}

			return cards
		}
	}

	return nil
}

func checkStraightFlush(sorted []*deck.Card) deck.Hand {
	bySuit := groupBySuit(sorted)
	for _, suit := range deck.Suits {
		if len(bySuit[suit]) < 5 {
			continue
		}

		if straight := straightIn(bySuit[suit]); straight != nil {
			return straight
		}
	}

	return nil
}

func checkFourOfAKind(sorted []*deck.Card) deck.Hand {
	for _, group := range groupByRank(sorted) {
		if len(group.cards) < 4 {
			continue
		}

		kicker := kickers(sorted, 1, group.rank)
		if kicker == nil {
			return nil
		}

		return append(deck.Hand{}, append(group.cards[:4], kicker...)...)
	}

	return nil
}

func checkFullHouse(sorted []*deck.Card) deck.Hand {
	groups := groupByRank(sorted)

	tripIndex := -1
	for i, group := range groups {
		if len(group.cards) >= 3 {
			tripIndex = i
			break
		}
	}

	if tripIndex < 0 {
		return nil
	}

	for i, group := range groups {
		if i == tripIndex || len(group.cards) < 2 {
			continue
		}

		hand := make(deck.Hand, 0, 5)
		hand = append(hand, groups[tripIndex].cards[:3]...)
		hand = append(hand, group.cards[:2]...)
		return hand
	}

	return nil
}

func checkFlush(sorted []*deck.Card) deck.Hand {
	bySuit := groupBySuit(sorted)
	for _, suit := range deck.Suits {
		if len(bySuit[suit]) >= 5 {
			return append(deck.Hand{}, bySuit[suit][:5]...)
		}
	}

	return nil
}

func checkStraight(sorted []*deck.Card) deck.Hand {
	return straightIn(sorted)
}

func checkThreeOfAKind(sorted []*deck.Card) deck.Hand {
	for _, group := range groupByRank(sorted) {
		if len(group.cards) < 3 {
			continue
		}

		kick := kickers(sorted, 2, group.rank)
		if kick == nil {
			return nil
		}

		return append(deck.Hand{}, append(group.cards[:3], kick...)...)
	}

	return nil
}

func checkTwoPair(sorted []*deck.Card) deck.Hand {
	pairs := make([][]*deck.Card, 0, 2)
	for _, group := range groupByRank(sorted) {
		if len(group.cards) >= 2 {
			pairs = append(pairs, group.cards[:2])
			if len(pairs) == 2 {
				break
			}
		}
	}

	if len(pairs) < 2 {
		return nil
	}

	kicker := kickers(sorted, 1, pairs[0][0].Rank, pairs[1][0].Rank)
	if kicker == nil {
		return nil
	}

	hand := make(deck.Hand, 0, 5)
	hand = append(hand, pairs[0]...)
	hand = append(hand, pairs[1]...)
	return append(hand, kicker...)
}

func checkPair(sorted []*deck.Card) deck.Hand {
	for _, group := range groupByRank(sorted) {
		if len(group.cards) < 2 {
			continue
		}

		kick := kickers(sorted, 3, group.rank)
		if kick == nil {
			return nil
		}

		return append(deck.Hand{}, append(group.cards[:2], kick...)...)
	}

	return nil
}
