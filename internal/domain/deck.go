package domain

import (
	"sort"
)

// DeckSize is the number of cards in a Santase deck.
const DeckSize = 24

// NewDeck returns the 24-card deck ordered by suit, then by rank.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range AllSuits {
		for _, t := range AllCardTypes {
			deck = append(deck, Card{Suit: s, Type: t})
		}
	}
	return deck
}

// SortByValue orders cards by ascending value. Ties keep their input order.
func SortByValue(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Value() < cards[j].Value()
	})
}

// SortByValueDesc orders cards by descending value. Ties keep their input order.
func SortByValueDesc(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Value() > cards[j].Value()
	})
}

// DeckIndex maps a card to its position in NewDeck.
func DeckIndex(c Card) int {
	return int(c.Suit)*len(AllCardTypes) + int(c.Type)
}
