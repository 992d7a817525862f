package brain

import (
	"santase/internal/domain"
)

// OpponentCards returns the cards of the given suit the opponent could still hold.
//
// The universe is the 24-card deck minus our hand, minus everything played this
// round, minus the face-up trump card when one is given. Pass a nil trumpCard once
// the deck is exhausted. The result is a superset: undrawn deck cards are included,
// and rule legality is left to the caller.
func OpponentCards(hand, played []domain.Card, trumpCard *domain.Card, suit domain.Suit) []domain.Card {
	var known [domain.DeckSize]bool
	for _, c := range hand {
		known[domain.DeckIndex(c)] = true
	}
	for _, c := range played {
		known[domain.DeckIndex(c)] = true
	}
	if trumpCard != nil {
		known[domain.DeckIndex(*trumpCard)] = true
	}

	var out []domain.Card
	for _, t := range domain.AllCardTypes {
		c := domain.Card{Suit: suit, Type: t}
		if !known[domain.DeckIndex(c)] {
			out = append(out, c)
		}
	}
	return out
}

// OpponentHasSuit reports whether the opponent could hold any card of the suit.
func OpponentHasSuit(hand, played []domain.Card, trumpCard *domain.Card, suit domain.Suit) bool {
	return len(OpponentCards(hand, played, trumpCard, suit)) > 0
}
