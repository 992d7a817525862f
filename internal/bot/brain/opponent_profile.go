package brain

import (
	"santase/internal/domain"
)

// SuitProfile summarizes what the opponent may hold in one suit.
type SuitProfile struct {
	Suit  domain.Suit
	Cards []domain.Card
}

// NewSuitProfile builds the profile from the inferred opponent cards.
func NewSuitProfile(hand, played []domain.Card, trumpCard *domain.Card, suit domain.Suit) SuitProfile {
	return SuitProfile{
		Suit:  suit,
		Cards: OpponentCards(hand, played, trumpCard, suit),
	}
}

// IsVoid is true when the opponent cannot hold the suit.
func (p SuitProfile) IsVoid() bool {
	return len(p.Cards) == 0
}

// Highest returns the strongest card the opponent could hold in the suit.
func (p SuitProfile) Highest() (domain.Card, bool) {
	return domain.Highest(p.Cards)
}

// CanBeat returns true if some possible opponent card of the suit outranks c.
// Cards of other suits are not considered.
func (p SuitProfile) CanBeat(c domain.Card) bool {
	high, ok := p.Highest()
	return ok && high.Value() > c.Value()
}

// OnlyMeldPair is true when the remaining cards of the suit are exactly its queen and king.
func (p SuitProfile) OnlyMeldPair() bool {
	if len(p.Cards) != 2 {
		return false
	}
	return domain.ContainsCard(p.Cards, domain.Card{Suit: p.Suit, Type: domain.Queen}) &&
		domain.ContainsCard(p.Cards, domain.Card{Suit: p.Suit, Type: domain.King})
}

// Count returns how many cards of the suit the opponent could hold.
func (p SuitProfile) Count() int {
	return len(p.Cards)
}
