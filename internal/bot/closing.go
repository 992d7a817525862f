package bot

import (
	"santase/internal/bot/brain"
	"santase/internal/domain"
)

// handStrength counts the cards that make closing the game attractive.
type handStrength struct {
	strongTrumps  []domain.Card
	powerTrumps   int
	aces          int
	unguardedTens int
}

func measureHand(hand []domain.Card, trump domain.Suit, memory *brain.Memory) handStrength {
	var s handStrength
	for _, c := range hand {
		if c.Suit == trump {
			if c.Value() >= strongCardValue {
				s.strongTrumps = append(s.strongTrumps, c)
			}
			if c.Value() >= powerTrumpValue {
				s.powerTrumps++
			}
			continue
		}
		switch c.Type {
		case domain.Ace:
			s.aces++
		case domain.Ten:
			if memory.IsPlayed(domain.Card{Suit: c.Suit, Type: domain.Ace}) {
				s.unguardedTens++
			}
		}
	}
	return s
}

// ShouldCloseGame reports whether the hand is strong enough to close the game.
// Legality is checked by the caller.
func ShouldCloseGame(ctx *domain.TurnContext, hand []domain.Card, memory *brain.Memory) bool {
	trump := ctx.TrumpSuit()
	s := measureHand(hand, trump, memory)
	points := ctx.MyPoints()

	strongSide := s.unguardedTens >= closeMinStrongSuits || s.aces >= closeMinStrongSuits
	if strongSide && s.powerTrumps >= closeMinPowerTrumps && points > closePointsAbove {
		return true
	}

	trumpAce := domain.Card{Suit: trump, Type: domain.Ace}
	return len(s.strongTrumps) > 0 && points >= closeTrumpAcePointsAt && memory.IsPlayed(trumpAce)
}
