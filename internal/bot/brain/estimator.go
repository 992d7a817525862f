package brain

import (
	"santase/internal/domain"
)

// opponentHandSize is the size of the hand the opponent is modelled to draw
// from the unseen cards. It also accounts for our own hand in the deck tally.
const opponentHandSize = 6

// Calculator estimates how likely a led card is to be taken by the opponent.
type Calculator struct {
	ctx domain.TurnContext
}

// NewCalculator creates a calculator bound to the turn snapshot.
func NewCalculator(ctx domain.TurnContext) *Calculator {
	return &Calculator{ctx: ctx}
}

// ProbabilityCardToBeTaken returns a 0.0 to 1.0 chance that the opponent holds a
// card beating c if c is led.
//
// The opponent hand is treated as six cards drawn at random from the unseen
// remainder (24 - played - 6). The result is 1 - C(nonBeating, 6) / C(remainder, 6),
// and certainty when fewer than six non-beating cards remain.
func (e *Calculator) ProbabilityCardToBeTaken(c domain.Card, hand, played []domain.Card) float64 {
	trump := e.ctx.TrumpCard
	sameSuit := OpponentCards(hand, played, &trump, c.Suit)
	trumps := OpponentCards(hand, played, &trump, trump.Suit)

	beating := 0
	for _, oc := range sameSuit {
		if oc.Value() > c.Value() {
			beating++
		}
	}
	if c.Suit != trump.Suit {
		beating += len(trumps)
	}

	remainder := domain.DeckSize - len(played) - opponentHandSize
	nonBeating := remainder - beating
	if nonBeating < opponentHandSize {
		return 1
	}

	ratio := fallingFactorial(nonBeating, opponentHandSize) / fallingFactorial(remainder, opponentHandSize)
	return clamp01(1 - ratio)
}

// fallingFactorial returns n * (n-1) * ... * (n-k+1).
func fallingFactorial(n, k int) float64 {
	result := 1.0
	for i := 0; i < k; i++ {
		result *= float64(n - i)
	}
	return result
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
