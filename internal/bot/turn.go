package bot

import (
	"santase/internal/bot/brain"
	"santase/internal/domain"
)

// turn bundles what the rules of a ladder need to look at.
type turn struct {
	ctx      *domain.TurnContext
	hand     []domain.Card
	possible []domain.Card
	played   []domain.Card
	trump    domain.Suit
	rules    Rules
	memory   *brain.Memory
}

func newTurn(ctx *domain.TurnContext, hand []domain.Card, rules Rules, memory *brain.Memory) *turn {
	return &turn{
		ctx:      ctx,
		hand:     hand,
		possible: rules.PossibleCardsToPlay(ctx, hand),
		played:   memory.Played(),
		trump:    ctx.TrumpSuit(),
		rules:    rules,
		memory:   memory,
	}
}

func (t *turn) isPlayed(c domain.Card) bool {
	return t.memory.IsPlayed(c)
}

func (t *turn) canPlay(c domain.Card) bool {
	return domain.ContainsCard(t.possible, c)
}

func (t *turn) suitProfile(suit domain.Suit) brain.SuitProfile {
	return brain.NewSuitProfile(t.hand, t.played, t.ctx.VisibleTrumpCard(), suit)
}

func (t *turn) opponentHasTrump() bool {
	return brain.OpponentHasSuit(t.hand, t.played, t.ctx.VisibleTrumpCard(), t.trump)
}

// surelyWins reports whether leading c wins the trick whatever the opponent holds,
// assuming the opponent must follow suit.
func (t *turn) surelyWins(c domain.Card, opponentHasTrump bool) bool {
	profile := t.suitProfile(c.Suit)
	if profile.IsVoid() {
		return c.Suit == t.trump || !opponentHasTrump
	}
	return !profile.CanBeat(c)
}

// partnerPlayed is true when the meld partner of a king or queen is gone.
func (t *turn) partnerPlayed(c domain.Card) bool {
	switch c.Type {
	case domain.Queen:
		return t.isPlayed(domain.Card{Suit: c.Suit, Type: domain.King})
	case domain.King:
		return t.isPlayed(domain.Card{Suit: c.Suit, Type: domain.Queen})
	}
	return true
}

func (t *turn) possibleOfSuit(suit domain.Suit) []domain.Card {
	return domain.CardsOfSuit(t.possible, suit)
}

func (t *turn) possibleNonTrump() []domain.Card {
	var out []domain.Card
	for _, c := range t.possible {
		if c.Suit != t.trump {
			out = append(out, c)
		}
	}
	return out
}

// higherOfLedSuit returns the highest playable card that beats the led card in its suit.
func (t *turn) higherOfLedSuit() (domain.Card, bool) {
	led := *t.ctx.FirstPlayedCard
	var higher []domain.Card
	for _, c := range t.possibleOfSuit(led.Suit) {
		if c.Value() > led.Value() {
			higher = append(higher, c)
		}
	}
	return domain.Highest(higher)
}

func (t *turn) fallback() domain.Action {
	if low, ok := domain.Lowest(t.possible); ok {
		return domain.PlayCard(low)
	}
	if len(t.hand) > 0 {
		return domain.PlayCard(t.hand[0])
	}
	return domain.Action{}
}

// ensurePlayable replaces a card that is not held or not legal with the first
// playable card, falling back to the first card in hand.
func (t *turn) ensurePlayable(action domain.Action) domain.Action {
	if action.Type != domain.ActionPlayCard {
		return action
	}
	if domain.ContainsCard(t.hand, action.Card) && t.canPlay(action.Card) {
		return action
	}
	if len(t.possible) > 0 {
		return domain.PlayCard(t.possible[0])
	}
	if len(t.hand) > 0 {
		return domain.PlayCard(t.hand[0])
	}
	return action
}
