package domain

import "errors"

var (
	// ErrCardNotInHand is returned when a player plays a card it does not hold.
	ErrCardNotInHand = errors.New("card not in hand")
	// ErrIllegalAction is returned when an action breaks the rules of the current turn.
	ErrIllegalAction = errors.New("illegal action")
)

// StandardRules implements the Santase rules the players are validated against.
type StandardRules struct{}

// IsValid reports whether the action is legal for the given hand and turn.
func (StandardRules) IsValid(action Action, ctx *TurnContext, hand []Card) bool {
	switch action.Type {
	case ActionChangeTrump:
		return canChangeTrump(ctx, hand)
	case ActionCloseGame:
		return ctx.IsFirstPlayerTurn() &&
			ctx.State.CanClose &&
			!ctx.State.ShouldObserveRules &&
			ctx.CardsLeftInDeck > MinCardsToCloseOrChange
	case ActionPlayCard:
		if !ContainsCard(StandardRules{}.PossibleCardsToPlay(ctx, hand), action.Card) {
			return false
		}
		if action.Announce == NoAnnounce {
			return true
		}
		if !ctx.IsFirstPlayerTurn() || !ctx.State.CanAnnounce20Or40 {
			return false
		}
		return StandardRules{}.PossibleAnnounce(hand, action.Card, ctx.TrumpCard) == action.Announce
	}
	return false
}

func canChangeTrump(ctx *TurnContext, hand []Card) bool {
	if !ctx.IsFirstPlayerTurn() || !ctx.State.CanChangeTrump || ctx.State.ShouldObserveRules {
		return false
	}
	if ctx.CardsLeftInDeck <= MinCardsToCloseOrChange || ctx.TrumpCard.Type == Nine {
		return false
	}
	return ContainsCard(hand, Card{Suit: ctx.TrumpCard.Suit, Type: Nine})
}

// PossibleCardsToPlay returns the cards the player may legally play, in hand order.
// Under strict rules the follower must overtake in the led suit when possible,
// otherwise follow suit, otherwise trump, otherwise play anything.
func (StandardRules) PossibleCardsToPlay(ctx *TurnContext, hand []Card) []Card {
	if ctx.IsFirstPlayerTurn() || !ctx.State.ShouldObserveRules {
		return append([]Card{}, hand...)
	}

	led := *ctx.FirstPlayedCard
	sameSuit := CardsOfSuit(hand, led.Suit)
	if len(sameSuit) > 0 {
		var higher []Card
		for _, c := range sameSuit {
			if c.Value() > led.Value() {
				higher = append(higher, c)
			}
		}
		if len(higher) > 0 {
			return higher
		}
		return sameSuit
	}

	if trumps := CardsOfSuit(hand, ctx.TrumpCard.Suit); len(trumps) > 0 {
		return trumps
	}
	return append([]Card{}, hand...)
}

// PossibleAnnounce returns the meld the card would complete, if any.
func (StandardRules) PossibleAnnounce(hand []Card, card Card, trumpCard Card) Announce {
	var partner CardType
	switch card.Type {
	case Queen:
		partner = King
	case King:
		partner = Queen
	default:
		return NoAnnounce
	}
	if !ContainsCard(hand, card) || !ContainsCard(hand, Card{Suit: card.Suit, Type: partner}) {
		return NoAnnounce
	}
	if card.Suit == trumpCard.Suit {
		return Forty
	}
	return Twenty
}

// FirstCardWins reports whether the led card takes the trick.
func FirstCardWins(first, second Card, trump Suit) bool {
	if first.Suit == second.Suit {
		return first.Value() > second.Value()
	}
	return second.Suit != trump
}
