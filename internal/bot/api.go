package bot

import (
	"santase/internal/domain"
)

// Player is the interface every bot implementation satisfies.
// The hand is owned by the game engine and must not be modified.
type Player interface {
	Name() string
	GetTurn(ctx *domain.TurnContext, hand []domain.Card) domain.Action
	// EndTurn is called with both cards of the finished trick.
	EndTurn(ctx *domain.TurnContext)
	EndRound()
}

// ActionValidator answers legality questions for the current turn.
type ActionValidator interface {
	IsValid(action domain.Action, ctx *domain.TurnContext, hand []domain.Card) bool
	PossibleCardsToPlay(ctx *domain.TurnContext, hand []domain.Card) []domain.Card
}

// AnnounceValidator reports which meld, if any, a card would complete.
type AnnounceValidator interface {
	PossibleAnnounce(hand []domain.Card, card domain.Card, trumpCard domain.Card) domain.Announce
}

// Rules bundles the validators a player consults.
type Rules interface {
	ActionValidator
	AnnounceValidator
}
