package bot

import (
	"santase/internal/domain"
)

// DummyPlayer always plays its lowest playable card. It never closes the game
// or exchanges the trump card.
type DummyPlayer struct {
	name  string
	rules Rules
}

func NewDummyPlayer(name string, rules Rules) *DummyPlayer {
	return &DummyPlayer{name: name, rules: rules}
}

func (p *DummyPlayer) Name() string { return p.name }

func (p *DummyPlayer) GetTurn(ctx *domain.TurnContext, hand []domain.Card) domain.Action {
	if low, ok := domain.Lowest(p.rules.PossibleCardsToPlay(ctx, hand)); ok {
		return domain.PlayCard(low)
	}
	if len(hand) > 0 {
		return domain.PlayCard(hand[0])
	}
	return domain.Action{}
}

func (p *DummyPlayer) EndTurn(*domain.TurnContext) {}

func (p *DummyPlayer) EndRound() {}
