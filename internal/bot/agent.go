package bot

import (
	"fmt"

	"santase/internal/domain"
)

// Agent seats a Player in a game and checks what it returns.
type Agent struct {
	ID     string
	Name   string
	Player Player
	Rules  ActionValidator
}

// Play asks the player for its action and rejects anything the rules forbid.
func (a *Agent) Play(ctx *domain.TurnContext, hand []domain.Card) (domain.Action, error) {
	action := a.Player.GetTurn(ctx, hand)
	if action.Type == domain.ActionPlayCard && !domain.ContainsCard(hand, action.Card) {
		return action, fmt.Errorf("agent %s played %s: %w", a.Name, action, domain.ErrCardNotInHand)
	}
	if !a.Rules.IsValid(action, ctx, hand) {
		return action, fmt.Errorf("agent %s chose %s: %w", a.Name, action, domain.ErrIllegalAction)
	}
	return action, nil
}

// EndTurn forwards the finished trick to the player.
func (a *Agent) EndTurn(ctx *domain.TurnContext) {
	a.Player.EndTurn(ctx)
}

// EndRound forwards the end of a round to the player.
func (a *Agent) EndRound() {
	a.Player.EndRound()
}
