package bot

import (
	"io"

	"github.com/charmbracelet/log"

	"santase/internal/bot/brain"
	"santase/internal/domain"
)

// SmartPlayer picks its actions with a layered, rule-based policy backed by
// opponent-hand inference and a probability estimate.
type SmartPlayer struct {
	name   string
	rules  Rules
	memory *brain.Memory
	stats  *Stats
	logger *log.Logger

	leadingFree     Ladder
	leadingStrict   Ladder
	followingFree   Ladder
	followingStrict Ladder
}

// NewSmartPlayer creates a smart player. stats may be shared between players;
// a nil logger discards output.
func NewSmartPlayer(name string, rules Rules, stats *Stats, logger *log.Logger) *SmartPlayer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if stats == nil {
		stats = &Stats{}
	}
	return &SmartPlayer{
		name:            name,
		rules:           rules,
		memory:          brain.NewMemory(),
		stats:           stats,
		logger:          logger.WithPrefix("bot").With("player", name),
		leadingFree:     leadingFreeLadder(),
		leadingStrict:   leadingStrictLadder(),
		followingFree:   followingFreeLadder(),
		followingStrict: followingStrictLadder(),
	}
}

func (p *SmartPlayer) Name() string { return p.name }

// Stats returns the statistics the player reports to.
func (p *SmartPlayer) Stats() *Stats { return p.stats }

// Remember marks cards as already seen this round.
func (p *SmartPlayer) Remember(cards ...domain.Card) {
	p.memory.MarkPlayed(cards...)
}

// Played returns the cards seen this round in play order.
func (p *SmartPlayer) Played() []domain.Card {
	return p.memory.Played()
}

// GetTurn returns the action for this turn. It never fails: when the policy
// produces a card that is not playable, the first playable card is used instead.
func (p *SmartPlayer) GetTurn(ctx *domain.TurnContext, hand []domain.Card) domain.Action {
	if p.rules.IsValid(domain.ChangeTrump(), ctx, hand) {
		p.logger.Debug("changing trump", "trump", ctx.TrumpCard)
		return domain.ChangeTrump()
	}

	if p.rules.IsValid(domain.CloseGame(), ctx, hand) && ShouldCloseGame(ctx, hand, p.memory) {
		p.stats.RecordClose()
		p.logger.Debug("closing game", "points", ctx.MyPoints(), "closed", p.stats.GamesClosed())
		return domain.CloseGame()
	}

	return p.chooseCard(ctx, hand)
}

func (p *SmartPlayer) chooseCard(ctx *domain.TurnContext, hand []domain.Card) domain.Action {
	t := newTurn(ctx, hand, p.rules, p.memory)
	ladder := p.ladderFor(ctx)

	action, rule, ok := ladder.Decide(t)
	if !ok {
		rule = "fallback"
		action = t.fallback()
	}
	if safe := t.ensurePlayable(action); safe != action {
		p.logger.Warn("rule chose an unplayable card", "rule", rule, "card", action.Card, "replacement", safe.Card)
		action = safe
		rule = "safety-net"
	}

	p.logger.Debug("card chosen",
		"rule", rule,
		"action", action,
		"leading", ctx.IsFirstPlayerTurn(),
		"strict", ctx.State.ShouldObserveRules,
	)
	return action
}

func (p *SmartPlayer) ladderFor(ctx *domain.TurnContext) Ladder {
	switch {
	case ctx.IsFirstPlayerTurn() && ctx.State.ShouldObserveRules:
		return p.leadingStrict
	case ctx.IsFirstPlayerTurn():
		return p.leadingFree
	case ctx.State.ShouldObserveRules:
		return p.followingStrict
	default:
		return p.followingFree
	}
}

// EndTurn records both cards of the finished trick.
func (p *SmartPlayer) EndTurn(ctx *domain.TurnContext) {
	p.memory.RecordTrick(ctx.FirstPlayedCard, ctx.SecondPlayedCard)
}

// EndRound forgets the cards played this round.
func (p *SmartPlayer) EndRound() {
	p.memory.Reset()
}
