package bot

import (
	"errors"
	"testing"

	"santase/internal/domain"
)

func TestDummyPlayer_PlaysLowest(t *testing.T) {
	p := NewDummyPlayer("dummy", domain.StandardRules{})
	ctx := &domain.TurnContext{
		State:           domain.RoundState{CanClose: true, CanChangeTrump: true},
		TrumpCard:       one(t, "AS"),
		CardsLeftInDeck: 10,
	}
	got := p.GetTurn(ctx, cards(t, "KD", "9S", "JC"))
	if got != domain.PlayCard(one(t, "9S")) {
		t.Fatalf("expected 9S, got %s", got)
	}
}

func TestNewBrain(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "smart"},
		{level: " Dummy "},
		{level: "god", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			level, err := ParseLevel(tt.level)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.level)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel: %v", err)
			}
			p, err := NewBrain(level, "bot", domain.StandardRules{}, nil, nil)
			if err != nil {
				t.Fatalf("NewBrain: %v", err)
			}
			if p.Name() != "bot" {
				t.Fatalf("unexpected name %q", p.Name())
			}
		})
	}

	if _, err := NewBrain(Level("nope"), "bot", domain.StandardRules{}, nil, nil); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

type fixedPlayer struct {
	action domain.Action
}

func (p fixedPlayer) Name() string { return "fixed" }
func (p fixedPlayer) GetTurn(*domain.TurnContext, []domain.Card) domain.Action {
	return p.action
}
func (p fixedPlayer) EndTurn(*domain.TurnContext) {}
func (p fixedPlayer) EndRound()                   {}

func TestAgentPlay(t *testing.T) {
	ctx := &domain.TurnContext{TrumpCard: one(t, "AS"), CardsLeftInDeck: 10}
	hand := cards(t, "KD", "9C")

	tests := []struct {
		name    string
		action  domain.Action
		wantErr error
	}{
		{name: "legal card", action: domain.PlayCard(one(t, "KD"))},
		{name: "card not held", action: domain.PlayCard(one(t, "AH")), wantErr: domain.ErrCardNotInHand},
		{name: "illegal close", action: domain.CloseGame(), wantErr: domain.ErrIllegalAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Agent{ID: "1", Name: "fixed", Player: fixedPlayer{action: tt.action}, Rules: domain.StandardRules{}}
			_, err := a.Play(ctx, hand)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
