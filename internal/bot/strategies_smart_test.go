package bot

import (
	"testing"

	"santase/internal/bot/brain"
	"santase/internal/domain"
)

func cards(t *testing.T, values ...string) []domain.Card {
	t.Helper()
	out, err := domain.ParseCards(values)
	if err != nil {
		t.Fatalf("ParseCards(%v): %v", values, err)
	}
	return out
}

func one(t *testing.T, value string) domain.Card {
	t.Helper()
	return cards(t, value)[0]
}

func newSmart() *SmartPlayer {
	return NewSmartPlayer("smart", domain.StandardRules{}, &Stats{}, nil)
}

func TestSmartPlayer_LeadingStrictPlaysSureWinner(t *testing.T) {
	p := newSmart()
	ctx := &domain.TurnContext{
		State:     domain.RoundState{ShouldObserveRules: true},
		TrumpCard: one(t, "9S"),
	}
	hand := cards(t, "JS", "AS", "9H")

	got := p.GetTurn(ctx, hand)
	if got != domain.PlayCard(one(t, "AS")) {
		t.Fatalf("expected AS, got %s", got)
	}
}

func TestSmartPlayer_LeadingStrictDrawsOutMeldPair(t *testing.T) {
	p := newSmart()
	p.Remember(cards(t, "9H", "JH", "10H", "AH")...)
	ctx := &domain.TurnContext{
		State:     domain.RoundState{ShouldObserveRules: true},
		TrumpCard: one(t, "QS"),
	}
	hand := cards(t, "9C", "JC", "9S")

	got := p.GetTurn(ctx, hand)
	if got != domain.PlayCard(one(t, "9S")) {
		t.Fatalf("expected lowest trump 9S, got %s", got)
	}
}

func TestSmartPlayer_LeadingStrictDrawsOutTrumpMeldPair(t *testing.T) {
	p := newSmart()
	p.Remember(cards(t, "AS", "10S", "JS")...)
	ctx := &domain.TurnContext{
		State:     domain.RoundState{ShouldObserveRules: true},
		TrumpCard: one(t, "AS"),
	}
	hand := cards(t, "9S", "9C", "JC")

	tr := newTurn(ctx, hand, p.rules, p.memory)
	if !tr.suitProfile(domain.Spade).OnlyMeldPair() {
		t.Fatalf("expected only QS and KS out, got %v", tr.suitProfile(domain.Spade).Cards)
	}
	got := p.GetTurn(ctx, hand)
	if got != domain.PlayCard(one(t, "9S")) {
		t.Fatalf("expected lowest trump 9S, got %s", got)
	}
}

func TestSmartPlayer_LeadingStrictFallsBackToLowestNonTrump(t *testing.T) {
	p := newSmart()
	ctx := &domain.TurnContext{
		State:     domain.RoundState{ShouldObserveRules: true},
		TrumpCard: one(t, "QS"),
	}
	hand := cards(t, "JC", "9S", "9C")

	got := p.GetTurn(ctx, hand)
	if got != domain.PlayCard(one(t, "9C")) {
		t.Fatalf("expected 9C, got %s", got)
	}
}

func TestSmartPlayer_LeadingAnnouncesFortyFirst(t *testing.T) {
	p := newSmart()
	ctx := &domain.TurnContext{
		State:           domain.RoundState{CanAnnounce20Or40: true},
		TrumpCard:       one(t, "JS"),
		CardsLeftInDeck: 8,
	}
	hand := cards(t, "QH", "KH", "QS", "KS", "9C", "AD")

	got := p.GetTurn(ctx, hand)
	want := domain.PlayCardAndAnnounce(one(t, "QS"), domain.Forty)
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestSmartPlayer_LeadingFreeDefensiveTrumpTen(t *testing.T) {
	hand := []string{"10S", "9C", "9D"}
	tests := []struct {
		name     string
		myPoints int
		played   []string
		want     string
	}{
		{name: "trailing leads the ten", myPoints: 20, played: []string{"AS", "KD"}, want: "10S"},
		{name: "enough points keeps the ten", myPoints: 40, played: []string{"AS", "KD"}, want: "9C"},
		// AS unseen: 1 - (17*16*...*12)/(18*17*...*13) = 2/3
		{name: "trump ace out keeps the ten", myPoints: 20, want: "9C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newSmart()
			p.Remember(cards(t, tt.played...)...)
			ctx := &domain.TurnContext{
				TrumpCard:               one(t, "JS"),
				FirstPlayerRoundPoints:  tt.myPoints,
				SecondPlayerRoundPoints: 55,
				CardsLeftInDeck:         6,
			}
			got := p.GetTurn(ctx, cards(t, hand...))
			if got != domain.PlayCard(one(t, tt.want)) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDefensiveTrumpTen_RejectsLikelyTakenTen(t *testing.T) {
	p := newSmart()
	ctx := &domain.TurnContext{
		TrumpCard:               one(t, "JS"),
		FirstPlayerRoundPoints:  20,
		SecondPlayerRoundPoints: 55,
		CardsLeftInDeck:         6,
	}
	hand := cards(t, "10S", "9C", "9D")
	tr := newTurn(ctx, hand, p.rules, p.memory)

	prob := brain.NewCalculator(*ctx).ProbabilityCardToBeTaken(one(t, "10S"), hand, tr.played)
	if prob <= maxTakenProbability {
		t.Fatalf("expected estimate above %.2f, got %.3f", maxTakenProbability, prob)
	}
	if got, ok := defensiveTrumpTen(tr); ok {
		t.Fatalf("expected the ten to be held back, got %s", got)
	}

	p.Remember(one(t, "AS"))
	tr = newTurn(ctx, hand, p.rules, p.memory)
	if got, ok := defensiveTrumpTen(tr); !ok || got != domain.PlayCard(one(t, "10S")) {
		t.Fatalf("expected 10S once the ace is gone, got %s (%v)", got, ok)
	}
}

func TestSmartPlayer_LeadingFreeKeepsMeldCards(t *testing.T) {
	p := newSmart()
	ctx := &domain.TurnContext{TrumpCard: one(t, "JS"), CardsLeftInDeck: 6}
	hand := cards(t, "KH", "QC", "10D")

	got := p.GetTurn(ctx, hand)
	if got != domain.PlayCard(one(t, "10D")) {
		t.Fatalf("expected 10D, got %s", got)
	}

	p.Remember(one(t, "KC"))
	got = p.GetTurn(ctx, hand)
	if got != domain.PlayCard(one(t, "QC")) {
		t.Fatalf("expected QC once its king is gone, got %s", got)
	}
}

func TestSmartPlayer_SafetyNetWhenOnlyTrumpsHeld(t *testing.T) {
	p := newSmart()
	ctx := &domain.TurnContext{TrumpCard: one(t, "AS"), CardsLeftInDeck: 6}
	hand := cards(t, "JS", "9S")

	got := p.GetTurn(ctx, hand)
	if got != domain.PlayCard(one(t, "JS")) {
		t.Fatalf("expected first held card JS, got %s", got)
	}
}

func TestSmartPlayer_FollowingFreeTrumpsLedTenWithNine(t *testing.T) {
	p := newSmart()
	led := one(t, "10H")
	ctx := &domain.TurnContext{
		TrumpCard:       one(t, "AS"),
		FirstPlayedCard: &led,
		CardsLeftInDeck: 6,
	}
	hand := cards(t, "JS", "KS", "9S", "QC", "9D")

	got := p.GetTurn(ctx, hand)
	if got != domain.PlayCard(one(t, "9S")) {
		t.Fatalf("expected 9S, got %s", got)
	}
}

func TestSmartPlayer_FollowingFree(t *testing.T) {
	tests := []struct {
		name   string
		led    string
		hand   []string
		played []string
		want   string
	}{
		{name: "overtakes in suit", led: "9H", hand: []string{"AH", "10H", "9C"}, want: "AH"},
		{name: "keeps king with queen out", led: "9H", hand: []string{"KH", "9C"}, want: "9C"},
		{name: "king overtakes once queen is gone", led: "9H", hand: []string{"KH", "9C"}, played: []string{"QH"}, want: "KH"},
		{name: "ace takes led trump ten", led: "10S", hand: []string{"AS", "9C"}, want: "AS"},
		{name: "trump king skipped for trump ten", led: "AH", hand: []string{"KS", "10S", "9C"}, want: "10S"},
		{name: "low card otherwise", led: "JC", hand: []string{"AS", "9D", "QH"}, want: "9D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newSmart()
			p.Remember(cards(t, tt.played...)...)
			led := one(t, tt.led)
			ctx := &domain.TurnContext{
				TrumpCard:       one(t, "JS"),
				FirstPlayedCard: &led,
				CardsLeftInDeck: 6,
			}
			got := p.GetTurn(ctx, cards(t, tt.hand...))
			if got != domain.PlayCard(one(t, tt.want)) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSmartPlayer_FollowingStrict(t *testing.T) {
	tests := []struct {
		name string
		led  string
		hand []string
		want string
	}{
		{name: "overtakes with highest", led: "9H", hand: []string{"10H", "AH", "9S"}, want: "AH"},
		{name: "lowest trump when void", led: "AH", hand: []string{"AS", "JS", "9C"}, want: "JS"},
		{name: "lowest otherwise", led: "AH", hand: []string{"KC", "9D"}, want: "9D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newSmart()
			led := one(t, tt.led)
			ctx := &domain.TurnContext{
				State:           domain.RoundState{ShouldObserveRules: true},
				TrumpCard:       one(t, "QS"),
				FirstPlayedCard: &led,
			}
			hand := cards(t, tt.hand...)
			first := p.GetTurn(ctx, hand)
			second := p.GetTurn(ctx, hand)
			if first != second {
				t.Fatalf("decision not repeatable: %s then %s", first, second)
			}
			if first != domain.PlayCard(one(t, tt.want)) {
				t.Fatalf("expected %s, got %s", tt.want, first)
			}
		})
	}
}

func TestSmartPlayer_ChangesTrumpFirst(t *testing.T) {
	p := newSmart()
	ctx := &domain.TurnContext{
		State:           domain.RoundState{CanChangeTrump: true, CanClose: true},
		TrumpCard:       one(t, "AS"),
		CardsLeftInDeck: 8,
	}
	got := p.GetTurn(ctx, cards(t, "9S", "9C", "JD"))
	if got != domain.ChangeTrump() {
		t.Fatalf("expected change trump, got %s", got)
	}
}

func TestSmartPlayer_CloseIncrementsStats(t *testing.T) {
	stats := &Stats{}
	p := NewSmartPlayer("smart", domain.StandardRules{}, stats, nil)
	ctx := &domain.TurnContext{
		State:                  domain.RoundState{CanClose: true},
		TrumpCard:              one(t, "JS"),
		FirstPlayerRoundPoints: 50,
		CardsLeftInDeck:        8,
	}
	hand := cards(t, "AC", "AD", "KS", "10S", "9H", "JH")

	if got := p.GetTurn(ctx, hand); got != domain.CloseGame() {
		t.Fatalf("expected close, got %s", got)
	}
	if stats.GamesClosed() != 1 {
		t.Fatalf("expected 1 close, got %d", stats.GamesClosed())
	}

	ctx.State.CanClose = false
	if got := p.GetTurn(ctx, hand); got == domain.CloseGame() {
		t.Fatalf("closed although closing is not allowed")
	}
	if stats.GamesClosed() != 1 {
		t.Fatalf("counter changed without a close: %d", stats.GamesClosed())
	}
}

func TestSmartPlayer_Lifecycle(t *testing.T) {
	p := newSmart()
	first, second := one(t, "AH"), one(t, "9H")
	p.EndTurn(&domain.TurnContext{FirstPlayedCard: &first, SecondPlayedCard: &second})

	played := p.Played()
	if len(played) != 2 || played[0] != first || played[1] != second {
		t.Fatalf("unexpected played cards %v", played)
	}

	p.EndRound()
	if len(p.Played()) != 0 {
		t.Fatalf("expected memory to be cleared, got %v", p.Played())
	}
}

func TestEnsurePlayable(t *testing.T) {
	p := newSmart()
	led := one(t, "9H")
	ctx := &domain.TurnContext{
		State:           domain.RoundState{ShouldObserveRules: true},
		TrumpCard:       one(t, "QS"),
		FirstPlayedCard: &led,
	}
	hand := cards(t, "9C", "AH", "JH")
	tr := newTurn(ctx, hand, p.rules, p.memory)

	got := tr.ensurePlayable(domain.PlayCard(one(t, "9C")))
	if got != domain.PlayCard(one(t, "AH")) {
		t.Fatalf("expected first playable AH, got %s", got)
	}
	got = tr.ensurePlayable(domain.PlayCard(one(t, "KD")))
	if got != domain.PlayCard(one(t, "AH")) {
		t.Fatalf("expected replacement for card not in hand, got %s", got)
	}
	if got := tr.ensurePlayable(domain.PlayCard(one(t, "JH"))); got != domain.PlayCard(one(t, "JH")) {
		t.Fatalf("legal card replaced: %s", got)
	}
}
