package bot

import (
	"santase/internal/domain"
)

func followingFreeLadder() Ladder {
	return Ladder{
		{Name: "overtake-keeping-melds", Apply: overtakeKeepingMelds},
		{Name: "ace-over-trump-ten", Apply: aceOverTrumpTen},
		{Name: "trump-over-high-card", Apply: trumpOverHighCard},
		{Name: "lowest", Apply: lowestPlayable},
	}
}

func followingStrictLadder() Ladder {
	return Ladder{
		{Name: "overtake", Apply: overtake},
		{Name: "lowest-trump", Apply: lowestTrump},
		{Name: "lowest", Apply: lowestPlayable},
	}
}

// trumpPreference is the order trumps are spent on a led ace or ten.
var trumpPreference = []domain.CardType{
	domain.Nine,
	domain.Jack,
	domain.Queen,
	domain.King,
	domain.Ten,
	domain.Ace,
}

// overtakeKeepingMelds takes the trick with our highest card of the led suit,
// unless that card is a king or queen whose partner is still out.
func overtakeKeepingMelds(t *turn) (domain.Action, bool) {
	c, ok := t.higherOfLedSuit()
	if !ok || !t.partnerPlayed(c) {
		return domain.Action{}, false
	}
	return domain.PlayCard(c), true
}

// aceOverTrumpTen takes a led trump ten with the trump ace.
func aceOverTrumpTen(t *turn) (domain.Action, bool) {
	led := *t.ctx.FirstPlayedCard
	ace := domain.Card{Suit: t.trump, Type: domain.Ace}
	if led.Suit != t.trump || led.Type != domain.Ten || !t.canPlay(ace) {
		return domain.Action{}, false
	}
	return domain.PlayCard(ace), true
}

// trumpOverHighCard spends the cheapest acceptable trump on a led non-trump ace or ten.
// A trump king or queen is only used once its meld partner is gone.
func trumpOverHighCard(t *turn) (domain.Action, bool) {
	led := *t.ctx.FirstPlayedCard
	if led.Suit == t.trump || led.Value() < strongCardValue {
		return domain.Action{}, false
	}
	for _, typ := range trumpPreference {
		c := domain.Card{Suit: t.trump, Type: typ}
		if !t.canPlay(c) || !t.partnerPlayed(c) {
			continue
		}
		return domain.PlayCard(c), true
	}
	return domain.Action{}, false
}

func overtake(t *turn) (domain.Action, bool) {
	c, ok := t.higherOfLedSuit()
	if !ok {
		return domain.Action{}, false
	}
	return domain.PlayCard(c), true
}

func lowestTrump(t *turn) (domain.Action, bool) {
	low, ok := domain.Lowest(t.possibleOfSuit(t.trump))
	if !ok {
		return domain.Action{}, false
	}
	return domain.PlayCard(low), true
}
