package bot

import (
	"santase/internal/bot/brain"
	"santase/internal/domain"
)

func leadingFreeLadder() Ladder {
	return Ladder{
		{Name: "announce", Apply: announceMeld},
		{Name: "defensive-trump-ten", Apply: defensiveTrumpTen},
		{Name: "lowest-keeping-melds", Apply: lowestKeepingMelds},
	}
}

func leadingStrictLadder() Ladder {
	return Ladder{
		{Name: "announce", Apply: announceMeld},
		{Name: "unbeatable-high-card", Apply: unbeatableHighCard},
		{Name: "draw-out-meld-pair", Apply: drawOutMeldPair},
		{Name: "surely-winning-suit", Apply: surelyWinningSuit},
		{Name: "lowest-non-trump", Apply: lowestNonTrump},
		{Name: "lowest", Apply: lowestPlayable},
	}
}

// announceMeld plays a queen that completes a meld, forty before twenty.
func announceMeld(t *turn) (domain.Action, bool) {
	if !t.ctx.State.CanAnnounce20Or40 {
		return domain.Action{}, false
	}
	for _, kind := range []domain.Announce{domain.Forty, domain.Twenty} {
		for _, c := range t.possible {
			if c.Type != domain.Queen {
				continue
			}
			if t.rules.PossibleAnnounce(t.hand, c, t.ctx.TrumpCard) == kind {
				return domain.PlayCardAndAnnounce(c, kind), true
			}
		}
	}
	return domain.Action{}, false
}

// defensiveTrumpTen leads the only strong trump, a ten, when we trail badly
// and it is unlikely to be taken.
func defensiveTrumpTen(t *turn) (domain.Action, bool) {
	if t.ctx.MyPoints() >= defensiveOwnPointsBelow || t.ctx.OpponentPoints() < defensiveOpponentPointsAtMin {
		return domain.Action{}, false
	}

	var strong []domain.Card
	for _, c := range domain.CardsOfSuit(t.hand, t.trump) {
		if c.Value() >= strongCardValue {
			strong = append(strong, c)
		}
	}
	if len(strong) != 1 || strong[0].Type != domain.Ten || !t.canPlay(strong[0]) {
		return domain.Action{}, false
	}

	calc := brain.NewCalculator(*t.ctx)
	if calc.ProbabilityCardToBeTaken(strong[0], t.hand, t.played) > maxTakenProbability {
		return domain.Action{}, false
	}
	return domain.PlayCard(strong[0]), true
}

// lowestKeepingMelds leads the cheapest non-trump card, holding back a king or
// queen while its meld partner is still out. The scan starts from the trump ace
// so nothing at all is chosen when every card is kept back.
func lowestKeepingMelds(t *turn) (domain.Action, bool) {
	chosen := domain.Card{Suit: t.trump, Type: domain.Ace}
	for _, c := range t.possible {
		if c.Suit == t.trump || c.Value() >= chosen.Value() {
			continue
		}
		if !t.partnerPlayed(c) {
			continue
		}
		chosen = c
	}
	return domain.PlayCard(chosen), true
}

// unbeatableHighCard leads a ten or ace that the opponent cannot take.
func unbeatableHighCard(t *turn) (domain.Action, bool) {
	var candidates []domain.Card
	for _, c := range t.possible {
		if c.Value() >= strongCardValue {
			candidates = append(candidates, c)
		}
	}
	domain.SortByValueDesc(candidates)

	hasTrump := t.opponentHasTrump()
	for _, c := range candidates {
		if t.surelyWins(c, hasTrump) {
			return domain.PlayCard(c), true
		}
	}
	return domain.Action{}, false
}

// drawOutMeldPair leads the lowest trump when the only cards left out in some
// suit, trumps included, are its queen and king.
func drawOutMeldPair(t *turn) (domain.Action, bool) {
	trumps := t.possibleOfSuit(t.trump)
	low, ok := domain.Lowest(trumps)
	if !ok {
		return domain.Action{}, false
	}
	for _, s := range domain.AllSuits {
		if t.suitProfile(s).OnlyMeldPair() {
			return domain.PlayCard(low), true
		}
	}
	return domain.Action{}, false
}

// surelyWinningSuit leads our best card of the first suit where it cannot lose.
func surelyWinningSuit(t *turn) (domain.Action, bool) {
	hasTrump := t.opponentHasTrump()
	for _, s := range domain.AllSuits {
		mine, ok := domain.Highest(t.possibleOfSuit(s))
		if !ok {
			continue
		}
		if t.surelyWins(mine, hasTrump) {
			return domain.PlayCard(mine), true
		}
	}
	return domain.Action{}, false
}

func lowestNonTrump(t *turn) (domain.Action, bool) {
	low, ok := domain.Lowest(t.possibleNonTrump())
	if !ok {
		return domain.Action{}, false
	}
	return domain.PlayCard(low), true
}

func lowestPlayable(t *turn) (domain.Action, bool) {
	low, ok := domain.Lowest(t.possible)
	if !ok {
		return domain.Action{}, false
	}
	return domain.PlayCard(low), true
}
