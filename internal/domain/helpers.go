package domain

// ContainsCard reports whether the card is in the list.
func ContainsCard(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}

// RemoveCards removes the provided cards from a hand and returns a new slice.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return append([]Card{}, hand...)
	}

	remove := make(map[Card]bool, len(toRemove))
	for _, card := range toRemove {
		remove[card] = true
	}

	updated := make([]Card, 0, len(hand))
	for _, card := range hand {
		if remove[card] {
			continue
		}
		updated = append(updated, card)
	}
	return updated
}

// CardsOfSuit returns the cards of the given suit, preserving order.
func CardsOfSuit(cards []Card, suit Suit) []Card {
	var out []Card
	for _, c := range cards {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

// Lowest returns the lowest-value card, first one wins on ties.
func Lowest(cards []Card) (Card, bool) {
	if len(cards) == 0 {
		return Card{}, false
	}
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Value() < best.Value() {
			best = c
		}
	}
	return best, true
}

// Highest returns the highest-value card, first one wins on ties.
func Highest(cards []Card) (Card, bool) {
	if len(cards) == 0 {
		return Card{}, false
	}
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Value() > best.Value() {
			best = c
		}
	}
	return best, true
}

// SumValues adds up the point values of the cards.
func SumValues(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Value()
	}
	return total
}
