package brain

import (
	"santase/internal/domain"
)

// Memory stores the cards a player has seen face-up during the current round.
// Each player owns its own Memory; it is never shared with the opponent.
type Memory struct {
	played []domain.Card
	seen   [domain.DeckSize]bool
}

// NewMemory initializes an empty round memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Reset clears the memory for a new round.
func (m *Memory) Reset() {
	m.played = m.played[:0]
	for i := range m.seen {
		m.seen[i] = false
	}
}

// MarkPlayed appends cards in the order they were played. Cards already seen are ignored.
func (m *Memory) MarkPlayed(cards ...domain.Card) {
	for _, c := range cards {
		idx := domain.DeckIndex(c)
		if m.seen[idx] {
			continue
		}
		m.seen[idx] = true
		m.played = append(m.played, c)
	}
}

// RecordTrick stores both cards of a finished trick, first card first.
func (m *Memory) RecordTrick(first, second *domain.Card) {
	if first != nil {
		m.MarkPlayed(*first)
	}
	if second != nil {
		m.MarkPlayed(*second)
	}
}

// IsPlayed returns true if the card has already been seen this round.
func (m *Memory) IsPlayed(c domain.Card) bool {
	return m.seen[domain.DeckIndex(c)]
}

// Played returns a copy of the played cards in play order.
func (m *Memory) Played() []domain.Card {
	return append([]domain.Card{}, m.played...)
}

// Len returns the number of cards seen this round.
func (m *Memory) Len() int {
	return len(m.played)
}
