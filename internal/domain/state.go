package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Suit is one of the four card suits. Suits are only compared for equality.
type Suit int

const (
	Club Suit = iota
	Diamond
	Heart
	Spade
)

// AllSuits lists the suits in their fixed enumeration order.
var AllSuits = [4]Suit{Club, Diamond, Heart, Spade}

func (s Suit) String() string {
	switch s {
	case Club:
		return "C"
	case Diamond:
		return "D"
	case Heart:
		return "H"
	case Spade:
		return "S"
	}
	return "?"
}

// CardType is the rank of a card in the 24-card Santase deck.
type CardType int

const (
	Nine CardType = iota
	Jack
	Queen
	King
	Ten
	Ace
)

// AllCardTypes lists the ranks from weakest to strongest.
var AllCardTypes = [6]CardType{Nine, Jack, Queen, King, Ten, Ace}

func (t CardType) String() string {
	switch t {
	case Nine:
		return "9"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ten:
		return "10"
	case Ace:
		return "A"
	}
	return "?"
}

// Value returns the point value of the rank.
func (t CardType) Value() int {
	switch t {
	case Jack:
		return 2
	case Queen:
		return 3
	case King:
		return 4
	case Ten:
		return 10
	case Ace:
		return 11
	}
	return 0
}

// Card is an immutable suit/rank pair. Equality is structural.
type Card struct {
	Suit Suit
	Type CardType
}

// NewCard builds a card.
func NewCard(suit Suit, cardType CardType) Card {
	return Card{Suit: suit, Type: cardType}
}

// Value returns the point value of the card.
func (c Card) Value() int {
	return c.Type.Value()
}

func (c Card) String() string {
	return c.Type.String() + c.Suit.String()
}

// ErrInvalidCard is returned when a card string cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// ParseCard parses strings such as "QH", "10S" or "as" into a card.
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var suit Suit
	switch s[len(s)-1] {
	case 'C':
		suit = Club
	case 'D':
		suit = Diamond
	case 'H':
		suit = Heart
	case 'S':
		suit = Spade
	default:
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
	}

	var cardType CardType
	switch s[:len(s)-1] {
	case "9":
		cardType = Nine
	case "J":
		cardType = Jack
	case "Q":
		cardType = Queen
	case "K":
		cardType = King
	case "10", "T":
		cardType = Ten
	case "A":
		cardType = Ace
	default:
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
	}

	return Card{Suit: suit, Type: cardType}, nil
}

// ParseCards parses a list of card strings, stopping at the first error.
func ParseCards(values []string) ([]Card, error) {
	cards := make([]Card, 0, len(values))
	for _, v := range values {
		c, err := ParseCard(v)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// CardStrings formats cards for logs and wire payloads.
func CardStrings(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
