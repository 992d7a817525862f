package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("deck size = %d, want %d", len(deck), DeckSize)
	}

	seen := make(map[Card]bool)
	total := 0
	for i, c := range deck {
		if seen[c] {
			t.Fatalf("duplicate card found: %s", c)
		}
		seen[c] = true
		if DeckIndex(c) != i {
			t.Fatalf("DeckIndex(%s) = %d, want %d", c, DeckIndex(c), i)
		}
		total += c.Value()
	}
	if total != 120 {
		t.Fatalf("deck points = %d, want 120", total)
	}
}

func TestCardValues(t *testing.T) {
	want := map[CardType]int{Nine: 0, Jack: 2, Queen: 3, King: 4, Ten: 10, Ace: 11}
	for cardType, value := range want {
		if got := NewCard(Heart, cardType).Value(); got != value {
			t.Errorf("%s value = %d, want %d", cardType, got, value)
		}
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in      string
		want    Card
		wantErr bool
	}{
		{in: "QH", want: Card{Suit: Heart, Type: Queen}},
		{in: "10s", want: Card{Suit: Spade, Type: Ten}},
		{in: " ad ", want: Card{Suit: Diamond, Type: Ace}},
		{in: "TC", want: Card{Suit: Club, Type: Ten}},
		{in: "8H", wantErr: true},
		{in: "QX", wantErr: true},
		{in: "Q", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCard(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCard) {
					t.Fatalf("ParseCard(%q) error = %v, want ErrInvalidCard", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseCard(%q) = %s, want %s", tt.in, got, tt.want)
			}
			if again, _ := ParseCard(got.String()); again != got {
				t.Fatalf("String() of %s does not parse back", got)
			}
		})
	}
}

func TestRemoveCards(t *testing.T) {
	hand := []Card{
		{Suit: Spade, Type: Nine},
		{Suit: Heart, Type: Jack},
		{Suit: Diamond, Type: Queen},
		{Suit: Spade, Type: King},
	}
	played := []Card{
		{Suit: Heart, Type: Jack},
		{Suit: Spade, Type: King},
	}

	got := RemoveCards(hand, played)
	want := []Card{{Suit: Spade, Type: Nine}, {Suit: Diamond, Type: Queen}}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RemoveCards() = %v, want %v", got, want)
	}
	if len(hand) != 4 {
		t.Fatalf("RemoveCards must not modify its input")
	}
}

func TestLowestAndHighest(t *testing.T) {
	cards := []Card{{Suit: Club, Type: King}, {Suit: Heart, Type: Nine}, {Suit: Spade, Type: Nine}, {Suit: Club, Type: Ace}}

	low, ok := Lowest(cards)
	if !ok || low != (Card{Suit: Heart, Type: Nine}) {
		t.Fatalf("Lowest() = %s, want 9H (first of equal values)", low)
	}
	high, ok := Highest(cards)
	if !ok || high != (Card{Suit: Club, Type: Ace}) {
		t.Fatalf("Highest() = %s, want AC", high)
	}
	if _, ok := Lowest(nil); ok {
		t.Fatal("Lowest(nil) should report no card")
	}
}
