package domain

import "fmt"

// RoundState carries the rule flags that apply to the current stage of a round.
type RoundState struct {
	// ShouldObserveRules is true once the deck is exhausted or the game is closed.
	// The follower must then follow suit and trump when void.
	ShouldObserveRules bool
	CanAnnounce20Or40  bool
	CanClose           bool
	CanChangeTrump     bool
}

// TurnContext is the read-only snapshot a player receives every turn.
type TurnContext struct {
	State     RoundState
	TrumpCard Card
	// FirstPlayedCard is nil while the player is leading the trick.
	FirstPlayedCard *Card
	// SecondPlayedCard is only set for end-of-turn bookkeeping.
	SecondPlayedCard *Card
	// Round points of the trick leader and the follower.
	FirstPlayerRoundPoints  int
	SecondPlayerRoundPoints int
	CardsLeftInDeck         int
}

// IsFirstPlayerTurn reports whether the player receiving the context leads the trick.
func (c *TurnContext) IsFirstPlayerTurn() bool {
	return c.FirstPlayedCard == nil
}

// MyPoints returns the round points of the player to act.
func (c *TurnContext) MyPoints() int {
	if c.IsFirstPlayerTurn() {
		return c.FirstPlayerRoundPoints
	}
	return c.SecondPlayerRoundPoints
}

// OpponentPoints returns the round points of the other player.
func (c *TurnContext) OpponentPoints() int {
	if c.IsFirstPlayerTurn() {
		return c.SecondPlayerRoundPoints
	}
	return c.FirstPlayerRoundPoints
}

// VisibleTrumpCard returns the face-up trump card, or nil once the deck is empty.
func (c *TurnContext) VisibleTrumpCard() *Card {
	if c.CardsLeftInDeck == 0 {
		return nil
	}
	trump := c.TrumpCard
	return &trump
}

// TrumpSuit is the dominant suit of the round.
func (c *TurnContext) TrumpSuit() Suit {
	return c.TrumpCard.Suit
}

// Announce is a king/queen meld declaration.
type Announce int

const (
	NoAnnounce Announce = iota
	Twenty
	Forty
)

// Points returns the bonus for the announce.
func (a Announce) Points() int {
	switch a {
	case Twenty:
		return 20
	case Forty:
		return 40
	}
	return 0
}

func (a Announce) String() string {
	switch a {
	case Twenty:
		return "twenty"
	case Forty:
		return "forty"
	}
	return "none"
}

// ActionType identifies the kind of action a player takes.
type ActionType int

const (
	ActionPlayCard ActionType = iota
	ActionChangeTrump
	ActionCloseGame
)

func (t ActionType) String() string {
	switch t {
	case ActionPlayCard:
		return "play_card"
	case ActionChangeTrump:
		return "change_trump"
	case ActionCloseGame:
		return "close_game"
	}
	return "unknown"
}

// Action is the single decision a player returns for a turn.
// Card and Announce are only meaningful for ActionPlayCard.
type Action struct {
	Type     ActionType
	Card     Card
	Announce Announce
}

// PlayCard plays a card without announcing.
func PlayCard(c Card) Action {
	return Action{Type: ActionPlayCard, Card: c}
}

// PlayCardAndAnnounce plays a queen or king and declares the meld.
func PlayCardAndAnnounce(c Card, a Announce) Action {
	return Action{Type: ActionPlayCard, Card: c, Announce: a}
}

// ChangeTrump swaps the trump Nine in hand for the face-up trump card.
func ChangeTrump() Action {
	return Action{Type: ActionChangeTrump}
}

// CloseGame closes the deck; strict rules apply for the rest of the round.
func CloseGame() Action {
	return Action{Type: ActionCloseGame}
}

func (a Action) String() string {
	switch a.Type {
	case ActionPlayCard:
		if a.Announce != NoAnnounce {
			return fmt.Sprintf("play %s (%s)", a.Card, a.Announce)
		}
		return fmt.Sprintf("play %s", a.Card)
	default:
		return a.Type.String()
	}
}
