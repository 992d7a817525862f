package app

import "santase/internal/domain"

// EventKind identifies what happened during a simulated round.
type EventKind string

const (
	EventRoundStarted EventKind = "round_started"
	EventTrumpChanged EventKind = "trump_changed"
	EventGameClosed   EventKind = "game_closed"
	EventCardPlayed   EventKind = "card_played"
	EventTrickTaken   EventKind = "trick_taken"
	EventRoundEnded   EventKind = "round_ended"
)

// Event is a round event attributed to a seat.
type Event struct {
	Kind    EventKind
	Seat    int
	Payload any
}

type RoundStartedPayload struct {
	TrumpCard domain.Card
}

type TrumpChangedPayload struct {
	Taken domain.Card
}

type GameClosedPayload struct {
	Points int
}

type CardPlayedPayload struct {
	Card     domain.Card
	Announce domain.Announce
}

type TrickTakenPayload struct {
	First  domain.Card
	Second domain.Card
	Points int
}

type RoundEndedPayload struct {
	GamePoints int
	Points     [PlayersPerRound]int
}
