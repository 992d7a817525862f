package app

import (
	"fmt"

	"santase/internal/bot"
	"santase/internal/domain"
)

// round holds the state of one deal between two agents.
type round struct {
	agents [PlayersPerRound]*bot.Agent

	hands     [PlayersPerRound][]domain.Card
	deck      []domain.Card // drawn from the front, the trump card is last
	trumpCard domain.Card

	points  [PlayersPerRound]int
	tricks  [PlayersPerRound]int
	pending [PlayersPerRound]int
	played  int

	closedBy             int
	closedOpponentPoints int
	closedOpponentTricks int

	events []Event
}

func newRound(agents [PlayersPerRound]*bot.Agent, deck []domain.Card) *round {
	r := &round{agents: agents, closedBy: -1}
	for seat := range r.hands {
		r.hands[seat] = append([]domain.Card{}, deck[seat*domain.HandSize:(seat+1)*domain.HandSize]...)
	}
	rest := deck[PlayersPerRound*domain.HandSize:]
	r.trumpCard = rest[0]
	r.deck = append(append([]domain.Card{}, rest[1:]...), r.trumpCard)
	return r
}

func (r *round) closed() bool {
	return r.closedBy >= 0
}

func (r *round) emit(kind EventKind, seat int, payload any) {
	r.events = append(r.events, Event{Kind: kind, Seat: seat, Payload: payload})
}

// context builds the snapshot seen by a player. leader is the seat leading the trick.
func (r *round) context(leader int, first *domain.Card) *domain.TurnContext {
	left := len(r.deck)
	enforced := r.closed() || left == 0
	started := r.played > 0
	return &domain.TurnContext{
		State: domain.RoundState{
			ShouldObserveRules: enforced,
			CanAnnounce20Or40:  started,
			CanClose:           started && !enforced && left > domain.MinCardsToCloseOrChange,
			CanChangeTrump:     started && !enforced && left > domain.MinCardsToCloseOrChange,
		},
		TrumpCard:               r.trumpCard,
		FirstPlayedCard:         first,
		FirstPlayerRoundPoints:  r.points[leader],
		SecondPlayerRoundPoints: r.points[1-leader],
		CardsLeftInDeck:         left,
	}
}

// lead asks the leader for a card, applying trump changes and closes on the way.
func (r *round) lead(seat int) (domain.Action, error) {
	for i := 0; i < maxLeadActions; i++ {
		action, err := r.agents[seat].Play(r.context(seat, nil), r.hands[seat])
		if err != nil {
			return action, err
		}
		switch action.Type {
		case domain.ActionChangeTrump:
			r.changeTrump(seat)
		case domain.ActionCloseGame:
			r.close(seat)
		default:
			return action, nil
		}
	}
	return domain.Action{}, fmt.Errorf("seat %d did not lead a card: %w", seat, domain.ErrIllegalAction)
}

func (r *round) changeTrump(seat int) {
	nine := domain.Card{Suit: r.trumpCard.Suit, Type: domain.Nine}
	taken := r.trumpCard
	for i, c := range r.hands[seat] {
		if c == nine {
			r.hands[seat][i] = taken
			break
		}
	}
	r.trumpCard = nine
	r.deck[len(r.deck)-1] = nine
	r.emit(EventTrumpChanged, seat, TrumpChangedPayload{Taken: taken})
}

func (r *round) close(seat int) {
	r.closedBy = seat
	r.closedOpponentPoints = r.points[1-seat]
	r.closedOpponentTricks = r.tricks[1-seat]
	r.emit(EventGameClosed, seat, GameClosedPayload{Points: r.points[seat]})
}

func (r *round) removeCard(seat int, c domain.Card) {
	r.hands[seat] = domain.RemoveCards(r.hands[seat], []domain.Card{c})
}

// announce books meld points, held back until the seat has taken a trick.
func (r *round) announce(seat int, a domain.Announce) {
	if a == domain.NoAnnounce {
		return
	}
	if r.tricks[seat] > 0 {
		r.points[seat] += a.Points()
		return
	}
	r.pending[seat] += a.Points()
}

func (r *round) takeTrick(winner int, first, second domain.Card) {
	gained := first.Value() + second.Value()
	r.points[winner] += gained + r.pending[winner]
	r.pending[winner] = 0
	r.tricks[winner]++
	r.played++
	r.emit(EventTrickTaken, winner, TrickTakenPayload{First: first, Second: second, Points: gained})
}

// draw refills both hands, the trick winner first.
func (r *round) draw(winner int) {
	if r.closed() {
		return
	}
	for _, seat := range []int{winner, 1 - winner} {
		if len(r.deck) == 0 {
			return
		}
		r.hands[seat] = append(r.hands[seat], r.deck[0])
		r.deck = r.deck[1:]
	}
}

func (r *round) handsEmpty() bool {
	return len(r.hands[0]) == 0 && len(r.hands[1]) == 0
}

// gamePoints scores a finished round for the winning seat.
func (r *round) gamePoints(winner int) int {
	if r.closed() {
		if winner != r.closedBy {
			return failedClosePoints
		}
		return scoreLoser(r.closedOpponentTricks, r.closedOpponentPoints)
	}
	loser := 1 - winner
	return scoreLoser(r.tricks[loser], r.points[loser])
}

func scoreLoser(tricks, points int) int {
	switch {
	case tricks == 0:
		return 3
	case points < halfPoints:
		return 2
	default:
		return 1
	}
}
