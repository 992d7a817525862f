package app

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"santase/internal/bot"
	"santase/internal/domain"
)

// Service plays Santase rounds and matches between agents.
type Service struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand, logger *log.Logger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{rng: rng, logger: logger.WithPrefix("app")}
}

// RoundResult describes a finished round from the table's point of view.
type RoundResult struct {
	Winner     int
	GamePoints int
	Points     [PlayersPerRound]int
	ClosedBy   int
	Tricks     int
	Events     []Event
}

// MatchResult is the outcome of a match played to a game-point target.
type MatchResult struct {
	ID     string
	Winner int
	Score  [PlayersPerRound]int
	Rounds []RoundResult
}

// Summary aggregates several matches between the same two agents.
type Summary struct {
	Matches    int
	Rounds     int
	Wins       [PlayersPerRound]int
	GamePoints [PlayersPerRound]int
	Closes     int
}

func (s *Service) shuffle(deck []domain.Card) {
	s.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
}

// PlayRound deals a fresh deck and plays it out with leader opening the first trick.
// Both agents are told the round ended, whatever the outcome.
func (s *Service) PlayRound(agents [PlayersPerRound]*bot.Agent, leader int) (RoundResult, error) {
	deck := domain.NewDeck()
	s.shuffle(deck)
	r := newRound(agents, deck)
	defer func() {
		for _, a := range agents {
			a.EndRound()
		}
	}()

	r.emit(EventRoundStarted, leader, RoundStartedPayload{TrumpCard: r.trumpCard})

	winner, err := s.playTricks(r, leader)
	if err != nil {
		return RoundResult{}, err
	}

	result := RoundResult{
		Winner:     winner,
		GamePoints: r.gamePoints(winner),
		Points:     r.points,
		ClosedBy:   r.closedBy,
		Tricks:     r.played,
	}
	r.emit(EventRoundEnded, winner, RoundEndedPayload{GamePoints: result.GamePoints, Points: r.points})
	result.Events = r.events

	s.logger.Debug("round ended",
		"winner", agents[winner].Name,
		"game_points", result.GamePoints,
		"points", fmt.Sprintf("%d:%d", r.points[0], r.points[1]),
		"closed_by", r.closedBy,
	)
	return result, nil
}

// playTricks runs the trick loop and returns the winning seat.
func (s *Service) playTricks(r *round, leader int) (int, error) {
	for {
		follower := 1 - leader

		lead, err := r.lead(leader)
		if err != nil {
			return 0, err
		}
		r.removeCard(leader, lead.Card)
		r.emit(EventCardPlayed, leader, CardPlayedPayload{Card: lead.Card, Announce: lead.Announce})
		r.announce(leader, lead.Announce)
		if r.tricks[leader] > 0 && r.points[leader] >= domain.WinningPoints {
			return leader, nil
		}

		first := lead.Card
		answer, err := r.agents[follower].Play(r.context(leader, &first), r.hands[follower])
		if err != nil {
			return 0, err
		}
		if answer.Type != domain.ActionPlayCard {
			return 0, fmt.Errorf("seat %d answered with %s: %w", follower, answer, domain.ErrIllegalAction)
		}
		second := answer.Card
		r.removeCard(follower, second)
		r.emit(EventCardPlayed, follower, CardPlayedPayload{Card: second})

		winner := follower
		if domain.FirstCardWins(first, second, r.trumpCard.Suit) {
			winner = leader
		}
		r.takeTrick(winner, first, second)

		done := r.context(leader, &first)
		done.SecondPlayedCard = &second
		for _, a := range r.agents {
			a.EndTurn(done)
		}

		if r.points[winner] >= domain.WinningPoints {
			return winner, nil
		}

		r.draw(winner)
		if r.handsEmpty() {
			if r.closed() {
				return 1 - r.closedBy, nil
			}
			r.points[winner] += domain.LastTrickBonus
			return winner, nil
		}
		leader = winner
	}
}

// PlayMatch plays rounds, alternating the opening seat, until one side reaches target game points.
func (s *Service) PlayMatch(agents [PlayersPerRound]*bot.Agent, target int) (MatchResult, error) {
	if target <= 0 {
		target = DefaultMatchPoints
	}
	match := MatchResult{ID: uuid.NewString()}
	logger := s.logger.With("match", match.ID)

	leader := 0
	for match.Score[0] < target && match.Score[1] < target {
		res, err := s.PlayRound(agents, leader)
		if err != nil {
			return match, fmt.Errorf("match %s round %d: %w", match.ID, len(match.Rounds)+1, err)
		}
		match.Score[res.Winner] += res.GamePoints
		match.Rounds = append(match.Rounds, res)
		leader = 1 - leader
	}

	if match.Score[1] > match.Score[0] {
		match.Winner = 1
	}
	logger.Info("match finished",
		"winner", agents[match.Winner].Name,
		"score", fmt.Sprintf("%d:%d", match.Score[0], match.Score[1]),
		"rounds", len(match.Rounds),
	)
	return match, nil
}

// Simulate plays a number of matches and aggregates the outcome.
func (s *Service) Simulate(agents [PlayersPerRound]*bot.Agent, target, matches int) (Summary, error) {
	var sum Summary
	for i := 0; i < matches; i++ {
		res, err := s.PlayMatch(agents, target)
		if err != nil {
			return sum, err
		}
		sum.Matches++
		sum.Wins[res.Winner]++
		for seat := range res.Score {
			sum.GamePoints[seat] += res.Score[seat]
		}
		sum.Rounds += len(res.Rounds)
		for _, rr := range res.Rounds {
			if rr.ClosedBy >= 0 {
				sum.Closes++
			}
		}
	}
	return sum, nil
}
