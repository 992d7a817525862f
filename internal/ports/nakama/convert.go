package nakama

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"santase/internal/app"
	"santase/internal/domain"
)

// turnStateRequest mirrors domain.RoundState on the wire.
type turnStateRequest struct {
	ObserveRules   bool `json:"observe_rules"`
	CanAnnounce    bool `json:"can_announce"`
	CanClose       bool `json:"can_close"`
	CanChangeTrump bool `json:"can_change_trump"`
}

// DecideRequest is the payload of the decide RPC. Cards use the short form "QH", "10S".
type DecideRequest struct {
	Level           string           `json:"level"`
	BotID           string           `json:"bot_id"`
	Hand            []string         `json:"hand"`
	Played          []string         `json:"played"`
	TrumpCard       string           `json:"trump_card"`
	FirstPlayedCard string           `json:"first_played_card"`
	MyPoints        int              `json:"my_points"`
	OpponentPoints  int              `json:"opponent_points"`
	CardsLeftInDeck int              `json:"cards_left_in_deck"`
	State           turnStateRequest `json:"state"`
}

// SimulateRequest is the payload of the simulate RPC. Zero values fall back to the module config.
type SimulateRequest struct {
	BotLevel      string `json:"bot_level"`
	OpponentLevel string `json:"opponent_level"`
	Matches       int    `json:"matches"`
	MatchPoints   int    `json:"match_points"`
	Seed          uint64 `json:"seed"`
}

// turnInput is a decoded decide request.
type turnInput struct {
	ctx    *domain.TurnContext
	hand   []domain.Card
	played []domain.Card
}

func (r DecideRequest) toTurn() (turnInput, error) {
	hand, err := domain.ParseCards(r.Hand)
	if err != nil {
		return turnInput{}, fmt.Errorf("hand: %w", err)
	}
	if len(hand) == 0 {
		return turnInput{}, fmt.Errorf("hand: no cards")
	}
	played, err := domain.ParseCards(r.Played)
	if err != nil {
		return turnInput{}, fmt.Errorf("played: %w", err)
	}
	trump, err := domain.ParseCard(r.TrumpCard)
	if err != nil {
		return turnInput{}, fmt.Errorf("trump_card: %w", err)
	}

	ctx := &domain.TurnContext{
		State: domain.RoundState{
			ShouldObserveRules: r.State.ObserveRules,
			CanAnnounce20Or40:  r.State.CanAnnounce,
			CanClose:           r.State.CanClose,
			CanChangeTrump:     r.State.CanChangeTrump,
		},
		TrumpCard:               trump,
		FirstPlayerRoundPoints:  r.MyPoints,
		SecondPlayerRoundPoints: r.OpponentPoints,
		CardsLeftInDeck:         r.CardsLeftInDeck,
	}
	if r.FirstPlayedCard != "" {
		first, err := domain.ParseCard(r.FirstPlayedCard)
		if err != nil {
			return turnInput{}, fmt.Errorf("first_played_card: %w", err)
		}
		ctx.FirstPlayedCard = &first
		ctx.FirstPlayerRoundPoints, ctx.SecondPlayerRoundPoints = r.OpponentPoints, r.MyPoints
	}
	return turnInput{ctx: ctx, hand: hand, played: played}, nil
}

var marshalOptions = protojson.MarshalOptions{EmitUnpopulated: true}

// encode renders a plain map as protobuf JSON.
func encode(fields map[string]interface{}) (string, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return "", fmt.Errorf("failed to build response: %w", err)
	}
	b, err := marshalOptions.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}
	return string(b), nil
}

func actionFields(a domain.Action) map[string]interface{} {
	fields := map[string]interface{}{
		"action":   a.Type.String(),
		"announce": a.Announce.String(),
	}
	if a.Type == domain.ActionPlayCard {
		fields["card"] = a.Card.String()
	}
	return fields
}

func summaryFields(sum app.Summary, gamesClosed int64) map[string]interface{} {
	return map[string]interface{}{
		"matches":      sum.Matches,
		"rounds":       sum.Rounds,
		"wins":         []interface{}{sum.Wins[0], sum.Wins[1]},
		"game_points":  []interface{}{sum.GamePoints[0], sum.GamePoints[1]},
		"closes":       sum.Closes,
		"games_closed": gamesClosed,
	}
}
