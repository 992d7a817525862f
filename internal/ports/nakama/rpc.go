package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"

	"github.com/charmbracelet/log"
	"github.com/heroiclabs/nakama-common/runtime"
	"golang.org/x/exp/rand"

	"santase/internal/app"
	"santase/internal/bot"
	"santase/internal/config"
	"santase/internal/domain"
)

// Module holds what the RPC handlers share for the lifetime of the runtime.
type Module struct {
	cfg    config.BotConfig
	rules  domain.StandardRules
	stats  *bot.Stats
	roster *bot.Roster
	logger *log.Logger
}

// NewModule creates the handlers' shared state. A nil logger discards bot logs.
func NewModule(cfg config.BotConfig, roster *bot.Roster, logger *log.Logger) *Module {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Module{
		cfg:    cfg,
		stats:  &bot.Stats{},
		roster: roster,
		logger: logger,
	}
}

// RegisterRPCs registers Nakama RPC endpoints.
func (m *Module) RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcDecide, m.RpcDecide); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcSimulate, m.RpcSimulate); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcStats, m.RpcStats)
}

// levelFor resolves the level of the bot answering a request.
func (m *Module) levelFor(requested, botID string) (bot.Level, error) {
	if requested != "" {
		return bot.ParseLevel(requested)
	}
	if botID != "" && m.roster != nil {
		if identity, ok := m.roster.Lookup(botID); ok {
			return identity.Level, nil
		}
	}
	return bot.ParseLevel(m.cfg.BotLevel)
}

// RpcDecide returns the action a bot takes for one turn snapshot.
//
// Payload: DecideRequest. Returns: {"action": "play_card", "card": "AS", "announce": "none"}.
func (m *Module) RpcDecide(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req DecideRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	turn, err := req.toTurn()
	if err != nil {
		logger.Warn("RpcDecide: bad turn: %v", err)
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	level, err := m.levelFor(req.Level, req.BotID)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	action := m.decide(level, turn)

	logger.Debug("RpcDecide: level %s chose %s", level, action)
	out, err := encode(actionFields(action))
	if err != nil {
		logger.Error("RpcDecide: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return out, nil
}

func (m *Module) decide(level bot.Level, turn turnInput) domain.Action {
	player, err := bot.NewBrain(level, "rpc", m.rules, m.stats, m.logger)
	if err != nil {
		// levels are validated by the caller
		player = bot.NewDummyPlayer("rpc", m.rules)
	}
	if r, ok := player.(interface{ Remember(...domain.Card) }); ok {
		r.Remember(turn.played...)
	}
	return player.GetTurn(turn.ctx, turn.hand)
}

// RpcSimulate plays matches between two bots and returns the aggregate.
//
// Payload: SimulateRequest, may be empty.
func (m *Module) RpcSimulate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	req := SimulateRequest{}
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("Invalid payload", codeInvalidArgument)
		}
	}
	if req.Matches <= 0 {
		req.Matches = m.cfg.Matches
	}
	if req.Matches > maxSimulatedMatches {
		return "", runtime.NewError("Too many matches requested", codeInvalidArgument)
	}
	if req.MatchPoints <= 0 {
		req.MatchPoints = m.cfg.MatchPoints
	}
	if req.BotLevel == "" {
		req.BotLevel = m.cfg.BotLevel
	}
	if req.OpponentLevel == "" {
		req.OpponentLevel = m.cfg.OpponentLevel
	}
	if req.Seed == 0 {
		req.Seed = m.cfg.Seed
	}

	var agents [app.PlayersPerRound]*bot.Agent
	for i, name := range []string{req.BotLevel, req.OpponentLevel} {
		level, err := bot.ParseLevel(name)
		if err != nil {
			return "", runtime.NewError(err.Error(), codeInvalidArgument)
		}
		id := m.seatName(i, level)
		player, err := bot.NewBrain(level, id, m.rules, m.stats, m.logger)
		if err != nil {
			return "", runtime.NewError(err.Error(), codeInvalidArgument)
		}
		agents[i] = &bot.Agent{ID: id, Name: id, Player: player, Rules: m.rules}
	}

	var rng *rand.Rand
	if req.Seed != 0 {
		rng = rand.New(rand.NewSource(req.Seed))
	}
	svc := app.NewService(rng, m.logger)
	sum, err := svc.Simulate(agents, req.MatchPoints, req.Matches)
	if err != nil {
		logger.Error("RpcSimulate: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	logger.Info("RpcSimulate: %s vs %s, %d matches, wins %d:%d",
		agents[0].Name, agents[1].Name, sum.Matches, sum.Wins[0], sum.Wins[1])
	out, err := encode(summaryFields(sum, m.stats.GamesClosed()))
	if err != nil {
		logger.Error("RpcSimulate: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return out, nil
}

func (m *Module) seatName(seat int, level bot.Level) string {
	if m.roster != nil && m.roster.Len() > 0 {
		if identity := m.roster.Identity(seat); identity.DisplayName != "" {
			return identity.DisplayName
		}
	}
	return string(level) + "-" + string(rune('1'+seat))
}

// RpcStats reports how often bots served by this module closed the game.
func (m *Module) RpcStats(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	fields := map[string]interface{}{
		"games_closed": m.stats.GamesClosed(),
	}
	if m.roster != nil {
		fields["bots"] = m.roster.Len()
	}
	out, err := encode(fields)
	if err != nil {
		logger.Error("RpcStats: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return out, nil
}
