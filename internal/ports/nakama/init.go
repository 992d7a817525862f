package nakama

import (
	"context"
	"database/sql"
	"os"

	"github.com/charmbracelet/log"
	"github.com/heroiclabs/nakama-common/runtime"

	"santase/internal/bot"
	"santase/internal/config"
)

// InitModule wires the Santase RPCs into the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	cfg, err := config.FromEnv(env)
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn("InitModule: unknown log level %q, using info", cfg.LogLevel)
		level = log.InfoLevel
	}
	botLogger := log.NewWithOptions(os.Stderr, log.Options{Level: level, Prefix: "santase"})

	var roster *bot.Roster
	if cfg.RosterPath != "" {
		roster, err = bot.LoadRoster(cfg.RosterPath)
		if err != nil {
			logger.Warn("InitModule: bot roster not loaded: %v", err)
		} else {
			roster.Provision(ctx, nk, logger)
		}
	}

	m := NewModule(cfg, roster, botLogger)
	if err := m.RegisterRPCs(initializer); err != nil {
		return err
	}

	logger.Info("Santase Go module loaded, bot level %s.", cfg.BotLevel)
	return nil
}
