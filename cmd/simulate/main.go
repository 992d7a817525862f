// Command simulate plays Santase matches between two bots and prints the tally.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/rand"

	"santase/internal/app"
	"santase/internal/bot"
	"santase/internal/config"
	"santase/internal/domain"
)

var (
	configPath    string
	botLevel      string
	opponentLevel string
	matches       int
	matchPoints   int
	seed          uint64
	logLevel      string
)

func init() {
	flag.StringVar(&configPath, "config", "", "Bot config JSON file")
	flag.StringVar(&botLevel, "bot", "", "Level of the first bot (smart, dummy)")
	flag.StringVar(&opponentLevel, "opponent", "", "Level of the second bot (smart, dummy)")
	flag.IntVar(&matches, "matches", 0, "Number of matches to play")
	flag.IntVar(&matchPoints, "match-points", 0, "Game points needed to win a match")
	flag.Uint64Var(&seed, "seed", 0, "Random seed (0 = use current time)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if configPath != "" {
		if err := config.LoadBotConfig(configPath); err != nil {
			return err
		}
	}
	cfg := config.GetBotConfig()
	override(&cfg)

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level, ReportTimestamp: true})

	stats := &bot.Stats{}
	rules := domain.StandardRules{}
	var agents [app.PlayersPerRound]*bot.Agent
	for i, name := range []string{cfg.BotLevel, cfg.OpponentLevel} {
		lvl, err := bot.ParseLevel(name)
		if err != nil {
			return err
		}
		id := fmt.Sprintf("%s-%d", lvl, i+1)
		player, err := bot.NewBrain(lvl, id, rules, stats, logger)
		if err != nil {
			return err
		}
		agents[i] = &bot.Agent{ID: id, Name: id, Player: player, Rules: rules}
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	svc := app.NewService(rng, logger)

	sum, err := svc.Simulate(agents, cfg.MatchPoints, cfg.Matches)
	if err != nil {
		return err
	}

	logger.Info("simulation finished",
		"matches", sum.Matches,
		"rounds", sum.Rounds,
		agents[0].Name, fmt.Sprintf("%d wins, %d game points", sum.Wins[0], sum.GamePoints[0]),
		agents[1].Name, fmt.Sprintf("%d wins, %d game points", sum.Wins[1], sum.GamePoints[1]),
		"closed_rounds", sum.Closes,
		"games_closed", stats.GamesClosed(),
	)
	return nil
}

// override applies the flags that were set on top of the loaded config.
func override(cfg *config.BotConfig) {
	if botLevel != "" {
		cfg.BotLevel = botLevel
	}
	if opponentLevel != "" {
		cfg.OpponentLevel = opponentLevel
	}
	if matches > 0 {
		cfg.Matches = matches
	}
	if matchPoints > 0 {
		cfg.MatchPoints = matchPoints
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
}
