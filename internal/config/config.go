package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// BotConfig selects the players and the table settings used by simulations and RPCs.
type BotConfig struct {
	BotLevel      string `json:"bot_level" mapstructure:"santase_bot_level"`
	OpponentLevel string `json:"opponent_level" mapstructure:"santase_opponent_level"`
	LogLevel      string `json:"log_level" mapstructure:"santase_log_level"`
	// MatchPoints is the game-point total that ends a match.
	MatchPoints int    `json:"match_points" mapstructure:"santase_match_points"`
	Matches     int    `json:"matches" mapstructure:"santase_matches"`
	Seed        uint64 `json:"seed" mapstructure:"santase_seed"`
	RosterPath  string `json:"roster_path" mapstructure:"santase_roster_path"`
}

// Defaults returns the configuration used when nothing was loaded.
func Defaults() BotConfig {
	return BotConfig{
		BotLevel:      "smart",
		OpponentLevel: "dummy",
		LogLevel:      "info",
		MatchPoints:   11,
		Matches:       1,
	}
}

var (
	cfg      *BotConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadBotConfig loads the bot configuration from the given path. Only the
// first call reads the file.
func LoadBotConfig(path string) error {
	loadOnce.Do(func() {
		c, err := readFile(path)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})
	return loadErr
}

func readFile(path string) (*BotConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bot config: %w", err)
	}

	c := Defaults()
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bot config: %w", err)
	}
	c.applyDefaults()
	return &c, nil
}

// GetBotConfig returns the loaded configuration, or the defaults.
func GetBotConfig() BotConfig {
	if cfg == nil {
		return Defaults()
	}
	return *cfg
}

// FromEnv overlays runtime environment values such as santase_bot_level on
// top of GetBotConfig. Values are strings and are converted to the field types.
func FromEnv(env map[string]string) (BotConfig, error) {
	c := GetBotConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &c,
	})
	if err != nil {
		return c, fmt.Errorf("failed to build env decoder: %w", err)
	}
	if err := decoder.Decode(env); err != nil {
		return c, fmt.Errorf("failed to decode env config: %w", err)
	}
	c.applyDefaults()
	return c, nil
}

func (c *BotConfig) applyDefaults() {
	d := Defaults()
	if c.BotLevel == "" {
		c.BotLevel = d.BotLevel
	}
	if c.OpponentLevel == "" {
		c.OpponentLevel = d.OpponentLevel
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.MatchPoints <= 0 {
		c.MatchPoints = d.MatchPoints
	}
	if c.Matches <= 0 {
		c.Matches = d.Matches
	}
}
