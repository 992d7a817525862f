package bot

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Level names a player implementation.
type Level string

const (
	LevelSmart Level = "smart"
	LevelDummy Level = "dummy"
)

// ParseLevel maps a case-insensitive name to a Level.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelSmart:
		return LevelSmart, nil
	case LevelDummy:
		return LevelDummy, nil
	default:
		return "", fmt.Errorf("unknown bot level: %q", s)
	}
}

// NewBrain creates a player of the given level.
func NewBrain(level Level, name string, rules Rules, stats *Stats, logger *log.Logger) (Player, error) {
	switch level {
	case LevelSmart:
		return NewSmartPlayer(name, rules, stats, logger), nil
	case LevelDummy:
		return NewDummyPlayer(name, rules), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %q", level)
	}
}
