package bot

import (
	"sync/atomic"
)

// Stats aggregates decisions across players and rounds. It is safe for
// concurrent use and is never reset by the players themselves.
type Stats struct {
	gamesClosed atomic.Int64
}

// RecordClose counts one decision to close the game.
func (s *Stats) RecordClose() {
	if s == nil {
		return
	}
	s.gamesClosed.Add(1)
}

// GamesClosed returns how many times a player chose to close the game.
func (s *Stats) GamesClosed() int64 {
	if s == nil {
		return 0
	}
	return s.gamesClosed.Load()
}
