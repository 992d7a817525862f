package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/heroiclabs/nakama-common/runtime"
)

// BotIdentity is one entry of the bot roster.
type BotIdentity struct {
	DeviceID    string `json:"device_id"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Level       Level  `json:"level"`
}

// Roster holds the configured bot identities, keyed by user ID once provisioned.
type Roster struct {
	mu         sync.RWMutex
	identities []BotIdentity
	byUserID   map[string]BotIdentity
}

// LoadRoster reads bot identities from a JSON file.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bot roster: %w", err)
	}
	var identities []BotIdentity
	if err := json.Unmarshal(data, &identities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bot roster: %w", err)
	}
	return NewRoster(identities)
}

// NewRoster validates the identities and indexes those that already have a user ID.
func NewRoster(identities []BotIdentity) (*Roster, error) {
	r := &Roster{byUserID: make(map[string]BotIdentity)}
	for _, identity := range identities {
		if identity.Level == "" {
			identity.Level = LevelSmart
		}
		level, err := ParseLevel(string(identity.Level))
		if err != nil {
			return nil, fmt.Errorf("bot %q: %w", identity.Username, err)
		}
		identity.Level = level
		r.identities = append(r.identities, identity)
		if identity.UserID != "" {
			r.byUserID[identity.UserID] = identity
		}
	}
	return r, nil
}

// Provision creates or fetches a Nakama account for every identity with a device ID
// and tags it as a bot. The roster lock is only taken to snapshot and publish.
func (r *Roster) Provision(ctx context.Context, nk runtime.NakamaModule, logger runtime.Logger) {
	r.mu.RLock()
	pending := append([]BotIdentity(nil), r.identities...)
	r.mu.RUnlock()

	resolved := make(map[int]BotIdentity, len(pending))
	for i, identity := range pending {
		if identity.DeviceID == "" {
			continue
		}

		userID, username, _, err := nk.AuthenticateDevice(ctx, identity.DeviceID, identity.Username, true)
		if err != nil {
			logger.Error("Provision: failed to authenticate bot %s: %v", identity.Username, err)
			continue
		}
		identity.UserID = userID
		identity.Username = username

		metadata := map[string]interface{}{
			"is_bot": true,
			"level":  string(identity.Level),
		}
		if err := nk.AccountUpdateId(ctx, userID, identity.Username, metadata, identity.DisplayName, "", "", "", ""); err != nil {
			logger.Warn("Provision: failed to update bot account %s: %v", userID, err)
		}

		resolved[i] = identity
		logger.Info("Provision: bot %s (%s) is ready, level %s", identity.DisplayName, userID, identity.Level)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, identity := range resolved {
		if i < len(r.identities) {
			r.identities[i] = identity
		}
		r.byUserID[identity.UserID] = identity
	}
}

// Lookup returns the identity provisioned under the user ID.
func (r *Roster) Lookup(userID string) (BotIdentity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	identity, ok := r.byUserID[userID]
	return identity, ok
}

// IsBot reports whether the user ID belongs to the roster.
func (r *Roster) IsBot(userID string) bool {
	_, ok := r.Lookup(userID)
	return ok
}

// Identity returns an identity by index, wrapping around the roster size.
func (r *Roster) Identity(index int) BotIdentity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.identities) == 0 {
		return BotIdentity{
			UserID:      fmt.Sprintf("bot-%d", index),
			DisplayName: fmt.Sprintf("Bot %d", index),
			Level:       LevelSmart,
		}
	}
	return r.identities[index%len(r.identities)]
}

// Len is the number of configured identities.
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.identities)
}
