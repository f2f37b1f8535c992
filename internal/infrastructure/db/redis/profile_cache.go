package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const profileTTL = 5 * time.Minute

// ProfileCache is a read-through cache for profile summaries, keyed by
// username. Entries expire after profileTTL and are invalidated
// synchronously whenever a profile update persists, so a successful
// PUT /profile is never followed by a stale read.
// Key format: profile:<username>
type ProfileCache struct {
	client *redis.Client
}

// NewProfileCache creates a ProfileCache wrapping the given Redis client.
func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

// Get loads the cached summary for username into dest. The first return
// value reports whether the key was present.
func (p *ProfileCache) Get(ctx context.Context, username string, dest any) (bool, error) {
	raw, err := p.client.Get(ctx, p.key(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("profile cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("profile cache decode: %w", err)
	}
	return true, nil
}

// Set stores the summary for username, replacing any previous entry.
func (p *ProfileCache) Set(ctx context.Context, username string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("profile cache encode: %w", err)
	}
	if err := p.client.Set(ctx, p.key(username), raw, profileTTL).Err(); err != nil {
		return fmt.Errorf("profile cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached summary for username.
func (p *ProfileCache) Invalidate(ctx context.Context, username string) error {
	if err := p.client.Del(ctx, p.key(username)).Err(); err != nil {
		return fmt.Errorf("profile cache invalidate: %w", err)
	}
	return nil
}

func (p *ProfileCache) key(username string) string {
	return "profile:" + username
}
