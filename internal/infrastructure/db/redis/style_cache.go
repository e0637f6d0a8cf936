package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lucamusic/event-platform/internal/core/domain"
)

const styleCacheTTL = 5 * time.Minute

// StyleCache stores music-style lookup results in Redis.
// Key format: events:style:<music_style>
type StyleCache struct {
	client *redis.Client
}

// NewStyleCache creates a StyleCache wrapping the given Redis client.
func NewStyleCache(client *redis.Client) *StyleCache {
	return &StyleCache{client: client}
}

// Get returns the cached event list for style, or (nil, nil) on a miss.
func (c *StyleCache) Get(ctx context.Context, style string) ([]domain.Event, error) {
	raw, err := c.client.Get(ctx, c.key(style)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("style cache get: %w", err)
	}

	var events []domain.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, fmt.Errorf("style cache decode: %w", err)
	}
	return events, nil
}

// Set stores the event list for style (expires after styleCacheTTL).
func (c *StyleCache) Set(ctx context.Context, style string, events []domain.Event) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("style cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(style), raw, styleCacheTTL).Err()
}

// Invalidate drops the cached list for style after a catalog write.
func (c *StyleCache) Invalidate(ctx context.Context, style string) error {
	return c.client.Del(ctx, c.key(style)).Err()
}

func (c *StyleCache) key(style string) string {
	return fmt.Sprintf("events:style:%s", style)
}
