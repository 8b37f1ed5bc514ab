package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/booknest/booknest-api/internal/core/ports"
)

const defaultCacheTTL = 15 * time.Minute

// SearchCache caches catalog search results in Redis.
// Key format: catalog:<limit>:<normalized query>
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSearchCache creates a SearchCache wrapping the given Redis client.
func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &SearchCache{client: client, ttl: ttl}
}

// Get returns the cached results for the query, and whether there was a hit.
func (c *SearchCache) Get(ctx context.Context, query string, limit int) ([]ports.CatalogBook, bool, error) {
	raw, err := c.client.Get(ctx, c.key(query, limit)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var books []ports.CatalogBook
	if err := json.Unmarshal(raw, &books); err != nil {
		// A corrupt entry is treated as a miss and will be overwritten.
		return nil, false, nil
	}
	return books, true, nil
}

// Set stores the results for the query (expires after the configured TTL).
func (c *SearchCache) Set(ctx context.Context, query string, limit int, books []ports.CatalogBook) error {
	raw, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return c.client.Set(ctx, c.key(query, limit), raw, c.ttl).Err()
}

func (c *SearchCache) key(query string, limit int) string {
	return fmt.Sprintf("catalog:%d:%s", limit, strings.ToLower(strings.TrimSpace(query)))
}
