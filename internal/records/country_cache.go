package records

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const countryCacheKey = "veritas:countries:v1"

// CountryCache is a read-through redis cache in front of a CountrySource.
// Country metadata is org-independent and read on every aggregation, so it is
// the one read worth caching. Cache failures degrade to the source; they never
// fail an aggregation on their own.
type CountryCache struct {
	source CountrySource
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCountryCache wraps source with a redis cache.
func NewCountryCache(source CountrySource, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CountryCache {
	return &CountryCache{source: source, client: client, ttl: ttl, logger: logger}
}

func (c *CountryCache) FetchCountryMetadata(ctx context.Context) (map[string]Country, error) {
	raw, err := c.client.Get(ctx, countryCacheKey).Bytes()
	if err == nil {
		var cached map[string]Country
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		// Corrupt entry: fall through to the source and rewrite.
	} else if err != redis.Nil && c.logger != nil {
		c.logger.WarnContext(ctx, "country cache read failed", "error", err)
	}

	countries, err := c.source.FetchCountryMetadata(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(countries); err == nil {
		if err := c.client.Set(ctx, countryCacheKey, encoded, c.ttl).Err(); err != nil && c.logger != nil {
			c.logger.WarnContext(ctx, "country cache write failed", "error", err)
		}
	}

	return countries, nil
}
