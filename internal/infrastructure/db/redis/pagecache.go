package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Fetch sources, reported to the caller for metrics and cache headers.
const (
	SourceCache   = "cache"
	SourceOrigin  = "origin"
	SourceOffline = "offline"
)

// OfflineKey names the precached entry served when the origin is unreachable.
const OfflineKey = "offline.html"

var ErrPageUnavailable = errors.New("page unavailable")

// Loader fetches an entry body from the origin on a cache miss.
type Loader func(ctx context.Context, key string) ([]byte, error)

// PageCache is a cache-first byte cache for static page assets, keyed
// under a versioned prefix so that old cache generations can be evicted
// wholesale. Mirrors an install/activate/fetch worker lifecycle:
// Install precaches, Activate evicts previous versions, Fetch serves
// cache-first with an offline fallback.
type PageCache struct {
	client  *redis.Client
	version string
	loader  Loader
	log     zerolog.Logger
}

// NewPageCache creates a PageCache wrapping the given Redis client.
func NewPageCache(client *redis.Client, version string, loader Loader, log zerolog.Logger) *PageCache {
	return &PageCache{client: client, version: version, loader: loader, log: log}
}

// Install precaches the named entries from the origin. Installation
// fails if any entry cannot be fetched and stored.
func (c *PageCache) Install(ctx context.Context, keys []string) error {
	for _, key := range keys {
		body, err := c.loader(ctx, key)
		if err != nil {
			return fmt.Errorf("precache %s: %w", key, err)
		}
		if err := c.client.Set(ctx, c.key(key), body, 0).Err(); err != nil {
			return fmt.Errorf("precache %s: %w", key, err)
		}
	}
	c.log.Info().Int("entries", len(keys)).Str("version", c.version).Msg("page cache installed")
	return nil
}

// Activate evicts entries cached under any other version prefix.
func (c *PageCache) Activate(ctx context.Context) error {
	keep := c.key("")
	iter := c.client.Scan(ctx, 0, "pages:*", 100).Iterator()

	var stale []string
	for iter.Next(ctx) {
		k := iter.Val()
		if len(k) < len(keep) || k[:len(keep)] != keep {
			stale = append(stale, k)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("activate scan: %w", err)
	}

	if len(stale) > 0 {
		if err := c.client.Del(ctx, stale...).Err(); err != nil {
			return fmt.Errorf("activate evict: %w", err)
		}
	}
	c.log.Info().Int("evicted", len(stale)).Str("version", c.version).Msg("page cache activated")
	return nil
}

// Fetch serves the entry cache-first. On a miss the origin is consulted
// and the cache backfilled; if the origin fails, the precached offline
// entry is served instead. The returned source is one of SourceCache,
// SourceOrigin, SourceOffline.
func (c *PageCache) Fetch(ctx context.Context, key string) ([]byte, string, error) {
	body, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err == nil {
		return body, SourceCache, nil
	}
	if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Str("key", key).Msg("cache read failed, falling through to origin")
	}

	body, loadErr := c.loader(ctx, key)
	if loadErr == nil {
		if setErr := c.client.Set(ctx, c.key(key), body, 0).Err(); setErr != nil {
			c.log.Warn().Err(setErr).Str("key", key).Msg("cache backfill failed")
		}
		return body, SourceOrigin, nil
	}

	offline, offErr := c.client.Get(ctx, c.key(OfflineKey)).Bytes()
	if offErr != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrPageUnavailable, key)
	}

	c.log.Warn().Err(loadErr).Str("key", key).Msg("origin unreachable, serving offline page")
	return offline, SourceOffline, nil
}

func (c *PageCache) key(k string) string {
	return fmt.Sprintf("pages:%s:%s", c.version, k)
}
