package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"menu-kart/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	cacheKeyPrefix     = "catalog:"
	cacheListKey       = cacheKeyPrefix + "restaurants"
	cacheRestaurantKey = cacheKeyPrefix + "restaurant:"
)

// cachedProvider fronts another Provider with a redis cache. Redis
// failures degrade to the wrapped provider instead of failing the call.
type cachedProvider struct {
	next   Provider
	client redis.Cmdable
	ttl    time.Duration
	logger zerolog.Logger
}

// NewCachedProvider wraps next with a redis read-through cache.
func NewCachedProvider(next Provider, client redis.Cmdable, ttl time.Duration, logger zerolog.Logger) Provider {
	return &cachedProvider{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "catalog-cache").Logger(),
	}
}

// ListRestaurants returns the cached catalog or loads and caches it.
func (c *cachedProvider) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	var doc Document
	if c.get(ctx, cacheListKey, &doc) {
		return doc.Restaurants, nil
	}

	restaurants, err := c.next.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	c.set(ctx, cacheListKey, Document{Restaurants: restaurants})

	return restaurants, nil
}

// GetRestaurant returns the cached restaurant or loads and caches it.
// Misses on the wrapped provider are not cached.
func (c *cachedProvider) GetRestaurant(ctx context.Context, id string) (*model.Restaurant, error) {
	key := cacheRestaurantKey + id

	var r model.Restaurant
	if c.get(ctx, key, &r) {
		return &r, nil
	}

	restaurant, err := c.next.GetRestaurant(ctx, id)
	if err != nil || restaurant == nil {
		return restaurant, err
	}

	c.set(ctx, key, restaurant)

	return restaurant, nil
}

func (c *cachedProvider) get(ctx context.Context, key string, dst any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		return false
	}

	c.logger.Debug().Str("key", key).Msg("cache hit")
	return true
}

func (c *cachedProvider) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("failed to encode cache entry")
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}
