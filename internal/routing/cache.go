package routing

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	lru "github.com/hashicorp/golang-lru"
	"github.com/rs/zerolog"

	"github.com/fabio-scala/poitour-backend/internal/matrix"
	"github.com/fabio-scala/poitour-backend/internal/models"
)

const cacheTTL = 1 * time.Hour

// CachedClient wraps a Client with a two-tier cache: an in-process LRU for
// the hot path, falling back to Redis, falling back to the wrapped Client.
// Grounded on the pack's fleet.RouteOptimizer (*redis.Client field,
// generateCacheKey/getCachedRoute/cacheRoute check-then-generate-then-store
// shape); the LRU tier promotes the teacher's indirect golang-lru
// dependency to a direct, exercised one.
type CachedClient struct {
	next  Client
	redis *redis.Client
	local *lru.Cache
	log   zerolog.Logger
}

// NewCachedClient builds a CachedClient. redisAddr may be empty, in which
// case only the in-process tier is used. localSize bounds the LRU tier.
func NewCachedClient(next Client, redisAddr string, localSize int, log zerolog.Logger) (*CachedClient, error) {
	local, err := lru.New(localSize)
	if err != nil {
		return nil, fmt.Errorf("routing: build local cache: %w", err)
	}

	var rc *redis.Client
	if redisAddr != "" {
		rc = redis.NewClient(&redis.Options{Addr: redisAddr})
	}

	return &CachedClient{next: next, redis: rc, local: local, log: log}, nil
}

func matrixCacheKey(points []models.Location) string {
	h := sha1.New()
	_ = json.NewEncoder(h).Encode(points)
	return "routing:matrix:" + hex.EncodeToString(h.Sum(nil))
}

func routeCacheKey(points []models.Location) string {
	h := sha1.New()
	_ = json.NewEncoder(h).Encode(points)
	return "routing:route:" + hex.EncodeToString(h.Sum(nil))
}

// Matrix serves from the LRU, then Redis, then delegates to the wrapped
// Client and populates both tiers. The LRU holds its own copy and every hit
// returns a fresh clone, so callers may modify the returned matrix.
func (c *CachedClient) Matrix(ctx context.Context, points []models.Location) (*matrix.Matrix, error) {
	key := matrixCacheKey(points)

	if v, ok := c.local.Get(key); ok {
		return v.(*matrix.Matrix).Clone(), nil
	}

	if c.redis != nil {
		if raw, err := c.redis.Get(ctx, key).Bytes(); err == nil {
			var rows [][]float64
			if err := json.Unmarshal(raw, &rows); err == nil {
				m, err := matrix.NewFromRows(rows)
				if err == nil {
					c.local.Add(key, m.Clone())
					return m, nil
				}
			}
		}
	}

	m, err := c.next.Matrix(ctx, points)
	if err != nil {
		return nil, err
	}

	c.local.Add(key, m.Clone())
	c.store(ctx, key, m)
	return m, nil
}

func (c *CachedClient) store(ctx context.Context, key string, m *matrix.Matrix) {
	if c.redis == nil {
		return
	}
	rows := make([][]float64, m.N())
	for i := range rows {
		rows[i] = append([]float64(nil), m.Row(i)...)
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("routing: redis cache store failed")
	}
}

type cachedRoute struct {
	Geometry []models.Location `json:"geometry"`
	Seconds  float64           `json:"seconds"`
}

// Route serves from Redis on a hit, otherwise delegates and stores the
// result. The route response is small and call-site-specific enough that
// an in-process LRU entry for it isn't worth the memory; only Matrix gets
// the local tier.
func (c *CachedClient) Route(ctx context.Context, points []models.Location) ([]models.Location, float64, error) {
	key := routeCacheKey(points)

	if c.redis != nil {
		if raw, err := c.redis.Get(ctx, key).Bytes(); err == nil {
			var cached cachedRoute
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached.Geometry, cached.Seconds, nil
			}
		}
	}

	geometry, seconds, err := c.next.Route(ctx, points)
	if err != nil {
		return nil, 0, err
	}

	if c.redis != nil {
		if raw, err := json.Marshal(cachedRoute{Geometry: geometry, Seconds: seconds}); err == nil {
			if err := c.redis.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
				c.log.Warn().Err(err).Msg("routing: redis cache store failed")
			}
		}
	}

	return geometry, seconds, nil
}
