package syncgate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey holds "true" or "false" and overrides the configured default.
const DefaultRedisKey = "ordersync:enabled"

// Connect opens a client from either a redis:// URL or a bare host:port address.
func Connect(_ context.Context, redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Redis lets operators toggle synchronisation at runtime through a Redis key.
// A missing key, an unreadable value or an unreachable server falls back to the
// configured gate; the last two are logged.
type Redis struct {
	client   stringGetter
	key      string
	fallback Static
	logger   *slog.Logger
}

// NewRedis creates a gate reading key. A blank key selects DefaultRedisKey.
func NewRedis(client redis.Cmdable, key string, fallback Static, logger *slog.Logger) *Redis {
	return newRedis(client, key, fallback, logger)
}

func newRedis(client stringGetter, key string, fallback Static, logger *slog.Logger) *Redis {
	if key == "" {
		key = DefaultRedisKey
	}
	return &Redis{
		client:   client,
		key:      key,
		fallback: fallback,
		logger:   logger.With("component", "redis_sync_gate"),
	}
}

func (g *Redis) OrderSyncEnabled(ctx context.Context) bool {
	raw, err := g.client.Get(ctx, g.key).Result()
	if errors.Is(err, redis.Nil) {
		return g.fallback.OrderSyncEnabled(ctx)
	}
	if err != nil {
		g.logger.ErrorContext(ctx, "Failed to read order sync flag, using configured default",
			"key", g.key,
			"error", err,
		)
		return g.fallback.OrderSyncEnabled(ctx)
	}

	enabled, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		g.logger.WarnContext(ctx, "Invalid order sync flag, using configured default",
			"key", g.key,
			"value", raw,
		)
		return g.fallback.OrderSyncEnabled(ctx)
	}

	return enabled
}

func (g *Redis) DisabledMessage() string {
	return g.fallback.DisabledMessage()
}
