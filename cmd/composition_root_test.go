package cmd

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ordersync/internal/adapters/out/syncgate"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discardPublisher struct{}

func (discardPublisher) Publish(_ context.Context, _, _ string, _ []byte) error {
	return nil
}

func newTestRoot(t *testing.T, config Config, redisClient redis.Cmdable) CompositionRoot {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCompositionRoot(config, nil, discardPublisher{}, redisClient, logger)
}

func TestCompositionRoot_CreateOrderSyncGate(t *testing.T) {
	t.Run("static without redis", func(t *testing.T) {
		root := newTestRoot(t, Config{OrderSyncEnabled: false, OrderSyncDisabledMessage: "maintenance"}, nil)

		gate := root.CreateOrderSyncGate()

		require.IsType(t, syncgate.Static{}, gate)
		assert.False(t, gate.OrderSyncEnabled(t.Context()))
		assert.Equal(t, "maintenance", gate.DisabledMessage())
	})

	t.Run("redis overrides static", func(t *testing.T) {
		client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
		t.Cleanup(func() { _ = client.Close() })
		root := newTestRoot(t, Config{OrderSyncEnabled: true}, client)

		gate := root.CreateOrderSyncGate()

		assert.IsType(t, &syncgate.Redis{}, gate)
		assert.Equal(t, syncgate.DefaultDisabledMessage, gate.DisabledMessage())
	})
}

func TestCompositionRoot_CreateJobManager(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		root := newTestRoot(t, Config{OutboxRelayBatch: 100, OutboxRetention: defaultOutboxRetention}, nil)

		jm, err := root.CreateJobManager()

		require.NoError(t, err)
		assert.NotNil(t, jm)
	})

	t.Run("batch out of range", func(t *testing.T) {
		root := newTestRoot(t, Config{OutboxRelayBatch: 0, OutboxRetention: defaultOutboxRetention}, nil)

		_, err := root.CreateJobManager()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "outbox relay batch")
	})

	t.Run("retention too short", func(t *testing.T) {
		root := newTestRoot(t, Config{OutboxRelayBatch: 100}, nil)

		_, err := root.CreateJobManager()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "outbox retention")
	})
}
