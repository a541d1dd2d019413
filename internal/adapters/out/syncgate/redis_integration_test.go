package syncgate_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ordersync/internal/adapters/out/syncgate"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RedisGateIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	addr      string
}

func (suite *RedisGateIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	addr, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)
	suite.addr = addr
}

func (suite *RedisGateIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RedisGateIntegrationTestSuite) TestRuntimeToggle() {
	ctx := context.Background()
	client, err := syncgate.Connect(ctx, suite.addr)
	suite.Require().NoError(err)
	defer client.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gate := syncgate.NewRedis(client, "", syncgate.NewStatic(true, ""), logger)

	suite.Require().NoError(client.Del(ctx, syncgate.DefaultRedisKey).Err())
	suite.True(gate.OrderSyncEnabled(ctx))

	suite.Require().NoError(client.Set(ctx, syncgate.DefaultRedisKey, "false", 0).Err())
	suite.False(gate.OrderSyncEnabled(ctx))

	suite.Require().NoError(client.Set(ctx, syncgate.DefaultRedisKey, "true", 0).Err())
	suite.True(gate.OrderSyncEnabled(ctx))
}

func TestRedisGateIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RedisGateIntegrationTestSuite))
}
