package cmd

import (
	"fmt"
	"log/slog"

	"ordersync/internal/adapters/out/postgres"
	"ordersync/internal/adapters/out/postgres/orderrepo"
	"ordersync/internal/adapters/out/syncgate"
	"ordersync/internal/core/application/observers"
	"ordersync/internal/core/application/usecases/commands"
	"ordersync/internal/core/application/usecases/queries"
	"ordersync/internal/core/domain/model/events"
	"ordersync/internal/core/ports"
	"ordersync/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.MessagePublisher
	redis      redis.Cmdable
	dispatcher *observers.Dispatcher
	logger     *slog.Logger
}

// NewCompositionRoot wires the application. redisClient may be nil, in which case
// the sync gate comes from configuration only.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.MessagePublisher,
	redisClient redis.Cmdable,
	logger *slog.Logger,
) CompositionRoot {
	dispatcher := observers.NewDispatcher()
	dispatcher.Subscribe(events.UpdateTopic, observers.NewOutboxForwarder(config.KafkaOrderEventsTopic))
	dispatcher.Subscribe(events.UpdateTopic, observers.NewLogObserver(logger))

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		redis:      redisClient,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateOrderSyncGate() ports.OrderSyncGate {
	static := syncgate.NewStatic(c.config.OrderSyncEnabled, c.config.OrderSyncDisabledMessage)
	if c.redis == nil {
		return static
	}
	return syncgate.NewRedis(c.redis, c.config.RedisSyncKey, static, c.logger)
}

func (c *CompositionRoot) CreateOrderLocator() ports.OrderLocator {
	return orderrepo.NewGormOrderRepository(c.gormDB)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyOrderStatusCommandHandler() commands.ApplyOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyOrderStatusCommandHandler(f, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateReconcileOrderUpdateCommandHandler() commands.ReconcileOrderUpdateCommandHandler {
	return commands.NewReconcileOrderUpdateCommandHandler(
		c.CreateOrderSyncGate(),
		c.CreateOrderLocator(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateApplyOrderStatusCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreatePurgeOutboxCommandHandler() commands.PurgeOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeOutboxCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderByNumberQueryHandler() queries.GetOrderByNumberQueryHandler {
	return queries.NewGetOrderByNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	relayCmd, err := commands.NewRelayOutboxCommand(c.config.OutboxRelayBatch)
	if err != nil {
		return nil, fmt.Errorf("outbox relay batch: %w", err)
	}
	purgeCmd, err := commands.NewPurgeOutboxCommand(c.config.OutboxRetention)
	if err != nil {
		return nil, fmt.Errorf("outbox retention: %w", err)
	}

	return jobs.NewJobManager(
		jobs.NewOutboxRelayJob(
			c.CreateRelayOutboxCommandHandler(), relayCmd, c.config.OutboxRelaySchedule, c.logger,
		),
		jobs.NewOutboxPurgeJob(
			c.CreatePurgeOutboxCommandHandler(), purgeCmd, c.config.OutboxPurgeSchedule, c.logger,
		),
	), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
