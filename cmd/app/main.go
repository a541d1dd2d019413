package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordersync/cmd"
	httpin "ordersync/internal/adapters/in/http"
	kafkain "ordersync/internal/adapters/in/kafka"
	"ordersync/internal/adapters/out/kafka"
	"ordersync/internal/adapters/out/postgres/orderrepo"
	"ordersync/internal/adapters/out/postgres/outboxrepo"
	"ordersync/internal/adapters/out/syncgate"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustGormOpen(configs.DSN())
	mustAutoMigrate(gormDB)

	publisher, err := kafka.NewPublisher(configs.KafkaBrokers())
	if err != nil {
		log.Fatalf("Failed to create kafka publisher: %v", err)
	}
	defer publisher.Close()

	var redisClient redis.Cmdable
	if configs.RedisAddr != "" {
		client, err := syncgate.Connect(ctx, configs.RedisAddr)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer client.Close()
		redisClient = client
	}

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, redisClient, logger)

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Failed to create jobs: %v", err)
	}
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	consumer, err := kafkain.NewOrderUpdateConsumer(
		configs.KafkaBrokers(),
		configs.KafkaConsumerGroup,
		configs.KafkaOrderUpdateTopic,
		app.CreateReconcileOrderUpdateCommandHandler(),
		logger,
	)
	if err != nil {
		log.Fatalf("Failed to create kafka consumer: %v", err)
	}
	defer consumer.Close()

	e := newWebServer(&app)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return consumer.Run(gctx)
	})
	g.Go(func() error {
		err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Errorf("Service stopped with error: %v", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func mustGormOpen(dsn string) *gorm.DB {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustAutoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(&orderrepo.OrderDTO{}, &outboxrepo.MessageDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func newWebServer(app *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	server := httpin.NewServer(
		app.CreateReconcileOrderUpdateCommandHandler(),
		app.CreateGetOrderByNumberQueryHandler(),
		app.CreateGetOrdersByStatusQueryHandler(),
	)
	httpin.RegisterHandlers(e, server)
	return e
}
