package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHTTPPort         = "8080"
	defaultOutboxRelayBatch = 100
	defaultOutboxRetention  = 7 * 24 * time.Hour
)

type Config struct {
	HTTPPort                 string
	DBHost                   string
	DBPort                   string
	DBUser                   string
	DBPassword               string
	DBName                   string
	DBSslMode                string
	OrderSyncEnabled         bool
	OrderSyncDisabledMessage string
	RedisAddr                string
	RedisSyncKey             string
	KafkaHost                string
	KafkaConsumerGroup       string
	KafkaOrderUpdateTopic    string
	KafkaOrderEventsTopic    string
	OutboxRelaySchedule      string
	OutboxRelayBatch         int
	OutboxPurgeSchedule      string
	OutboxRetention          time.Duration
}

// LoadConfig reads the configuration through getenv. Unset optional keys take
// their defaults; malformed values are reported together.
func LoadConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:                 getenv("HTTP_PORT"),
		DBHost:                   getenv("DB_HOST"),
		DBPort:                   getenv("DB_PORT"),
		DBUser:                   getenv("DB_USER"),
		DBPassword:               getenv("DB_PASSWORD"),
		DBName:                   getenv("DB_NAME"),
		DBSslMode:                getenv("DB_SSLMODE"),
		OrderSyncEnabled:         true,
		OrderSyncDisabledMessage: getenv("ORDER_SYNC_DISABLED_MESSAGE"),
		RedisAddr:                getenv("REDIS_ADDR"),
		RedisSyncKey:             getenv("REDIS_SYNC_KEY"),
		KafkaHost:                getenv("KAFKA_HOST"),
		KafkaConsumerGroup:       getenv("KAFKA_CONSUMER_GROUP"),
		KafkaOrderUpdateTopic:    getenv("KAFKA_ORDER_UPDATE_TOPIC"),
		KafkaOrderEventsTopic:    getenv("KAFKA_ORDER_EVENTS_TOPIC"),
		OutboxRelaySchedule:      getenv("OUTBOX_RELAY_SCHEDULE"),
		OutboxRelayBatch:         defaultOutboxRelayBatch,
		OutboxPurgeSchedule:      getenv("OUTBOX_PURGE_SCHEDULE"),
		OutboxRetention:          defaultOutboxRetention,
	}
	if config.HTTPPort == "" {
		config.HTTPPort = defaultHTTPPort
	}

	var errList []error

	if v := getenv("ORDER_SYNC_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			errList = append(errList, fmt.Errorf("ORDER_SYNC_ENABLED: %w", err))
		}
		config.OrderSyncEnabled = enabled
	}

	if v := getenv("OUTBOX_RELAY_BATCH"); v != "" {
		batch, err := strconv.Atoi(v)
		if err != nil {
			errList = append(errList, fmt.Errorf("OUTBOX_RELAY_BATCH: %w", err))
		}
		config.OutboxRelayBatch = batch
	}

	if v := getenv("OUTBOX_RETENTION"); v != "" {
		retention, err := time.ParseDuration(v)
		if err != nil {
			errList = append(errList, fmt.Errorf("OUTBOX_RETENTION: %w", err))
		}
		config.OutboxRetention = retention
	}

	required := []struct {
		key   string
		value string
	}{
		{"DB_HOST", config.DBHost},
		{"KAFKA_HOST", config.KafkaHost},
		{"KAFKA_CONSUMER_GROUP", config.KafkaConsumerGroup},
		{"KAFKA_ORDER_UPDATE_TOPIC", config.KafkaOrderUpdateTopic},
		{"KAFKA_ORDER_EVENTS_TOPIC", config.KafkaOrderEventsTopic},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errList = append(errList, fmt.Errorf("%s is required", r.key))
		}
	}

	if len(errList) > 0 {
		return Config{}, errors.Join(errList...)
	}
	return config, nil
}

// DSN builds the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
