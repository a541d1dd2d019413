// Package kafka publishes relayed outbox messages to Kafka.
package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements ports.MessagePublisher with a kafka-go writer. Messages
// with the same key land on the same partition, so updates of one order keep
// their order.
type Publisher struct {
	writer messageWriter
	now    func() time.Time
}

// NewPublisher creates a publisher writing to brokers.
func NewPublisher(brokers []string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka publisher requires at least one broker")
	}

	return newPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		RequiredAcks:           kafka.RequireAll,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}), nil
}

func newPublisher(writer messageWriter) *Publisher {
	return &Publisher{
		writer: writer,
		now:    time.Now,
	}
}

// Publish writes one message and waits for all in-sync replicas to acknowledge it.
func (p *Publisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	if topic == "" {
		return errors.New("kafka publisher requires a topic")
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
		Time:  p.now().UTC(),
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
