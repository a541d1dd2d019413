// Package outbox models messages recorded inside a business transaction and
// published to the message broker only after that transaction commits.
package outbox

import (
	"errors"
	"strings"
	"time"

	"ordersync/internal/core/domain/model/kernel"
	"ordersync/internal/pkg/errs"
)

var (
	ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")
	ErrMessageAlreadySent      = errors.New("outbox message has already been sent")
)

// Message is a pending broker message.
type Message struct {
	id        kernel.UUID
	topic     string
	key       string
	payload   []byte
	createdAt time.Time
	sentAt    *time.Time

	isConstructed bool
}

// NewMessage creates an unsent message for topic. key is used as the partition key.
func NewMessage(id kernel.UUID, topic, key string, payload []byte, now time.Time) (*Message, error) {
	m := &Message{
		key:           key,
		createdAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setTopic(topic),
		m.setPayload(payload),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMessage rebuilds a message from storage.
func RestoreMessage(
	id kernel.UUID,
	topic, key string,
	payload []byte,
	createdAt time.Time,
	sentAt *time.Time,
) (*Message, error) {
	m, err := NewMessage(id, topic, key, payload, createdAt)
	if err != nil {
		return nil, err
	}
	m.createdAt = createdAt
	m.sentAt = sentAt
	return m, nil
}

func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

func (m *Message) ID() kernel.UUID {
	return m.id
}

func (m *Message) Topic() string {
	return m.topic
}

func (m *Message) Key() string {
	return m.key
}

func (m *Message) Payload() []byte {
	return m.payload
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) SentAt() *time.Time {
	return m.sentAt
}

func (m *Message) IsSent() bool {
	return m.sentAt != nil
}

// MarkSent records the publication time. A message can only be sent once.
func (m *Message) MarkSent(now time.Time) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.IsSent() {
		return ErrMessageAlreadySent
	}
	sentAt := now.UTC()
	m.sentAt = &sentAt
	return nil
}

func (m *Message) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Message) setTopic(topic string) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return errs.NewValueIsRequiredError("topic")
	}
	m.topic = topic
	return nil
}

func (m *Message) setPayload(payload []byte) error {
	if len(payload) == 0 {
		return errs.NewValueIsRequiredError("payload")
	}
	m.payload = payload
	return nil
}
