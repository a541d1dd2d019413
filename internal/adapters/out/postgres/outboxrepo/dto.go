// Package outboxrepo persists outbox messages with GORM.
package outboxrepo

import (
	"time"

	"ordersync/internal/core/domain/model/kernel"
	"ordersync/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

// MessageDTO is the row of the outbox_messages table. Pending rows have a NULL
// sent_at and are relayed in creation order.
type MessageDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Topic     string     `gorm:"size:255;not null"`
	Key       string     `gorm:"size:255"`
	Payload   []byte     `gorm:"type:bytea;not null"`
	CreatedAt time.Time  `gorm:"not null;index:idx_outbox_pending,priority:2"`
	SentAt    *time.Time `gorm:"index:idx_outbox_pending,priority:1"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(msg *outbox.Message) MessageDTO {
	return MessageDTO{
		ID:        msg.ID().Bytes(),
		Topic:     msg.Topic(),
		Key:       msg.Key(),
		Payload:   msg.Payload(),
		CreatedAt: msg.CreatedAt(),
		SentAt:    msg.SentAt(),
	}
}

func toDomain(dto MessageDTO) (*outbox.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return outbox.RestoreMessage(id, dto.Topic, dto.Key, dto.Payload, dto.CreatedAt, dto.SentAt)
}
