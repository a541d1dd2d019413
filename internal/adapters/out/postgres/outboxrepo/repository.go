package outboxrepo

import (
	"context"
	"time"

	"ordersync/internal/core/domain/model/outbox"
	"ordersync/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add records a message. Inside a unit of work it becomes visible on commit.
func (r *GormOutboxRepository) Add(ctx context.Context, msg *outbox.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	dto := fromDomain(msg)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetUnsent locks and returns up to limit pending messages, oldest first.
// Rows locked by another relay are skipped rather than waited for.
func (r *GormOutboxRepository) GetUnsent(ctx context.Context, limit int) ([]*outbox.Message, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("sent_at IS NULL").
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*outbox.Message, 0, len(dtos))
	for _, dto := range dtos {
		msg, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// Update persists the delivery state of a message.
func (r *GormOutboxRepository) Update(ctx context.Context, msg *outbox.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", msg.ID().Bytes()).
		Update("sent_at", msg.SentAt())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", msg.ID())
	}

	return nil
}

// DeleteSentBefore removes messages sent before cutoff.
func (r *GormOutboxRepository) DeleteSentBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("sent_at IS NOT NULL AND sent_at < ?", cutoff).
		Delete(&MessageDTO{})
	return result.RowsAffected, result.Error
}
