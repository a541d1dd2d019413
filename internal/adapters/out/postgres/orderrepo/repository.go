package orderrepo

import (
	"context"
	"errors"
	"time"

	"ordersync/internal/core/domain/model/order"
	"ordersync/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Built on the root connection it also serves as the ports.OrderLocator.
type GormOrderRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{
		db:  db,
		now: time.Now,
	}
}

// Add inserts a new order and returns its generated ref.
// A duplicate external order number is reported as errs.ObjectAlreadyExistsError;
// the connection must be opened with gorm.Config{TranslateError: true}.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (order.Ref, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}
	if aggregate.IsPersisted() {
		return 0, errs.NewObjectAlreadyExistsError("order ref", aggregate.Ref())
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errs.NewObjectAlreadyExistsErrorWithCause(
				"external order number", dto.ExternalOrderNumber, err,
			)
		}
		return 0, err
	}

	return order.Ref(dto.ID), nil
}

// Get retrieves an order by ref.
func (r *GormOrderRepository) Get(ctx context.Context, ref order.Ref) (*order.Order, error) {
	if ref.IsZero() {
		return nil, errs.NewValueIsRequiredError("order ref")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", int64(ref)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", ref)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindRefByExternalNumber resolves the local order bound to a marketplace order
// number. Absence is reported through the boolean, not as an error.
func (r *GormOrderRepository) FindRefByExternalNumber(
	ctx context.Context,
	externalNumber string,
) (order.Ref, bool, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("external_order_number = ?", externalNumber).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, false, err
	}
	if len(ids) == 0 {
		return 0, false, nil
	}

	return order.Ref(ids[0]), true, nil
}

// UpdateStatus writes status to the order unless it is already stored.
//
// The row is read with SELECT ... FOR UPDATE, so concurrent updates of the same
// order serialise until the surrounding transaction ends. Called outside a
// transaction the lock only lasts for the statement.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	ref order.Ref,
	status order.Status,
) (order.StatusChange, error) {
	if ref.IsZero() {
		return 0, errs.NewValueIsRequiredError("order ref")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", int64(ref)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errs.NewObjectNotFoundError("order", ref)
		}
		return 0, err
	}

	aggregate, err := toDomain(dto)
	if err != nil {
		return 0, err
	}

	change, err := aggregate.ChangeStatus(status, r.now())
	if err != nil || change != order.StatusApplied {
		return change, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, errs.NewObjectNotFoundError("order", ref)
	}

	return change, nil
}
