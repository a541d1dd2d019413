package commands

import (
	"errors"
	"time"

	"ordersync/internal/pkg/errs"
	"ordersync/internal/pkg/guard"
)

const MinOutboxRetention = time.Minute

var (
	ErrPurgeOutboxCommandIsNotConstructed = errors.New(
		"PurgeOutboxCommand must be created via NewPurgeOutboxCommand constructor",
	)
)

// PurgeOutboxCommand removes outbox messages that were sent longer ago than the
// retention period.
type PurgeOutboxCommand struct {
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeOutboxCommand creates the command. retention must be at least
// MinOutboxRetention.
func NewPurgeOutboxCommand(retention time.Duration) (PurgeOutboxCommand, error) {
	if retention < MinOutboxRetention {
		return PurgeOutboxCommand{}, errs.NewValueIsOutOfRangeError(
			"retention", retention, MinOutboxRetention, "unbounded",
		)
	}

	return PurgeOutboxCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeOutboxCommand) Validate() error {
	return c.guard.Validate(ErrPurgeOutboxCommandIsNotConstructed)
}

func (c PurgeOutboxCommand) Retention() time.Duration {
	return c.retention
}
