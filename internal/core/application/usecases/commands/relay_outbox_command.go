package commands

import (
	"errors"

	"ordersync/internal/pkg/errs"
	"ordersync/internal/pkg/guard"
)

const (
	MinRelayBatchSize = 1
	MaxRelayBatchSize = 1000
)

var (
	ErrRelayOutboxCommandIsNotConstructed = errors.New(
		"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
	)
)

// RelayOutboxCommand requests publication of at most BatchSize pending outbox messages.
type RelayOutboxCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

// NewRelayOutboxCommand creates a relay command.
// Returns errs.ValueIsOutOfRangeError when batchSize is outside [1, 1000].
func NewRelayOutboxCommand(batchSize int) (RelayOutboxCommand, error) {
	if batchSize < MinRelayBatchSize || batchSize > MaxRelayBatchSize {
		return RelayOutboxCommand{}, errs.NewValueIsOutOfRangeError(
			"batchSize", batchSize, MinRelayBatchSize, MaxRelayBatchSize,
		)
	}

	return RelayOutboxCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

func (c RelayOutboxCommand) BatchSize() int {
	return c.batchSize
}
