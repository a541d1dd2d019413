// Package commands contains the operations that modify order sync state.
// Every command follows the same pattern: a constructor-guarded command value and a
// handler that validates it, manages its unit of work and persists changes.
package commands

import (
	"context"

	"ordersync/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest one it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OutboxRepoFactory provides access to outbox repository within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW manages transactions for order-only operations such as creation.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OutboxUoW manages transactions for outbox relaying.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}

	// UoW manages the status transaction: the order write and every outbox message
	// recorded by observers commit or roll back together. It is also the
	// ports.EventScope handed to observers.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = dispatcher.Dispatch(ctx, uow, event)
	//   change, err := uow.OrderRepository().UpdateStatus(ctx, ref, status)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		OutboxRepoFactory
	}

	// UoWFactory creates new status transaction unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
