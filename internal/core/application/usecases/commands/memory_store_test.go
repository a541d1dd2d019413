package commands_test

import (
	"context"
	"errors"
	"sync"

	"ordersync/internal/core/application/usecases/commands"
	"ordersync/internal/core/domain/model/order"
	"ordersync/internal/core/domain/model/outbox"
	"ordersync/internal/core/ports"
	"ordersync/internal/pkg/errs"
)

// memoryStore keeps committed orders and outbox messages for end-to-end handler
// tests. Writes made through a memoryUoW become visible only on Commit.
type memoryStore struct {
	mu           sync.Mutex
	orders       map[order.Ref]*order.Order
	outbox       []*outbox.Message
	statusWrites int

	// updateErr, when set, fails every status write.
	updateErr error
}

func newMemoryStore(orders ...*order.Order) *memoryStore {
	s := &memoryStore{orders: make(map[order.Ref]*order.Order)}
	for _, o := range orders {
		s.orders[o.Ref()] = o
	}
	return s
}

func (s *memoryStore) Create() commands.UoW {
	return &memoryUoW{store: s}
}

func (s *memoryStore) status(ref order.Ref) order.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[ref].Status()
}

func (s *memoryStore) outboxLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.outbox)
}

type memoryUoW struct {
	store   *memoryStore
	active  bool
	pending map[order.Ref]order.Status
	outbox  []*outbox.Message
}

func (u *memoryUoW) Begin(context.Context) error {
	u.active = true
	u.pending = make(map[order.Ref]order.Status)
	u.outbox = nil
	return nil
}

func (u *memoryUoW) Commit(context.Context) error {
	if !u.active {
		return errors.New("no active transaction")
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	for ref, status := range u.pending {
		if _, err := u.store.orders[ref].ChangeStatus(status, fixedNow); err != nil {
			return err
		}
		u.store.statusWrites++
	}
	u.store.outbox = append(u.store.outbox, u.outbox...)
	u.active = false
	return nil
}

func (u *memoryUoW) Rollback(context.Context) error {
	u.active = false
	u.pending = nil
	u.outbox = nil
	return nil
}

func (u *memoryUoW) OrderRepository() ports.OrderRepository {
	return memoryOrderRepository{uow: u}
}

func (u *memoryUoW) OutboxRepository() ports.OutboxRepository {
	return memoryOutboxRepository{uow: u}
}

type memoryOrderRepository struct {
	ports.OrderRepository

	uow *memoryUoW
}

func (r memoryOrderRepository) UpdateStatus(
	_ context.Context,
	ref order.Ref,
	status order.Status,
) (order.StatusChange, error) {
	r.uow.store.mu.Lock()
	stored, ok := r.uow.store.orders[ref]
	updateErr := r.uow.store.updateErr
	r.uow.store.mu.Unlock()
	if updateErr != nil {
		return 0, updateErr
	}
	if !ok {
		return 0, errs.NewObjectNotFoundError("order ref", ref)
	}

	change, err := stored.Status().TransitionTo(status)
	if err != nil {
		return 0, err
	}
	if change == order.StatusApplied {
		r.uow.pending[ref] = status
	}
	return change, nil
}

type memoryOutboxRepository struct {
	ports.OutboxRepository

	uow *memoryUoW
}

func (r memoryOutboxRepository) Add(_ context.Context, msg *outbox.Message) error {
	r.uow.outbox = append(r.uow.outbox, msg)
	return nil
}
