package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"ordersync/internal/core/application/result"
	"ordersync/internal/core/application/usecases/commands"
	"ordersync/internal/core/domain/model/events"
	"ordersync/internal/core/domain/model/notification"
	"ordersync/internal/core/domain/model/order"
	"ordersync/internal/core/domain/model/outbox"
	"ordersync/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (order.Ref, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(order.Ref), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, ref order.Ref) (*order.Order, error) {
	args := m.Called(ctx, ref)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindRefByExternalNumber(ctx context.Context, number string) (order.Ref, bool, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(order.Ref), args.Bool(1), args.Error(2)
}

func (m *MockOrderRepository) UpdateStatus(
	ctx context.Context,
	ref order.Ref,
	status order.Status,
) (order.StatusChange, error) {
	args := m.Called(ctx, ref, status)
	return args.Get(0).(order.StatusChange), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, msg *outbox.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockOutboxRepository) GetUnsent(ctx context.Context, limit int) ([]*outbox.Message, error) {
	args := m.Called(ctx, limit)
	msgs, _ := args.Get(0).([]*outbox.Message)
	return msgs, args.Error(1)
}

func (m *MockOutboxRepository) Update(ctx context.Context, msg *outbox.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockOutboxRepository) DeleteSentBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) Dispatch(ctx context.Context, scope ports.EventScope, event events.OrderUpdate) error {
	args := m.Called(ctx, scope, event)
	return args.Error(0)
}

type MockSyncGate struct{ mock.Mock }

func (m *MockSyncGate) OrderSyncEnabled(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockSyncGate) DisabledMessage() string {
	args := m.Called()
	return args.String(0)
}

type MockLocator struct{ mock.Mock }

func (m *MockLocator) FindRefByExternalNumber(ctx context.Context, number string) (order.Ref, bool, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(order.Ref), args.Bool(1), args.Error(2)
}

type MockCreator struct{ mock.Mock }

func (m *MockCreator) CreateFromNotification(ctx context.Context, n notification.Notification) (*order.Order, error) {
	args := m.Called(ctx, n)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockApplier struct{ mock.Mock }

func (m *MockApplier) Handle(ctx context.Context, cmd commands.ApplyOrderStatusCommand) result.Outcome {
	args := m.Called(ctx, cmd)
	return args.Get(0).(result.Outcome)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	args := m.Called(ctx, topic, key, payload)
	return args.Error(0)
}

func newNotification(t *testing.T, number, status string) notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(number, status, map[string]any{"shipping_provider": "UPS"})
	require.NoError(t, err)
	return n
}

func newPersistedOrder(t *testing.T, ref order.Ref, number string, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(ref, number, status, []byte(`{}`), fixedNow, fixedNow)
	require.NoError(t, err)
	return o
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
