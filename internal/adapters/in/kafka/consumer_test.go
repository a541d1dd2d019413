package kafka

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"ordersync/internal/core/application/result"
	"ordersync/internal/core/application/usecases/commands"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeReader serves queued messages, then blocks until the context ends.
type fakeReader struct {
	messages  []kafka.Message
	committed []kafka.Message
	fetchErr  error
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) > 0 {
		msg := r.messages[0]
		r.messages = r.messages[1:]
		return msg, nil
	}
	if r.fetchErr != nil {
		return kafka.Message{}, r.fetchErr
	}
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type mockReconciler struct {
	mock.Mock
	onHandle func()
}

func (m *mockReconciler) Handle(ctx context.Context, cmd commands.ReconcileOrderUpdateCommand) result.Outcome {
	args := m.Called(ctx, cmd)
	if m.onHandle != nil {
		m.onHandle()
	}
	return args.Get(0).(result.Outcome)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func orderNumberIs(number string) any {
	return mock.MatchedBy(func(cmd commands.ReconcileOrderUpdateCommand) bool {
		return cmd.Notification().OrderNumber() == number
	})
}

func TestOrderUpdateConsumer_Run_ReconcilesAndCommits(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	reader := &fakeReader{messages: []kafka.Message{
		{Offset: 1, Value: []byte(`{"order_number":"R100","status":"shipped"}`)},
		{Offset: 2, Value: []byte(`{"order_number":"R200","status":"packed"}`)},
	}}

	reconciler := new(mockReconciler)
	reconciler.On("Handle", mock.Anything, orderNumberIs("R100")).
		Return(result.Success("The order's status has been updated to shipped")).Once()
	reconciler.On("Handle", mock.Anything, orderNumberIs("R200")).
		Return(result.Abort("Order synchronisation is disabled")).Once()
	reconciler.onHandle = func() {
		if len(reader.messages) == 0 {
			cancel()
		}
	}

	err := newOrderUpdateConsumer(reader, reconciler, discardLogger()).Run(ctx)

	require.NoError(t, err)
	reconciler.AssertExpectations(t)
	require.Len(t, reader.committed, 2)
	assert.Equal(t, int64(2), reader.committed[1].Offset)
}

func TestOrderUpdateConsumer_Run_SkipsUndecodableMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	reader := &fakeReader{messages: []kafka.Message{
		{Offset: 7, Value: []byte(`not json`)},
		{Offset: 8, Value: []byte(`{"status":"shipped"}`)},
		{Offset: 9, Value: []byte(`{"order_number":"R100","status":"shipped"}`)},
	}}

	reconciler := new(mockReconciler)
	reconciler.On("Handle", mock.Anything, orderNumberIs("R100")).
		Return(result.Success("The order has been updated")).Once()
	reconciler.onHandle = cancel

	err := newOrderUpdateConsumer(reader, reconciler, discardLogger()).Run(ctx)

	require.NoError(t, err)
	reconciler.AssertNumberOfCalls(t, "Handle", 1)
	assert.Len(t, reader.committed, 3)
}

func TestOrderUpdateConsumer_Run_FetchError(t *testing.T) {
	reader := &fakeReader{fetchErr: errors.New("group coordinator not available")}
	reconciler := new(mockReconciler)

	err := newOrderUpdateConsumer(reader, reconciler, discardLogger()).Run(t.Context())

	require.ErrorContains(t, err, "group coordinator not available")
	reconciler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestNewOrderUpdateConsumer_Validation(t *testing.T) {
	reconciler := new(mockReconciler)

	_, err := NewOrderUpdateConsumer(nil, "group", "topic", reconciler, discardLogger())
	require.Error(t, err)

	_, err = NewOrderUpdateConsumer([]string{"localhost:9092"}, "", "topic", reconciler, discardLogger())
	require.Error(t, err)

	_, err = NewOrderUpdateConsumer([]string{"localhost:9092"}, "group", "", reconciler, discardLogger())
	require.Error(t, err)
}
