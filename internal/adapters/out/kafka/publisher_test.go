package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockWriter struct{ mock.Mock }

func (m *mockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *mockWriter) Close() error {
	return m.Called().Error(0)
}

func TestPublisher_Publish(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	writer := new(mockWriter)
	writer.On("WriteMessages", ctx, []kafka.Message{{
		Topic: "order-events",
		Key:   []byte("R100"),
		Value: []byte(`{"status":"shipped"}`),
		Time:  now,
	}}).Return(nil).Once()

	p := newPublisher(writer)
	p.now = func() time.Time { return now }

	err := p.Publish(ctx, "order-events", "R100", []byte(`{"status":"shipped"}`))

	require.NoError(t, err)
	writer.AssertExpectations(t)
}

func TestPublisher_Publish_WriterError(t *testing.T) {
	writer := new(mockWriter)
	writer.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("leader not available")).Once()

	err := newPublisher(writer).Publish(t.Context(), "order-events", "R100", []byte(`{}`))

	require.EqualError(t, err, "leader not available")
}

func TestPublisher_Publish_RequiresTopic(t *testing.T) {
	writer := new(mockWriter)

	err := newPublisher(writer).Publish(t.Context(), "", "R100", []byte(`{}`))

	require.Error(t, err)
	writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}

func TestNewPublisher_RequiresBrokers(t *testing.T) {
	_, err := NewPublisher(nil)
	require.Error(t, err)

	p, err := NewPublisher([]string{"localhost:9092"})
	require.NoError(t, err)
	assert.NoError(t, p.Close())
}
