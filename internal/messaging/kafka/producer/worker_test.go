package producer_test

import (
	"context"
	"errors"
	"testing"

	"go-hrms/internal/messaging/kafka"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"
	"go-hrms/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failTopic string
	written   []kafkago.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == w.failTopic {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestRelayPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{failTopic: "broken"}
	ctx := context.Background()

	repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{
		{ID: "ok", RequestID: "req-1", AggregateID: "emp-1", EventType: "employee_created", Topic: "good", Payload: []byte("{}")},
		{ID: "bad", AggregateID: "emp-2", EventType: "employee_created", Topic: "broken", Payload: []byte("{}")},
	}, nil)
	repo.EXPECT().MarkSent(ctx, "ok").Return(nil)
	repo.EXPECT().MarkFailed(ctx, "bad", "broker unavailable").Return(nil)

	sent, err := producer.RelayPending(ctx, repo, writer, zap.NewNop(), 50)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	require.Len(t, writer.written, 1)
	msg := writer.written[0]
	assert.Equal(t, []byte("emp-1"), msg.Key)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "employee_created", headers["event_type"])
	assert.Equal(t, "req-1", headers["request_id"])
}

func TestRelayPending_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)

	repo.EXPECT().ListPending(gomock.Any(), 10).Return(nil, errors.New("db down"))

	_, err := producer.RelayPending(context.Background(), repo, &fakeWriter{}, zap.NewNop(), 10)
	assert.EqualError(t, err, "db down")
}
