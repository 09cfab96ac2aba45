package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/leavebalance"
	"go-hrms/internal/messaging/kafka/consumer"
	"go-hrms/internal/payroll"
	payrollerrors "go-hrms/internal/payroll/errors"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeReader serves queued messages and cancels the run once drained.
type fakeReader struct {
	mu        sync.Mutex
	queue     []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queue) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func newReader(t *testing.T, payloads ...any) (context.Context, *fakeReader) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	r := &fakeReader{cancel: cancel}
	for i, p := range payloads {
		var value []byte
		if raw, ok := p.(string); ok {
			value = []byte(raw)
		} else {
			b, err := json.Marshal(p)
			require.NoError(t, err)
			value = b
		}
		r.queue = append(r.queue, kafkago.Message{Offset: int64(i), Value: value})
	}
	return ctx, r
}

type balanceSeederFunc func(ctx context.Context, employeeID string, year int) ([]leavebalance.BalanceResponse, error)

func (f balanceSeederFunc) GetBalance(ctx context.Context, employeeID string, year int) ([]leavebalance.BalanceResponse, error) {
	return f(ctx, employeeID, year)
}

type payrollRunnerFunc func(ctx context.Context, req payroll.PeriodRequest) (payroll.BulkResult, error)

func (f payrollRunnerFunc) GenerateBulk(ctx context.Context, req payroll.PeriodRequest) (payroll.BulkResult, error) {
	return f(ctx, req)
}

func TestConsumeEmployeeLifecycle(t *testing.T) {
	ctx, reader := newReader(t,
		events.EmployeeCreatedEvent{EventType: events.EventEmployeeCreated, EmployeeID: "e-1", OccurredAt: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
		"not json",
		events.EmployeeCreatedEvent{EventType: events.EventEmployeeCreated, EmployeeID: "e-2", OccurredAt: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
	)

	var seeded []string
	seeder := balanceSeederFunc(func(_ context.Context, employeeID string, year int) ([]leavebalance.BalanceResponse, error) {
		assert.Equal(t, 2024, year)
		if employeeID == "e-2" {
			return nil, errors.New("db down")
		}
		seeded = append(seeded, employeeID)
		return []leavebalance.BalanceResponse{{LeaveType: "CL"}}, nil
	})

	consumer.ConsumeEmployeeLifecycle(ctx, reader, seeder, zap.NewNop())

	assert.Equal(t, []string{"e-1"}, seeded)
	require.Len(t, reader.committed, 2, "transient failures stay uncommitted")
	assert.Equal(t, int64(0), reader.committed[0].Offset)
	assert.Equal(t, int64(1), reader.committed[1].Offset)
}

func TestConsumePayrollRunRequested(t *testing.T) {
	ctx, reader := newReader(t,
		events.PayrollRunRequestedEvent{EventType: events.EventPayrollRunRequested, RunID: "r-1", Month: 5, Year: 2024},
		events.PayrollRunRequestedEvent{EventType: events.EventPayrollRunRequested, RunID: "r-2", Month: 13, Year: 2024},
	)

	var runs []payroll.PeriodRequest
	runner := payrollRunnerFunc(func(_ context.Context, req payroll.PeriodRequest) (payroll.BulkResult, error) {
		runs = append(runs, req)
		if req.Month == 13 {
			return payroll.BulkResult{}, payrollerrors.ErrInvalidMonth
		}
		return payroll.BulkResult{Month: req.Month, Year: req.Year}, nil
	})

	consumer.ConsumePayrollRunRequested(ctx, reader, runner, zap.NewNop())

	assert.Equal(t, []payroll.PeriodRequest{{Month: 5, Year: 2024}, {Month: 13, Year: 2024}}, runs)
	assert.Len(t, reader.committed, 2, "invalid periods are dropped, not retried")
}
