package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-hrms/internal/employee"
	employeeerrors "go-hrms/internal/employee/errors"
	employeeMock "go-hrms/internal/employee/mock"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/counter"
	counterMock "go-hrms/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	counter   *counterMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   employee.NewService(db, repo, counterRepo, outboxRepo, rdb),
		repo:      repo,
		counter:   counterRepo,
		outbox:    outboxRepo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestEmployeeService_Create(t *testing.T) {
	t.Run("success - generates code, hashes password and queues event", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := contextutil.WithRequestID(context.Background(), "REQ-1")

		req := employee.CreateEmployeeRequest{
			Name:          "Asha Rao",
			Email:         "asha@example.com",
			DateOfJoining: "2024-04-01",
			Password:      "s3cret-pass",
		}

		expectTx(t, deps.sqlMock, true)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, counter.TypeEmployeeCode).Return(int64(42), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, "EMP-000042", e.EmployeeCode)
				assert.Equal(t, employee.RoleEmployee, e.Role)
				assert.Equal(t, employee.StatusActive, e.Status)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte("s3cret-pass")))
				require.NotNil(t, e.DateOfJoining)
				assert.Equal(t, "2024-04-01", e.DateOfJoining.Format("2006-01-02"))
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, "REQ-1", ev.RequestID)
				assert.Equal(t, events.EmployeeLifecycleTopic, ev.Topic)
				var payload events.EmployeeCreatedEvent
				require.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, ev.AggregateID, payload.EmployeeID)
				return nil
			})
		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		resp, err := deps.service.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "EMP-000042", resp.EmployeeCode)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("duplicate email maps to conflict and rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_email"})

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Name: "Dup", Email: "dup@example.com", EmployeeCode: "EMP-1",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid date of joining", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Create(context.Background(), employee.CreateEmployeeRequest{
			Name: "X", Email: "x@example.com", DateOfJoining: "01/04/2024",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDateOfJoining)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	t.Run("cache hit skips repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		cached := []employee.EmployeeOption{{ID: "1", Name: "A", EmployeeCode: "EMP-000001"}}
		body, _ := json.Marshal(cached)
		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).SetVal(string(body))

		got, err := deps.service.GetOptions(context.Background())
		require.NoError(t, err)
		assert.Equal(t, cached, got)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		id := uuid.New()

		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
		deps.repo.EXPECT().FindOptions(gomock.Any()).Return([]employee.Employee{
			{ID: id, Name: "Ravi", EmployeeCode: "EMP-000007"},
		}, nil)
		want := []employee.EmployeeOption{{ID: id.String(), Name: "Ravi", EmployeeCode: "EMP-000007"}}
		body, _ := json.Marshal(want)
		deps.redismock.ExpectSet(employee.EmployeeOptionsKey, body, time.Hour).SetVal("OK")

		got, err := deps.service.GetOptions(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	_, err := deps.service.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)

	id := uuid.NewString()
	deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)
	_, err = deps.service.GetByID(ctx, id)
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestEmployeeService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	id := uuid.New()

	existing := &employee.Employee{ID: id, Name: "Old", Email: "old@example.com", Role: employee.RoleEmployee, Status: employee.StatusActive}

	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByID(ctx, id.String()).Return(existing, nil)
	deps.repo.EXPECT().Update(ctx, existing).Return(nil)
	deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

	resp, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
		Name: "New", Email: "new@example.com", Status: employee.StatusInactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "New", resp.Name)
	assert.Equal(t, employee.StatusInactive, resp.Status)
	assert.Equal(t, employee.RoleEmployee, resp.Role)
}
