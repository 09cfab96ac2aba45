package task_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/task"
	taskerrors "go-hrms/internal/task/errors"
	taskMock "go-hrms/internal/task/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service task.Service
	repo    *taskMock.MockRepository
	now     time.Time
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	d := &serviceDeps{
		repo: taskMock.NewMockRepository(ctrl),
		now:  time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC),
	}
	d.service = task.NewService(d.repo, func() time.Time { return d.now })
	return d
}

func ptr[T any](v T) *T { return &v }

func TestTaskService_Create(t *testing.T) {
	d := setupServiceTest(t)
	creator := uuid.New()

	d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tk *task.Task) error {
		assert.Equal(t, task.StatusOpen, tk.Status)
		assert.Nil(t, tk.AssignedTo)
		assert.Equal(t, creator, tk.CreatedBy)
		return nil
	})

	resp, err := d.service.Create(context.Background(), creator.String(), task.CreateTaskRequest{Title: "Audit invoices"})
	require.NoError(t, err)
	assert.Equal(t, task.StatusOpen, resp.Status)
	assert.Nil(t, resp.AssignedTo)

	_, err = d.service.Create(context.Background(), "", task.CreateTaskRequest{Title: "x"})
	assert.ErrorIs(t, err, taskerrors.ErrInvalidCreator)
}

func TestTaskService_Claim(t *testing.T) {
	ctx := context.Background()
	employee := uuid.New()

	t.Run("open task is assigned with estimate", func(t *testing.T) {
		d := setupServiceTest(t)
		open := &task.Task{ID: uuid.New(), Status: task.StatusOpen}
		d.repo.EXPECT().FindByID(gomock.Any(), open.ID.String()).Return(open, nil)
		d.repo.EXPECT().Transition(gomock.Any(), open, task.StatusOpen).Return(true, nil)

		resp, err := d.service.Claim(ctx, employee.String(), open.ID.String(), task.ClaimTaskRequest{EstimateMinutes: 90})
		require.NoError(t, err)
		assert.Equal(t, task.StatusClaimed, resp.Status)
		require.NotNil(t, resp.AssignedTo)
		assert.Equal(t, employee.String(), *resp.AssignedTo)
		assert.Equal(t, 90, *resp.EstimateMinutes)
		assert.Equal(t, "2024-06-12T09:00:00Z", *resp.ClaimedAt)
	})

	t.Run("already claimed", func(t *testing.T) {
		d := setupServiceTest(t)
		other := uuid.New()
		claimed := &task.Task{ID: uuid.New(), Status: task.StatusClaimed, AssignedTo: &other}
		d.repo.EXPECT().FindByID(gomock.Any(), claimed.ID.String()).Return(claimed, nil)

		_, err := d.service.Claim(ctx, employee.String(), claimed.ID.String(), task.ClaimTaskRequest{EstimateMinutes: 30})
		assert.ErrorIs(t, err, taskerrors.ErrNotClaimable)
	})

	t.Run("lost race", func(t *testing.T) {
		d := setupServiceTest(t)
		open := &task.Task{ID: uuid.New(), Status: task.StatusOpen}
		d.repo.EXPECT().FindByID(gomock.Any(), open.ID.String()).Return(open, nil)
		d.repo.EXPECT().Transition(gomock.Any(), open, task.StatusOpen).Return(false, nil)

		_, err := d.service.Claim(ctx, employee.String(), open.ID.String(), task.ClaimTaskRequest{EstimateMinutes: 30})
		assert.ErrorIs(t, err, taskerrors.ErrNotClaimable)
	})

	t.Run("unknown task", func(t *testing.T) {
		d := setupServiceTest(t)
		d.repo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := d.service.Claim(ctx, employee.String(), "missing", task.ClaimTaskRequest{EstimateMinutes: 30})
		assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)
	})
}

func TestTaskService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	d := setupServiceTest(t)
	employee := uuid.New()
	claimedAt := d.now.Add(-time.Hour)
	tk := &task.Task{
		ID:              uuid.New(),
		Status:          task.StatusClaimed,
		AssignedTo:      &employee,
		EstimateMinutes: ptr(100),
		ClaimedAt:       &claimedAt,
	}
	id := tk.ID.String()

	d.repo.EXPECT().FindByID(gomock.Any(), id).Return(tk, nil).Times(4)
	d.repo.EXPECT().Transition(gomock.Any(), tk, gomock.Any()).Return(true, nil).Times(4)

	resp, err := d.service.Start(ctx, employee.String(), id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, resp.Status)
	assert.Equal(t, "2024-06-12T09:00:00Z", *resp.StartedAt)

	d.now = d.now.Add(30 * time.Minute)
	resp, err = d.service.Pause(ctx, employee.String(), id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPaused, resp.Status)
	assert.Equal(t, 30, resp.ActiveMinutes)

	d.now = d.now.Add(30 * time.Minute)
	resp, err = d.service.Start(ctx, employee.String(), id)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-12T09:00:00Z", *resp.StartedAt, "resuming keeps the first start")

	d.now = d.now.Add(40 * time.Minute)
	resp, err = d.service.Complete(ctx, employee.String(), id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, resp.Status)
	assert.Equal(t, 70, resp.ActiveMinutes, "paused time is not counted")
	require.NotNil(t, resp.Rating)
	assert.Equal(t, 5, *resp.Rating)
	assert.Equal(t, "2024-06-12T10:40:00Z", *resp.CompletedAt)
}

func TestTaskService_Guards(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name    string
		status  string
		actor   uuid.UUID
		call    func(s task.Service, actor, id string) error
		wantErr error
	}{
		{"start by another employee", task.StatusClaimed, stranger, startCall, taskerrors.ErrTaskNotFound},
		{"start completed task", task.StatusCompleted, owner, startCall, taskerrors.ErrCannotStart},
		{"start in progress task", task.StatusInProgress, owner, startCall, taskerrors.ErrCannotStart},
		{"pause claimed task", task.StatusClaimed, owner, pauseCall, taskerrors.ErrCannotPause},
		{"complete paused task", task.StatusPaused, owner, completeCall, taskerrors.ErrCannotFinish},
		{"complete claimed task", task.StatusClaimed, owner, completeCall, taskerrors.ErrCannotFinish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupServiceTest(t)
			tk := &task.Task{ID: uuid.New(), Status: tt.status, AssignedTo: &owner}
			d.repo.EXPECT().FindByID(gomock.Any(), tk.ID.String()).Return(tk, nil)

			err := tt.call(d.service, tt.actor.String(), tk.ID.String())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.status, tk.Status)
		})
	}

	t.Run("invalid employee id", func(t *testing.T) {
		d := setupServiceTest(t)
		_, err := d.service.Start(ctx, "nope", uuid.NewString())
		assert.ErrorIs(t, err, taskerrors.ErrInvalidEmployeeID)
	})
}

func startCall(s task.Service, actor, id string) error {
	_, err := s.Start(context.Background(), actor, id)
	return err
}

func pauseCall(s task.Service, actor, id string) error {
	_, err := s.Pause(context.Background(), actor, id)
	return err
}

func completeCall(s task.Service, actor, id string) error {
	_, err := s.Complete(context.Background(), actor, id)
	return err
}

func TestTaskService_Lists(t *testing.T) {
	ctx := context.Background()
	d := setupServiceTest(t)
	employee := uuid.New()

	d.repo.EXPECT().ListOpen(gomock.Any()).Return([]task.Task{{ID: uuid.New(), Status: task.StatusOpen}}, nil)
	open, err := d.service.ListOpen(ctx)
	require.NoError(t, err)
	assert.Len(t, open, 1)

	d.repo.EXPECT().ListByAssignee(gomock.Any(), employee.String()).Return(nil, nil)
	mine, err := d.service.ListMine(ctx, employee.String())
	require.NoError(t, err)
	assert.Empty(t, mine)

	_, err = d.service.ListByEmployee(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, taskerrors.ErrInvalidEmployeeID)

	d.repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))
	_, err = d.service.List(ctx)
	assert.EqualError(t, err, "db down")
}
