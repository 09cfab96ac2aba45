package task

import (
	"context"
	"time"

	"go-hrms/internal/shared/calendar"
	taskerrors "go-hrms/internal/task/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, creatorID string, req CreateTaskRequest) (TaskResponse, error)
	List(ctx context.Context) ([]TaskResponse, error)
	ListOpen(ctx context.Context) ([]TaskResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]TaskResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]TaskResponse, error)
	Claim(ctx context.Context, employeeID, id string, req ClaimTaskRequest) (TaskResponse, error)
	Start(ctx context.Context, employeeID, id string) (TaskResponse, error)
	Pause(ctx context.Context, employeeID, id string) (TaskResponse, error)
	Complete(ctx context.Context, employeeID, id string) (TaskResponse, error)
}

type service struct {
	repo   Repository
	clock  calendar.Clock
	logger *zap.Logger
}

func NewService(repo Repository, clock calendar.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	if clock == nil {
		clock = calendar.SystemClock
	}
	return &service{repo: repo, clock: clock, logger: l}
}

func (s *service) Create(ctx context.Context, creatorID string, req CreateTaskRequest) (TaskResponse, error) {
	creator, err := uuid.Parse(creatorID)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidCreator
	}

	now := s.clock().UTC()
	t := &Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   creator,
		Status:      StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("create task failed", zap.String("created_by", creatorID), zap.Error(err))
		return TaskResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("task created", zap.String("task_id", t.ID.String()), zap.String("created_by", creatorID))
	return mapToResponse(*t), nil
}

func (s *service) List(ctx context.Context) ([]TaskResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapAll(rows), nil
}

func (s *service) ListOpen(ctx context.Context) ([]TaskResponse, error) {
	rows, err := s.repo.ListOpen(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapAll(rows), nil
}

func (s *service) ListMine(ctx context.Context, employeeID string) ([]TaskResponse, error) {
	return s.ListByEmployee(ctx, employeeID)
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]TaskResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, taskerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.ListByAssignee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapAll(rows), nil
}

func (s *service) Claim(ctx context.Context, employeeID, id string, req ClaimTaskRequest) (TaskResponse, error) {
	assignee, err := uuid.Parse(employeeID)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidEmployeeID
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}
	if t.Status != StatusOpen || t.AssignedTo != nil {
		s.logger.Warn("claim task rejected", zap.String("task_id", id), zap.String("status", t.Status))
		return TaskResponse{}, taskerrors.ErrNotClaimable
	}

	now := s.clock().UTC()
	estimate := req.EstimateMinutes
	t.AssignedTo = &assignee
	t.Status = StatusClaimed
	t.EstimateMinutes = &estimate
	t.ClaimedAt = &now

	return s.transition(ctx, t, now, taskerrors.ErrNotClaimable, StatusOpen)
}

func (s *service) Start(ctx context.Context, employeeID, id string) (TaskResponse, error) {
	t, err := s.findOwned(ctx, employeeID, id)
	if err != nil {
		return TaskResponse{}, err
	}
	if t.Status != StatusClaimed && t.Status != StatusPaused {
		s.logger.Warn("start task rejected", zap.String("task_id", id), zap.String("status", t.Status))
		return TaskResponse{}, taskerrors.ErrCannotStart
	}

	now := s.clock().UTC()
	if t.StartedAt == nil {
		t.StartedAt = &now
	}
	t.ResumedAt = &now
	t.Status = StatusInProgress

	return s.transition(ctx, t, now, taskerrors.ErrCannotStart, StatusClaimed, StatusPaused)
}

func (s *service) Pause(ctx context.Context, employeeID, id string) (TaskResponse, error) {
	t, err := s.findOwned(ctx, employeeID, id)
	if err != nil {
		return TaskResponse{}, err
	}
	if t.Status != StatusInProgress {
		s.logger.Warn("pause task rejected", zap.String("task_id", id), zap.String("status", t.Status))
		return TaskResponse{}, taskerrors.ErrCannotPause
	}

	now := s.clock().UTC()
	t.closeSegment(now)
	t.PausedAt = &now
	t.Status = StatusPaused

	return s.transition(ctx, t, now, taskerrors.ErrCannotPause, StatusInProgress)
}

func (s *service) Complete(ctx context.Context, employeeID, id string) (TaskResponse, error) {
	t, err := s.findOwned(ctx, employeeID, id)
	if err != nil {
		return TaskResponse{}, err
	}
	if t.Status != StatusInProgress {
		s.logger.Warn("complete task rejected", zap.String("task_id", id), zap.String("status", t.Status))
		return TaskResponse{}, taskerrors.ErrCannotFinish
	}

	now := s.clock().UTC()
	t.closeSegment(now)
	rating := Rate(t.ActiveMinutes, t.EstimateMinutes, t.StartedAt != nil)
	t.Rating = &rating
	t.CompletedAt = &now
	t.Status = StatusCompleted

	return s.transition(ctx, t, now, taskerrors.ErrCannotFinish, StatusInProgress)
}

// findOwned loads a task the caller is assigned to. Tasks owned by someone
// else are reported as missing.
func (s *service) findOwned(ctx context.Context, employeeID, id string) (*Task, error) {
	owner, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, taskerrors.ErrInvalidEmployeeID
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if !t.IsAssignedTo(owner) {
		return nil, taskerrors.ErrTaskNotFound
	}
	return t, nil
}

func (s *service) transition(ctx context.Context, t *Task, now time.Time, lost error, from ...string) (TaskResponse, error) {
	t.UpdatedAt = now
	moved, err := s.repo.Transition(ctx, t, from...)
	if err != nil {
		s.logger.Error("task transition failed", zap.String("task_id", t.ID.String()), zap.String("status", t.Status), zap.Error(err))
		return TaskResponse{}, mapRepositoryError(err)
	}
	if !moved {
		return TaskResponse{}, lost
	}

	s.logger.Info("task transitioned",
		zap.String("task_id", t.ID.String()),
		zap.String("status", t.Status),
		zap.Int("active_minutes", t.ActiveMinutes),
	)
	return mapToResponse(*t), nil
}

func mapAll(rows []Task) []TaskResponse {
	out := make([]TaskResponse, len(rows))
	for i, t := range rows {
		out[i] = mapToResponse(t)
	}
	return out
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(time.RFC3339)
	return &v
}

func mapToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:              t.ID.String(),
		Title:           t.Title,
		Description:     t.Description,
		CreatedBy:       t.CreatedBy.String(),
		Status:          t.Status,
		EstimateMinutes: t.EstimateMinutes,
		ActiveMinutes:   t.ActiveMinutes,
		Rating:          t.Rating,
		ClaimedAt:       formatTime(t.ClaimedAt),
		StartedAt:       formatTime(t.StartedAt),
		PausedAt:        formatTime(t.PausedAt),
		CompletedAt:     formatTime(t.CompletedAt),
		CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t.AssignedTo != nil {
		v := t.AssignedTo.String()
		resp.AssignedTo = &v
	}
	return resp
}
