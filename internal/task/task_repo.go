package task

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Task) error
	FindByID(ctx context.Context, id string) (*Task, error)
	List(ctx context.Context) ([]Task, error)
	ListOpen(ctx context.Context) ([]Task, error)
	ListByAssignee(ctx context.Context, employeeID string) ([]Task, error)
	Transition(ctx context.Context, t *Task, from ...string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Task, error) {
	var t Task
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) List(ctx context.Context) ([]Task, error) {
	var out []Task
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *repository) ListOpen(ctx context.Context) ([]Task, error) {
	var out []Task
	err := r.db.WithContext(ctx).
		Where("status = ? AND assigned_to IS NULL", StatusOpen).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) ListByAssignee(ctx context.Context, employeeID string) ([]Task, error) {
	var out []Task
	err := r.db.WithContext(ctx).
		Where("assigned_to = ?", employeeID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// Transition writes the mutable columns of t only while the stored status is
// one of from. It reports false when another writer moved the task first.
func (r *repository) Transition(ctx context.Context, t *Task, from ...string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Task{}).
		Where("id = ? AND status IN ?", t.ID, from).
		Select(
			"status", "assigned_to", "estimate_minutes", "active_minutes", "rating",
			"claimed_at", "started_at", "resumed_at", "paused_at", "completed_at", "updated_at",
		).
		Updates(t)
	return res.RowsAffected > 0, res.Error
}
