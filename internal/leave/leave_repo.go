package leave

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Request) error
	FindByID(ctx context.Context, id string) (*Request, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Request, error)
	Update(ctx context.Context, r *Request) error
	List(ctx context.Context, filter ListFilter) ([]Request, error)
	SumApprovedDaysInMonth(ctx context.Context, employeeID, leaveType string, year, month int) (int, error)
	HasOverlappingPeriod(ctx context.Context, employeeID string, from, to time.Time) (bool, error)
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

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Request, error) {
	var req Request
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) Update(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Request, error) {
	q := r.db.WithContext(ctx).Scopes(scope.ByEmployee(filter.EmployeeID))
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.LeaveType != "" {
		q = q.Where("leave_type = ?", filter.LeaveType)
	}
	if filter.From != nil {
		q = q.Where("to_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("from_date <= ?", *filter.To)
	}

	var out []Request
	err := q.Order("from_date DESC, created_at DESC").Find(&out).Error
	return out, err
}

// SumApprovedDaysInMonth totals approved days of requests starting in the month.
func (r *repository) SumApprovedDaysInMonth(ctx context.Context, employeeID, leaveType string, year, month int) (int, error) {
	var total sql.NullInt64
	err := r.db.WithContext(ctx).
		Model(&Request{}).
		Select("SUM(days)").
		Scopes(scope.ByEmployee(employeeID), scope.InMonth("from_date", year, month)).
		Where("leave_type = ? AND status = ?", leaveType, StatusApproved).
		Scan(&total).Error
	return int(total.Int64), err
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID string, from, to time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Request{}).
		Scopes(scope.ByEmployee(employeeID)).
		Where("status <> ?", StatusRejected).
		Where("NOT (to_date < ? OR from_date > ?)", from, to).
		Count(&count).Error
	return count > 0, err
}
