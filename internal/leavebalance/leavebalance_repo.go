package leavebalance

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leavebalance_repo.go -destination=mock/leavebalance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Find(ctx context.Context, employeeID, leaveType string, year int) (*Balance, error)
	FindForEmployeeYear(ctx context.Context, employeeID string, year int) ([]Balance, error)
	ListForYear(ctx context.Context, year int) ([]Balance, error)
	InsertMissing(ctx context.Context, rows []Balance) error
	Upsert(ctx context.Context, b *Balance) error
	DeleteYear(ctx context.Context, year int) (int64, error)
	IncrementUsed(ctx context.Context, employeeID, leaveType string, year, days int) (int64, error)
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

func (r *repository) Find(ctx context.Context, employeeID, leaveType string, year int) (*Balance, error) {
	var b Balance
	err := r.db.WithContext(ctx).
		Scopes(scope.ByEmployee(employeeID), scope.ByYear(year)).
		Where("leave_type = ?", leaveType).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) FindForEmployeeYear(ctx context.Context, employeeID string, year int) ([]Balance, error) {
	var out []Balance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Scopes(scope.ByYear(year)).
		Order("leave_type ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) ListForYear(ctx context.Context, year int) ([]Balance, error) {
	var out []Balance
	err := r.db.WithContext(ctx).
		Scopes(scope.ByYear(year)).
		Order("employee_id ASC, leave_type ASC").
		Find(&out).Error
	return out, err
}

// InsertMissing inserts rows, skipping any (employee, type, year) that
// already exists.
func (r *repository) InsertMissing(ctx context.Context, rows []Balance) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "leave_type"}, {Name: "year"}},
			DoNothing: true,
		}).
		CreateInBatches(&rows, 500).Error
}

func (r *repository) Upsert(ctx context.Context, b *Balance) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "leave_type"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{"total", "used", "updated_at"}),
		}).
		Create(b).Error
}

func (r *repository) DeleteYear(ctx context.Context, year int) (int64, error) {
	res := r.db.WithContext(ctx).Scopes(scope.ByYear(year)).Delete(&Balance{})
	return res.RowsAffected, res.Error
}

// IncrementUsed adds days to used in a single statement. Storage rejects
// the row when used would exceed total.
func (r *repository) IncrementUsed(ctx context.Context, employeeID, leaveType string, year, days int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Balance{}).
		Where("employee_id = ? AND leave_type = ? AND year = ?", employeeID, leaveType, year).
		Updates(map[string]any{
			"used":       gorm.Expr("used + ?", days),
			"updated_at": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}
