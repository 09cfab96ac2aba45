package leavepolicy

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leavepolicy_repo.go -destination=mock/leavepolicy_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Policy) error
	Update(ctx context.Context, p *Policy) error
	Delete(ctx context.Context, leaveType string) error
	FindByType(ctx context.Context, leaveType string) (*Policy, error)
	List(ctx context.Context) ([]Policy, error)
	ListActivePaidYearly(ctx context.Context) ([]Policy, error)
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

func (r *repository) Create(ctx context.Context, p *Policy) error {
	row := toRow(*p)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	p.CreatedAt, p.UpdatedAt = row.CreatedAt, row.UpdatedAt
	return nil
}

// Update writes every column so a category switch nulls the old variant's fields.
func (r *repository) Update(ctx context.Context, p *Policy) error {
	row := toRow(*p)
	res := r.db.WithContext(ctx).
		Model(&policyRow{}).
		Where("leave_type = ?", p.LeaveType).
		Select("name", "description", "category", "renewal", "total_days_per_year",
			"monthly_cap", "monthly_grant", "is_active", "updated_at").
		Updates(&row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	p.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *repository) Delete(ctx context.Context, leaveType string) error {
	res := r.db.WithContext(ctx).Delete(&policyRow{}, "leave_type = ?", leaveType)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindByType(ctx context.Context, leaveType string) (*Policy, error) {
	var row policyRow
	if err := r.db.WithContext(ctx).First(&row, "leave_type = ?", leaveType).Error; err != nil {
		return nil, err
	}
	p, err := fromRow(row)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context) ([]Policy, error) {
	var rows []policyRow
	if err := r.db.WithContext(ctx).Order("leave_type ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return fromRows(rows)
}

func (r *repository) ListActivePaidYearly(ctx context.Context) ([]Policy, error) {
	var rows []policyRow
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND category = ? AND renewal = ?", true, CategoryPaid, RenewalYearly).
		Order("leave_type ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return fromRows(rows)
}

func fromRows(rows []policyRow) ([]Policy, error) {
	out := make([]Policy, 0, len(rows))
	for _, row := range rows {
		p, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
