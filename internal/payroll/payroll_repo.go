package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, p *Payslip) error
	FindByID(ctx context.Context, id string) (*Payslip, error)
	FindByPeriod(ctx context.Context, employeeID string, month, year int) (*Payslip, error)
	List(ctx context.Context, filter ListFilter) ([]Payslip, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time) (bool, error)
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

func orderedLines(db *gorm.DB) *gorm.DB {
	return db.Order("seq ASC")
}

// Upsert overwrites the payslip for (employee, month, year) and replaces its
// lines. p.ID ends up as the id of the stored row.
func (r *repository) Upsert(ctx context.Context, p *Payslip) error {
	db := r.db.WithContext(ctx)
	err := db.Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "month"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"gross_earnings", "total_deductions", "net_salary",
				"total_days", "present_days", "absent_days", "paid_leave_days",
				"unpaid_leave_days", "half_days", "holiday_days",
				"lop_days", "payable_days", "lop_details",
				"status", "generated_at", "paid_at", "updated_at",
			}),
		}).
		Create(p).Error
	if err != nil {
		return err
	}

	var stored Payslip
	err = db.Select("id", "created_at").
		First(&stored, "employee_id = ? AND month = ? AND year = ?", p.EmployeeID, p.Month, p.Year).Error
	if err != nil {
		return err
	}
	p.ID, p.CreatedAt = stored.ID, stored.CreatedAt

	if err := db.Where("payslip_id = ?", p.ID).Delete(&PayslipLine{}).Error; err != nil {
		return err
	}
	for i := range p.Lines {
		p.Lines[i].PayslipID = p.ID
	}
	if len(p.Lines) == 0 {
		return nil
	}
	return db.Create(&p.Lines).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		Preload("Lines", orderedLines).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByPeriod(ctx context.Context, employeeID string, month, year int) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		Preload("Lines", orderedLines).
		First(&p, "employee_id = ? AND month = ? AND year = ?", employeeID, month, year).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Payslip, error) {
	db := r.db.WithContext(ctx).Preload("Lines", orderedLines)
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Month != 0 {
		db = db.Where("month = ?", filter.Month)
	}
	if filter.Year != 0 {
		db = db.Where("year = ?", filter.Year)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var out []Payslip
	err := db.Order("year DESC").Order("month DESC").Order("employee_id ASC").Find(&out).Error
	return out, err
}

// MarkPaid flips a Generated payslip to Paid and reports whether a row moved.
func (r *repository) MarkPaid(ctx context.Context, id string, paidAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Payslip{}).
		Where("id = ? AND status = ?", id, StatusGenerated).
		Updates(map[string]interface{}{
			"status":     StatusPaid,
			"paid_at":    paidAt,
			"updated_at": paidAt,
		})
	return res.RowsAffected > 0, res.Error
}
