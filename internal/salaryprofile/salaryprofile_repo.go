package salaryprofile

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=salaryprofile_repo.go -destination=mock/salaryprofile_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, p *Profile) error
	ReplaceComponents(ctx context.Context, profileID string, components []AssignedComponent) error
	FindHydratedByEmployee(ctx context.Context, employeeID string) ([]HydratedComponent, error)
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

// Upsert keeps one profile row per employee and loads the surviving id into p.
func (r *repository) Upsert(ctx context.Context, p *Profile) error {
	now := time.Now().UTC()
	p.UpdatedAt = now
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"updated_at": now}),
		}).
		Create(p).Error
	if err != nil {
		return err
	}

	var stored Profile
	if err := r.db.WithContext(ctx).Select("id", "created_at").First(&stored, "employee_id = ?", p.EmployeeID).Error; err != nil {
		return err
	}
	p.ID, p.CreatedAt = stored.ID, stored.CreatedAt
	return nil
}

func (r *repository) ReplaceComponents(ctx context.Context, profileID string, components []AssignedComponent) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("salary_profile_id = ?", profileID).Delete(&AssignedComponent{}).Error; err != nil {
		return err
	}
	if len(components) == 0 {
		return nil
	}
	return db.Create(&components).Error
}

type hydratedRow struct {
	AssignedComponent
	Name     string
	Category string
	ProRata  bool
}

func (r *repository) FindHydratedByEmployee(ctx context.Context, employeeID string) ([]HydratedComponent, error) {
	var rows []hydratedRow
	err := r.db.WithContext(ctx).
		Table("salary_profile_components AS spc").
		Select("spc.*, sc.name, sc.category, sc.pro_rata").
		Joins("JOIN salary_profiles sp ON sp.id = spc.salary_profile_id").
		Joins("JOIN salary_components sc ON sc.id = spc.salary_component_id").
		Where("sp.employee_id = ?", employeeID).
		Order("spc.position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]HydratedComponent, len(rows))
	for i, row := range rows {
		out[i] = HydratedComponent{
			SalaryComponentID: row.SalaryComponentID,
			Name:              row.Name,
			Category:          row.Category,
			ProRata:           row.ProRata,
			CalculationType:   row.CalculationType,
			Value:             row.Value,
			PercentageOf:      row.PercentageOf,
		}
	}
	return out, nil
}
