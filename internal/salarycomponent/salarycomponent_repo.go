package salarycomponent

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salarycomponent_repo.go -destination=mock/salarycomponent_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Component) error
	Update(ctx context.Context, c *Component) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Component, error)
	FindByIDs(ctx context.Context, ids []string) ([]Component, error)
	List(ctx context.Context) ([]Component, error)
	IsReferenced(ctx context.Context, id string) (bool, error)
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

func (r *repository) Create(ctx context.Context, c *Component) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) Update(ctx context.Context, c *Component) error {
	res := r.db.WithContext(ctx).
		Model(&Component{}).
		Where("id = ?", c.ID).
		Select("name", "category", "pro_rata", "taxable", "description", "updated_at").
		Updates(c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Component{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Component, error) {
	var c Component
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]Component, error) {
	var out []Component
	if len(ids) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error
	return out, err
}

func (r *repository) List(ctx context.Context) ([]Component, error) {
	var out []Component
	err := r.db.WithContext(ctx).
		Order("category ASC").
		Order("name ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) IsReferenced(ctx context.Context, id string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("salary_profile_components").
		Where("salary_component_id = ?", id).
		Count(&n).Error
	return n > 0, err
}
