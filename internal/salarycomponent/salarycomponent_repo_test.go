package salarycomponent

import (
	"context"
	"testing"

	salarycomponenterrors "go-hrms/internal/salarycomponent/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type profileComponentRow struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	SalaryComponentID uuid.UUID `gorm:"type:uuid"`
}

func (profileComponentRow) TableName() string { return "salary_profile_components" }

func setupRepo(t *testing.T) (*gorm.DB, Repository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&Component{}, &profileComponentRow{}))
	return db, NewRepository(db)
}

func TestRepository_UniqueNameAndReferences(t *testing.T) {
	db, repo := setupRepo(t)
	ctx := context.Background()

	basic := &Component{ID: uuid.New(), Name: "Basic Salary", Category: CategoryEarning, ProRata: true}
	require.NoError(t, repo.Create(ctx, basic))

	err := repo.Create(ctx, &Component{ID: uuid.New(), Name: "Basic Salary", Category: CategoryEarning})
	require.Error(t, err)
	assert.ErrorIs(t, mapRepositoryError(err), salarycomponenterrors.ErrComponentNameExists)

	used, err := repo.IsReferenced(ctx, basic.ID.String())
	require.NoError(t, err)
	assert.False(t, used)

	require.NoError(t, db.Create(&profileComponentRow{ID: uuid.New(), SalaryComponentID: basic.ID}).Error)
	used, err = repo.IsReferenced(ctx, basic.ID.String())
	require.NoError(t, err)
	assert.True(t, used)

	found, err := repo.FindByIDs(ctx, []string{basic.ID.String(), uuid.NewString()})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.True(t, found[0].ProRata)

	assert.ErrorIs(t, repo.Delete(ctx, uuid.NewString()), gorm.ErrRecordNotFound)
}
