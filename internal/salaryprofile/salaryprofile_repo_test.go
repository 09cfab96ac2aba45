package salaryprofile

import (
	"context"
	"testing"

	"go-hrms/internal/salarycomponent"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepo(t *testing.T) (*gorm.DB, Repository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&salarycomponent.Component{}, &Profile{}, &AssignedComponent{}))
	return db, NewRepository(db)
}

func TestRepository_UpsertReplacesComponents(t *testing.T) {
	db, repo := setupRepo(t)
	ctx := context.Background()

	basic := salarycomponent.Component{ID: uuid.New(), Name: "Basic Salary", Category: "Earning", ProRata: true}
	hra := salarycomponent.Component{ID: uuid.New(), Name: "HRA", Category: "Earning"}
	require.NoError(t, db.Create(&basic).Error)
	require.NoError(t, db.Create(&hra).Error)

	employeeID := uuid.New()
	first := &Profile{ID: uuid.New(), EmployeeID: employeeID}
	require.NoError(t, repo.Upsert(ctx, first))
	require.NoError(t, repo.ReplaceComponents(ctx, first.ID.String(), []AssignedComponent{
		{ID: uuid.New(), SalaryProfileID: first.ID, SalaryComponentID: basic.ID, Position: 0, CalculationType: CalculationFixed, Value: decimal.NewFromInt(30000), PercentageOf: []uuid.UUID{}},
	}))

	second := &Profile{ID: uuid.New(), EmployeeID: employeeID}
	require.NoError(t, repo.Upsert(ctx, second))
	assert.Equal(t, first.ID, second.ID)

	require.NoError(t, repo.ReplaceComponents(ctx, second.ID.String(), []AssignedComponent{
		{ID: uuid.New(), SalaryProfileID: second.ID, SalaryComponentID: hra.ID, Position: 1, CalculationType: CalculationPercentage, Value: decimal.NewFromInt(40), PercentageOf: []uuid.UUID{basic.ID}},
		{ID: uuid.New(), SalaryProfileID: second.ID, SalaryComponentID: basic.ID, Position: 0, CalculationType: CalculationFixed, Value: decimal.RequireFromString("31000.50"), PercentageOf: []uuid.UUID{}},
	}))

	var profiles int64
	require.NoError(t, db.Model(&Profile{}).Count(&profiles).Error)
	assert.EqualValues(t, 1, profiles)

	hydrated, err := repo.FindHydratedByEmployee(ctx, employeeID.String())
	require.NoError(t, err)
	require.Len(t, hydrated, 2)
	assert.Equal(t, "Basic Salary", hydrated[0].Name)
	assert.True(t, hydrated[0].ProRata)
	assert.True(t, decimal.RequireFromString("31000.50").Equal(hydrated[0].Value))
	assert.Equal(t, "HRA", hydrated[1].Name)
	assert.Equal(t, []uuid.UUID{basic.ID}, hydrated[1].PercentageOf)

	none, err := repo.FindHydratedByEmployee(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, none)
}
