package leavepolicy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRepository_RoundTripsRules(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&policyRow{}))

	repo := NewRepository(db)
	ctx := context.Background()
	cap2 := 2

	for _, p := range []Policy{
		{LeaveType: "CL", Name: "Casual", Rule: PaidYearlyRule{TotalDaysPerYear: 12, MonthlyCap: &cap2}, IsActive: true},
		{LeaveType: "EL", Name: "Earned", Rule: PaidYearlyRule{TotalDaysPerYear: 15}, IsActive: false},
		{LeaveType: "ML", Name: "Monthly", Rule: PaidMonthlyRule{MonthlyGrant: 1}, IsActive: true},
		{LeaveType: "LWP", Name: "Unpaid", Rule: UnpaidRule{}, IsActive: true},
	} {
		p := p
		require.NoError(t, repo.Create(ctx, &p))
	}

	active, err := repo.ListActivePaidYearly(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "CL", active[0].LeaveType)
	assert.Equal(t, PaidYearlyRule{TotalDaysPerYear: 12, MonthlyCap: &cap2}, active[0].Rule)

	cl, err := repo.FindByType(ctx, "CL")
	require.NoError(t, err)
	cl.Rule = UnpaidRule{}
	require.NoError(t, repo.Update(ctx, cl))

	var row policyRow
	require.NoError(t, db.First(&row, "leave_type = ?", "CL").Error)
	assert.Equal(t, CategoryUnpaid, row.Category)
	assert.Nil(t, row.Renewal)
	assert.Nil(t, row.TotalDaysPerYear)
	assert.Nil(t, row.MonthlyCap)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	assert.ErrorIs(t, repo.Delete(ctx, "NOPE"), gorm.ErrRecordNotFound)
}
