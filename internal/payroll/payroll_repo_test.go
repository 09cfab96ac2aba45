package payroll

import (
	"context"
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(&Payslip{}, &PayslipLine{}))
	return db, NewRepository(db)
}

func calcResult(lines ...Line) CalculationResult {
	res := CalculationResult{
		Lines:           lines,
		GrossEarnings:   decimal.Zero,
		TotalDeductions: decimal.Zero,
		Summary: AttendanceSummary{
			TotalDays:   30,
			LopDays:     decimal.Zero,
			PayableDays: decimal.NewFromInt(30),
		},
		LopDetails: []LopDetail{},
	}
	for _, l := range lines {
		switch l.Category {
		case LineEarning:
			res.GrossEarnings = res.GrossEarnings.Add(l.Amount)
		case LineDeduction:
			res.TotalDeductions = res.TotalDeductions.Add(l.Amount)
		}
	}
	res.NetSalary = res.GrossEarnings.Sub(res.TotalDeductions)
	return res
}

func TestRepository_UpsertRegeneratesInPlace(t *testing.T) {
	db, repo := setupRepo(t)
	ctx := context.Background()
	employeeID := uuid.New()
	first := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

	original := newPayslip(employeeID, 6, 2024, calcResult(
		Line{Name: "Basic Salary", Category: LineEarning, Amount: decimal.NewFromInt(30000)},
		Line{Name: "HRA", Category: LineEarning, Amount: decimal.NewFromInt(12000)},
		Line{Name: "Provident Fund", Category: LineDeduction, Amount: decimal.NewFromInt(3600)},
	), first)
	require.NoError(t, repo.Upsert(ctx, original))
	originalID := original.ID

	moved, err := repo.MarkPaid(ctx, originalID.String(), first.Add(time.Hour))
	require.NoError(t, err)
	require.True(t, moved)

	paid, err := repo.FindByID(ctx, originalID.String())
	require.NoError(t, err)
	require.Equal(t, StatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)

	regenerated := newPayslip(employeeID, 6, 2024, calcResult(
		Line{Name: "Basic Salary", Category: LineEarning, Amount: decimal.NewFromInt(28000)},
	), first.Add(24*time.Hour))
	require.NotEqual(t, originalID, regenerated.ID)
	require.NoError(t, repo.Upsert(ctx, regenerated))
	assert.Equal(t, originalID, regenerated.ID, "the stored id is kept")

	var count int64
	require.NoError(t, db.Model(&Payslip{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var lineRows int64
	require.NoError(t, db.Model(&PayslipLine{}).Count(&lineRows).Error)
	assert.Equal(t, int64(1), lineRows)

	got, err := repo.FindByPeriod(ctx, employeeID.String(), 6, 2024)
	require.NoError(t, err)
	assert.Equal(t, originalID, got.ID)
	assert.Equal(t, StatusGenerated, got.Status)
	assert.Nil(t, got.PaidAt)
	assert.Equal(t, "28000.00", got.NetSalary.StringFixed(2))
	assert.Equal(t, "0.00", got.TotalDeductions.StringFixed(2))
	require.Len(t, got.Lines, 1)
	assert.Equal(t, "Basic Salary", got.Lines[0].Name)
	assert.Equal(t, originalID, got.Lines[0].PayslipID)
}

func TestRepository_LinesComeBackInSeqOrder(t *testing.T) {
	_, repo := setupRepo(t)
	ctx := context.Background()

	p := newPayslip(uuid.New(), 2, 2024, calcResult(
		Line{Name: "Basic Salary", Category: LineEarning, Amount: decimal.NewFromInt(20000)},
		Line{Name: "Special Allowance", Category: LineEarning, Amount: decimal.NewFromInt(5000)},
		Line{Name: "Professional Tax", Category: LineDeduction, Amount: decimal.NewFromInt(200)},
	), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	// insert out of order; reads must follow seq
	p.Lines[0], p.Lines[2] = p.Lines[2], p.Lines[0]
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.FindByID(ctx, p.ID.String())
	require.NoError(t, err)
	require.Len(t, got.Lines, 3)
	for i, l := range got.Lines {
		assert.Equal(t, i+1, l.Seq)
	}
	assert.Equal(t, "Basic Salary", got.Lines[0].Name)
	assert.Equal(t, "Professional Tax", got.Lines[2].Name)
}

func TestRepository_MarkPaidOnlyFromGenerated(t *testing.T) {
	_, repo := setupRepo(t)
	ctx := context.Background()
	at := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	p := newPayslip(uuid.New(), 6, 2024, calcResult(
		Line{Name: "Basic Salary", Category: LineEarning, Amount: decimal.NewFromInt(1000)},
	), at)
	require.NoError(t, repo.Upsert(ctx, p))

	moved, err := repo.MarkPaid(ctx, p.ID.String(), at)
	require.NoError(t, err)
	assert.True(t, moved)

	moved, err = repo.MarkPaid(ctx, p.ID.String(), at)
	require.NoError(t, err)
	assert.False(t, moved)
}
