package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/config"
	"go-hrms/internal/leavebalance"
	leavebalanceMock "go-hrms/internal/leavebalance/mock"
	"go-hrms/internal/payroll"
	payrollMock "go-hrms/internal/payroll/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNewScheduler_RunsJobsForClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	balances := leavebalanceMock.NewMockService(ctrl)
	runner := payrollMock.NewMockService(ctrl)
	ctx := context.Background()
	clock := func() time.Time { return time.Date(2025, 1, 1, 0, 5, 0, 0, time.UTC) }

	balances.EXPECT().ResetForYear(ctx, 2025).Return(leavebalance.ResetResult{Year: 2025, Employees: 3, Rows: 9}, nil)
	runner.EXPECT().
		GenerateBulk(ctx, payroll.PeriodRequest{Month: 12, Year: 2024}).
		Return(payroll.BulkResult{Month: 12, Year: 2024}, nil)

	c, err := newScheduler(ctx, config.PayrollConfig{
		LeaveResetCron: "0 0 1 1 *",
		BulkRunCron:    "0 2 1 * *",
	}, balances, runner, clock, zap.NewNop())
	require.NoError(t, err)

	entries := c.Entries()
	require.Len(t, entries, 2)
	for _, e := range entries {
		e.Job.Run()
	}
}

func TestNewScheduler_JobErrorIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	balances := leavebalanceMock.NewMockService(ctrl)
	runner := payrollMock.NewMockService(ctrl)
	ctx := context.Background()
	clock := func() time.Time { return time.Date(2024, 7, 1, 2, 0, 0, 0, time.UTC) }

	runner.EXPECT().GenerateBulk(ctx, payroll.PeriodRequest{Month: 6, Year: 2024}).Return(payroll.BulkResult{}, errors.New("db down"))
	balances.EXPECT().ResetForYear(ctx, 2024).Return(leavebalance.ResetResult{}, errors.New("db down"))

	c, err := newScheduler(ctx, config.PayrollConfig{
		LeaveResetCron: "0 0 1 1 *",
		BulkRunCron:    "0 2 1 * *",
	}, balances, runner, clock, zap.NewNop())
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		for _, e := range c.Entries() {
			e.Job.Run()
		}
	})
}

func TestNewScheduler_InvalidSpec(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := newScheduler(context.Background(), config.PayrollConfig{
		LeaveResetCron: "not a cron",
		BulkRunCron:    "0 2 1 * *",
	}, leavebalanceMock.NewMockService(ctrl), payrollMock.NewMockService(ctrl), time.Now, zap.NewNop())

	assert.Error(t, err)
}
