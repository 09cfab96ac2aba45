package leavepolicy_test

import (
	"context"
	"testing"

	"go-hrms/internal/leavepolicy"
	leavepolicyerrors "go-hrms/internal/leavepolicy/errors"
	leavepolicyMock "go-hrms/internal/leavepolicy/mock"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (leavepolicy.Service, *leavepolicyMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := leavepolicyMock.NewMockRepository(ctrl)
	return leavepolicy.NewService(repo), repo
}

func TestService_Create(t *testing.T) {
	t.Run("normalizes code and defaults to active", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, p *leavepolicy.Policy) error {
			assert.Equal(t, "CL", p.LeaveType)
			assert.True(t, p.IsActive)
			assert.True(t, p.IsPaidYearly())
			return nil
		})

		resp, err := svc.Create(context.Background(), leavepolicy.CreatePolicyRequest{
			LeaveType:        "cl",
			Name:             "Casual Leave",
			Category:         leavepolicy.CategoryPaid,
			Renewal:          leavepolicy.RenewalYearly,
			TotalDaysPerYear: intPtr(12),
		})
		require.NoError(t, err)
		assert.Equal(t, "CL", resp.LeaveType)
		assert.Equal(t, 12, *resp.TotalDaysPerYear)
	})

	t.Run("invalid code never reaches the repository", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.Create(context.Background(), leavepolicy.CreatePolicyRequest{
			LeaveType: "C",
			Name:      "x",
			Category:  leavepolicy.CategoryUnpaid,
		})
		assert.ErrorIs(t, err, leavepolicyerrors.ErrInvalidLeaveType)
	})

	t.Run("duplicate code is a conflict", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "leave_policies_pkey"})

		_, err := svc.Create(context.Background(), leavepolicy.CreatePolicyRequest{
			LeaveType: "LWP",
			Name:      "Leave Without Pay",
			Category:  leavepolicy.CategoryUnpaid,
		})
		assert.ErrorIs(t, err, leavepolicyerrors.ErrPolicyAlreadyExists)
	})
}

func TestService_Update_SwitchToUnpaidClearsFields(t *testing.T) {
	svc, repo := setupService(t)
	repo.EXPECT().FindByType(gomock.Any(), "CL").Return(&leavepolicy.Policy{
		LeaveType: "CL",
		Name:      "Casual Leave",
		Rule:      leavepolicy.PaidYearlyRule{TotalDaysPerYear: 12, MonthlyCap: intPtr(2)},
		IsActive:  true,
	}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, p *leavepolicy.Policy) error {
		assert.Equal(t, leavepolicy.UnpaidRule{}, p.Rule)
		return nil
	})

	resp, err := svc.Update(context.Background(), "cl", leavepolicy.UpdatePolicyRequest{
		Name:             "Casual Leave",
		Category:         leavepolicy.CategoryUnpaid,
		TotalDaysPerYear: intPtr(12),
	})
	require.NoError(t, err)
	assert.Equal(t, leavepolicy.CategoryUnpaid, resp.Category)
	assert.Empty(t, resp.Renewal)
	assert.Nil(t, resp.TotalDaysPerYear)
	assert.Nil(t, resp.MonthlyCap)
	assert.True(t, resp.IsActive)
}

func TestService_Delete(t *testing.T) {
	t.Run("in use", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().Delete(gomock.Any(), "CL").Return(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, svc.Delete(context.Background(), "CL"), leavepolicyerrors.ErrPolicyInUse)
	})

	t.Run("missing", func(t *testing.T) {
		svc, repo := setupService(t)
		repo.EXPECT().Delete(gomock.Any(), "XX").Return(gorm.ErrRecordNotFound)
		assert.ErrorIs(t, svc.Delete(context.Background(), "xx"), leavepolicyerrors.ErrPolicyNotFound)
	})
}

func TestService_ActivePaidYearly(t *testing.T) {
	svc, repo := setupService(t)
	want := []leavepolicy.Policy{{LeaveType: "EL", Rule: leavepolicy.PaidYearlyRule{TotalDaysPerYear: 15}, IsActive: true}}
	repo.EXPECT().ListActivePaidYearly(gomock.Any()).Return(want, nil)

	got, err := svc.ActivePaidYearly(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
