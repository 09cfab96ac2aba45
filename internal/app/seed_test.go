package app

import (
	"context"
	"errors"
	"testing"

	"go-hrms/internal/leavepolicy"
	leavepolicyerrors "go-hrms/internal/leavepolicy/errors"
	leavepolicyMock "go-hrms/internal/leavepolicy/mock"
	"go-hrms/internal/salarycomponent"
	salarycomponenterrors "go-hrms/internal/salarycomponent/errors"
	salarycomponentMock "go-hrms/internal/salarycomponent/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestSeed_SkipsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	policies := leavepolicyMock.NewMockService(ctrl)
	components := salarycomponentMock.NewMockService(ctrl)
	ctx := context.Background()

	var seededTypes []string
	policies.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req leavepolicy.CreatePolicyRequest) (leavepolicy.PolicyResponse, error) {
			if req.LeaveType == "CL" {
				return leavepolicy.PolicyResponse{}, leavepolicyerrors.ErrPolicyAlreadyExists
			}
			seededTypes = append(seededTypes, req.LeaveType)
			return leavepolicy.PolicyResponse{}, nil
		}).Times(4)

	var seededNames []string
	components.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req salarycomponent.CreateComponentRequest) (salarycomponent.ComponentResponse, error) {
			if req.Name == "HRA" {
				return salarycomponent.ComponentResponse{}, salarycomponenterrors.ErrComponentNameExists
			}
			seededNames = append(seededNames, req.Name)
			return salarycomponent.ComponentResponse{}, nil
		}).Times(5)

	err := Seed(ctx, policies, components, zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, []string{"EL", "SL", "LWP"}, seededTypes)
	assert.Equal(t, []string{"Basic Salary", "Special Allowance", "Provident Fund", "Professional Tax"}, seededNames)
}

func TestSeed_StopsOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	policies := leavepolicyMock.NewMockService(ctrl)
	components := salarycomponentMock.NewMockService(ctrl)

	boom := errors.New("db down")
	policies.EXPECT().Create(gomock.Any(), gomock.Any()).Return(leavepolicy.PolicyResponse{}, boom)

	err := Seed(context.Background(), policies, components, zap.NewNop())

	assert.ErrorIs(t, err, boom)
}

func TestDefaultPolicies_OnlyLWPIsUnpaid(t *testing.T) {
	for _, p := range defaultPolicies() {
		if p.LeaveType == "LWP" {
			assert.Equal(t, leavepolicy.CategoryUnpaid, p.Category)
			assert.Nil(t, p.TotalDaysPerYear)
			continue
		}
		assert.Equal(t, leavepolicy.CategoryPaid, p.Category)
		assert.Equal(t, leavepolicy.RenewalYearly, p.Renewal)
		assert.NotNil(t, p.TotalDaysPerYear)
	}
}
