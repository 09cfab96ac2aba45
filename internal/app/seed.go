package app

import (
	"context"
	"errors"

	"go-hrms/internal/config"
	"go-hrms/internal/leavepolicy"
	leavepolicyerrors "go-hrms/internal/leavepolicy/errors"
	"go-hrms/internal/salarycomponent"
	salarycomponenterrors "go-hrms/internal/salarycomponent/errors"

	"go.uber.org/zap"
)

type policyCreator interface {
	Create(ctx context.Context, req leavepolicy.CreatePolicyRequest) (leavepolicy.PolicyResponse, error)
}

type componentCreator interface {
	Create(ctx context.Context, req salarycomponent.CreateComponentRequest) (salarycomponent.ComponentResponse, error)
}

func intPtr(v int) *int { return &v }

func defaultPolicies() []leavepolicy.CreatePolicyRequest {
	return []leavepolicy.CreatePolicyRequest{
		{LeaveType: "CL", Name: "Casual Leave", Category: leavepolicy.CategoryPaid, Renewal: leavepolicy.RenewalYearly, TotalDaysPerYear: intPtr(12)},
		{LeaveType: "EL", Name: "Earned Leave", Category: leavepolicy.CategoryPaid, Renewal: leavepolicy.RenewalYearly, TotalDaysPerYear: intPtr(21)},
		{LeaveType: "SL", Name: "Sick Leave", Category: leavepolicy.CategoryPaid, Renewal: leavepolicy.RenewalYearly, TotalDaysPerYear: intPtr(15)},
		{LeaveType: "LWP", Name: "Leave Without Pay", Category: leavepolicy.CategoryUnpaid},
	}
}

func defaultComponents() []salarycomponent.CreateComponentRequest {
	return []salarycomponent.CreateComponentRequest{
		{Name: "Basic Salary", Category: salarycomponent.CategoryEarning, ProRata: true, Taxable: true},
		{Name: "HRA", Category: salarycomponent.CategoryEarning, ProRata: true, Taxable: true, Description: "House rent allowance"},
		{Name: "Special Allowance", Category: salarycomponent.CategoryEarning, ProRata: true, Taxable: true},
		{Name: "Provident Fund", Category: salarycomponent.CategoryDeduction},
		{Name: "Professional Tax", Category: salarycomponent.CategoryDeduction},
	}
}

// Seed creates the default leave policies and salary components. Entries
// that already exist are left untouched, so it can run on every deploy.
func Seed(ctx context.Context, policies policyCreator, components componentCreator, logger *zap.Logger) error {
	log := logger.Named("seed")

	for _, req := range defaultPolicies() {
		_, err := policies.Create(ctx, req)
		switch {
		case errors.Is(err, leavepolicyerrors.ErrPolicyAlreadyExists):
			log.Debug("leave policy exists", zap.String("leave_type", req.LeaveType))
		case err != nil:
			return err
		default:
			log.Info("leave policy seeded", zap.String("leave_type", req.LeaveType))
		}
	}

	for _, req := range defaultComponents() {
		_, err := components.Create(ctx, req)
		switch {
		case errors.Is(err, salarycomponenterrors.ErrComponentNameExists):
			log.Debug("salary component exists", zap.String("name", req.Name))
		case err != nil:
			return err
		default:
			log.Info("salary component seeded", zap.String("name", req.Name))
		}
	}

	return nil
}

// RunSeed connects to the database and seeds reference data.
func RunSeed(ctx context.Context, cfg *config.Config) error {
	logger := zap.L().Named("app")

	gormDB, sqlDB, err := ConnectDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	m, err := buildModules(sqlDB, gormDB, nil, logger)
	if err != nil {
		return err
	}
	return Seed(ctx, m.leavePolicy, m.salaryComponent, logger)
}
