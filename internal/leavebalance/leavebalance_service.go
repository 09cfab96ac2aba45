package leavebalance

import (
	"context"
	"database/sql"

	"go-hrms/internal/employee"
	leavebalanceerrors "go-hrms/internal/leavebalance/errors"
	"go-hrms/internal/leavepolicy"
	"go-hrms/internal/shared/calendar"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PolicySource is the slice of the policy registry the tracker reads.
type PolicySource interface {
	Find(ctx context.Context, leaveType string) (leavepolicy.Policy, error)
	ActivePaidYearly(ctx context.Context) ([]leavepolicy.Policy, error)
}

type ActiveEmployees interface {
	ListActive(ctx context.Context) ([]employee.Employee, error)
}

//go:generate mockgen -source=leavebalance_service.go -destination=mock/leavebalance_service_mock.go -package=mock
type Service interface {
	GetBalance(ctx context.Context, employeeID string, year int) ([]BalanceResponse, error)
	UpdateBalance(ctx context.Context, req UpdateBalanceRequest) (BalanceResponse, error)
	ResetForYear(ctx context.Context, year int) (ResetResult, error)
	ListForYear(ctx context.Context, year int) ([]BalanceResponse, error)
	Deduct(ctx context.Context, tx *sql.Tx, employeeID, leaveType string, year, days int) error
	Available(ctx context.Context, employeeID, leaveType string, year int) (int, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	policies  PolicySource
	employees ActiveEmployees
	clock     calendar.Clock
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	policies PolicySource,
	employees ActiveEmployees,
	clock calendar.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leavebalance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.service")
	}
	if clock == nil {
		clock = calendar.SystemClock
	}
	return &service{
		db:        db,
		repo:      repo,
		policies:  policies,
		employees: employees,
		clock:     clock,
		logger:    l,
	}
}

func (s *service) resolveYear(year int) (int, error) {
	if year == 0 {
		return s.clock().UTC().Year(), nil
	}
	if !calendar.ValidYear(year) {
		return 0, leavebalanceerrors.ErrInvalidYear
	}
	return year, nil
}

// GetBalance returns every paid yearly balance for the employee and year,
// creating the rows that active policies imply but storage lacks.
func (s *service) GetBalance(ctx context.Context, employeeID string, year int) ([]BalanceResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, leavebalanceerrors.ErrInvalidEmployeeID
	}
	year, err = s.resolveYear(year)
	if err != nil {
		return nil, err
	}

	policies, err := s.policies.ActivePaidYearly(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindForEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	have := make(map[string]struct{}, len(existing))
	for _, b := range existing {
		have[b.LeaveType] = struct{}{}
	}

	var missing []Balance
	for _, p := range policies {
		if _, ok := have[p.LeaveType]; ok {
			continue
		}
		rule := p.Rule.(leavepolicy.PaidYearlyRule)
		missing = append(missing, Balance{
			ID:         uuid.New(),
			EmployeeID: empID,
			LeaveType:  p.LeaveType,
			Year:       year,
			Total:      rule.TotalDaysPerYear,
		})
	}

	if len(missing) == 0 {
		return mapToListResponse(existing), nil
	}

	if err := s.repo.InsertMissing(ctx, missing); err != nil {
		s.logger.Error("self-heal leave balances failed",
			zap.String("employee_id", employeeID),
			zap.Int("year", year),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}
	s.logger.Info("leave balances synthesized",
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
		zap.Int("rows", len(missing)),
	)

	all, err := s.repo.FindForEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(all), nil
}

func (s *service) UpdateBalance(ctx context.Context, req UpdateBalanceRequest) (BalanceResponse, error) {
	empID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidEmployeeID
	}
	if !calendar.ValidYear(req.Year) {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidYear
	}
	if req.Used == nil || req.Total == nil || *req.Used < 0 || *req.Total < 0 || *req.Used > *req.Total {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidAmounts
	}

	policy, err := s.policies.Find(ctx, req.LeaveType)
	if err != nil {
		return BalanceResponse{}, err
	}
	if !policy.IsPaidYearly() {
		return BalanceResponse{}, leavebalanceerrors.ErrNotPaidYearly
	}

	b := &Balance{
		ID:         uuid.New(),
		EmployeeID: empID,
		LeaveType:  policy.LeaveType,
		Year:       req.Year,
		Total:      *req.Total,
		Used:       *req.Used,
	}
	if err := s.repo.Upsert(ctx, b); err != nil {
		s.logger.Error("update leave balance failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return BalanceResponse{}, mapRepositoryError(err)
	}

	stored, err := s.repo.Find(ctx, req.EmployeeID, policy.LeaveType, req.Year)
	if err != nil {
		return BalanceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("leave balance updated",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", policy.LeaveType),
		zap.Int("year", req.Year),
		zap.Int("used", stored.Used),
		zap.Int("total", stored.Total),
	)
	return mapToResponse(*stored), nil
}

// ResetForYear rebuilds the year's balances from scratch: one row per
// active employee and active paid yearly policy, nothing used.
func (s *service) ResetForYear(ctx context.Context, year int) (ResetResult, error) {
	if !calendar.ValidYear(year) {
		return ResetResult{}, leavebalanceerrors.ErrInvalidYear
	}

	employees, err := s.employees.ListActive(ctx)
	if err != nil {
		return ResetResult{}, err
	}
	policies, err := s.policies.ActivePaidYearly(ctx)
	if err != nil {
		return ResetResult{}, err
	}

	rows := make([]Balance, 0, len(employees)*len(policies))
	for _, e := range employees {
		for _, p := range policies {
			rule := p.Rule.(leavepolicy.PaidYearlyRule)
			rows = append(rows, Balance{
				ID:         uuid.New(),
				EmployeeID: e.ID,
				LeaveType:  p.LeaveType,
				Year:       year,
				Total:      rule.TotalDaysPerYear,
			})
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ResetResult{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)
	deleted, err := repo.DeleteYear(ctx, year)
	if err != nil {
		s.logger.Error("reset leave balances delete failed", zap.Int("year", year), zap.Error(err))
		return ResetResult{}, mapRepositoryError(err)
	}
	if err := repo.InsertMissing(ctx, rows); err != nil {
		s.logger.Error("reset leave balances insert failed", zap.Int("year", year), zap.Error(err))
		return ResetResult{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return ResetResult{}, err
	}

	res := ResetResult{Year: year, Deleted: deleted, Employees: len(employees), Rows: len(rows)}
	s.logger.Info("leave balances reset",
		zap.Int("year", year),
		zap.Int64("deleted", deleted),
		zap.Int("employees", res.Employees),
		zap.Int("rows", res.Rows),
	)
	return res, nil
}

func (s *service) ListForYear(ctx context.Context, year int) ([]BalanceResponse, error) {
	year, err := s.resolveYear(year)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListForYear(ctx, year)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

// Deduct consumes days inside the caller's transaction. On any error the
// caller must roll back.
func (s *service) Deduct(ctx context.Context, tx *sql.Tx, employeeID, leaveType string, year, days int) error {
	if days <= 0 {
		return leavebalanceerrors.ErrInvalidDays
	}

	repo := s.repo.WithTx(tx)
	affected, err := repo.IncrementUsed(ctx, employeeID, leaveType, year, days)
	if err != nil {
		s.logger.Warn("leave balance deduct rejected",
			zap.String("employee_id", employeeID),
			zap.String("leave_type", leaveType),
			zap.Int("days", days),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return leavebalanceerrors.ErrBalanceNotFound
	}

	b, err := repo.Find(ctx, employeeID, leaveType, year)
	if err != nil {
		return mapRepositoryError(err)
	}
	if b.Used > b.Total {
		return leavebalanceerrors.ErrInsufficientBalance
	}

	s.logger.Debug("leave balance deducted",
		zap.String("employee_id", employeeID),
		zap.String("leave_type", leaveType),
		zap.Int("year", year),
		zap.Int("days", days),
		zap.Int("remaining", b.Available()),
	)
	return nil
}

// Available reports total minus used for an existing row.
func (s *service) Available(ctx context.Context, employeeID, leaveType string, year int) (int, error) {
	b, err := s.repo.Find(ctx, employeeID, leaveType, year)
	if err != nil {
		return 0, mapRepositoryError(err)
	}
	return b.Available(), nil
}

func mapToResponse(b Balance) BalanceResponse {
	return BalanceResponse{
		ID:         b.ID.String(),
		EmployeeID: b.EmployeeID.String(),
		LeaveType:  b.LeaveType,
		Year:       b.Year,
		Total:      b.Total,
		Used:       b.Used,
		Available:  b.Available(),
	}
}

func mapToListResponse(rows []Balance) []BalanceResponse {
	out := make([]BalanceResponse, len(rows))
	for i, b := range rows {
		out[i] = mapToResponse(b)
	}
	return out
}
