package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	leaveerrors "go-hrms/internal/leave/errors"
	leavebalanceerrors "go-hrms/internal/leavebalance/errors"
	"go-hrms/internal/leavepolicy"
	leavepolicyerrors "go-hrms/internal/leavepolicy/errors"
	"go-hrms/internal/shared/calendar"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PolicyFinder interface {
	Find(ctx context.Context, leaveType string) (leavepolicy.Policy, error)
}

// BalanceLedger is the part of the balance tracker a request touches.
type BalanceLedger interface {
	Available(ctx context.Context, employeeID, leaveType string, year int) (int, error)
	Deduct(ctx context.Context, tx *sql.Tx, employeeID, leaveType string, year, days int) error
}

type AttendanceMarker interface {
	MarkLeaveDays(ctx context.Context, tx *sql.Tx, employeeID, leaveRequestID uuid.UUID, days []time.Time) error
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, actorID, id string, req ActionRequest) (LeaveResponse, error)
	Reject(ctx context.Context, actorID, id string, req ActionRequest) (LeaveResponse, error)
	Get(ctx context.Context, id string) (LeaveResponse, error)
	List(ctx context.Context, filter ListFilter) ([]LeaveResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	policies   PolicyFinder
	balances   BalanceLedger
	attendance AttendanceMarker
	clock      calendar.Clock
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	policies PolicyFinder,
	balances BalanceLedger,
	attendance AttendanceMarker,
	clock calendar.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if clock == nil {
		clock = calendar.SystemClock
	}
	return &service{
		db:         db,
		repo:       repo,
		policies:   policies,
		balances:   balances,
		attendance: attendance,
		clock:      clock,
		logger:     l,
	}
}

func (s *service) Create(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("leave_type", req.LeaveType),
		zap.String("from_date", req.FromDate),
		zap.String("to_date", req.ToDate),
	)

	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	from, err := calendar.ParseDate(req.FromDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	to, err := calendar.ParseDate(req.ToDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}

	policy, err := s.policies.Find(ctx, req.LeaveType)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !policy.IsActive {
		return LeaveResponse{}, leavepolicyerrors.ErrPolicyNotFound
	}

	if from.Before(calendar.StartOfDayUTC(s.clock())) {
		return LeaveResponse{}, leaveerrors.ErrStartInPast
	}
	if to.Before(from) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	days := calendar.CountWorkingDays(from, to)
	if days <= 0 {
		return LeaveResponse{}, leaveerrors.ErrNoWorkingDays
	}

	if err := s.checkEntitlement(ctx, employeeID, policy, from, days); err != nil {
		s.logger.Warn("create leave entitlement rejected",
			zap.String("employee_id", employeeID),
			zap.String("leave_type", policy.LeaveType),
			zap.Int("days", days),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	overlap, err := s.repo.HasOverlappingPeriod(ctx, employeeID, from, to)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if overlap {
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	l := &Request{
		ID:         uuid.New(),
		EmployeeID: empID,
		LeaveType:  policy.LeaveType,
		Category:   policy.Rule.Category(),
		FromDate:   from,
		ToDate:     to,
		Days:       days,
		Reason:     req.Reason,
		Status:     StatusPending,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("category", l.Category),
		zap.Int("days", days),
	)
	return mapToResponse(*l), nil
}

// checkEntitlement applies the balance and monthly limits of paid policies.
func (s *service) checkEntitlement(ctx context.Context, employeeID string, policy leavepolicy.Policy, from time.Time, days int) error {
	year, month := from.Year(), int(from.Month())

	switch rule := policy.Rule.(type) {
	case leavepolicy.PaidYearlyRule:
		available, err := s.balances.Available(ctx, employeeID, policy.LeaveType, year)
		if errors.Is(err, leavebalanceerrors.ErrBalanceNotFound) {
			return leaveerrors.ErrNoBalance
		}
		if err != nil {
			return err
		}
		if available < days {
			return leaveerrors.ErrInsufficientBalance
		}
		if rule.MonthlyCap != nil {
			used, err := s.repo.SumApprovedDaysInMonth(ctx, employeeID, policy.LeaveType, year, month)
			if err != nil {
				return mapRepositoryError(err)
			}
			if used+days > *rule.MonthlyCap {
				return leaveerrors.ErrMonthlyCapExceeded
			}
		}
	case leavepolicy.PaidMonthlyRule:
		used, err := s.repo.SumApprovedDaysInMonth(ctx, employeeID, policy.LeaveType, year, month)
		if err != nil {
			return mapRepositoryError(err)
		}
		if used+days > rule.MonthlyGrant {
			return leaveerrors.ErrMonthlyGrantExceeded
		}
	}
	return nil
}

// Approve settles the request in one transaction: the annual balance is
// charged for paid yearly leave, every working day in the span is marked
// On Leave, and the status moves to Approved.
func (s *service) Approve(ctx context.Context, actorID, id string, req ActionRequest) (LeaveResponse, error) {
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("approve leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if !l.IsPending() {
		s.logger.Warn("approve leave not pending", zap.String("leave_id", id), zap.String("status", l.Status))
		return LeaveResponse{}, leaveerrors.ErrNotPending
	}

	if l.Category == leavepolicy.CategoryPaid {
		policy, err := s.policies.Find(ctx, l.LeaveType)
		if err != nil {
			return LeaveResponse{}, err
		}
		if policy.IsPaidYearly() {
			err := s.balances.Deduct(ctx, tx, l.EmployeeID.String(), l.LeaveType, l.FromDate.Year(), l.Days)
			if errors.Is(err, leavebalanceerrors.ErrInsufficientBalance) {
				return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
			}
			if errors.Is(err, leavebalanceerrors.ErrBalanceNotFound) {
				return LeaveResponse{}, leaveerrors.ErrNoBalance
			}
			if err != nil {
				s.logger.Error("approve leave deduct failed", zap.String("leave_id", id), zap.Error(err))
				return LeaveResponse{}, err
			}
		}
	}

	days := calendar.WorkingDays(l.FromDate, l.ToDate)
	if err := s.attendance.MarkLeaveDays(ctx, tx, l.EmployeeID, l.ID, days); err != nil {
		s.logger.Error("approve leave mark attendance failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.settle(l, StatusApproved, actor, req.Remarks)
	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("approve leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("approve leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave approved",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("leave_id", id),
		zap.String("employee_id", l.EmployeeID.String()),
		zap.String("acted_by", actorID),
		zap.Int("days", l.Days),
	)
	return mapToResponse(*l), nil
}

func (s *service) Reject(ctx context.Context, actorID, id string, req ActionRequest) (LeaveResponse, error) {
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if !l.IsPending() {
		return LeaveResponse{}, leaveerrors.ErrNotPending
	}

	s.settle(l, StatusRejected, actor, req.Remarks)
	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("reject leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave rejected",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("leave_id", id),
		zap.String("acted_by", actorID),
	)
	return mapToResponse(*l), nil
}

func (s *service) settle(l *Request, status string, actor uuid.UUID, remarks string) {
	now := s.clock().UTC()
	l.Status = status
	l.ActedBy = &actor
	l.ActedAt = &now
	l.Remarks = remarks
}

func (s *service) Get(ctx context.Context, id string) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*l), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]LeaveResponse, error) {
	if filter.Status != "" && !IsValidStatus(filter.Status) {
		return nil, leaveerrors.ErrInvalidStatus
	}
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	if employeeID == "" {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	return s.List(ctx, ListFilter{EmployeeID: employeeID})
}

func mapToResponse(l Request) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		Category:   l.Category,
		FromDate:   l.FromDate.Format(calendar.DateLayout),
		ToDate:     l.ToDate.Format(calendar.DateLayout),
		Days:       l.Days,
		Reason:     l.Reason,
		Status:     l.Status,
		Remarks:    l.Remarks,
		CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if l.ActedBy != nil {
		v := l.ActedBy.String()
		resp.ActedBy = &v
	}
	if l.ActedAt != nil {
		v := l.ActedAt.UTC().Format(time.RFC3339)
		resp.ActedAt = &v
	}
	return resp
}

func mapToListResponse(rows []Request) []LeaveResponse {
	out := make([]LeaveResponse, len(rows))
	for i, l := range rows {
		out[i] = mapToResponse(l)
	}
	return out
}
