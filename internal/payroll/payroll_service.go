package payroll

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-hrms/internal/attendance"
	"go-hrms/internal/employee"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/salaryprofile"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/calendar"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProfileSource interface {
	Hydrated(ctx context.Context, employeeID string) ([]salaryprofile.HydratedComponent, error)
}

type AttendanceSource interface {
	MonthRecords(ctx context.Context, employeeID string, year, month int) ([]attendance.DayRecord, error)
}

type EmployeeDirectory interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
	ListActive(ctx context.Context) ([]employee.Employee, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (PayslipResponse, error)
	GenerateBulk(ctx context.Context, req PeriodRequest) (BulkResult, error)
	RequestBulkRun(ctx context.Context, actorID string, req PeriodRequest) (RunRequestedResponse, error)
	Preview(ctx context.Context, employeeID string, month, year int) (PayslipResponse, error)
	Get(ctx context.Context, id string) (PayslipResponse, error)
	GetForPeriod(ctx context.Context, employeeID string, month, year int) (PayslipResponse, error)
	List(ctx context.Context, filter ListFilter) ([]PayslipResponse, error)
	MarkPaid(ctx context.Context, id string) (PayslipResponse, error)
	Download(ctx context.Context, id string) (PayslipDocument, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	profiles   ProfileSource
	attendance AttendanceSource
	employees  EmployeeDirectory
	outbox     kafka.OutboxRepository
	clock      calendar.Clock
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	profiles ProfileSource,
	attendanceSource AttendanceSource,
	employees EmployeeDirectory,
	outbox kafka.OutboxRepository,
	clock calendar.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if clock == nil {
		clock = calendar.SystemClock
	}
	return &service{
		db:         db,
		repo:       repo,
		profiles:   profiles,
		attendance: attendanceSource,
		employees:  employees,
		outbox:     outbox,
		clock:      clock,
		logger:     l,
	}
}

func validatePeriod(month, year int) error {
	if !calendar.ValidMonth(month) {
		return payrollerrors.ErrInvalidMonth
	}
	if !calendar.ValidYear(year) {
		return payrollerrors.ErrInvalidYear
	}
	return nil
}

func (s *service) findEmployee(ctx context.Context, employeeID string) (*employee.Employee, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, payrollerrors.ErrInvalidEmployeeID
	}
	emp, err := s.employees.FindByID(ctx, employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, payrollerrors.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return emp, nil
}

// calculate fetches the profile and the month's attendance and runs the engine.
func (s *service) calculate(ctx context.Context, employeeID string, month, year int) (CalculationResult, error) {
	components, err := s.profiles.Hydrated(ctx, employeeID)
	if err != nil {
		return CalculationResult{}, err
	}
	if len(components) == 0 {
		return CalculationResult{}, payrollerrors.ErrSalaryProfileMissing
	}

	records, err := s.attendance.MonthRecords(ctx, employeeID, year, month)
	if err != nil {
		return CalculationResult{}, err
	}

	in := CalculationInput{
		Year:       year,
		Month:      month,
		Components: make([]ResolvedComponent, len(components)),
		Attendance: make([]AttendanceDay, len(records)),
	}
	for i, c := range components {
		in.Components[i] = ResolvedComponent{
			ID:              c.SalaryComponentID,
			Name:            c.Name,
			Category:        c.Category,
			ProRata:         c.ProRata,
			CalculationType: c.CalculationType,
			Value:           c.Value,
			PercentageOf:    c.PercentageOf,
		}
	}
	for i, r := range records {
		in.Attendance[i] = AttendanceDay{Date: r.Date, Status: r.Status, LeaveCategory: r.LeaveCategory}
	}

	return Calculate(in)
}

func (s *service) Generate(ctx context.Context, req GenerateRequest) (PayslipResponse, error) {
	if err := validatePeriod(req.Month, req.Year); err != nil {
		return PayslipResponse{}, err
	}
	emp, err := s.findEmployee(ctx, req.EmployeeID)
	if err != nil {
		return PayslipResponse{}, err
	}
	p, err := s.generate(ctx, emp.ID, req.Month, req.Year)
	if err != nil {
		return PayslipResponse{}, err
	}
	return mapToResponse(*p), nil
}

// generate calculates and persists one payslip together with its
// payslip_generated outbox event.
func (s *service) generate(ctx context.Context, employeeID uuid.UUID, month, year int) (*Payslip, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate payslip requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID.String()),
		zap.Int("month", month),
		zap.Int("year", year),
	)

	res, err := s.calculate(ctx, employeeID.String(), month, year)
	if err != nil {
		s.logger.Warn("generate payslip calculation failed",
			zap.String("employee_id", employeeID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	payslip := newPayslip(employeeID, month, year, res, s.clock().UTC())

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("generate payslip begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Upsert(ctx, payslip); err != nil {
		s.logger.Error("generate payslip persist failed", zap.String("employee_id", employeeID.String()), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(ctx, "payslip", payslip.ID.String(),
			events.EventPayslipGenerated, events.PayslipGeneratedTopic,
			events.PayslipGeneratedEvent{
				EventType:  events.EventPayslipGenerated,
				RequestID:  rid,
				PayslipID:  payslip.ID.String(),
				EmployeeID: employeeID.String(),
				Month:      month,
				Year:       year,
				NetSalary:  payslip.NetSalary.StringFixed(2),
				OccurredAt: payslip.GeneratedAt,
			})
		if err != nil {
			return nil, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			s.logger.Error("generate payslip outbox persist failed", zap.String("payslip_id", payslip.ID.String()), zap.Error(err))
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("generate payslip commit failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("payslip generated",
		zap.String("request_id", rid),
		zap.String("payslip_id", payslip.ID.String()),
		zap.String("employee_id", employeeID.String()),
		zap.Int("month", month),
		zap.Int("year", year),
		zap.String("net_salary", payslip.NetSalary.StringFixed(2)),
	)
	return payslip, nil
}

// GenerateBulk walks every active employee in turn. Errors that map to an
// application error are recorded per employee; anything else aborts the run.
func (s *service) GenerateBulk(ctx context.Context, req PeriodRequest) (BulkResult, error) {
	if err := validatePeriod(req.Month, req.Year); err != nil {
		return BulkResult{}, err
	}

	emps, err := s.employees.ListActive(ctx)
	if err != nil {
		return BulkResult{}, err
	}

	result := BulkResult{
		Month:     req.Month,
		Year:      req.Year,
		Generated: []BulkGenerated{},
		Failed:    []BulkFailure{},
	}
	for _, emp := range emps {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		p, err := s.generate(ctx, emp.ID, req.Month, req.Year)
		if err != nil {
			var appErr *apperror.AppError
			if !errors.As(err, &appErr) {
				s.logger.Error("bulk payroll aborted", zap.String("employee_id", emp.ID.String()), zap.Error(err))
				return result, err
			}
			result.Failed = append(result.Failed, BulkFailure{
				EmployeeID:   emp.ID.String(),
				EmployeeName: emp.Name,
				Code:         appErr.Code,
				Message:      appErr.Message,
			})
			continue
		}
		result.Generated = append(result.Generated, BulkGenerated{
			EmployeeID:   emp.ID.String(),
			EmployeeName: emp.Name,
			PayslipID:    p.ID.String(),
			NetSalary:    p.NetSalary.StringFixed(2),
		})
	}

	s.logger.Info("bulk payroll finished",
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.Int("generated", len(result.Generated)),
		zap.Int("failed", len(result.Failed)),
	)
	return result, nil
}

func (s *service) RequestBulkRun(ctx context.Context, actorID string, req PeriodRequest) (RunRequestedResponse, error) {
	if err := validatePeriod(req.Month, req.Year); err != nil {
		return RunRequestedResponse{}, err
	}
	if s.outbox == nil {
		return RunRequestedResponse{}, payrollerrors.ErrRunQueueUnavailable
	}

	runID := uuid.New()
	event, err := kafka.NewOutboxEvent(ctx, "payroll_run", runID.String(),
		events.EventPayrollRunRequested, events.PayrollRunRequestedTopic,
		events.PayrollRunRequestedEvent{
			EventType:   events.EventPayrollRunRequested,
			RequestID:   contextutil.GetRequestID(ctx),
			RunID:       runID.String(),
			Month:       req.Month,
			Year:        req.Year,
			RequestedBy: actorID,
			OccurredAt:  s.clock().UTC(),
		})
	if err != nil {
		return RunRequestedResponse{}, err
	}
	if err := s.outbox.Create(ctx, event); err != nil {
		s.logger.Error("request payroll run failed", zap.Error(err))
		return RunRequestedResponse{}, err
	}

	s.logger.Info("payroll run requested",
		zap.String("run_id", runID.String()),
		zap.String("requested_by", actorID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)
	return RunRequestedResponse{RunID: runID.String(), Month: req.Month, Year: req.Year, Status: "queued"}, nil
}

func (s *service) Preview(ctx context.Context, employeeID string, month, year int) (PayslipResponse, error) {
	if err := validatePeriod(month, year); err != nil {
		return PayslipResponse{}, err
	}
	emp, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return PayslipResponse{}, err
	}
	res, err := s.calculate(ctx, emp.ID.String(), month, year)
	if err != nil {
		return PayslipResponse{}, err
	}

	p := newPayslip(emp.ID, month, year, res, time.Time{})
	resp := mapToResponse(*p)
	resp.ID, resp.Status, resp.GeneratedAt = "", "", ""
	return resp, nil
}

func (s *service) Get(ctx context.Context, id string) (PayslipResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

func (s *service) GetForPeriod(ctx context.Context, employeeID string, month, year int) (PayslipResponse, error) {
	if err := validatePeriod(month, year); err != nil {
		return PayslipResponse{}, err
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	p, err := s.repo.FindByPeriod(ctx, employeeID, month, year)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]PayslipResponse, error) {
	if filter.Status != "" && !IsValidStatus(filter.Status) {
		return nil, payrollerrors.ErrInvalidStatusFilter
	}
	if filter.EmployeeID != "" {
		if _, err := uuid.Parse(filter.EmployeeID); err != nil {
			return nil, payrollerrors.ErrInvalidEmployeeID
		}
	}
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	out := make([]PayslipResponse, len(rows))
	for i, p := range rows {
		out[i] = mapToResponse(p)
	}
	return out, nil
}

func (s *service) MarkPaid(ctx context.Context, id string) (PayslipResponse, error) {
	moved, err := s.repo.MarkPaid(ctx, id, s.clock().UTC())
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}
	if !moved {
		s.logger.Warn("mark payslip paid rejected", zap.String("payslip_id", id), zap.String("status", p.Status))
		return PayslipResponse{}, payrollerrors.ErrAlreadyPaid
	}

	s.logger.Info("payslip marked paid", zap.String("payslip_id", id))
	return mapToResponse(*p), nil
}

func (s *service) Download(ctx context.Context, id string) (PayslipDocument, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayslipDocument{}, mapRepositoryError(err)
	}
	emp, err := s.findEmployee(ctx, p.EmployeeID.String())
	if err != nil {
		return PayslipDocument{}, err
	}

	content, err := renderPayslipPDF(*p, *emp)
	if err != nil {
		s.logger.Error("render payslip failed", zap.String("payslip_id", id), zap.Error(err))
		return PayslipDocument{}, err
	}
	return PayslipDocument{
		Filename: fmt.Sprintf("payslip-%s-%04d-%02d.pdf", emp.EmployeeCode, p.Year, p.Month),
		Content:  content,
	}, nil
}

func mapToResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:              p.ID.String(),
		EmployeeID:      p.EmployeeID.String(),
		Month:           p.Month,
		Year:            p.Year,
		Status:          p.Status,
		Lines:           make([]LineResponse, len(p.Lines)),
		GrossEarnings:   p.GrossEarnings.StringFixed(2),
		TotalDeductions: p.TotalDeductions.StringFixed(2),
		NetSalary:       p.NetSalary.StringFixed(2),
		Attendance: AttendanceSummaryResponse{
			TotalDays:       p.TotalDays,
			PresentDays:     p.PresentDays,
			AbsentDays:      p.AbsentDays,
			PaidLeaveDays:   p.PaidLeaveDays,
			UnpaidLeaveDays: p.UnpaidLeaveDays,
			HalfDays:        p.HalfDays,
			HolidayDays:     p.HolidayDays,
			LopDays:         p.LopDays.StringFixed(1),
			PayableDays:     p.PayableDays.StringFixed(1),
		},
		LopDetails:  p.LopDetails,
		GeneratedAt: p.GeneratedAt.UTC().Format(time.RFC3339),
	}
	if resp.LopDetails == nil {
		resp.LopDetails = []LopDetail{}
	}
	for i, l := range p.Lines {
		resp.Lines[i] = LineResponse{Name: l.Name, Category: l.Category, Amount: l.Amount.StringFixed(2)}
	}
	if p.PaidAt != nil {
		v := p.PaidAt.UTC().Format(time.RFC3339)
		resp.PaidAt = &v
	}
	return resp
}
