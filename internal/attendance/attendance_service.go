package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/shared/calendar"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)
	UpdateRecord(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	ListMine(ctx context.Context, employeeID string, from, to *time.Time) ([]AttendanceResponse, error)
	Report(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)
	MonthRecords(ctx context.Context, employeeID string, year, month int) ([]DayRecord, error)
	MarkLeaveDays(ctx context.Context, tx *sql.Tx, employeeID, leaveRequestID uuid.UUID, days []time.Time) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	clock  calendar.Clock
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, clock calendar.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if clock == nil {
		clock = calendar.SystemClock
	}
	return &service{db: db, repo: repo, clock: clock, logger: l}
}

func (s *service) CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	now := s.clock().UTC()
	today := calendar.StartOfDayUTC(now)
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("check-in begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)
	rec, err := repo.FindByEmployeeAndDate(ctx, employeeID, today)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		rec = &Record{
			ID:             uuid.New(),
			EmployeeID:     empID,
			AttendanceDate: today,
			Status:         StatusPresent,
			CheckIn:        &now,
		}
		if err := repo.Create(ctx, rec); err != nil {
			s.logger.Error("check-in create failed", zap.String("employee_id", employeeID), zap.Error(err))
			return AttendanceResponse{}, mapCheckInError(err)
		}
	case err != nil:
		s.logger.Error("check-in lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	default:
		if rec.CheckIn != nil {
			return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
		}
		if rec.Status == StatusOnLeave {
			return AttendanceResponse{}, attendanceerrors.ErrOnLeaveToday
		}
		rec.Status = StatusPresent
		rec.CheckIn = &now
		rec.enforceLeaveRef()
		if err := repo.Update(ctx, rec); err != nil {
			s.logger.Error("check-in update failed", zap.String("employee_id", employeeID), zap.Error(err))
			return AttendanceResponse{}, mapRepositoryError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("check-in commit failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("check-in recorded",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Time("check_in", now),
	)
	return mapToResponse(*rec), nil
}

func (s *service) CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	now := s.clock().UTC()
	rid := contextutil.GetRequestID(ctx)

	rec, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, calendar.StartOfDayUTC(now))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, attendanceerrors.ErrNotCheckedIn
	}
	if err != nil {
		s.logger.Error("check-out lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if rec.CheckIn == nil {
		return AttendanceResponse{}, attendanceerrors.ErrNotCheckedIn
	}
	if rec.CheckOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}
	if now.Before(*rec.CheckIn) {
		return AttendanceResponse{}, attendanceerrors.ErrCheckOutBeforeCheckIn
	}

	rec.CheckOut = &now
	if err := s.repo.Update(ctx, rec); err != nil {
		s.logger.Error("check-out update failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("check-out recorded",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Time("check_out", now),
	)
	return mapToResponse(*rec), nil
}

func (s *service) UpdateRecord(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	if req.Status != nil && !IsValidStatus(*req.Status) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if req.CheckIn != nil {
		t := req.CheckIn.UTC()
		rec.CheckIn = &t
	}
	if req.CheckOut != nil {
		t := req.CheckOut.UTC()
		rec.CheckOut = &t
	}
	if req.Status != nil {
		rec.Status = *req.Status
	}
	if req.Remark != nil {
		rec.Remark = *req.Remark
	}

	if rec.CheckIn != nil && rec.CheckOut != nil && rec.CheckOut.Before(*rec.CheckIn) {
		return AttendanceResponse{}, attendanceerrors.ErrCheckOutBeforeCheckIn
	}
	rec.enforceLeaveRef()

	if err := s.repo.Update(ctx, rec); err != nil {
		s.logger.Error("update attendance failed", zap.String("attendance_id", id), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("attendance corrected",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("attendance_id", id),
		zap.String("status", rec.Status),
		zap.String("acted_by", contextutil.GetUserID(ctx)),
	)
	return mapToResponse(*rec), nil
}

// MarkAttendance writes an HR entry for (employee, day), replacing the
// status and remark of any existing record.
func (s *service) MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error) {
	if !IsValidStatus(req.Status) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}
	empID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	day, err := calendar.ParseDate(req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)
	rec, err := repo.FindByEmployeeAndDate(ctx, req.EmployeeID, day)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		rec = &Record{
			ID:             uuid.New(),
			EmployeeID:     empID,
			AttendanceDate: day,
			Status:         req.Status,
			Remark:         req.Remark,
		}
		err = repo.Create(ctx, rec)
	case err != nil:
		return AttendanceResponse{}, mapRepositoryError(err)
	default:
		rec.Status = req.Status
		rec.Remark = req.Remark
		rec.enforceLeaveRef()
		err = repo.Update(ctx, rec)
	}
	if err != nil {
		s.logger.Error("mark attendance failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("date", req.Date),
			zap.Error(err),
		)
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("attendance marked",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
	)
	return mapToResponse(*rec), nil
}

func (s *service) ListMine(ctx context.Context, employeeID string, from, to *time.Time) ([]AttendanceResponse, error) {
	if employeeID == "" {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}
	return s.Report(ctx, ListFilter{EmployeeID: employeeID, From: from, To: to})
}

func (s *service) Report(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error) {
	if filter.Status != "" && !IsValidStatus(filter.Status) {
		return nil, attendanceerrors.ErrInvalidStatus
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, attendanceerrors.ErrInvalidDateRange
	}

	recs, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list attendance failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	out := make([]AttendanceResponse, len(recs))
	for i, r := range recs {
		out[i] = mapToResponse(r)
	}
	return out, nil
}

func (s *service) MonthRecords(ctx context.Context, employeeID string, year, month int) ([]DayRecord, error) {
	recs, err := s.repo.FindMonthWithLeaveCategory(ctx, employeeID, year, month)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return recs, nil
}

// MarkLeaveDays flags each day On Leave against the approved request,
// inside the caller's transaction.
func (s *service) MarkLeaveDays(ctx context.Context, tx *sql.Tx, employeeID, leaveRequestID uuid.UUID, days []time.Time) error {
	if err := s.repo.WithTx(tx).UpsertLeaveDays(ctx, employeeID, leaveRequestID, days); err != nil {
		s.logger.Error("mark leave days failed",
			zap.String("employee_id", employeeID.String()),
			zap.String("leave_request_id", leaveRequestID.String()),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}
	return nil
}

func mapCheckInError(err error) error {
	mapped := mapRepositoryError(err)
	if errors.Is(mapped, attendanceerrors.ErrRecordConflict) {
		return attendanceerrors.ErrAlreadyCheckedIn
	}
	return mapped
}

func mapToResponse(r Record) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         r.ID.String(),
		EmployeeID: r.EmployeeID.String(),
		Date:       r.AttendanceDate.Format(calendar.DateLayout),
		Status:     r.Status,
		Remark:     r.Remark,
	}
	if r.CheckIn != nil {
		v := r.CheckIn.UTC().Format(time.RFC3339)
		resp.CheckIn = &v
	}
	if r.CheckOut != nil {
		v := r.CheckOut.UTC().Format(time.RFC3339)
		resp.CheckOut = &v
	}
	if r.CheckIn != nil && r.CheckOut != nil {
		resp.WorkedMinutes = int(r.CheckOut.Sub(*r.CheckIn).Minutes())
	}
	if r.LeaveRequestID != nil {
		resp.LeaveRequestID = r.LeaveRequestID.String()
	}
	return resp
}
