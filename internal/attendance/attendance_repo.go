package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/calendar"
	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rec *Record) error
	Update(ctx context.Context, rec *Record) error
	FindByID(ctx context.Context, id string) (*Record, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)
	List(ctx context.Context, filter ListFilter) ([]Record, error)
	FindMonthWithLeaveCategory(ctx context.Context, employeeID string, year, month int) ([]DayRecord, error)
	UpsertLeaveDays(ctx context.Context, employeeID, leaveRequestID uuid.UUID, days []time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) Update(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Record, error) {
	var rec Record
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND attendance_date = ?", employeeID, calendar.StartOfDayUTC(date)).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Record, error) {
	q := r.db.WithContext(ctx).Scopes(
		scope.ByEmployee(filter.EmployeeID),
		scope.DateBetween("attendance_date", filter.From, filter.To),
	)
	if filter.Date != nil {
		q = q.Where("attendance_date = ?", calendar.StartOfDayUTC(*filter.Date))
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var out []Record
	err := q.Order("attendance_date DESC, employee_id ASC").Find(&out).Error
	return out, err
}

func (r *repository) FindMonthWithLeaveCategory(ctx context.Context, employeeID string, year, month int) ([]DayRecord, error) {
	start, end := calendar.MonthRange(year, month)

	type row struct {
		AttendanceDate time.Time
		Status         string
		LeaveCategory  sql.NullString
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("attendance_records AS a").
		Select("a.attendance_date, a.status, lr.category AS leave_category").
		Joins("LEFT JOIN leave_requests lr ON lr.id = a.leave_request_id").
		Where("a.employee_id = ? AND a.attendance_date >= ? AND a.attendance_date < ?", employeeID, start, end).
		Order("a.attendance_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]DayRecord, len(rows))
	for i, rw := range rows {
		out[i] = DayRecord{
			Date:          calendar.StartOfDayUTC(rw.AttendanceDate),
			Status:        rw.Status,
			LeaveCategory: rw.LeaveCategory.String,
		}
	}
	return out, nil
}

// UpsertLeaveDays writes an On Leave record for each day, overwriting
// whatever status the day had before. Check-in and check-out are cleared.
func (r *repository) UpsertLeaveDays(ctx context.Context, employeeID, leaveRequestID uuid.UUID, days []time.Time) error {
	if len(days) == 0 {
		return nil
	}

	now := time.Now().UTC()
	recs := make([]Record, len(days))
	for i, d := range days {
		lr := leaveRequestID
		recs[i] = Record{
			ID:             uuid.New(),
			EmployeeID:     employeeID,
			AttendanceDate: calendar.StartOfDayUTC(d),
			Status:         StatusOnLeave,
			LeaveRequestID: &lr,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "attendance_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status", "leave_request_id", "check_in", "check_out", "updated_at",
			}),
		}).
		Create(&recs).Error
}
