package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusOnLeave = "On Leave"
	StatusHoliday = "Holiday"
	StatusHalfDay = "Half Day"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusOnLeave, StatusHoliday, StatusHalfDay:
		return true
	}
	return false
}

// Record is one employee's attendance for one UTC calendar day.
type Record struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID     uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	AttendanceDate time.Time  `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	Status         string     `gorm:"column:status;type:varchar(16);not null"`
	CheckIn        *time.Time `gorm:"column:check_in"`
	CheckOut       *time.Time `gorm:"column:check_out"`
	LeaveRequestID *uuid.UUID `gorm:"column:leave_request_id;type:uuid"`
	Remark         string     `gorm:"column:remark;not null;default:''"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (Record) TableName() string {
	return "attendance_records"
}

// enforceLeaveRef keeps the leave link only on On Leave days.
func (r *Record) enforceLeaveRef() {
	if r.Status != StatusOnLeave {
		r.LeaveRequestID = nil
	}
}

// DayRecord is a record hydrated with the category ("Paid"/"Unpaid") of
// the leave request it points at. LeaveCategory is empty when unlinked.
type DayRecord struct {
	Date          time.Time
	Status        string
	LeaveCategory string
}
