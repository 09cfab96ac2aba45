package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Request is a leave application. Category is copied from the policy at
// submission so later policy edits do not change how it is paid.
type Request struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID uuid.UUID  `gorm:"column:employee_id;type:uuid;not null"`
	LeaveType  string     `gorm:"column:leave_type;not null"`
	Category   string     `gorm:"column:category;not null"`
	FromDate   time.Time  `gorm:"column:from_date;type:date;not null"`
	ToDate     time.Time  `gorm:"column:to_date;type:date;not null"`
	Days       int        `gorm:"column:days;not null"`
	Reason     string     `gorm:"column:reason"`
	Status     string     `gorm:"column:status;not null"`
	ActedBy    *uuid.UUID `gorm:"column:acted_by;type:uuid"`
	ActedAt    *time.Time `gorm:"column:acted_at"`
	Remarks    string     `gorm:"column:remarks"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
}

func (Request) TableName() string {
	return "leave_requests"
}

func (r Request) IsPending() bool {
	return r.Status == StatusPending
}
