package leavebalance

import (
	"time"

	"github.com/google/uuid"
)

// Balance is an employee's allowance for one paid yearly leave type in one year.
type Balance struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_leave_balance_employee_type_year"`
	LeaveType  string    `gorm:"column:leave_type;not null;uniqueIndex:uq_leave_balance_employee_type_year"`
	Year       int       `gorm:"column:year;not null;uniqueIndex:uq_leave_balance_employee_type_year"`
	Total      int       `gorm:"column:total;not null;check:chk_leave_balance_total,total >= 0"`
	Used       int       `gorm:"column:used;not null;check:chk_leave_balance_used_le_total,used >= 0 AND used <= total"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Balance) TableName() string {
	return "leave_balances"
}

func (b Balance) Available() int {
	return b.Total - b.Used
}
