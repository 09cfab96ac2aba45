package leave

import "time"

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,max=10"`
	FromDate  string `json:"from_date" binding:"required"`
	ToDate    string `json:"to_date" binding:"required"`
	Reason    string `json:"reason" binding:"max=1000"`
}

type ActionRequest struct {
	Remarks string `json:"remarks" binding:"max=1000"`
}

type ListFilter struct {
	Status     string
	EmployeeID string
	LeaveType  string
	From       *time.Time
	To         *time.Time
}

type LeaveResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	LeaveType  string  `json:"leave_type"`
	Category   string  `json:"category"`
	FromDate   string  `json:"from_date"`
	ToDate     string  `json:"to_date"`
	Days       int     `json:"days"`
	Reason     string  `json:"reason,omitempty"`
	Status     string  `json:"status"`
	ActedBy    *string `json:"acted_by,omitempty"`
	ActedAt    *string `json:"acted_at,omitempty"`
	Remarks    string  `json:"remarks,omitempty"`
	CreatedAt  string  `json:"created_at"`
}
