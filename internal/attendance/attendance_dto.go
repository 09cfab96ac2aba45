package attendance

import "time"

type UpdateAttendanceRequest struct {
	CheckIn  *time.Time `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`
	Status   *string    `json:"status"`
	Remark   *string    `json:"remark" binding:"omitempty,max=500"`
}

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Status     string `json:"status" binding:"required"`
	Remark     string `json:"remark" binding:"omitempty,max=500"`
}

// ListFilter narrows report queries. Zero values mean "any".
type ListFilter struct {
	EmployeeID string
	Date       *time.Time
	From       *time.Time
	To         *time.Time
	Status     string
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	CheckIn        *string `json:"check_in,omitempty"`
	CheckOut       *string `json:"check_out,omitempty"`
	WorkedMinutes  int     `json:"worked_minutes,omitempty"`
	LeaveRequestID string  `json:"leave_request_id,omitempty"`
	Remark         string  `json:"remark,omitempty"`
}
