package leavebalance

type UpdateBalanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	LeaveType  string `json:"leave_type" binding:"required"`
	Year       int    `json:"year" binding:"required,min=1900,max=9999"`
	Used       *int   `json:"used" binding:"required"`
	Total      *int   `json:"total" binding:"required"`
}

type ResetRequest struct {
	Year int `json:"year" binding:"required,min=1900,max=9999"`
}

type BalanceResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	Year       int    `json:"year"`
	Total      int    `json:"total"`
	Used       int    `json:"used"`
	Available  int    `json:"available"`
}

type ResetResult struct {
	Year      int   `json:"year"`
	Deleted   int64 `json:"deleted"`
	Employees int   `json:"employees"`
	Rows      int   `json:"rows"`
}
