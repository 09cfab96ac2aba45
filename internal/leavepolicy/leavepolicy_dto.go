package leavepolicy

type CreatePolicyRequest struct {
	LeaveType        string `json:"leave_type" binding:"required,min=2,max=10,alphanum"`
	Name             string `json:"name" binding:"required,max=100"`
	Description      string `json:"description"`
	Category         string `json:"category" binding:"required,oneof=Paid Unpaid"`
	Renewal          string `json:"renewal" binding:"omitempty,oneof=Yearly Monthly"`
	TotalDaysPerYear *int   `json:"total_days_per_year"`
	MonthlyCap       *int   `json:"monthly_cap"`
	MonthlyGrant     *int   `json:"monthly_grant"`
	IsActive         *bool  `json:"is_active"`
}

// UpdatePolicyRequest replaces every mutable field. The type code is
// taken from the path and never changes.
type UpdatePolicyRequest struct {
	Name             string `json:"name" binding:"required,max=100"`
	Description      string `json:"description"`
	Category         string `json:"category" binding:"required,oneof=Paid Unpaid"`
	Renewal          string `json:"renewal" binding:"omitempty,oneof=Yearly Monthly"`
	TotalDaysPerYear *int   `json:"total_days_per_year"`
	MonthlyCap       *int   `json:"monthly_cap"`
	MonthlyGrant     *int   `json:"monthly_grant"`
	IsActive         *bool  `json:"is_active"`
}

type PolicyResponse struct {
	LeaveType        string `json:"leave_type"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	Category         string `json:"category"`
	Renewal          string `json:"renewal,omitempty"`
	TotalDaysPerYear *int   `json:"total_days_per_year,omitempty"`
	MonthlyCap       *int   `json:"monthly_cap,omitempty"`
	MonthlyGrant     *int   `json:"monthly_grant,omitempty"`
	IsActive         bool   `json:"is_active"`
}
