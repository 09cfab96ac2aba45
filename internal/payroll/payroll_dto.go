package payroll

type GenerateRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Month      int    `json:"month" binding:"required,min=1,max=12"`
	Year       int    `json:"year" binding:"required,min=1900,max=9999"`
}

type PeriodRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=1900,max=9999"`
}

type PreviewQuery struct {
	EmployeeID string `form:"employee_id" binding:"required,uuid"`
	Month      int    `form:"month" binding:"required,min=1,max=12"`
	Year       int    `form:"year" binding:"required,min=1900,max=9999"`
}

type ListFilter struct {
	EmployeeID string `form:"employee_id"`
	Month      int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year       int    `form:"year" binding:"omitempty,min=1900,max=9999"`
	Status     string `form:"status"`
}

type LineResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

type AttendanceSummaryResponse struct {
	TotalDays       int    `json:"total_days"`
	PresentDays     int    `json:"present_days"`
	AbsentDays      int    `json:"absent_days"`
	PaidLeaveDays   int    `json:"paid_leave_days"`
	UnpaidLeaveDays int    `json:"unpaid_leave_days"`
	HalfDays        int    `json:"half_days"`
	HolidayDays     int    `json:"holiday_days"`
	LopDays         string `json:"lop_days"`
	PayableDays     string `json:"payable_days"`
}

type PayslipResponse struct {
	ID              string                    `json:"id,omitempty"`
	EmployeeID      string                    `json:"employee_id"`
	Month           int                       `json:"month"`
	Year            int                       `json:"year"`
	Status          string                    `json:"status,omitempty"`
	Lines           []LineResponse            `json:"lines"`
	GrossEarnings   string                    `json:"gross_earnings"`
	TotalDeductions string                    `json:"total_deductions"`
	NetSalary       string                    `json:"net_salary"`
	Attendance      AttendanceSummaryResponse `json:"attendance"`
	LopDetails      []LopDetail               `json:"lop_details"`
	GeneratedAt     string                    `json:"generated_at,omitempty"`
	PaidAt          *string                   `json:"paid_at,omitempty"`
}

type BulkGenerated struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	PayslipID    string `json:"payslip_id"`
	NetSalary    string `json:"net_salary"`
}

type BulkFailure struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Code         string `json:"code"`
	Message      string `json:"message"`
}

type BulkResult struct {
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	Generated []BulkGenerated `json:"generated"`
	Failed    []BulkFailure   `json:"failed"`
}

type RunRequestedResponse struct {
	RunID  string `json:"run_id"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`
	Status string `json:"status"`
}

// PayslipDocument is a rendered payslip ready to stream.
type PayslipDocument struct {
	Filename string
	Content  []byte
}
