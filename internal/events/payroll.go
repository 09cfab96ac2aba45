package events

import "time"

const (
	PayslipGeneratedTopic    = "hr.payroll.payslip.generated.v1"
	PayrollRunRequestedTopic = "hr.payroll.run.requested.v1"

	EventPayslipGenerated    = "payslip_generated"
	EventPayrollRunRequested = "payroll_run_requested"
)

type PayslipGeneratedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PayslipID  string    `json:"payslip_id"`
	EmployeeID string    `json:"employee_id"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	NetSalary  string    `json:"net_salary"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PayrollRunRequestedEvent asks the consumer to run bulk generation for a period.
type PayrollRunRequestedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	RunID       string    `json:"run_id"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
