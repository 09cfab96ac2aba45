package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusGenerated = "Generated"
	StatusPaid      = "Paid"
)

func IsValidStatus(s string) bool {
	return s == StatusGenerated || s == StatusPaid
}

// Payslip is the persisted snapshot of one employee's pay for a month.
// Regeneration overwrites it in place.
type Payslip struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payslip_employee_period"`
	Month      int       `gorm:"not null;uniqueIndex:uq_payslip_employee_period"`
	Year       int       `gorm:"not null;uniqueIndex:uq_payslip_employee_period"`

	GrossEarnings   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	NetSalary       decimal.Decimal `gorm:"type:numeric(14,2);not null"`

	TotalDays       int             `gorm:"not null"`
	PresentDays     int             `gorm:"not null;default:0"`
	AbsentDays      int             `gorm:"not null;default:0"`
	PaidLeaveDays   int             `gorm:"not null;default:0"`
	UnpaidLeaveDays int             `gorm:"not null;default:0"`
	HalfDays        int             `gorm:"not null;default:0"`
	HolidayDays     int             `gorm:"not null;default:0"`
	LopDays         decimal.Decimal `gorm:"type:numeric(5,1);not null"`
	PayableDays     decimal.Decimal `gorm:"type:numeric(5,1);not null"`
	LopDetails      []LopDetail     `gorm:"type:jsonb;serializer:json;not null"`

	Status      string `gorm:"size:16;not null"`
	GeneratedAt time.Time
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Lines []PayslipLine `gorm:"foreignKey:PayslipID"`
}

func (Payslip) TableName() string { return "payslips" }

type PayslipLine struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PayslipID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Seq       int             `gorm:"not null"`
	Name      string          `gorm:"size:100;not null"`
	Category  string          `gorm:"size:16;not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

func (PayslipLine) TableName() string { return "payslip_lines" }

// newPayslip snapshots a calculation for the given period.
func newPayslip(employeeID uuid.UUID, month, year int, res CalculationResult, at time.Time) *Payslip {
	p := &Payslip{
		ID:              uuid.New(),
		EmployeeID:      employeeID,
		Month:           month,
		Year:            year,
		GrossEarnings:   res.GrossEarnings,
		TotalDeductions: res.TotalDeductions,
		NetSalary:       res.NetSalary,
		TotalDays:       res.Summary.TotalDays,
		PresentDays:     res.Summary.PresentDays,
		AbsentDays:      res.Summary.AbsentDays,
		PaidLeaveDays:   res.Summary.PaidLeaveDays,
		UnpaidLeaveDays: res.Summary.UnpaidLeaveDays,
		HalfDays:        res.Summary.HalfDays,
		HolidayDays:     res.Summary.HolidayDays,
		LopDays:         res.Summary.LopDays,
		PayableDays:     res.Summary.PayableDays,
		LopDetails:      res.LopDetails,
		Status:          StatusGenerated,
		GeneratedAt:     at,
		Lines:           make([]PayslipLine, len(res.Lines)),
	}
	for i, l := range res.Lines {
		p.Lines[i] = PayslipLine{
			ID:        uuid.New(),
			PayslipID: p.ID,
			Seq:       i + 1,
			Name:      l.Name,
			Category:  l.Category,
			Amount:    l.Amount,
		}
	}
	return p
}
