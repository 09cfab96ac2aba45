package leavepolicy

import (
	"regexp"
	"time"
)

var leaveTypePattern = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

func ValidLeaveType(code string) bool {
	return leaveTypePattern.MatchString(code)
}

// Policy is a leave type definition with its accrual rule.
type Policy struct {
	LeaveType   string
	Name        string
	Description string
	Rule        Rule
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPaidYearly reports whether the policy draws from an annual balance.
func (p Policy) IsPaidYearly() bool {
	_, ok := p.Rule.(PaidYearlyRule)
	return ok
}

// policyRow is the flat leave_policies row.
type policyRow struct {
	LeaveType        string    `gorm:"column:leave_type;primaryKey"`
	Name             string    `gorm:"column:name"`
	Description      string    `gorm:"column:description"`
	Category         string    `gorm:"column:category"`
	Renewal          *string   `gorm:"column:renewal"`
	TotalDaysPerYear *int      `gorm:"column:total_days_per_year"`
	MonthlyCap       *int      `gorm:"column:monthly_cap"`
	MonthlyGrant     *int      `gorm:"column:monthly_grant"`
	IsActive         bool      `gorm:"column:is_active"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (policyRow) TableName() string {
	return "leave_policies"
}

func toRow(p Policy) policyRow {
	flat := Flatten(p.Rule)
	row := policyRow{
		LeaveType:        p.LeaveType,
		Name:             p.Name,
		Description:      p.Description,
		Category:         flat.Category,
		TotalDaysPerYear: flat.TotalDaysPerYear,
		MonthlyCap:       flat.MonthlyCap,
		MonthlyGrant:     flat.MonthlyGrant,
		IsActive:         p.IsActive,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if flat.Renewal != "" {
		r := flat.Renewal
		row.Renewal = &r
	}
	return row
}

func fromRow(row policyRow) (Policy, error) {
	in := RuleInput{
		Category:         row.Category,
		TotalDaysPerYear: row.TotalDaysPerYear,
		MonthlyCap:       row.MonthlyCap,
		MonthlyGrant:     row.MonthlyGrant,
	}
	if row.Renewal != nil {
		in.Renewal = *row.Renewal
	}
	rule, err := NewRule(in)
	if err != nil {
		return Policy{}, err
	}
	return Policy{
		LeaveType:   row.LeaveType,
		Name:        row.Name,
		Description: row.Description,
		Rule:        rule,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}
