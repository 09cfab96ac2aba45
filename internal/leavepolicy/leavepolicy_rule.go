package leavepolicy

import (
	leavepolicyerrors "go-hrms/internal/leavepolicy/errors"
)

const (
	CategoryPaid   = "Paid"
	CategoryUnpaid = "Unpaid"

	RenewalYearly  = "Yearly"
	RenewalMonthly = "Monthly"
)

// Rule is the accrual behaviour of a leave type. Exactly one of
// UnpaidRule, PaidYearlyRule or PaidMonthlyRule.
type Rule interface {
	Category() string
	Renewal() string
	isRule()
}

type UnpaidRule struct{}

// PaidYearlyRule grants TotalDaysPerYear per calendar year. MonthlyCap,
// when set, limits how many of those days may be used in one month.
type PaidYearlyRule struct {
	TotalDaysPerYear int
	MonthlyCap       *int
}

// PaidMonthlyRule allows MonthlyGrant days per calendar month. Nothing
// carries over and no balance row is kept.
type PaidMonthlyRule struct {
	MonthlyGrant int
}

func (UnpaidRule) Category() string      { return CategoryUnpaid }
func (UnpaidRule) Renewal() string       { return "" }
func (UnpaidRule) isRule()               {}
func (PaidYearlyRule) Category() string  { return CategoryPaid }
func (PaidYearlyRule) Renewal() string   { return RenewalYearly }
func (PaidYearlyRule) isRule()           {}
func (PaidMonthlyRule) Category() string { return CategoryPaid }
func (PaidMonthlyRule) Renewal() string  { return RenewalMonthly }
func (PaidMonthlyRule) isRule()          {}

// RuleInput is the flat shape a rule arrives in over HTTP and in storage.
type RuleInput struct {
	Category         string
	Renewal          string
	TotalDaysPerYear *int
	MonthlyCap       *int
	MonthlyGrant     *int
}

// NewRule validates flat input and builds the matching variant. Fields
// irrelevant to the chosen variant are dropped, except an annual total on
// a monthly policy, which is rejected.
func NewRule(in RuleInput) (Rule, error) {
	switch in.Category {
	case CategoryUnpaid:
		return UnpaidRule{}, nil
	case CategoryPaid:
	default:
		return nil, leavepolicyerrors.ErrInvalidCategory
	}

	switch in.Renewal {
	case "":
		return nil, leavepolicyerrors.ErrRenewalRequired
	case RenewalYearly:
		if in.TotalDaysPerYear == nil || *in.TotalDaysPerYear <= 0 {
			return nil, leavepolicyerrors.ErrAnnualTotalRequired
		}
		rule := PaidYearlyRule{TotalDaysPerYear: *in.TotalDaysPerYear}
		if in.MonthlyCap != nil {
			if *in.MonthlyCap <= 0 {
				return nil, leavepolicyerrors.ErrInvalidMonthlyCap
			}
			c := *in.MonthlyCap
			rule.MonthlyCap = &c
		}
		return rule, nil
	case RenewalMonthly:
		if in.TotalDaysPerYear != nil {
			return nil, leavepolicyerrors.ErrAnnualTotalNotAllowed
		}
		if in.MonthlyGrant == nil || *in.MonthlyGrant <= 0 {
			return nil, leavepolicyerrors.ErrMonthlyGrantRequired
		}
		return PaidMonthlyRule{MonthlyGrant: *in.MonthlyGrant}, nil
	default:
		return nil, leavepolicyerrors.ErrInvalidRenewal
	}
}

// Flatten is the inverse of NewRule.
func Flatten(r Rule) RuleInput {
	out := RuleInput{Category: r.Category(), Renewal: r.Renewal()}
	switch v := r.(type) {
	case PaidYearlyRule:
		total := v.TotalDaysPerYear
		out.TotalDaysPerYear = &total
		if v.MonthlyCap != nil {
			c := *v.MonthlyCap
			out.MonthlyCap = &c
		}
	case PaidMonthlyRule:
		g := v.MonthlyGrant
		out.MonthlyGrant = &g
	}
	return out
}
