package payroll

import (
	"sort"
	"strings"
	"time"

	"go-hrms/internal/attendance"
	"go-hrms/internal/leavepolicy"
	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/shared/calendar"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CalculationFixed      = "Fixed"
	CalculationPercentage = "Percentage"

	LineEarning   = "Earning"
	LineDeduction = "Deduction"
	LineLossOfPay = "Loss of Pay"

	LopReasonAbsent      = "Absent"
	LopReasonUnpaidLeave = "Unpaid Leave"
	LopReasonHalfDay     = "Half Day"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.New(5, -1)
)

// ResolvedComponent is a profile entry with its catalog attributes.
type ResolvedComponent struct {
	ID              uuid.UUID
	Name            string
	Category        string
	ProRata         bool
	CalculationType string
	Value           decimal.Decimal
	PercentageOf    []uuid.UUID
}

type AttendanceDay struct {
	Date          time.Time
	Status        string
	LeaveCategory string
}

type CalculationInput struct {
	Year       int
	Month      int
	Components []ResolvedComponent
	Attendance []AttendanceDay
}

type AttendanceSummary struct {
	TotalDays       int
	PresentDays     int
	AbsentDays      int
	PaidLeaveDays   int
	UnpaidLeaveDays int
	HalfDays        int
	HolidayDays     int
	LopDays         decimal.Decimal
	PayableDays     decimal.Decimal
}

type LopDetail struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

type Line struct {
	Name     string
	Category string
	Amount   decimal.Decimal
}

type CalculationResult struct {
	Lines           []Line
	GrossEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
	Summary         AttendanceSummary
	LopDetails      []LopDetail
}

// Calculate turns a salary profile and a month of attendance into payslip
// figures. It performs no I/O and gives the same result for the same input.
func Calculate(in CalculationInput) (CalculationResult, error) {
	if len(in.Components) == 0 {
		return CalculationResult{}, payrollerrors.ErrSalaryProfileMissing
	}

	summary, details := summarizeAttendance(in.Year, in.Month, in.Attendance)

	full, err := resolveFullMonth(in.Components)
	if err != nil {
		return CalculationResult{}, err
	}

	totalDays := decimal.NewFromInt(int64(summary.TotalDays))
	result := CalculationResult{
		Lines:           make([]Line, 0, len(in.Components)+1),
		GrossEarnings:   decimal.Zero,
		TotalDeductions: decimal.Zero,
		Summary:         summary,
		LopDetails:      details,
	}

	for _, c := range in.Components {
		amount := full[c.ID]
		if c.ProRata {
			amount = amount.Mul(summary.PayableDays).Div(totalDays)
		}
		amount = amount.Round(2)

		result.Lines = append(result.Lines, Line{Name: c.Name, Category: c.Category, Amount: amount})
		switch c.Category {
		case LineEarning:
			result.GrossEarnings = result.GrossEarnings.Add(amount)
		case LineDeduction:
			result.TotalDeductions = result.TotalDeductions.Add(amount)
		}
	}
	result.NetSalary = result.GrossEarnings.Sub(result.TotalDeductions).Round(2)

	if summary.LopDays.IsPositive() {
		for _, c := range in.Components {
			if !strings.Contains(strings.ToLower(c.Name), "basic") {
				continue
			}
			result.Lines = append(result.Lines, Line{
				Name:     LineLossOfPay,
				Category: LineLossOfPay,
				Amount:   full[c.ID].Mul(summary.LopDays).Div(totalDays).Round(2),
			})
			break
		}
	}

	return result, nil
}

// summarizeAttendance counts one record per calendar day inside the month.
// Days without a record are payable.
func summarizeAttendance(year, month int, days []AttendanceDay) (AttendanceSummary, []LopDetail) {
	start, end := calendar.MonthRange(year, month)
	summary := AttendanceSummary{TotalDays: calendar.DaysInMonth(year, month)}

	sorted := make([]AttendanceDay, len(days))
	copy(sorted, days)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	lop := decimal.Zero
	details := []LopDetail{}
	seen := make(map[time.Time]bool, len(sorted))

	for _, d := range sorted {
		day := calendar.StartOfDayUTC(d.Date)
		if day.Before(start) || !day.Before(end) || seen[day] {
			continue
		}
		seen[day] = true

		reason := ""
		switch d.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
			lop = lop.Add(decimal.NewFromInt(1))
			reason = LopReasonAbsent
		case attendance.StatusOnLeave:
			if d.LeaveCategory == leavepolicy.CategoryUnpaid {
				summary.UnpaidLeaveDays++
				lop = lop.Add(decimal.NewFromInt(1))
				reason = LopReasonUnpaidLeave
			} else {
				summary.PaidLeaveDays++
			}
		case attendance.StatusHalfDay:
			summary.HalfDays++
			lop = lop.Add(half)
			reason = LopReasonHalfDay
		case attendance.StatusHoliday:
			summary.HolidayDays++
		}
		if reason != "" {
			details = append(details, LopDetail{Date: day.Format(calendar.DateLayout), Reason: reason})
		}
	}

	summary.LopDays = lop
	summary.PayableDays = decimal.NewFromInt(int64(summary.TotalDays)).Sub(lop)
	return summary, details
}

// resolveFullMonth evaluates every component at its full-month amount in
// dependency order (Kahn's algorithm over percentage_of edges).
func resolveFullMonth(components []ResolvedComponent) (map[uuid.UUID]decimal.Decimal, error) {
	byID := make(map[uuid.UUID]ResolvedComponent, len(components))
	for _, c := range components {
		if _, dup := byID[c.ID]; dup {
			return nil, payrollerrors.ErrDuplicateComponent
		}
		byID[c.ID] = c
	}

	indegree := make(map[uuid.UUID]int, len(components))
	dependents := make(map[uuid.UUID][]uuid.UUID, len(components))
	for _, c := range components {
		if c.CalculationType != CalculationPercentage {
			continue
		}
		for _, ref := range distinct(c.PercentageOf) {
			if _, ok := byID[ref]; !ok {
				return nil, payrollerrors.ErrMissingDependency
			}
			indegree[c.ID]++
			dependents[ref] = append(dependents[ref], c.ID)
		}
	}

	queue := make([]uuid.UUID, 0, len(components))
	for _, c := range components {
		if indegree[c.ID] == 0 {
			queue = append(queue, c.ID)
		}
	}

	full := make(map[uuid.UUID]decimal.Decimal, len(components))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		c := byID[id]
		if c.CalculationType == CalculationPercentage {
			base := decimal.Zero
			for _, ref := range distinct(c.PercentageOf) {
				base = base.Add(full[ref])
			}
			full[id] = base.Mul(c.Value).Div(hundred)
		} else {
			full[id] = c.Value
		}

		for _, dep := range dependents[id] {
			indegree[dep]--
			if indegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if len(full) != len(components) {
		return nil, payrollerrors.ErrCircularDependency
	}
	return full, nil
}

func distinct(ids []uuid.UUID) []uuid.UUID {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
