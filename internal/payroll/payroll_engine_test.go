package payroll_test

import (
	"testing"
	"time"

	"go-hrms/internal/attendance"
	"go-hrms/internal/leavepolicy"
	"go-hrms/internal/payroll"
	payrollerrors "go-hrms/internal/payroll/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func amount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2))
}

func fixed(name, category string, value int64, proRata bool) payroll.ResolvedComponent {
	return payroll.ResolvedComponent{
		ID:              uuid.New(),
		Name:            name,
		Category:        category,
		ProRata:         proRata,
		CalculationType: payroll.CalculationFixed,
		Value:           decimal.NewFromInt(value),
	}
}

func percentOf(name, category string, pct int64, proRata bool, base ...payroll.ResolvedComponent) payroll.ResolvedComponent {
	c := payroll.ResolvedComponent{
		ID:              uuid.New(),
		Name:            name,
		Category:        category,
		ProRata:         proRata,
		CalculationType: payroll.CalculationPercentage,
		Value:           decimal.NewFromInt(pct),
	}
	for _, b := range base {
		c.PercentageOf = append(c.PercentageOf, b.ID)
	}
	return c
}

func absences(dates ...time.Time) []payroll.AttendanceDay {
	out := make([]payroll.AttendanceDay, len(dates))
	for i, d := range dates {
		out[i] = payroll.AttendanceDay{Date: d, Status: attendance.StatusAbsent}
	}
	return out
}

func TestCalculate_ProRataWithAbsences(t *testing.T) {
	basic := fixed("Basic Salary", payroll.LineEarning, 30000, true)
	hra := percentOf("HRA", payroll.LineEarning, 40, true, basic)

	res, err := payroll.Calculate(payroll.CalculationInput{
		Year:       2024,
		Month:      6,
		Components: []payroll.ResolvedComponent{basic, hra},
		Attendance: absences(day(2024, 6, 3), day(2024, 6, 4), day(2024, 6, 5)),
	})
	require.NoError(t, err)

	require.Len(t, res.Lines, 3)
	assert.Equal(t, "Basic Salary", res.Lines[0].Name)
	amount(t, "27000.00", res.Lines[0].Amount)
	assert.Equal(t, "HRA", res.Lines[1].Name)
	amount(t, "10800.00", res.Lines[1].Amount)
	assert.Equal(t, payroll.LineLossOfPay, res.Lines[2].Category)
	amount(t, "3000.00", res.Lines[2].Amount)

	amount(t, "37800.00", res.GrossEarnings)
	amount(t, "0.00", res.TotalDeductions)
	amount(t, "37800.00", res.NetSalary)

	assert.Equal(t, 30, res.Summary.TotalDays)
	assert.Equal(t, 3, res.Summary.AbsentDays)
	assert.Equal(t, "3.0", res.Summary.LopDays.StringFixed(1))
	assert.Equal(t, "27.0", res.Summary.PayableDays.StringFixed(1))
	assert.Equal(t, []payroll.LopDetail{
		{Date: "2024-06-03", Reason: payroll.LopReasonAbsent},
		{Date: "2024-06-04", Reason: payroll.LopReasonAbsent},
		{Date: "2024-06-05", Reason: payroll.LopReasonAbsent},
	}, res.LopDetails)
}

func TestCalculate_FullMonthWithoutRecords(t *testing.T) {
	basic := fixed("Basic", payroll.LineEarning, 25000, true)
	pf := percentOf("Provident Fund", payroll.LineDeduction, 12, false, basic)
	tax := fixed("Professional Tax", payroll.LineDeduction, 200, false)

	res, err := payroll.Calculate(payroll.CalculationInput{
		Year:       2024,
		Month:      2,
		Components: []payroll.ResolvedComponent{basic, pf, tax},
	})
	require.NoError(t, err)

	assert.Equal(t, 29, res.Summary.TotalDays)
	require.Len(t, res.Lines, 3, "no loss of pay line without lop days")
	amount(t, "25000.00", res.GrossEarnings)
	amount(t, "3200.00", res.TotalDeductions)
	amount(t, "21800.00", res.NetSalary)
	assert.Empty(t, res.LopDetails)
}

func TestCalculate_PercentageIsProRatedOnFullMonthBase(t *testing.T) {
	// The base is resolved at its full-month value even when the base itself
	// is not pro-rata.
	special := fixed("Special Allowance", payroll.LineEarning, 10000, false)
	bonus := percentOf("Performance Bonus", payroll.LineEarning, 10, true, special)

	res, err := payroll.Calculate(payroll.CalculationInput{
		Year:       2024,
		Month:      6,
		Components: []payroll.ResolvedComponent{special, bonus},
		Attendance: absences(day(2024, 6, 10), day(2024, 6, 11), day(2024, 6, 12)),
	})
	require.NoError(t, err)
	amount(t, "10000.00", res.Lines[0].Amount)
	amount(t, "900.00", res.Lines[1].Amount)
	require.Len(t, res.Lines, 2, "no basic component means no loss of pay line")
}

func TestCalculate_OrderIndependent(t *testing.T) {
	basic := fixed("Basic Salary", payroll.LineEarning, 40000, true)
	da := percentOf("Dearness Allowance", payroll.LineEarning, 10, true, basic)
	pf := percentOf("Provident Fund", payroll.LineDeduction, 12, false, basic, da)
	att := absences(day(2024, 7, 1))

	forward, err := payroll.Calculate(payroll.CalculationInput{Year: 2024, Month: 7, Components: []payroll.ResolvedComponent{basic, da, pf}, Attendance: att})
	require.NoError(t, err)
	reversed, err := payroll.Calculate(payroll.CalculationInput{Year: 2024, Month: 7, Components: []payroll.ResolvedComponent{pf, da, basic}, Attendance: att})
	require.NoError(t, err)

	amount(t, forward.GrossEarnings.StringFixed(2), reversed.GrossEarnings)
	amount(t, forward.TotalDeductions.StringFixed(2), reversed.TotalDeductions)
	amount(t, forward.NetSalary.StringFixed(2), reversed.NetSalary)

	// PF is 12% of (40000 + 4000), not pro-rated.
	amount(t, "5280.00", forward.Lines[2].Amount)
	assert.Equal(t, "Provident Fund", reversed.Lines[0].Name, "lines keep declared order")
	amount(t, "5280.00", reversed.Lines[0].Amount)
}

func TestCalculate_RoundsEachLineHalfUp(t *testing.T) {
	basic := fixed("Basic", payroll.LineEarning, 10000, true)

	res, err := payroll.Calculate(payroll.CalculationInput{
		Year:       2024,
		Month:      7,
		Components: []payroll.ResolvedComponent{basic},
		Attendance: absences(day(2024, 7, 15)),
	})
	require.NoError(t, err)
	// 10000 * 30 / 31 = 9677.4193...
	amount(t, "9677.42", res.Lines[0].Amount)
	// 10000 / 31 = 322.5806...
	amount(t, "322.58", res.Lines[1].Amount)
	amount(t, "9677.42", res.NetSalary)
}

func TestCalculate_AttendanceClassification(t *testing.T) {
	basic := fixed("basic pay", payroll.LineEarning, 31000, true)
	att := []payroll.AttendanceDay{
		{Date: day(2024, 7, 1), Status: attendance.StatusPresent},
		{Date: day(2024, 7, 2), Status: attendance.StatusHalfDay},
		{Date: day(2024, 7, 3), Status: attendance.StatusOnLeave, LeaveCategory: leavepolicy.CategoryUnpaid},
		{Date: day(2024, 7, 4), Status: attendance.StatusOnLeave, LeaveCategory: leavepolicy.CategoryPaid},
		{Date: day(2024, 7, 5), Status: attendance.StatusOnLeave},
		{Date: day(2024, 7, 6), Status: attendance.StatusHoliday},
		{Date: day(2024, 7, 8), Status: attendance.StatusAbsent},
		{Date: day(2024, 7, 8), Status: attendance.StatusPresent},
		{Date: day(2024, 6, 30), Status: attendance.StatusAbsent},
		{Date: day(2024, 8, 1), Status: attendance.StatusAbsent},
	}

	res, err := payroll.Calculate(payroll.CalculationInput{
		Year:       2024,
		Month:      7,
		Components: []payroll.ResolvedComponent{basic},
		Attendance: att,
	})
	require.NoError(t, err)

	s := res.Summary
	assert.Equal(t, 31, s.TotalDays)
	assert.Equal(t, 1, s.PresentDays)
	assert.Equal(t, 1, s.HalfDays)
	assert.Equal(t, 1, s.UnpaidLeaveDays)
	assert.Equal(t, 2, s.PaidLeaveDays, "leave without a category counts as paid")
	assert.Equal(t, 1, s.HolidayDays)
	assert.Equal(t, 1, s.AbsentDays, "one record per day")
	assert.Equal(t, "2.5", s.LopDays.StringFixed(1))
	assert.Equal(t, "28.5", s.PayableDays.StringFixed(1))

	assert.Equal(t, []payroll.LopDetail{
		{Date: "2024-07-02", Reason: payroll.LopReasonHalfDay},
		{Date: "2024-07-03", Reason: payroll.LopReasonUnpaidLeave},
		{Date: "2024-07-08", Reason: payroll.LopReasonAbsent},
	}, res.LopDetails)

	amount(t, "28500.00", res.Lines[0].Amount)
	amount(t, "2500.00", res.Lines[1].Amount)
}

func TestCalculate_DependencyErrors(t *testing.T) {
	a := fixed("A", payroll.LineEarning, 100, false)
	b := percentOf("B", payroll.LineEarning, 10, false)
	c := percentOf("C", payroll.LineEarning, 10, false)
	b.PercentageOf = []uuid.UUID{c.ID}
	c.PercentageOf = []uuid.UUID{b.ID}

	_, err := payroll.Calculate(payroll.CalculationInput{Year: 2024, Month: 1, Components: []payroll.ResolvedComponent{a, b, c}})
	assert.ErrorIs(t, err, payrollerrors.ErrCircularDependency)

	orphan := percentOf("Orphan", payroll.LineEarning, 10, false)
	orphan.PercentageOf = []uuid.UUID{uuid.New()}
	_, err = payroll.Calculate(payroll.CalculationInput{Year: 2024, Month: 1, Components: []payroll.ResolvedComponent{a, orphan}})
	assert.ErrorIs(t, err, payrollerrors.ErrMissingDependency)

	_, err = payroll.Calculate(payroll.CalculationInput{Year: 2024, Month: 1, Components: []payroll.ResolvedComponent{a, a}})
	assert.ErrorIs(t, err, payrollerrors.ErrDuplicateComponent)

	_, err = payroll.Calculate(payroll.CalculationInput{Year: 2024, Month: 1})
	assert.ErrorIs(t, err, payrollerrors.ErrSalaryProfileMissing)
}

func TestCalculate_Idempotent(t *testing.T) {
	basic := fixed("Basic Salary", payroll.LineEarning, 52345, true)
	hra := percentOf("HRA", payroll.LineEarning, 35, true, basic)
	pf := percentOf("PF", payroll.LineDeduction, 12, false, basic)
	in := payroll.CalculationInput{
		Year:       2023,
		Month:      11,
		Components: []payroll.ResolvedComponent{basic, hra, pf},
		Attendance: absences(day(2023, 11, 7), day(2023, 11, 21)),
	}

	first, err := payroll.Calculate(in)
	require.NoError(t, err)
	second, err := payroll.Calculate(in)
	require.NoError(t, err)

	require.Equal(t, len(first.Lines), len(second.Lines))
	for i := range first.Lines {
		assert.True(t, first.Lines[i].Amount.Equal(second.Lines[i].Amount))
	}
	assert.True(t, first.NetSalary.Equal(second.NetSalary))

	sum := decimal.Zero
	for _, l := range first.Lines {
		if l.Category == payroll.LineEarning {
			sum = sum.Add(l.Amount)
		}
	}
	assert.True(t, sum.Equal(first.GrossEarnings))
	assert.True(t, first.GrossEarnings.Sub(first.TotalDeductions).Equal(first.NetSalary))
}
