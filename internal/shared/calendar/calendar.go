// Package calendar works in UTC calendar days. Every date in the system is
// normalized through StartOfDayUTC before it is compared or stored.
package calendar

import "time"

const DateLayout = "2006-01-02"

// Clock supplies the current instant; services take one so tests can pin "today".
type Clock func() time.Time

func SystemClock() time.Time { return time.Now().UTC() }

func StartOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthRange returns [first day of month, first day of next month).
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func DaysInMonth(year, month int) int {
	start, end := MonthRange(year, month)
	return int(end.Sub(start).Hours() / 24)
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WorkingDays lists the Monday to Friday days in [from, to], inclusive.
func WorkingDays(from, to time.Time) []time.Time {
	from, to = StartOfDayUTC(from), StartOfDayUTC(to)
	var days []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if !IsWeekend(d) {
			days = append(days, d)
		}
	}
	return days
}

func CountWorkingDays(from, to time.Time) int {
	return len(WorkingDays(from, to))
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func ValidMonth(month int) bool { return month >= 1 && month <= 12 }

func ValidYear(year int) bool { return year >= 1900 && year <= 9999 }

// PreviousMonth returns the year and month before the one containing t.
func PreviousMonth(t time.Time) (int, int) {
	t = t.UTC()
	prev := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return prev.Year(), int(prev.Month())
}
