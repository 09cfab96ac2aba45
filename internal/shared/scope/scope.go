// Package scope holds reusable gorm scopes for employee and period filtering.
package scope

import (
	"time"

	"go-hrms/internal/shared/calendar"

	"gorm.io/gorm"
)

// ByEmployee narrows a query to one employee. An empty id is a no-op.
func ByEmployee(employeeID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if employeeID == "" {
			return db
		}
		return db.Where("employee_id = ?", employeeID)
	}
}

// ByYear narrows a query on a "year" column.
func ByYear(year int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("year = ?", year)
	}
}

// InMonth keeps rows whose column falls inside the UTC calendar month.
func InMonth(column string, year, month int) func(db *gorm.DB) *gorm.DB {
	start, end := calendar.MonthRange(year, month)
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ? AND "+column+" < ?", start, end)
	}
}

// DateBetween applies optional inclusive bounds on a date column.
func DateBetween(column string, from, to *time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if from != nil {
			db = db.Where(column+" >= ?", calendar.StartOfDayUTC(*from))
		}
		if to != nil {
			db = db.Where(column+" <= ?", calendar.StartOfDayUTC(*to))
		}
		return db
	}
}
