package salarycomponent

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryEarning   = "Earning"
	CategoryDeduction = "Deduction"
)

func IsValidCategory(c string) bool {
	return c == CategoryEarning || c == CategoryDeduction
}

// Component is a catalog entry that salary profiles assign values to.
type Component struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100;not null;uniqueIndex:uq_salary_components_name"`
	Category    string    `gorm:"size:16;not null"`
	ProRata     bool      `gorm:"not null;default:false"`
	Taxable     bool      `gorm:"not null;default:false"`
	Description string    `gorm:"not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Component) TableName() string {
	return "salary_components"
}
