package salaryprofile

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CalculationFixed      = "Fixed"
	CalculationPercentage = "Percentage"
)

// Profile is the single salary structure of an employee.
type Profile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_salary_profiles_employee"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Components []AssignedComponent `gorm:"-"`
}

func (Profile) TableName() string { return "salary_profiles" }

// AssignedComponent is one ordered entry of a profile. PercentageOf holds
// salary component ids and is only set for Percentage entries.
type AssignedComponent struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SalaryProfileID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	SalaryComponentID uuid.UUID       `gorm:"type:uuid;not null;index:idx_profile_component_ref"`
	Position          int             `gorm:"not null"`
	CalculationType   string          `gorm:"size:16;not null"`
	Value             decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PercentageOf      []uuid.UUID     `gorm:"type:jsonb;serializer:json;not null"`
}

func (AssignedComponent) TableName() string { return "salary_profile_components" }

// HydratedComponent is an assigned component joined with its catalog entry.
type HydratedComponent struct {
	SalaryComponentID uuid.UUID
	Name              string
	Category          string
	ProRata           bool
	CalculationType   string
	Value             decimal.Decimal
	PercentageOf      []uuid.UUID
}
