package salaryprofile

import "github.com/shopspring/decimal"

type AssignedComponentRequest struct {
	ComponentID     string          `json:"component_id" binding:"required"`
	CalculationType string          `json:"calculation_type" binding:"required,oneof=Fixed Percentage"`
	Value           decimal.Decimal `json:"value"`
	PercentageOf    []string        `json:"percentage_of"`
}

type UpsertProfileRequest struct {
	Components []AssignedComponentRequest `json:"components" binding:"required,min=1,dive"`
}

type AssignedComponentResponse struct {
	ComponentID     string          `json:"component_id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	ProRata         bool            `json:"pro_rata"`
	CalculationType string          `json:"calculation_type"`
	Value           decimal.Decimal `json:"value"`
	PercentageOf    []string        `json:"percentage_of"`
}

type ProfileResponse struct {
	EmployeeID string                      `json:"employee_id"`
	Components []AssignedComponentResponse `json:"components"`
}
