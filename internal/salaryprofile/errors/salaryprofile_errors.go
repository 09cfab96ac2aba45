package salaryprofileerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary profile not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrComponentNotFound = apperror.New(
		apperror.CodeNotFound,
		"One or more salary components do not exist",
		http.StatusNotFound,
	)

	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidComponentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid salary component ID",
		http.StatusBadRequest,
	)
	ErrDuplicateComponent = apperror.New(
		apperror.CodeInvalidInput,
		"A salary component can be assigned only once per profile",
		http.StatusBadRequest,
	)
	ErrInvalidCalculationType = apperror.New(
		apperror.CodeInvalidInput,
		"calculation_type must be Fixed or Percentage",
		http.StatusBadRequest,
	)
	ErrNegativeValue = apperror.New(
		apperror.CodeInvalidInput,
		"value must not be negative",
		http.StatusBadRequest,
	)
	ErrPercentageOfRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Percentage components require a non-empty percentage_of",
		http.StatusBadRequest,
	)
	ErrPercentageOfNotAllowed = apperror.New(
		apperror.CodeInvalidInput,
		"Fixed components cannot declare percentage_of",
		http.StatusBadRequest,
	)
	ErrSelfReference = apperror.New(
		apperror.CodeInvalidInput,
		"A percentage component cannot be based on itself",
		http.StatusBadRequest,
	)
	ErrUnassignedReference = apperror.New(
		apperror.CodeInvalidInput,
		"percentage_of may only reference components assigned in the same profile",
		http.StatusBadRequest,
	)
)
