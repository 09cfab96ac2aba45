package salarycomponenterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrComponentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary component not found",
		http.StatusNotFound,
	)
	ErrComponentNameExists = apperror.Conflict("Salary component with this name already exists")
	ErrComponentInUse      = apperror.InvalidState("Salary component is assigned to one or more salary profiles")

	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"Category must be Earning or Deduction",
		http.StatusBadRequest,
	)
	ErrInvalidName = apperror.New(
		apperror.CodeInvalidInput,
		"Name must not be blank",
		http.StatusBadRequest,
	)
)
