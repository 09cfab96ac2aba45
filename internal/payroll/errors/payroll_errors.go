package payrollerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be between 1900 and 9999",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payslip status filter",
		http.StatusBadRequest,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found",
		http.StatusNotFound,
	)

	ErrAlreadyPaid = apperror.InvalidState("payslip is already marked as paid")

	ErrRunQueueUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"payroll run queue is not configured",
		http.StatusServiceUnavailable,
	)

	ErrSalaryProfileMissing = apperror.Computation("employee has no salary profile or it has no components")
	ErrCircularDependency   = apperror.Computation("salary components have a circular percentage dependency")
	ErrMissingDependency    = apperror.Computation("a percentage component references a component that is not in the profile")
	ErrDuplicateComponent   = apperror.Computation("a salary component appears more than once in the profile")
)
