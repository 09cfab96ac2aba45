package leavebalanceerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave balance not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInsufficientBalance = apperror.InvalidState("Insufficient leave balance")

	ErrNotPaidYearly = apperror.New(
		apperror.CodeInvalidInput,
		"Balances exist only for paid yearly leave types",
		http.StatusBadRequest,
	)
	ErrInvalidAmounts = apperror.New(
		apperror.CodeInvalidInput,
		"used and total must be non-negative and used cannot exceed total",
		http.StatusBadRequest,
	)
	ErrInvalidDays = apperror.New(
		apperror.CodeInvalidInput,
		"Days to deduct must be positive",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"Year must be between 1900 and 9999",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
