package leaveerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid actor ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrStartInPast = apperror.New(
		apperror.CodeInvalidInput,
		"from_date cannot be in the past",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"to_date cannot be before from_date",
		http.StatusBadRequest,
	)
	ErrNoWorkingDays = apperror.New(
		apperror.CodeInvalidInput,
		"Requested range contains no working days",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be Pending, Approved or Rejected",
		http.StatusBadRequest,
	)

	ErrNoBalance            = apperror.InvalidState("No leave balance for this leave type and year")
	ErrInsufficientBalance  = apperror.InvalidState("Insufficient leave balance")
	ErrMonthlyCapExceeded   = apperror.InvalidState("Monthly limit for this leave type exceeded")
	ErrMonthlyGrantExceeded = apperror.InvalidState("Monthly allowance for this leave type exceeded")
	ErrNotPending           = apperror.InvalidState("Leave request has already been processed")
	ErrLeaveOverlap         = apperror.Conflict("Leave already requested for an overlapping period")
)
