package attendanceerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
	ErrAlreadyCheckedIn  = apperror.InvalidState("Already checked in today")
	ErrOnLeaveToday      = apperror.InvalidState("Cannot check in on a leave day")
	ErrNotCheckedIn      = apperror.InvalidState("No check-in recorded for today")
	ErrAlreadyCheckedOut = apperror.InvalidState("Already checked out today")

	ErrCheckOutBeforeCheckIn = apperror.New(
		apperror.CodeInvalidInput,
		"Check-out cannot be earlier than check-in",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of Present, Absent, On Leave, Holiday, Half Day",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date range",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrRecordConflict = apperror.Conflict("Attendance for this employee and date already exists")
)
