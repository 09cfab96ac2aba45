package taskerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"Task not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidCreator = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid creator ID",
		http.StatusBadRequest,
	)

	ErrNotClaimable = apperror.InvalidState("Task is not available for claim")
	ErrCannotStart  = apperror.InvalidState("Only claimed or paused tasks can be started")
	ErrCannotPause  = apperror.InvalidState("Only in-progress tasks can be paused")
	ErrCannotFinish = apperror.InvalidState("Only in-progress tasks can be completed")
)
