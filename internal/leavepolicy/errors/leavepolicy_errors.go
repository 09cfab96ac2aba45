package leavepolicyerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrPolicyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave policy not found",
		http.StatusNotFound,
	)
	ErrPolicyAlreadyExists = apperror.Conflict("Leave policy with this type already exists")
	ErrPolicyInUse         = apperror.InvalidState("Leave policy is referenced by balances or requests")

	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"Leave type must be 2 to 10 upper-case letters or digits",
		http.StatusBadRequest,
	)
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"Category must be Paid or Unpaid",
		http.StatusBadRequest,
	)
	ErrInvalidRenewal = apperror.New(
		apperror.CodeInvalidInput,
		"Renewal must be Yearly or Monthly",
		http.StatusBadRequest,
	)
	ErrRenewalRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Paid leave requires a renewal cadence",
		http.StatusBadRequest,
	)
	ErrAnnualTotalRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Yearly paid leave requires a positive total_days_per_year",
		http.StatusBadRequest,
	)
	ErrAnnualTotalNotAllowed = apperror.New(
		apperror.CodeInvalidInput,
		"Monthly paid leave cannot declare total_days_per_year",
		http.StatusBadRequest,
	)
	ErrMonthlyGrantRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Monthly paid leave requires a positive monthly_grant",
		http.StatusBadRequest,
	)
	ErrInvalidMonthlyCap = apperror.New(
		apperror.CodeInvalidInput,
		"monthly_cap must be positive",
		http.StatusBadRequest,
	)
)
