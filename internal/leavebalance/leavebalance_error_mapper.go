package leavebalance

import (
	"errors"
	"strings"

	leavebalanceerrors "go-hrms/internal/leavebalance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leavebalanceerrors.ErrBalanceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23514":
			return leavebalanceerrors.ErrInsufficientBalance
		case "23503":
			return leavebalanceerrors.ErrEmployeeNotFound
		case "22P02":
			return leavebalanceerrors.ErrInvalidEmployeeID
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "check constraint failed") {
		return leavebalanceerrors.ErrInsufficientBalance
	}

	return err
}
