package task

import (
	"errors"

	taskerrors "go-hrms/internal/task/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return taskerrors.ErrTaskNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "22P02":
			return taskerrors.ErrTaskNotFound
		case "23503":
			return taskerrors.ErrInvalidEmployeeID
		}
	}

	return err
}
