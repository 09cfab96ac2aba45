package leavepolicy

import (
	"errors"
	"strings"

	leavepolicyerrors "go-hrms/internal/leavepolicy/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leavepolicyerrors.ErrPolicyNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return leavepolicyerrors.ErrPolicyAlreadyExists
		case "23503":
			return leavepolicyerrors.ErrPolicyInUse
		}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique constraint failed") {
		return leavepolicyerrors.ErrPolicyAlreadyExists
	}

	return err
}
