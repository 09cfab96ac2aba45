package salaryprofile

import (
	"errors"
	"strings"

	salaryprofileerrors "go-hrms/internal/salaryprofile/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryprofileerrors.ErrProfileNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			if strings.Contains(pgErr.ConstraintName, "employee") {
				return salaryprofileerrors.ErrEmployeeNotFound
			}
			return salaryprofileerrors.ErrComponentNotFound
		case "23505":
			if pgErr.ConstraintName == "uq_profile_component" {
				return salaryprofileerrors.ErrDuplicateComponent
			}
		case "22P02":
			return salaryprofileerrors.ErrInvalidEmployeeID
		}
	}

	return err
}
