package salarycomponent

import (
	"errors"
	"strings"

	salarycomponenterrors "go-hrms/internal/salarycomponent/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salarycomponenterrors.ErrComponentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_salary_components_name" {
				return salarycomponenterrors.ErrComponentNameExists
			}
		case "23503":
			return salarycomponenterrors.ErrComponentInUse
		case "22P02":
			return salarycomponenterrors.ErrComponentNotFound
		}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique constraint failed") && strings.Contains(msg, "salary_components.name") {
		return salarycomponenterrors.ErrComponentNameExists
	}

	return err
}
