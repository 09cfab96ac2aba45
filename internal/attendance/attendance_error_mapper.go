package attendance

import (
	"errors"

	attendanceerrors "go-hrms/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrRecordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendance_employee_date":
			return attendanceerrors.ErrRecordConflict
		case pgErr.Code == "23514" && pgErr.ConstraintName == "chk_attendance_checkout":
			return attendanceerrors.ErrCheckOutBeforeCheckIn
		case pgErr.Code == "22P02":
			return attendanceerrors.ErrInvalidEmployeeID
		}
	}

	return err
}
