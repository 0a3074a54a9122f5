package database

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// IsConstraintViolation reports whether err is the storage engine rejecting
// a write because of a check, foreign key or not-null constraint
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, models.ErrConstraintViolation) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgNotNullViolation, pgForeignKeyViolation, pgCheckViolation:
			return true
		}
		return false
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}

// TranslateError maps storage errors onto the model sentinels.
// Errors it does not recognize are returned unchanged.
func TranslateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", models.ErrNotFound, err)
	case errors.Is(err, models.ErrConstraintViolation):
		return err
	case IsConstraintViolation(err):
		return fmt.Errorf("%w: %v", models.ErrConstraintViolation, err)
	default:
		return err
	}
}
