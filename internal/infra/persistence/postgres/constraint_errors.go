package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE integrity_constraint_violation subclasses.
const (
	sqlStateNotNull    = "23502"
	sqlStateForeignKey = "23503"
	sqlStateUnique     = "23505"
	sqlStateCheck      = "23514"
)

// sqlState returns the PostgreSQL error code carried by err, if any.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// The gorm sentinels only appear when TranslateError is enabled on the session.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || sqlState(err) == sqlStateUnique
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || sqlState(err) == sqlStateForeignKey
}

func isNotNullConstraintViolation(err error) bool {
	return sqlState(err) == sqlStateNotNull
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || sqlState(err) == sqlStateCheck
}
