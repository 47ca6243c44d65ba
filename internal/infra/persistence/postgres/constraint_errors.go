package postgres

import (
	"storefront/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes the repositories translate into domain errors
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// isUniqueConstraintViolation reports a duplicate slug or heart
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || sqlState(err) == pgUniqueViolation
}

// isForeignKeyConstraintViolation reports a heart or review pointing at a deleted store
func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || sqlState(err) == pgForeignKeyViolation
}

// sqlState returns the code of the pgx error in err's chain, or "".
// GORM only translates driver errors itself when TranslateError is set.
func sqlState(err error) string {
	if pgErr, ok := errors.Find[*pgconn.PgError](err); ok {
		return pgErr.Code
	}

	return ""
}
