// Package postgres implements the store interfaces against PostgreSQL.
package postgres

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"nc-news/internal/apperr"
)

// PostgreSQL error codes handled by the error mapping.
const (
	invalidTextRepresentationCode = "22P02"
	notNullViolationCode          = "23502"
	foreignKeyViolationCode       = "23503"
	uniqueViolationCode           = "23505"
)

// MapError normalizes a database error into an application error. Errors
// that already carry an application kind pass through unchanged; invalid
// input and not-null violations become 400 "Bad request", unique violations
// 409, foreign key violations 404 (the referenced entity does not exist).
// Anything else is treated as internal.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if apperr.From(err) != nil {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case invalidTextRepresentationCode, notNullViolationCode:
			return apperr.BadRequest("Bad request")
		case uniqueViolationCode:
			return apperr.Conflict("")
		case foreignKeyViolationCode:
			return apperr.NotFound("")
		}
	}

	return apperr.Internal(err)
}

// IsUniqueViolation reports whether err is a unique constraint violation.
// Stores use it to attach entity-specific conflict messages.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// CheckRowsAffected returns notFound when the result affected no rows.
// UPDATE and DELETE use it to detect missing targets.
func CheckRowsAffected(result sql.Result, notFound *apperr.Error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperr.Internal(err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
