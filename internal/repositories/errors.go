package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// pgUniqueViolation is the Postgres SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// DuplicateError reports a write rejected by a unique constraint. Detail
// carries the store's own description of the offending key.
type DuplicateError struct {
	Detail string
	Err    error
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate key: %s", e.Detail)
}

func (e *DuplicateError) Unwrap() error {
	return e.Err
}

// translate maps driver errors onto the repository error vocabulary.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		detail := pgErr.Detail
		if detail == "" {
			detail = pgErr.Message
		}
		return &DuplicateError{Detail: detail, Err: err}
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) &&
		(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique || sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey) {
		return &DuplicateError{Detail: sqliteErr.Error(), Err: err}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &DuplicateError{Detail: err.Error(), Err: err}
	}
	return err
}
