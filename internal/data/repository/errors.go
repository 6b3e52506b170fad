package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when an update targets a missing row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned on a unique-constraint violation.
	ErrDuplicate = errors.New("duplicate record")
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
