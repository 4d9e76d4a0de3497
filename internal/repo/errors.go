package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means no row matched the given id or key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a unique constraint (email, username) was violated.
	ErrDuplicate = errors.New("duplicate record")
)

// uniqueViolation is the Postgres error code for unique_violation.
const uniqueViolation = "23505"

// translate maps driver and ORM errors onto the repo's error taxonomy.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}
