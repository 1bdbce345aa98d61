package sqlconfig

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrValueOutOfRange     = errors.New("value does not fit its column")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqStringTooLong       = "22001"
	pqNumericOutOfRange   = "22003"
)

// translateError maps constraint failures reported by postgres onto the
// package sentinels so callers do not need to know about pq error codes.
func translateError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case pqUniqueViolation:
		return fmt.Errorf("%w: %s", ErrUniqueViolation, pqErr.Constraint)
	case pqForeignKeyViolation:
		return fmt.Errorf("%w: %s", ErrForeignKeyViolation, pqErr.Constraint)
	case pqStringTooLong, pqNumericOutOfRange:
		return fmt.Errorf("%w: %s", ErrValueOutOfRange, pqErr.Message)
	}
	return err
}
