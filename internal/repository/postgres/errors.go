package postgres

import (
	"errors"
	"fmt"

	"conferencehub/internal/domain"

	"github.com/lib/pq"
)

// Postgres SQLSTATE codes translated into domain errors.
const (
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeStringTooLong       = "22001"
)

// mapPQError translates constraint failures reported by Postgres into domain errors.
// Any other error is returned unchanged.
func mapPQError(err error) error {
	var perr *pq.Error
	if !errors.As(err, &perr) {
		return err
	}
	switch perr.Code {
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: %s", domain.ErrConstraintViolation, perr.Message)
	case codeNotNullViolation, codeStringTooLong:
		return fmt.Errorf("%w: %s", domain.ErrValidation, perr.Message)
	}
	return err
}
