package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/bookshelf-server/internal/model"
)

const (
	codeUniqueViolation          = "23505"
	codeForeignKeyViolation      = "23503"
	codeNotNullViolation         = "23502"
	codeCheckViolation           = "23514"
	codeInvalidTextRepr          = "22P02"
	codeNumericValueOutOfRange   = "22003"
	codeStringDataTooLong        = "22001"
	codeInvalidDatetimeFormat    = "22007"
	codeCharacterNotInRepertoire = "22021"
)

// classify maps driver errors onto model errors. Anything unknown is
// returned wrapped as a generic database error.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %w", model.ErrAlreadyExists, err)
		case codeForeignKeyViolation, codeNotNullViolation, codeCheckViolation,
			codeInvalidTextRepr, codeNumericValueOutOfRange, codeStringDataTooLong,
			codeInvalidDatetimeFormat, codeCharacterNotInRepertoire:
			return fmt.Errorf("%w: %w", model.ErrInvalidData, err)
		}
	}
	return fmt.Errorf("database error: %w", err)
}
