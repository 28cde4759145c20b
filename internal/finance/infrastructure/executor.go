package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
)

// Executor is the part of *sql.DB (and *sql.Tx) the repositories need.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

const (
	pgUniqueViolation          = "23505"
	pgForeignKeyViolation      = "23503"
	pgNumericOutOfRange        = "22003"
	pgInvalidDatetime          = "22007"
	pgDatetimeOverflow         = "22008"
	pgStringTooLong            = "22001"
	pgCharacterNotInRepertoire = "22021"
)

// execAffected runs a statement and returns how many rows it touched.
func execAffected(ctx context.Context, db Executor, query string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, classifyStoreError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, appErrors.NewInternalError("could not read affected rows", err)
	}
	return affected, nil
}

// classifyStoreError turns driver failures into typed application errors.
// Anything unrecognised becomes an internal error carrying the cause.
func classifyStoreError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return appErrors.NewInternalError("database call cancelled", err)
		}
		return appErrors.NewInternalError("database error", err)
	}

	switch pgErr.Code {
	case pgForeignKeyViolation:
		if strings.Contains(pgErr.ConstraintName, "type") {
			return appErrors.NewValidationError("Invalid transaction type")
		}
		return appErrors.NewValidationError("Referenced record does not exist")
	case pgUniqueViolation:
		return appErrors.NewConflictError("Duplicate entry", err)
	case pgNumericOutOfRange:
		return appErrors.NewValidationError("Amount is out of range")
	case pgInvalidDatetime, pgDatetimeOverflow:
		return appErrors.NewValidationError("Invalid date")
	case pgStringTooLong:
		return appErrors.NewValidationError("Value too long")
	case pgCharacterNotInRepertoire:
		return appErrors.NewValidationError("Invalid text encoding")
	default:
		return appErrors.NewInternalError("database error", err)
	}
}
