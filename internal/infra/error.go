package infra

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"barbershop-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs once at the infra boundary. Without an explicit kind the
// error is classified from the pgx error it wraps.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	logArgs := []any{
		slog.String("kind", string(k)),
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		logArgs = append(logArgs, slog.String("pg_code", pgErr.Code), slog.String("constraint", pgErr.ConstraintName))
	}

	if k == KindNotFound {
		slog.Debug("Repository error: "+msg, logArgs...)
	} else {
		slog.Error("Repository error: "+msg, append(logArgs, slog.Any("error", err))...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	repoErr := RepositoryError{Kind: k, msg: msg, err: err}
	if k == KindCorruptRow {
		return errs.Mark(repoErr, errs.ErrCorruptData)
	}
	return repoErr
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindUnavailable        RepositoryErrorKind = "UNAVAILABLE"
	// Row read fine but failed domain decoding
	KindCorruptRow         RepositoryErrorKind = "CORRUPT_ROW"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

func classify(err error) RepositoryErrorKind {
	if err == nil {
		return KindDBFailure
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return KindDuplicateKey
		case pgErrCodeForeignKeyViolation:
			return KindForeignKeyViolated
		}
		// Class 08: connection exception, 57P: operator intervention
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08" || len(pgErr.Code) >= 3 && pgErr.Code[:3] == "57P" {
			return KindUnavailable
		}
		return KindDBFailure
	}

	var netErr net.Error
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) || errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) {
		return KindUnavailable
	}
	return KindDBFailure
}
