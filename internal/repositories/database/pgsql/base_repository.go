package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/repair_shop_app/internal/apperrors"
	portsrepo "github.com/SscSPs/repair_shop_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Advisory lock keys. They only need to be distinct within this database.
const (
	orderNumberLockKey int64 = 7_310_001
	ledgerLockKey      int64 = 7_310_002
)

// PostgreSQL error codes mapped onto the application error taxonomy.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// orderNumberConstraint is the unique index PostgreSQL names for orders.order_number.
const orderNumberConstraint = "orders_order_number_key"

// Client-facing messages for store failures. Driver detail stays in the wrapped error.
const (
	msgRetry            = "The record was changed by another request, please retry"
	msgInvalidReference = "The request references a missing record or an invalid value"
)

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx so a repository can run
// inside or outside a transaction.
type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
	SendBatch(context.Context, *pgx.Batch) pgx.BatchResults
}

// rowScanner is the part of pgx.Row and pgx.Rows used by scan helpers.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db dbtx
}

// storeError maps driver errors onto the application error taxonomy. op
// names the failed operation for logs.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewAppError(http.StatusConflict, msgRetry,
			fmt.Errorf("%w: %s timed out", apperrors.ErrConflict, op))
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			if pgErr.ConstraintName == orderNumberConstraint {
				return apperrors.NewAppError(http.StatusConflict, msgRetry,
					fmt.Errorf("%w: %s: %s", apperrors.ErrOrderNumberTaken, op, pgErr.Message))
			}
			return apperrors.NewAppError(http.StatusConflict, msgRetry,
				fmt.Errorf("%w: %s: %s", apperrors.ErrConflict, op, pgErr.Message))
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
			return apperrors.NewAppError(http.StatusConflict, msgRetry,
				fmt.Errorf("%w: %s: %s", apperrors.ErrConflict, op, pgErr.Message))
		case codeCheckViolation, codeForeignKeyViolation:
			return apperrors.NewAppError(http.StatusBadRequest, msgInvalidReference,
				fmt.Errorf("%w: %s: %s", apperrors.ErrValidation, op, pgErr.ConstraintName))
		}
	}
	return apperrors.NewAppError(500, "failed to "+op, err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns term into an ILIKE pattern matching it as a literal
// substring. Queries using it must declare ESCAPE '\'.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// txRunner implements portsrepo.TransactionRunner on a connection pool.
type txRunner struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// RunInTx runs fn in a READ COMMITTED transaction. Row and advisory locks
// taken by the repositories provide the serialization the services rely on.
func (r *txRunner) RunInTx(ctx context.Context, fn portsrepo.TxFunc) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return storeError("begin transaction", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	bound := &boundRunner{}
	repos := newRepositorySet(tx)
	repos.TxRunner = bound
	bound.repos = repos
	if err := fn(ctx, repos); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return storeError("run transaction", err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return storeError("commit transaction", err)
	}
	return nil
}

// boundRunner joins the transaction that is already running.
type boundRunner struct {
	repos portsrepo.RepositoryProvider
}

func (r *boundRunner) RunInTx(ctx context.Context, fn portsrepo.TxFunc) error {
	return fn(ctx, r.repos)
}

func advisoryLock(ctx context.Context, db dbtx, key int64) error {
	_, err := db.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, key)
	return err
}
